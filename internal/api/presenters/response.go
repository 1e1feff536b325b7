package presenters

import (
	"errors"
	"wine-diary/domain"

	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool                `json:"status"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure envelope. Validation errors are expanded
// into their field list; a nil err leaves the error text out.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		res.Error = vErr.Error()
		res.Errors = vErr.Fields
	case err != nil:
		res.Error = err.Error()
	}

	return c.Status(statusCode).JSON(res)
}
