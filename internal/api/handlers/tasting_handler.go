package handlers

import (
	"errors"
	"net/url"
	"wine-diary/domain"
	"wine-diary/internal/api/presenters"
	"wine-diary/pkg/tasting"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	TastingHandler interface {
		GetTastings(c *fiber.Ctx) error
		GetTastingDetails(c *fiber.Ctx) error
		CreateTasting(c *fiber.Ctx) error
		UpdateTasting(c *fiber.Ctx) error
		DeleteTasting(c *fiber.Ctx) error
		SearchTastings(c *fiber.Ctx) error
		UploadLabel(c *fiber.Ctx) error
		RemoveLabel(c *fiber.Ctx) error
	}

	tastingHandler struct {
		tastingService tasting.TastingService
	}
)

func NewTastingHandler(tastingService tasting.TastingService) TastingHandler {
	return &tastingHandler{
		tastingService: tastingService,
	}
}

func (h *tastingHandler) GetTastings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.tastingService.GetTastings(c.Context(), userID)
	if err != nil {
		return tastingErrorResponse(c, "", err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTastings)
}

func (h *tastingHandler) GetTastingDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tastingID := c.Params("id")

	res, err := h.tastingService.GetTastingByID(c.Context(), tastingID, userID)
	if err != nil {
		return tastingErrorResponse(c, "", err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTasting)
}

func (h *tastingHandler) CreateTasting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.TastingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.tastingService.CreateTasting(c.Context(), *req, userID)
	if err != nil {
		return tastingErrorResponse(c, domain.MessageFailedCreateTasting, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateTasting)
}

func (h *tastingHandler) UpdateTasting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tastingID := c.Params("id")
	req := new(domain.TastingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.tastingService.UpdateTasting(c.Context(), tastingID, *req, userID)
	if err != nil {
		return tastingErrorResponse(c, domain.MessageFailedUpdateTasting, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateTasting)
}

func (h *tastingHandler) DeleteTasting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tastingID := c.Params("id")

	if err := h.tastingService.DeleteTasting(c.Context(), tastingID, userID); err != nil {
		return tastingErrorResponse(c, "", err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteTasting)
}

// SearchTastings takes the query from the path (/search/:query) or, when
// the path segment is absent, from ?q=. An empty query matches everything.
func (h *tastingHandler) SearchTastings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	query := c.Query("q")
	if raw := c.Params("query"); raw != "" {
		unescaped, err := url.PathUnescape(raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
		}
		query = unescaped
	}

	res, err := h.tastingService.SearchTastings(c.Context(), query, userID)
	if err != nil {
		return tastingErrorResponse(c, "", err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchTastings)
}

func (h *tastingHandler) UploadLabel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tastingID := c.Params("id")

	file, err := c.FormFile("label_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.tastingService.UploadLabel(c.Context(), tastingID, file, userID)
	if err != nil {
		return tastingErrorResponse(c, domain.MessageFailedUploadLabel, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadLabel)
}

func (h *tastingHandler) RemoveLabel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	tastingID := c.Params("id")

	res, err := h.tastingService.RemoveLabel(c.Context(), tastingID, userID)
	if err != nil {
		return tastingErrorResponse(c, "", err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRemoveLabel)
}

// tastingErrorResponse maps service errors onto statuses. Anything that is
// not a known domain error is logged and reported without its text.
func tastingErrorResponse(c *fiber.Ctx, message string, err error) error {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, vErr)
	case errors.Is(err, domain.ErrTastingNotFound):
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageTastingNotFound, nil)
	case errors.Is(err, domain.ErrInvalidImageFormat):
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, message, err)
	case errors.Is(err, domain.ErrStorageNotConfigured):
		return presenters.ErrorResponse(c, fiber.StatusServiceUnavailable, message, err)
	default:
		log.Errorw("wine request failed", "method", c.Method(), "path", c.Path(), "err", err)
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageServerError, nil)
	}
}
