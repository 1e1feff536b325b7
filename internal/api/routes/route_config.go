package routes

import (
	"wine-diary/domain"
	"wine-diary/internal/api/handlers"
	"wine-diary/internal/middleware"
	"wine-diary/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	TastingHandler handlers.TastingHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Wines()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "OK", "message": domain.MessageHealthy})
	})
}

func (c *Config) User() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Wines() {
	wines := c.App.Group("/api/wines", c.Middleware.AuthMiddleware(c.JWTService))

	// search is registered ahead of /:id so that /search is not taken for an id
	wines.Get("/search/:query?", c.TastingHandler.SearchTastings)

	wines.Get("", c.TastingHandler.GetTastings)
	wines.Post("", c.TastingHandler.CreateTasting)
	wines.Get("/:id", c.TastingHandler.GetTastingDetails)
	wines.Put("/:id", c.TastingHandler.UpdateTasting)
	wines.Delete("/:id", c.TastingHandler.DeleteTasting)

	wines.Post("/:id/label", c.TastingHandler.UploadLabel)
	wines.Delete("/:id/label", c.TastingHandler.RemoveLabel)
}
