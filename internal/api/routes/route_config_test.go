package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wine-diary/domain"
	"wine-diary/internal/api/handlers"
	"wine-diary/internal/middleware"
	"wine-diary/internal/utils"
	"wine-diary/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoutedApp() *fiber.App {
	app := fiber.New()
	cfg := Config{
		App:            app,
		UserHandler:    handlers.NewUserHandler(nil, utils.NewValidator()),
		TastingHandler: handlers.NewTastingHandler(nil),
		Middleware:     middleware.NewMiddleware(),
		JWTService:     jwt.NewJWTService("secret", "WINE-DIARY", time.Hour),
	}
	cfg.Setup()
	return app
}

func TestHealth(t *testing.T) {
	resp, err := newRoutedApp().Test(httptest.NewRequest(http.MethodGet, "/api/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "OK", body["status"])
	assert.Equal(t, domain.MessageHealthy, body["message"])
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newRoutedApp()

	tests := []struct {
		method string
		target string
	}{
		{method: http.MethodGet, target: "/api/wines"},
		{method: http.MethodPost, target: "/api/wines"},
		{method: http.MethodGet, target: "/api/wines/search/cedar"},
		{method: http.MethodGet, target: "/api/wines/0d5c2f0e-4c55-4f5e-8a5c-6f6f0d7c9b10"},
		{method: http.MethodPut, target: "/api/wines/0d5c2f0e-4c55-4f5e-8a5c-6f6f0d7c9b10"},
		{method: http.MethodDelete, target: "/api/wines/0d5c2f0e-4c55-4f5e-8a5c-6f6f0d7c9b10"},
		{method: http.MethodPost, target: "/api/wines/0d5c2f0e-4c55-4f5e-8a5c-6f6f0d7c9b10/label"},
		{method: http.MethodGet, target: "/api/auth/me"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.target, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest(tt.method, tt.target, nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
