package middleware_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/module/session"
	log_internal "railway-reservation/internal/pkg/log"
	"railway-reservation/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	registry := session.NewRegistry()
	token := registry.Issue(entity.AccountHandle{Username: "alice"})

	m := middleware.Middleware{Log: log_internal.Setup(), Sessions: registry}
	app := fiber.New()
	app.Get("/me", m.ValidateToken, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("username").(string))
	})

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "alice"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer nope", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.wantStatus, resp.StatusCode)
			if tc.wantBody != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tc.wantBody, string(body))
			}
		})
	}
}
