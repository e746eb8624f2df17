package handler_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"railway-reservation/internal/module/account/handler"
	"railway-reservation/internal/module/account/mocks"
	"railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/module/account/models/request"
	"railway-reservation/internal/module/session"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/helpers"
	log_internal "railway-reservation/internal/pkg/log"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h        *handler.AccountHandler
	ucm      *mocks.Usecase
	app      *fiber.App
	registry *session.Registry
)

func setup(t *testing.T) {
	ucm = mocks.NewUsecase(t)
	registry = session.NewRegistry()
	h = &handler.AccountHandler{
		Log:       log_internal.Setup(),
		Validator: validator.New(),
		Usecase:   ucm,
		Sessions:  registry,
	}
	app = fiber.New()
	app.Post("/api/v1/register", h.Register)
	app.Post("/api/v1/login", h.Login)
	app.Post("/api/v1/logout", func(c *fiber.Ctx) error {
		c.Locals("token", c.Get("X-Token"))
		return c.Next()
	}, h.Logout)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
	registry = nil
}

func post(t *testing.T, path string, payload interface{}) (*http.Response, helpers.Response) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var out helpers.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return resp, out
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		setup(t)
		defer teardown()

		payload := request.Register{Username: "alice", Password: "secret1", ConfirmPassword: "secret1"}
		ucm.On("Register", mock.Anything, &payload).Return(nil)

		resp, _ := post(t, "/api/v1/register", payload)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("validation error", func(t *testing.T) {
		setup(t)
		defer teardown()

		resp, _ := post(t, "/api/v1/register", request.Register{Username: "alice"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate username", func(t *testing.T) {
		setup(t)
		defer teardown()

		payload := request.Register{Username: "alice", Password: "secret1", ConfirmPassword: "secret1"}
		ucm.On("Register", mock.Anything, &payload).Return(errors.ErrDuplicateUsername)

		resp, out := post(t, "/api/v1/register", payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, out.Error)
		assert.Equal(t, "DUPLICATE_USERNAME", out.Error.Reason)
	})
}

func TestLoginLogout(t *testing.T) {
	setup(t)
	defer teardown()

	ucm.On("Authenticate", mock.Anything, "alice", "secret1").Return(entity.AccountHandle{Username: "alice"}, nil)
	ucm.On("Authenticate", mock.Anything, "alice", "bad-password").Return(entity.AccountHandle{}, errors.ErrInvalidCredentials)

	resp, _ := post(t, "/api/v1/login", request.Login{Username: "alice", Password: "bad-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, out := post(t, "/api/v1/login", request.Login{Username: "alice", Password: "secret1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	data, ok := out.Data.(map[string]interface{})
	require.True(t, ok)
	token, _ := data["token"].(string)
	require.NotEmpty(t, token)

	handle, ok := registry.Resolve(token)
	require.True(t, ok)
	assert.Equal(t, "alice", handle.Username)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.Header.Set("X-Token", token)
	logoutResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, logoutResp.StatusCode)

	_, ok = registry.Resolve(token)
	assert.False(t, ok)
}
