package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"railway-reservation/internal/module/catalog/handler"
	"railway-reservation/internal/module/catalog/mocks"
	"railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/pkg/errors"
	log_internal "railway-reservation/internal/pkg/log"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	h   *handler.CatalogHandler
	ucm *mocks.Usecase
	app *fiber.App
)

func setup(t *testing.T) {
	ucm = mocks.NewUsecase(t)
	h = &handler.CatalogHandler{
		Log:     log_internal.Setup(),
		Usecase: ucm,
	}
	app = fiber.New()
	app.Get("/api/v1/trains", h.ListTrains)
	app.Get("/api/v1/trains/:id", h.GetTrain)
}

func teardown() {
	ucm = nil
	h = nil
	app = nil
}

func TestListTrains(t *testing.T) {
	setup(t)
	defer teardown()

	ucm.On("ListTrains", mock.Anything).Return(entity.DemoTrains(), nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/trains", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []entity.Train `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, entity.DemoTrains(), body.Data)
}

func TestGetTrain(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		mockID     int64
		mockTrain  entity.Train
		mockErr    error
		wantStatus int
	}{
		{name: "found", path: "/api/v1/trains/101", mockID: 101, mockTrain: entity.DemoTrains()[0], wantStatus: http.StatusOK},
		{name: "unknown", path: "/api/v1/trains/999", mockID: 999, mockErr: errors.ErrUnknownTrain, wantStatus: http.StatusNotFound},
		{name: "not a number", path: "/api/v1/trains/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setup(t)
			defer teardown()

			if tc.mockID != 0 {
				ucm.On("GetTrain", mock.Anything, tc.mockID).Return(tc.mockTrain, tc.mockErr)
			}

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.path, nil), -1)
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}
