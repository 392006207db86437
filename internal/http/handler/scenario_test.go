package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"fruitapi/internal/repository/postgres"
	"fruitapi/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	insertFruitSQL = "INSERT INTO fruits (fruit_name,fruit_count) VALUES ($1,$2) RETURNING id, fruit_name, fruit_count"
	listFruitsSQL  = "SELECT id, fruit_name, fruit_count FROM fruits ORDER BY id DESC"
)

func newStackApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	svc := service.NewFruitService(postgres.NewFruitPostgres(db), zerolog.Nop())
	RegisterRoutes(app, db, svc, prometheus.NewRegistry())
	return app, mock
}

func TestScenario_CreateThenList(t *testing.T) {
	app, mock := newStackApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(insertFruitSQL)).
		WithArgs("banana", 3).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fruit_name", "fruit_count"}).AddRow(int64(1), "banana", 3))
	mock.ExpectQuery(regexp.QuoteMeta(listFruitsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fruit_name", "fruit_count"}).AddRow(int64(1), "banana", 3))

	resp, _ := app.Test(jsonRequest(http.MethodPost, "/fruits", `{"fruit_name":"banana","fruit_count":3}`))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"id":1,"fruit_name":"banana","fruit_count":3}`, readBody(t, resp))

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/fruits", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"id":1,"fruit_name":"banana","fruit_count":3}]`, readBody(t, resp))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScenario_NewestFirst(t *testing.T) {
	app, mock := newStackApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(listFruitsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fruit_name", "fruit_count"}).
			AddRow(int64(2), "apple", 5).
			AddRow(int64(1), "banana", 3))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/fruits", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t,
		`[{"id":2,"fruit_name":"apple","fruit_count":5},{"id":1,"fruit_name":"banana","fruit_count":3}]`,
		readBody(t, resp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScenario_EmptyTable(t *testing.T) {
	app, mock := newStackApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(listFruitsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "fruit_name", "fruit_count"}))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/fruits", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, readBody(t, resp))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScenario_MissingFieldsPersistNothing(t *testing.T) {
	app, mock := newStackApp(t)

	for _, body := range []string{`{"fruit_count":5}`, `{"fruit_name":"apple"}`, `{"fruit_name":"","fruit_count":1}`} {
		resp, _ := app.Test(jsonRequest(http.MethodPost, "/fruits", body))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.JSONEq(t, `{"error":"fruit_name and fruit_count are required"}`, readBody(t, resp), body)
	}

	// no statement reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScenario_StoreDown(t *testing.T) {
	app, mock := newStackApp(t)

	mock.ExpectQuery(regexp.QuoteMeta(listFruitsSQL)).WillReturnError(errors.New("connection refused"))
	mock.ExpectQuery(regexp.QuoteMeta(insertFruitSQL)).WillReturnError(errors.New("connection refused"))

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/fruits", nil))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Failed to fetch fruits"}`, readBody(t, resp))

	resp, _ = app.Test(jsonRequest(http.MethodPost, "/fruits", `{"fruit_name":"kiwi","fruit_count":1}`))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Failed to add fruit"}`, readBody(t, resp))

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.NoError(t, mock.ExpectationsWereMet())
}
