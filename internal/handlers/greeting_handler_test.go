package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/mocks"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/router"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/server"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

func setupGreetingTest(t *testing.T) (*mocks.MockVisitGenerator, *echo.Echo) {
	t.Helper()
	visits := new(mocks.MockVisitGenerator)
	e := server.New()
	router.SetupGreetingRoutes(e, handlers.NewGreetingHandler(visits, service.NewCalculatorService()))
	return visits, e
}

func TestGreetingHandler_Text(t *testing.T) {
	_, e := setupGreetingTest(t)

	rec := performRequest(e, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello world!", rec.Body.String())

	rec = performRequest(e, http.MethodGet, "/hithere", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "We just entered URL ending with /hithere", rec.Body.String())
}

func TestGreetingHandler_Bye(t *testing.T) {
	_, e := setupGreetingTest(t)

	rec := performRequest(e, http.MethodGet, "/bye", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	profile := decodeBody[models.Profile](t, rec)
	assert.Equal(t, "jhansen", profile.Name)
	require.Len(t, profile.Phones, 2)
	assert.NotEmpty(t, profile.Phones[0].Number)
	assert.Contains(t, rec.Body.String(), `"phone_name"`)
}

func TestGreetingHandler_AddTwoNums(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		_, e := setupGreetingTest(t)

		rec := performRequest(e, http.MethodPost, "/add_two_nums", `{"x":1.5,"y":2}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"z":3.5}`, rec.Body.String())
	})

	t.Run("LargeIntegers", func(t *testing.T) {
		_, e := setupGreetingTest(t)

		rec := performRequest(e, http.MethodPost, "/add_two_nums", `{"x":9007199254740993,"y":1}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"z":9007199254740994}`, rec.Body.String())
		assert.Contains(t, rec.Body.String(), "9007199254740994")
	})

	t.Run("NonNumericOperand", func(t *testing.T) {
		_, e := setupGreetingTest(t)

		rec := performRequest(e, http.MethodPost, "/add_two_nums", `{"x":"one","y":1}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MissingOperand", func(t *testing.T) {
		_, e := setupGreetingTest(t)

		rec := performRequest(e, http.MethodPost, "/add_two_nums", `{"x":1}`)

		assert.Equal(t, handlers.StatusAddTwoNumsMissingOperand, rec.Code)
		assert.Equal(t, "ERROR", rec.Body.String())
	})
}

func TestGreetingHandler_Visit(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		visits, e := setupGreetingTest(t)
		visits.On("Visit", mock.Anything).Return(int64(3), nil).Once()

		rec := performRequest(e, http.MethodGet, "/visit", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "hello user: 3", rec.Body.String())
		visits.AssertExpectations(t)
	})

	t.Run("CounterUnavailable", func(t *testing.T) {
		visits, e := setupGreetingTest(t)
		visits.On("Visit", mock.Anything).Return(int64(0), errors.New("redis down")).Once()

		rec := performRequest(e, http.MethodGet, "/visit", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
