package handlers_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/router"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/server"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

func setupCalculatorTest(t *testing.T) *echo.Echo {
	t.Helper()
	e := server.New()
	router.SetupCalculatorRoutes(e, handlers.NewCalculatorHandler(service.NewCalculatorService()))
	return e
}

func TestCalculatorHandler(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		body     string
		wantBody string
	}{
		{name: "Add", path: "/add", body: `{"x":2,"y":3}`, wantBody: `{"Message":5,"Status Code":200}`},
		{name: "Subtract", path: "/subtract", body: `{"x":2,"y":3}`, wantBody: `{"Message":-1,"Status Code":200}`},
		{name: "Multiply", path: "/multiply", body: `{"x":2,"y":3}`, wantBody: `{"Message":6,"Status Code":200}`},
		{name: "Divide", path: "/divide", body: `{"x":3,"y":2}`, wantBody: `{"Message":1.5,"Status Code":200}`},
		{name: "DivideByZero", path: "/divide", body: `{"x":3,"y":0}`, wantBody: `{"Message":"Divide by zero error","Status Code":302}`},
		{name: "MissingY", path: "/add", body: `{"x":2}`, wantBody: `{"Message":"At least one of operand inputs {x, y} is missing","Status Code":301}`},
		{name: "EmptyObject", path: "/multiply", body: `{}`, wantBody: `{"Message":"At least one of operand inputs {x, y} is missing","Status Code":301}`},
		{name: "ByPathParam", path: "/calculate/multiply", body: `{"x":4,"y":2.5}`, wantBody: `{"Message":10,"Status Code":200}`},
		{name: "LargeIntegersStayExact", path: "/multiply", body: `{"x":9007199254740993,"y":3}`, wantBody: `{"Message":27021597764222979,"Status Code":200}`},
		{name: "UnknownOperation", path: "/calculate/modulo", body: `{"x":4,"y":2}`, wantBody: `{"Message":"Unknown operation","Status Code":307}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupCalculatorTest(t)

			rec := performRequest(e, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}

	for name, body := range map[string]string{
		"NonNumericOperand": `{"x":"two","y":3}`,
		"ArrayOperand":      `{"x":[1],"y":3}`,
		"Malformed":         `{"x":`,
	} {
		t.Run(name, func(t *testing.T) {
			e := setupCalculatorTest(t)

			rec := performRequest(e, http.MethodPost, "/add", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
