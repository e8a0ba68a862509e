package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

type CalculatorHandler struct {
	CalculatorService service.CalculatorGenerator
}

func NewCalculatorHandler(calculatorService service.CalculatorGenerator) *CalculatorHandler {
	return &CalculatorHandler{CalculatorService: calculatorService}
}

// Operation returns a handler bound to a fixed operation, e.g. /add
func (h *CalculatorHandler) Operation(operation string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.calculate(c, operation)
	}
}

// Calculate takes the operation from the :operation path parameter
func (h *CalculatorHandler) Calculate(c echo.Context) error {
	return h.calculate(c, c.Param("operation"))
}

func (h *CalculatorHandler) calculate(c echo.Context, operation string) error {
	req := new(models.CalculatorRequest)
	if err := c.Bind(req); err != nil || !req.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return c.JSON(http.StatusOK, h.CalculatorService.Calculate(operation, *req))
}
