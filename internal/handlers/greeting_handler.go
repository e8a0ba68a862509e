package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

// StatusAddTwoNumsMissingOperand is the transport status /add_two_nums
// answers with when an operand is missing.
const StatusAddTwoNumsMissingOperand = 305

var byeProfile = models.Profile{
	Name: "jhansen",
	Age:  29_000,
	Phones: []models.Phone{
		{Name: "Pixel_6A", Number: "435-812-9485"},
		{Name: "iPhone_14", Number: "801-274-0031"},
	},
}

// GreetingHandler serves the hello-world app
type GreetingHandler struct {
	VisitService      service.VisitGenerator
	CalculatorService service.CalculatorGenerator
}

func NewGreetingHandler(visitService service.VisitGenerator, calculatorService service.CalculatorGenerator) *GreetingHandler {
	return &GreetingHandler{
		VisitService:      visitService,
		CalculatorService: calculatorService,
	}
}

func (h *GreetingHandler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello world!")
}

func (h *GreetingHandler) HiThere(c echo.Context) error {
	return c.String(http.StatusOK, "We just entered URL ending with /hithere")
}

func (h *GreetingHandler) Bye(c echo.Context) error {
	return c.JSON(http.StatusOK, byeProfile)
}

func (h *GreetingHandler) AddTwoNums(c echo.Context) error {
	req := new(models.CalculatorRequest)
	if err := c.Bind(req); err != nil || !req.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	sum := h.CalculatorService.Calculate(service.OpAdd, *req)
	if sum.StatusCode != models.CalcStatusOK {
		return c.String(StatusAddTwoNumsMissingOperand, "ERROR")
	}
	return c.JSON(http.StatusOK, models.AddTwoNumsResponse{Z: sum.Message})
}

// Visit counts the caller and greets them with their visitor number
func (h *GreetingHandler) Visit(c echo.Context) error {
	n, err := h.VisitService.Visit(c.Request().Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to count visit")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count visit")
	}
	return c.String(http.StatusOK, fmt.Sprintf("hello user: %d", n))
}
