package router

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/config"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/middleware"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

func SetupGreetingRoutes(e *echo.Echo, h *handlers.GreetingHandler) {
	e.GET("/", h.Hello)
	e.GET("/hithere", h.HiThere)
	e.GET("/bye", h.Bye)
	e.POST("/add_two_nums", h.AddTwoNums)
	e.GET("/visit", h.Visit)
}

func SetupCalculatorRoutes(e *echo.Echo, h *handlers.CalculatorHandler) {
	e.POST("/add", h.Operation(service.OpAdd))
	e.POST("/subtract", h.Operation(service.OpSubtract))
	e.POST("/multiply", h.Operation(service.OpMultiply))
	e.POST("/divide", h.Operation(service.OpDivide))
	e.POST("/calculate/:operation", h.Calculate) // any name, unknown ones answer 307
}

func SetupSentenceRoutes(e *echo.Echo, h *handlers.SentenceHandler) {
	e.POST("/register", h.Register)
	e.POST("/store", h.Store)
	e.POST("/retrieve", h.Retrieve)
	e.POST("/get", h.Retrieve)
	e.POST("/balance", h.CheckBalance)
}

// SetupAdminRoutes registers nothing when no admin password is configured,
// so every /admin path answers 404.
func SetupAdminRoutes(e *echo.Echo, h *handlers.AdminHandler, cfg config.AdminConfig) {
	if cfg.Password == "" {
		log.Info().Msg("Admin routes not registered")
		return
	}
	admin := e.Group("/admin")
	admin.POST("/token", h.IssueToken)
	admin.POST("/refill", h.Refill, middleware.AdminJWT(cfg.JWTSecret))
}
