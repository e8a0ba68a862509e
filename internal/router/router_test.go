package router_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/config"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/mocks"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/router"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

func TestRoutesRegistered(t *testing.T) {
	e := echo.New()
	router.SetupGreetingRoutes(e, handlers.NewGreetingHandler(new(mocks.MockVisitGenerator), service.NewCalculatorService()))
	router.SetupCalculatorRoutes(e, handlers.NewCalculatorHandler(service.NewCalculatorService()))
	router.SetupSentenceRoutes(e, handlers.NewSentenceHandler(new(mocks.MockSentenceGenerator)))
	router.SetupAdminRoutes(e, handlers.NewAdminHandler(new(mocks.MockAdminGenerator), new(mocks.MockLedgerGenerator)), config.AdminConfig{Password: "pw", JWTSecret: "secret"})

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		http.MethodGet + " /",
		http.MethodGet + " /hithere",
		http.MethodGet + " /bye",
		http.MethodPost + " /add_two_nums",
		http.MethodGet + " /visit",
		http.MethodPost + " /add",
		http.MethodPost + " /subtract",
		http.MethodPost + " /multiply",
		http.MethodPost + " /divide",
		http.MethodPost + " /calculate/:operation",
		http.MethodPost + " /register",
		http.MethodPost + " /store",
		http.MethodPost + " /retrieve",
		http.MethodPost + " /get",
		http.MethodPost + " /balance",
		http.MethodPost + " /admin/token",
		http.MethodPost + " /admin/refill",
	}
	for _, route := range want {
		assert.True(t, registered[route], "route %s not registered", route)
	}
}

func TestAdminRoutesDisabledWithoutPassword(t *testing.T) {
	e := echo.New()
	router.SetupAdminRoutes(e, handlers.NewAdminHandler(new(mocks.MockAdminGenerator), new(mocks.MockLedgerGenerator)), config.AdminConfig{JWTSecret: "secret"})

	for _, r := range e.Routes() {
		assert.NotContains(t, r.Path, "/admin", "route %s %s registered", r.Method, r.Path)
	}
}
