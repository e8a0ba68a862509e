package handlers

import (
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

// AdminHandler serves operator endpoints. Refill sits behind the JWT middleware.
type AdminHandler struct {
	AdminService  service.AdminGenerator
	LedgerService service.LedgerGenerator
}

func NewAdminHandler(adminService service.AdminGenerator, ledgerService service.LedgerGenerator) *AdminHandler {
	return &AdminHandler{
		AdminService:  adminService,
		LedgerService: ledgerService,
	}
}

// IssueToken exchanges the admin password for a bearer token
func (h *AdminHandler) IssueToken(c echo.Context) error {
	req := new(models.AdminTokenRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	resp, err := h.AdminService.IssueToken(c.Request().Context(), *req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, resp)
	case errors.Is(err, service.ErrAdminDisabled):
		return echo.NewHTTPError(http.StatusNotFound, "Admin access is disabled")
	case errors.Is(err, service.ErrWrongCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid admin password")
	}
	log.Error().Err(err).Msg("Failed to issue admin token")
	return echo.NewHTTPError(http.StatusInternalServerError, "Failed to issue token")
}

// Refill adds credits to a user's balance
func (h *AdminHandler) Refill(c echo.Context) error {
	subject, err := getSubjectFromContext(c)
	if err != nil {
		return err
	}
	if subject != service.AdminSubject {
		log.Warn().Str("subject", subject).Msg("Refill attempted with a non-admin token")
		return echo.NewHTTPError(http.StatusForbidden, "Admin token required")
	}

	req := new(models.RefillRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	balance, err := h.LedgerService.Refill(c.Request().Context(), req.Username, req.Amount)
	switch {
	case err == nil:
		log.Info().Str("username", req.Username).Int64("amount", req.Amount).Msg("Credits refilled")
		return c.JSON(http.StatusOK, models.RefillResponse{Status: models.StatusOK, Message: "Refilled successfully", Credits: balance})
	case errors.Is(err, repository.ErrUserNotFound):
		return c.JSON(http.StatusOK, models.StatusResponse{Status: models.StatusUnknownUser, Message: "Invalid username"})
	case errors.Is(err, service.ErrInvalidAmount), errors.Is(err, repository.ErrNegativeCredits):
		return c.JSON(http.StatusOK, models.StatusResponse{Status: models.StatusInvalidInput, Message: "Amount must be positive"})
	}
	log.Error().Err(err).Str("username", req.Username).Msg("Failed to refill credits")
	return echo.NewHTTPError(http.StatusInternalServerError, "Failed to refill credits")
}

// getSubjectFromContext reads the subject of the token placed by the JWT middleware.
func getSubjectFromContext(c echo.Context) (string, error) {
	userContext := c.Get("user")
	if userContext == nil {
		log.Error().Msg("'user' not found in context. The JWT middleware is missing on this route.")
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	token, ok := userContext.(*jwt.Token)
	if !ok {
		log.Error().Interface("actualType", userContext).Msg("'user' in context is not of type *jwt.Token")
		return "", echo.NewHTTPError(http.StatusInternalServerError, "Internal server error: token context type mismatch")
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: subject missing")
	}
	return subject, nil
}
