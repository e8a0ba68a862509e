package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

const (
	msgRegistered          = "You successfully signed up for the API"
	msgSentenceSaved       = "Sentence saved successfully"
	msgMissingCredentials  = "Username and password are required"
	msgUsernameTaken       = "Username is already taken"
	msgWrongCredentials    = "Invalid username or password"
	msgInsufficientCredits = "Not enough credits"
)

// SentenceHandler serves the paid sentence store. Business failures are
// reported in the body's status field with a 200 transport status.
type SentenceHandler struct {
	SentenceService service.SentenceGenerator
}

// NewSentenceHandler creates a new SentenceHandler
func NewSentenceHandler(sentenceService service.SentenceGenerator) *SentenceHandler {
	return &SentenceHandler{SentenceService: sentenceService}
}

// Register creates an account
func (h *SentenceHandler) Register(c echo.Context) error {
	req := new(models.RegisterRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	err := h.SentenceService.Register(c.Request().Context(), *req)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, models.StatusResponse{Status: models.StatusOK, Message: msgRegistered})
	case errors.Is(err, service.ErrMissingField):
		return c.JSON(http.StatusOK, models.StatusResponse{Status: models.StatusInvalidInput, Message: msgMissingCredentials})
	case errors.Is(err, repository.ErrUserExists):
		return c.JSON(http.StatusOK, models.StatusResponse{Status: models.StatusUserExists, Message: msgUsernameTaken})
	}
	log.Error().Err(err).Str("username", req.Username).Msg("Registration failed")
	return echo.NewHTTPError(http.StatusInternalServerError, "Registration failed")
}

// Store saves the caller's sentence for one credit
func (h *SentenceHandler) Store(c echo.Context) error {
	req := new(models.StoreRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	balance, err := h.SentenceService.Store(c.Request().Context(), *req)
	if err != nil {
		if resp, ok := paidCallFailure(err); ok {
			return c.JSON(http.StatusOK, resp)
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to store sentence")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to store sentence")
	}

	return c.JSON(http.StatusOK, models.StoreResponse{Status: models.StatusOK, Message: msgSentenceSaved, Credits: balance})
}

// Retrieve returns the caller's sentence for one credit
func (h *SentenceHandler) Retrieve(c echo.Context) error {
	req := new(models.CredentialsRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	sentence, balance, err := h.SentenceService.Retrieve(c.Request().Context(), *req)
	if err != nil {
		if resp, ok := paidCallFailure(err); ok {
			return c.JSON(http.StatusOK, resp)
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to retrieve sentence")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve sentence")
	}

	return c.JSON(http.StatusOK, models.RetrieveResponse{Status: models.StatusOK, Sentence: sentence, Credits: balance})
}

// CheckBalance returns the caller's credits without charging
func (h *SentenceHandler) CheckBalance(c echo.Context) error {
	req := new(models.CredentialsRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	balance, err := h.SentenceService.CheckBalance(c.Request().Context(), *req)
	if err != nil {
		if resp, ok := paidCallFailure(err); ok {
			return c.JSON(http.StatusOK, resp)
		}
		log.Error().Err(err).Str("username", req.Username).Msg("Failed to check balance")
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to check balance")
	}

	return c.JSON(http.StatusOK, models.BalanceResponse{Status: models.StatusOK, Credits: balance})
}

// paidCallFailure maps expected service errors to a body status.
// A user vanishing between the password check and the charge reads as bad credentials.
func paidCallFailure(err error) (models.StatusResponse, bool) {
	switch {
	case errors.Is(err, service.ErrWrongCredentials), errors.Is(err, repository.ErrUserNotFound):
		return models.StatusResponse{Status: models.StatusWrongCredentials, Message: msgWrongCredentials}, true
	case errors.Is(err, repository.ErrInsufficientCredits):
		return models.StatusResponse{Status: models.StatusInsufficientCredits, Message: msgInsufficientCredits}, true
	}
	return models.StatusResponse{}, false
}
