package service

import (
	"context"
	"crypto/subtle"

	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
)

var _ AdminGenerator = (*AdminService)(nil)

// AdminSubject is the JWT subject carried by operator tokens.
const AdminSubject = "admin"

type AdminService struct {
	password string
	tokenSvc TokenGenerator
}

func NewAdminService(password string, tokenSvc TokenGenerator) *AdminService {
	return &AdminService{password: password, tokenSvc: tokenSvc}
}

// IssueToken exchanges the admin password for a signed token.
func (s *AdminService) IssueToken(ctx context.Context, req models.AdminTokenRequest) (*models.AdminTokenResponse, error) {
	if s.password == "" {
		return nil, ErrAdminDisabled
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.password)) != 1 {
		log.Warn().Msg("Rejected admin token request with wrong password")
		return nil, ErrWrongCredentials
	}

	token, expiresAt, err := s.tokenSvc.GenerateToken(AdminSubject)
	if err != nil {
		return nil, err
	}
	return &models.AdminTokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}
