package mocks

import (
	"time"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/config"
	"golang.org/x/crypto/bcrypt"
)

func CreateTestConfig() *config.Config {
	return &config.Config{
		Port:        "0",
		AppEnv:      "test",
		LogLevel:    "debug",
		StoreDriver: config.StoreMemory,
		Credits: config.CreditsConfig{
			Initial:      6,
			StoreCost:    1,
			RetrieveCost: 1,
		},
		BcryptCost: bcrypt.MinCost,
		Admin: config.AdminConfig{
			Password:    "test-admin-password",
			JWTSecret:   "test-jwt-secret",
			TokenExpiry: 15 * time.Minute,
		},
	}
}
