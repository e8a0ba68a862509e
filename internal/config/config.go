package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const defaultJWTSecret = "a_very_secret_key_change_me"

// Store drivers
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StoreSQLite   = "sqlite3"
	StorePostgres = "pgx"
)

type RedisSettings struct {
	Address  string
	Password string
	DB       int
}

// CreditsConfig prices the sentence service.
type CreditsConfig struct {
	// Balance granted at registration
	Initial      int64
	StoreCost    int64
	RetrieveCost int64
}

type AdminConfig struct {
	// Empty disables the admin endpoints
	Password    string
	JWTSecret   string
	TokenExpiry time.Duration
}

type Config struct {
	// Server port
	Port            string
	AppEnv          string
	LogLevel        string
	ShutdownTimeout time.Duration
	// One of memory, redis, sqlite3, pgx
	StoreDriver string
	// sqlite3: file path or ":memory:"; pgx: host=<host> port=<port> user=<user> dbname=<database> password=<pass> sslmode=<mode>
	DatabaseDSN   string
	RedisSettings RedisSettings
	Credits       CreditsConfig
	BcryptCost    int
	Admin         AdminConfig
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "5000")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 10)
	viper.SetDefault("STORE_DRIVER", StoreMemory)
	viper.SetDefault("REDIS_ADDRESS", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("INITIAL_CREDITS", 6)
	viper.SetDefault("STORE_COST", 1)
	viper.SetDefault("RETRIEVE_COST", 1)
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("ADMIN_TOKEN_EXPIRY_MINUTES", 60)
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_SSL_MODE", "disable")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()
	setDefaults()

	// Load configuration
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info().Msg("Config file not found, using defaults and environment variables")
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	storeDriver := viper.GetString("STORE_DRIVER")
	switch storeDriver {
	case StoreMemory, StoreRedis, StoreSQLite, StorePostgres:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", storeDriver)
	}

	// Database Configuration
	databaseDSN := viper.GetString("DATABASE_DSN")
	if databaseDSN == "" {
		switch storeDriver {
		case StoreSQLite:
			databaseDSN = "file:sentences.db?_fk=1"
		case StorePostgres:
			databaseDSN = fmt.Sprintf(
				"host=%s port=%d user=%s dbname=%s password=%s sslmode=%s",
				viper.GetString("DB_HOST"),
				viper.GetInt("DB_PORT"),
				viper.GetString("DB_USER"),
				viper.GetString("DB_NAME"),
				viper.GetString("DB_PASS"),
				viper.GetString("DB_SSL_MODE"),
			)
		}
	}

	credits := CreditsConfig{
		Initial:      viper.GetInt64("INITIAL_CREDITS"),
		StoreCost:    viper.GetInt64("STORE_COST"),
		RetrieveCost: viper.GetInt64("RETRIEVE_COST"),
	}
	if credits.Initial < 0 {
		return nil, fmt.Errorf("INITIAL_CREDITS cannot be negative: %d", credits.Initial)
	}
	// A zero cost would let an empty balance keep calling paid endpoints.
	if credits.StoreCost < 1 || credits.RetrieveCost < 1 {
		return nil, fmt.Errorf("STORE_COST and RETRIEVE_COST must be at least 1: %+v", credits)
	}

	bcryptCost := viper.GetInt("BCRYPT_COST")
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		log.Warn().Int("cost", bcryptCost).Msgf("Invalid bcrypt cost, defaulting to %d", bcrypt.DefaultCost)
		bcryptCost = bcrypt.DefaultCost
	}

	// JWT Secret
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	jwtSecret := viper.GetString("JWT_SECRET")
	if adminPassword == "" {
		log.Info().Msg("ADMIN_PASSWORD is empty, admin endpoints are disabled")
	} else if jwtSecret == "" || jwtSecret == defaultJWTSecret {
		return nil, fmt.Errorf("admin endpoints require JWT_SECRET to be set to a non-default value")
	}

	shutdownSeconds := viper.GetInt("SHUTDOWN_TIMEOUT_SECONDS")
	if shutdownSeconds <= 0 {
		shutdownSeconds = 10
	}
	expiryMinutes := viper.GetInt("ADMIN_TOKEN_EXPIRY_MINUTES")
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}

	return &Config{
		Port:            viper.GetString("APP_PORT"),
		AppEnv:          viper.GetString("APP_ENV"),
		LogLevel:        viper.GetString("LOG_LEVEL"),
		ShutdownTimeout: time.Duration(shutdownSeconds) * time.Second,
		StoreDriver:     storeDriver,
		DatabaseDSN:     databaseDSN,
		RedisSettings: RedisSettings{
			Address:  viper.GetString("REDIS_ADDRESS"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Credits:    credits,
		BcryptCost: bcryptCost,
		Admin: AdminConfig{
			Password:    adminPassword,
			JWTSecret:   jwtSecret,
			TokenExpiry: time.Duration(expiryMinutes) * time.Minute,
		},
	}, nil
}
