package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/config"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/handlers"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/logger"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository/memory"
	redis_repo "github.com/SimpnicServerTeam/scs-sentence-server/internal/repository/redis"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository/sqldb"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/router"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/server"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/service"
)

type stores struct {
	users  repository.UserRepository
	visits repository.VisitRepository
	close  func() error
}

// openStores builds the repositories for the configured driver.
func openStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		return &stores{
			users:  memory.NewMemoryUserRepository(),
			visits: memory.NewMemoryVisitRepository(),
			close:  func() error { return nil },
		}, nil
	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisSettings.Address,
			Password: cfg.RedisSettings.Password,
			DB:       cfg.RedisSettings.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisSettings.Address, err)
		}
		return &stores{
			users:  redis_repo.NewRedisUserRepository(client),
			visits: redis_repo.NewRedisVisitRepository(client),
			close:  client.Close,
		}, nil
	case config.StoreSQLite, config.StorePostgres:
		db, err := sqldb.Open(ctx, cfg.StoreDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		return &stores{
			users:  sqldb.NewSQLUserRepository(db, cfg.StoreDriver),
			visits: sqldb.NewSQLVisitRepository(db, cfg.StoreDriver),
			close:  db.Close,
		}, nil
	}
	return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
}

// buildApp wires services and handlers over the opened stores.
func buildApp(cfg *config.Config, st *stores) *echo.Echo {
	passwordService := service.NewPasswordService(st.users, cfg.BcryptCost)
	ledgerService := service.NewLedgerService(st.users)
	sentenceService := service.NewSentenceService(st.users, passwordService, ledgerService, cfg.Credits)
	tokenService := service.NewTokenService(cfg.Admin.JWTSecret, cfg.Admin.TokenExpiry)
	adminService := service.NewAdminService(cfg.Admin.Password, tokenService)

	app := server.New()
	router.SetupGreetingRoutes(app, handlers.NewGreetingHandler(service.NewVisitService(st.visits), service.NewCalculatorService()))
	router.SetupCalculatorRoutes(app, handlers.NewCalculatorHandler(service.NewCalculatorService()))
	router.SetupSentenceRoutes(app, handlers.NewSentenceHandler(sentenceService))
	router.SetupAdminRoutes(app, handlers.NewAdminHandler(adminService, ledgerService), cfg.Admin)

	return app
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Init(cfg.LogLevel, cfg.AppEnv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StoreDriver).Msg("Failed to open store")
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Error().Err(err).Msg("Failed to close store")
		}
	}()
	log.Info().Str("driver", cfg.StoreDriver).Msg("Store ready")

	app := buildApp(cfg, st)

	if err := server.Run(ctx, app, ":"+cfg.Port, cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("Server stopped gracefully")
}
