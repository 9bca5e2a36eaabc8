package infrastructure

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/domain/inventory"
	"peerweb/trader-api/internal/domain/trader"
	"peerweb/trader-api/internal/infrastructure/auth"
	"peerweb/trader-api/internal/infrastructure/crontab"
	"peerweb/trader-api/internal/infrastructure/database"
	"peerweb/trader-api/internal/infrastructure/database/repository"
	"peerweb/trader-api/internal/infrastructure/inference"
	"peerweb/trader-api/internal/infrastructure/logger"
)

// ProvideConfig loads and provides the application configuration
func ProvideConfig() (*config.Config, error) {
	return config.Load()
}

// ProvideTokenValidator provides a JWT validator
func ProvideTokenValidator(cfg *config.Config, log zerolog.Logger) (*auth.TokenValidator, error) {
	return auth.NewTokenValidator(context.Background(), cfg, log)
}

// ProvideDatabase provides a database connection
func ProvideDatabase(cfg *config.Config, log zerolog.Logger) (*gorm.DB, error) {
	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	// Run migrations if AUTO_MIGRATE is enabled
	if cfg.AutoMigrate {
		log.Info().Msg("Running database migrations...")
		if err := database.AutoMigrate(db); err != nil {
			log.Error().Err(err).Msg("Failed to run database migrations")
			return nil, err
		}
		log.Info().Msg("Database migrations completed successfully")
	}

	return db, nil
}

// Infrastructure holds all infrastructure dependencies
type Infrastructure struct {
	DB             *gorm.DB
	TokenValidator *auth.TokenValidator
	Logger         zerolog.Logger
}

// NewInfrastructure creates a new infrastructure instance
func NewInfrastructure(
	db *gorm.DB,
	tokenValidator *auth.TokenValidator,
	logger zerolog.Logger,
) *Infrastructure {
	return &Infrastructure{
		DB:             db,
		TokenValidator: tokenValidator,
		Logger:         logger,
	}
}

// InfrastructureProvider provides all infrastructure dependencies
var InfrastructureProvider = wire.NewSet(
	// Config
	ProvideConfig,

	// Database
	ProvideDatabase,

	// Repositories
	repository.RepositoryProvider,

	// Model client
	inference.NewClient,
	wire.Bind(new(assistant.ModelClient), new(*inference.Client)),
	wire.Bind(new(inventory.Model), new(*inference.Client)),
	wire.Bind(new(trader.Model), new(*inference.Client)),

	// Logger
	logger.GetLogger,

	// Auth
	ProvideTokenValidator,

	// Crontab for the model health probe
	crontab.NewCrontab,

	// Infrastructure struct
	NewInfrastructure,
)
