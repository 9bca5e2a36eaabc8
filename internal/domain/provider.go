package domain

import (
	"github.com/google/wire"
	"github.com/rs/zerolog"

	"peerweb/trader-api/internal/config"
	"peerweb/trader-api/internal/domain/assistant"
	"peerweb/trader-api/internal/domain/inventory"
	"peerweb/trader-api/internal/domain/trader"
)

// ServiceProvider provides all domain services
var ServiceProvider = wire.NewSet(
	// Inventory domain
	inventory.NewService,
	wire.Bind(new(assistant.InventoryReader), new(*inventory.Service)),

	// Trader domain
	trader.NewService,

	// Assistant domain
	ProvideAssistantConfig,
	ProvideContextAssembler,
	ProvideToolRegistry,
	assistant.NewService,
)

func ProvideAssistantConfig(cfg *config.Config) assistant.Config {
	return assistant.Config{
		DefaultAssistantName: cfg.AssistantDefaultName,
		MaxToolRounds:        cfg.AssistantMaxToolRounds,
	}
}

func ProvideContextAssembler(repo assistant.TurnRepository, cfg *config.Config, log zerolog.Logger) *assistant.ContextAssembler {
	return assistant.NewContextAssembler(repo, cfg.AssistantHistoryWindow, log)
}

func ProvideToolRegistry(inv assistant.InventoryReader) *assistant.Registry {
	return assistant.NewRegistry(
		assistant.NewListInventoryItemsTool(inv),
		assistant.NewGetItemDetailsTool(inv),
	)
}
