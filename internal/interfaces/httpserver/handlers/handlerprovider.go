package handlers

import (
	"github.com/google/wire"

	"peerweb/trader-api/internal/interfaces/httpserver/handlers/assistanthandler"
	"peerweb/trader-api/internal/interfaces/httpserver/handlers/inventoryhandler"
	"peerweb/trader-api/internal/interfaces/httpserver/handlers/traderhandler"
)

var HandlerProvider = wire.NewSet(
	assistanthandler.NewAssistantHandler,
	inventoryhandler.NewInventoryHandler,
	traderhandler.NewTraderHandler,
)
