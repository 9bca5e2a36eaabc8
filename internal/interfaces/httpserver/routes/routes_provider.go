package routes

import (
	v1 "peerweb/trader-api/internal/interfaces/httpserver/routes/v1"
	"peerweb/trader-api/internal/interfaces/httpserver/routes/v1/assistant"
	"peerweb/trader-api/internal/interfaces/httpserver/routes/v1/inventory"
	"peerweb/trader-api/internal/interfaces/httpserver/routes/v1/trader"

	"github.com/google/wire"
)

var RouteProvider = wire.NewSet(
	v1.NewV1Route,
	assistant.NewAssistantRoute,
	inventory.NewInventoryRoute,
	trader.NewTraderRoute,
)
