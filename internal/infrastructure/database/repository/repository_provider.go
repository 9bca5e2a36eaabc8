package repository

import (
	"peerweb/trader-api/internal/infrastructure/database/repository/chatrepo"
	"peerweb/trader-api/internal/infrastructure/database/repository/inventoryrepo"
	"peerweb/trader-api/internal/infrastructure/database/repository/traderrepo"

	"github.com/google/wire"
)

var RepositoryProvider = wire.NewSet(
	chatrepo.NewTurnGormRepository,
	inventoryrepo.NewItemGormRepository,
	traderrepo.NewTraderGormRepository,
)
