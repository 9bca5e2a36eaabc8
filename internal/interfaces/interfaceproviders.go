package interfaces

import (
	"peerweb/trader-api/internal/interfaces/httpserver"

	"github.com/google/wire"
)

var InterfacesProvider = wire.NewSet(
	httpserver.NewHttpServer,
)
