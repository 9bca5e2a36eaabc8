//go:build wireinject

package main

import (
	"peerweb/trader-api/internal/domain"
	"peerweb/trader-api/internal/infrastructure"
	"peerweb/trader-api/internal/interfaces"
	"peerweb/trader-api/internal/interfaces/httpserver/handlers"
	"peerweb/trader-api/internal/interfaces/httpserver/routes"

	"github.com/google/wire"
)

func CreateApplication() (*Application, error) {
	wire.Build(
		domain.ServiceProvider,
		infrastructure.InfrastructureProvider,
		handlers.HandlerProvider,
		routes.RouteProvider,
		interfaces.InterfacesProvider,
		wire.Struct(new(Application), "*"),
	)
	return nil, nil
}

func CreateDataInitializer() (*DataInitializer, error) {
	wire.Build(
		infrastructure.InfrastructureProvider,
		wire.Struct(new(DataInitializer), "*"),
	)
	return nil, nil
}
