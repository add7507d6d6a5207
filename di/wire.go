//go:build wireinject
// +build wireinject

package di

import (
	"shoppinglist/config"
	"shoppinglist/infras/otel"
	shoppingListHandler "shoppinglist/internal/handlers/shoppinglist"
	"shoppinglist/transport/http"
	"shoppinglist/transport/http/middleware"
	"shoppinglist/transport/http/router"

	shoppingListRepository "shoppinglist/internal/domains/shoppinglist/repository"
	shoppingListService "shoppinglist/internal/domains/shoppinglist/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	provideConnection,
	otel.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var shoppingListDomain = wire.NewSet(
	shoppingListRepository.New,
	shoppingListService.New,
)

var domains = wire.NewSet(
	shoppingListDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	shoppingListHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil, nil
}
