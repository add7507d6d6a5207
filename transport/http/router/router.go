package router

import (
	"shoppinglist/internal/handlers/shoppinglist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	ShoppingList shoppinglist.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.ShoppingList.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
