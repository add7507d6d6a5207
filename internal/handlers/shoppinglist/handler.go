package shoppinglist

import (
	"net/http"
	"shoppinglist/infras/otel"
	"shoppinglist/internal/domains/shoppinglist/model/dto"
	"shoppinglist/internal/domains/shoppinglist/service"
	"shoppinglist/shared/constant"
	"shoppinglist/shared/failure"
	"shoppinglist/shared/validator"
	"shoppinglist/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ShoppingList
	otel    otel.Otel
}

func New(service service.ShoppingList, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shopping-list", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateItem)
		routerGroup.Get("/", handler.GetItems)
		routerGroup.Get("/{id}", handler.GetItemByID)
		routerGroup.Patch("/{id}", handler.UpdateItem)
		routerGroup.Delete("/{id}", handler.DeleteItem)
	})
}

// CreateItem adds an item to the shopping list.
// @Summary Add a shopping list item
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param request body dto.CreateItemRequest true "Create Item Request"
// @Success 201 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-list [post]
func (handler *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateItem")
	defer scope.End()

	req := dto.CreateItemRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create shopping list item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping list item created successfully")

	response.WithJSON(w, http.StatusCreated, item)
}

// GetItems returns the whole shopping list ordered by id.
// @Summary Get all shopping list items
// @Tags ShoppingList
// @Produce json
// @Success 200 {array} dto.ItemResponse
// @Failure 500 {object} response.Error
// @Router /v1/shopping-list [get]
func (handler *Handler) GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItems")
	defer scope.End()

	items, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shopping list items")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping list items retrieved successfully")

	response.WithJSON(w, http.StatusOK, items)
}

// GetItemByID returns one shopping list item.
// @Summary Get a shopping list item by ID
// @Tags ShoppingList
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-list/{id} [get]
func (handler *Handler) GetItemByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetItemByID")
	defer scope.End()

	id, err := itemID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	item, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get shopping list item by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping list item retrieved successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateItem changes the supplied fields of an item and returns the stored result.
// @Summary Update a shopping list item by ID
// @Tags ShoppingList
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body dto.UpdateItemRequest true "Update Item Request"
// @Success 200 {object} dto.ItemResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-list/{id} [patch]
func (handler *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateItem")
	defer scope.End()

	id, err := itemID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.UpdateItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update shopping list item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping list item updated successfully")

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item from the shopping list.
// @Summary Delete a shopping list item by ID
// @Tags ShoppingList
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-list/{id} [delete]
func (handler *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteItem")
	defer scope.End()

	id, err := itemID(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete shopping list item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping list item deleted successfully")

	response.WithMessage(w, http.StatusOK, "Shopping list item deleted successfully")
}

func itemID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, constant.RequestParamID), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.InvalidIDParam
	}

	return id, nil
}
