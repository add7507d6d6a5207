package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shoppinglist/infras/otel"
	"shoppinglist/infras/postgres"
	"shoppinglist/internal/domains/shoppinglist/model/dto"
	"shoppinglist/internal/domains/shoppinglist/repository"
	"shoppinglist/shared/constant"
	"shoppinglist/shared/failure"

	"github.com/rs/zerolog/log"
)

const msgItemNotFound = "shopping list item not found"

type ShoppingList interface {
	Create(ctx context.Context, req dto.CreateItemRequest) (dto.ItemResponse, error)
	GetAll(ctx context.Context) ([]dto.ItemResponse, error)
	Get(ctx context.Context, id int64) (dto.ItemResponse, error)
	Update(ctx context.Context, req dto.UpdateItemRequest, id int64) (dto.ItemResponse, error)
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo repository.ShoppingList
	db   *postgres.Connection
	otel otel.Otel
}

func New(repo repository.ShoppingList, db *postgres.Connection, otel otel.Otel) ShoppingList {
	return &serviceImpl{
		repo: repo,
		db:   db,
		otel: otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateItemRequest) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.Insert(ctx, s.db.Write, req.ToModel())
	if err != nil {
		log.Error().Err(err).Msg("failed to create shopping list item")

		return res, fmt.Errorf("failed to create shopping list item: %w", err)
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	items, err := s.repo.GetAll(ctx, s.db.Read)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shopping list items")

		return []dto.ItemResponse{}, fmt.Errorf("failed to get shopping list items: %w", err)
	}

	return dto.FromModels(items), nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	item, err := s.repo.GetByID(ctx, s.db.Read, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get shopping list item")

		return res, fmt.Errorf("failed to get shopping list item: %w", err)
	}

	if !item.Found() {
		return res, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

// Update reads the row back from the write handle so a lagging replica never serves the old values.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateItemRequest, id int64) (res dto.ItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.EmptyUpdate
	}

	affected, err := s.repo.Update(ctx, s.db.Write, id, req.ToPatch())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update shopping list item")

		return res, fmt.Errorf("failed to update shopping list item: %w", err)
	}

	if affected == 0 {
		return res, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	item, err := s.repo.GetByID(ctx, s.db.Write, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get updated shopping list item")

		return res, fmt.Errorf("failed to get updated shopping list item: %w", err)
	}

	if !item.Found() {
		return res, failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	res.FromModel(item)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	affected, err := s.repo.Delete(ctx, s.db.Write, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to delete shopping list item")

		return fmt.Errorf("failed to delete shopping list item: %w", err)
	}

	if affected == 0 {
		return failure.NotFound(msgItemNotFound) // nolint:wrapcheck
	}

	log.Info().Int64("id", id).Msg("shopping list item deleted")

	return nil
}
