package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"shoppinglist/infras/otel"
	"shoppinglist/internal/domains/shoppinglist/model"
	"shoppinglist/shared"
	"shoppinglist/shared/constant"
	gDto "shoppinglist/shared/dto"
	gRepo "shoppinglist/shared/repository"
)

// ShoppingList is the data-access contract for the shopping_list table. Every call takes the
// handle to run on and performs no validation of its own; store failures are returned wrapped.
type ShoppingList interface {
	GetAll(ctx context.Context, db gRepo.DB) ([]model.Item, error)
	GetByID(ctx context.Context, db gRepo.DB, id int64) (model.Item, error)
	Insert(ctx context.Context, db gRepo.DB, fields model.ItemFields) (model.Item, error)
	Update(ctx context.Context, db gRepo.DB, id int64, patch model.ItemPatch) (int64, error)
	Delete(ctx context.Context, db gRepo.DB, id int64) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Item]
	otel otel.Otel
}

func New(otel otel.Otel) ShoppingList {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Item](model.EntityName, model.TableName, model.FieldID, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) GetAll(ctx context.Context, db gRepo.DB) ([]model.Item, error) {
	params := gDto.QueryParams{
		SortBy:  constant.DefaultValueSortBy,
		SortDir: constant.DefaultValueSortDir,
	}

	return r.Repository.GetAll(ctx, db, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByID(ctx context.Context, db gRepo.DB, id int64) (model.Item, error) {
	return r.Get(ctx, db, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// Insert returns the row as persisted, read back by the id the database assigned.
func (r *repositoryImpl) Insert(ctx context.Context, db gRepo.DB, fields model.ItemFields) (model.Item, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".shopping_list.InsertItem")
	defer scope.End()

	id, err := r.Repository.Insert(ctx, db, model.Item{ItemFields: fields})
	if err != nil {
		return model.Item{}, err //nolint:wrapcheck
	}

	scope.SetAttribute("item.id", id)

	item, err := r.GetByID(ctx, db, id)
	if err != nil {
		return model.Item{}, err
	}

	if !item.Found() {
		err = fmt.Errorf("inserted item %d not readable on this handle", id)
		scope.TraceError(err)

		return model.Item{}, err
	}

	return item, nil
}

func (r *repositoryImpl) Update(ctx context.Context, db gRepo.DB, id int64, patch model.ItemPatch) (int64, error) {
	return r.Repository.Update(ctx, db, shared.TransformFields(patch), shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, db gRepo.DB, id int64) (int64, error) {
	return r.Repository.Delete(ctx, db, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}
