package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"shoppinglist/infras/otel/mocks"
	"shoppinglist/infras/postgres"
	repoMocks "shoppinglist/internal/domains/shoppinglist/mocks"
	"shoppinglist/internal/domains/shoppinglist/model"
	"shoppinglist/internal/domains/shoppinglist/model/dto"
	"shoppinglist/internal/domains/shoppinglist/service"
	"shoppinglist/shared/failure"
)

var errDatabase = errors.New("database error")

// distinct driver names keep the two handles apart under gomock's deep equality
func testConnection() *postgres.Connection {
	return &postgres.Connection{
		Read:  sqlx.NewDb(nil, "postgres-read"),
		Write: sqlx.NewDb(nil, "postgres-write"),
	}
}

func chicken() model.Item {
	return model.Item{
		ID: 3,
		ItemFields: model.ItemFields{
			Name:      "chicken",
			Price:     "7.00",
			DateAdded: time.Date(1979, 10, 24, 16, 28, 32, 615000000, time.UTC),
			Checked:   true,
			Category:  "Main",
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestShoppingListService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repoMocks.NewMockShoppingList(ctrl)
	conn := testConnection()
	svc := service.New(mockRepo, conn, mocks.NewOtel())

	item := chicken()
	req := dto.CreateItemRequest{
		Name:      item.Name,
		Price:     "7",
		DateAdded: ptr(item.DateAdded),
		Checked:   item.Checked,
		Category:  item.Category,
	}

	tests := []struct {
		name      string
		setupMock func()
		want      dto.ItemResponse
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), conn.Write, item.ItemFields).
					Return(item, nil)
			},
			want: dto.ItemResponse{
				ID:        3,
				Name:      "chicken",
				Price:     "7.00",
				DateAdded: "1979-10-24T16:28:32.615Z",
				Checked:   true,
				Category:  "Main",
			},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), conn.Write, gomock.Any()).
					Return(model.Item{}, errDatabase)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.ErrorIs(t, err, errDatabase)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, res)
		})
	}
}

func TestShoppingListService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repoMocks.NewMockShoppingList(ctrl)
	conn := testConnection()
	svc := service.New(mockRepo, conn, mocks.NewOtel())

	t.Run("maps every row", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), conn.Read).
			Return([]model.Item{{ID: 1}, chicken()}, nil)

		res, err := svc.GetAll(context.Background())

		require.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, int64(3), res[1].ID)
		assert.Equal(t, "chicken", res[1].Name)
	})

	t.Run("empty table", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), conn.Read).
			Return([]model.Item{}, nil)

		res, err := svc.GetAll(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), conn.Read).
			Return(nil, errDatabase)

		res, err := svc.GetAll(context.Background())

		assert.ErrorIs(t, err, errDatabase)
		assert.NotNil(t, res)
	})
}

func TestShoppingListService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repoMocks.NewMockShoppingList(ctrl)
	conn := testConnection()
	svc := service.New(mockRepo, conn, mocks.NewOtel())

	tests := []struct {
		name      string
		id        int64
		setupMock func()
		wantCode  int
	}{
		{
			name: "found",
			id:   3,
			setupMock: func() {
				mockRepo.EXPECT().GetByID(gomock.Any(), conn.Read, int64(3)).Return(chicken(), nil)
			},
		},
		{
			name: "not found",
			id:   404,
			setupMock: func() {
				mockRepo.EXPECT().GetByID(gomock.Any(), conn.Read, int64(404)).Return(model.Item{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   3,
			setupMock: func() {
				mockRepo.EXPECT().GetByID(gomock.Any(), conn.Read, int64(3)).Return(model.Item{}, errDatabase)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}

func TestShoppingListService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repoMocks.NewMockShoppingList(ctrl)
	conn := testConnection()
	otl := mocks.NewOtel()
	svc := service.New(mockRepo, conn, otl)

	req := dto.UpdateItemRequest{
		Name:     ptr("Bologna"),
		Price:    ptr("100"),
		Checked:  ptr(false),
		Category: ptr("Lunch"),
	}

	updated := req.ToPatch().Apply(chicken())

	tests := []struct {
		name      string
		req       dto.UpdateItemRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful update",
			req:  req,
			setupMock: func() {
				gomock.InOrder(
					mockRepo.EXPECT().
						Update(gomock.Any(), conn.Write, int64(3), model.ItemPatch{
							Name:     ptr("Bologna"),
							Price:    ptr("100.00"),
							Checked:  ptr(false),
							Category: ptr("Lunch"),
						}).
						Return(int64(1), nil),
					mockRepo.EXPECT().
						GetByID(gomock.Any(), conn.Write, int64(3)).
						Return(updated, nil),
				)
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateItemRequest{},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "not found",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), conn.Write, int64(3), gomock.Any()).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "update error",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), conn.Write, int64(3), gomock.Any()).Return(int64(0), errDatabase)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "read back error",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), conn.Write, int64(3), gomock.Any()).Return(int64(1), nil)
				mockRepo.EXPECT().GetByID(gomock.Any(), conn.Write, int64(3)).Return(model.Item{}, errDatabase)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "deleted between update and read back",
			req:  req,
			setupMock: func() {
				mockRepo.EXPECT().Update(gomock.Any(), conn.Write, int64(3), gomock.Any()).Return(int64(1), nil)
				mockRepo.EXPECT().GetByID(gomock.Any(), conn.Write, int64(3)).Return(model.Item{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Update(context.Background(), tt.req, 3)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, dto.ItemResponse{
				ID:        3,
				Name:      "Bologna",
				Price:     "100.00",
				DateAdded: "1979-10-24T16:28:32.615Z",
				Checked:   false,
				Category:  "Lunch",
			}, res)
		})
	}

	assert.NotEmpty(t, otl.Errors(), "failures are recorded on the span")
}

func TestShoppingListService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repoMocks.NewMockShoppingList(ctrl)
	conn := testConnection()
	svc := service.New(mockRepo, conn, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().Delete(gomock.Any(), conn.Write, int64(3)).Return(int64(1), nil)
			},
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().Delete(gomock.Any(), conn.Write, int64(3)).Return(int64(0), nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().Delete(gomock.Any(), conn.Write, int64(3)).Return(int64(0), errDatabase)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), 3)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
