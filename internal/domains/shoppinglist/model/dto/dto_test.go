package dto_test

import (
	"shoppinglist/internal/domains/shoppinglist/model"
	"shoppinglist/internal/domains/shoppinglist/model/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateItemRequest_ToModel(t *testing.T) {
	dateAdded := time.Date(2029, 1, 22, 16, 28, 32, 615000000, time.UTC)

	t.Run("keeps every field", func(t *testing.T) {
		req := dto.CreateItemRequest{
			Name:      "banana",
			Price:     "2.5",
			DateAdded: &dateAdded,
			Checked:   true,
			Category:  "Snack",
		}

		assert.Equal(t, model.ItemFields{
			Name:      "banana",
			Price:     "2.50",
			DateAdded: dateAdded,
			Checked:   true,
			Category:  "Snack",
		}, req.ToModel())
	})

	t.Run("date added defaults to now", func(t *testing.T) {
		req := dto.CreateItemRequest{Name: "cereal", Price: "4", Category: "Breakfast"}

		before := time.Now()
		fields := req.ToModel()

		assert.False(t, fields.DateAdded.Before(before.Add(-time.Second)))
		assert.False(t, fields.DateAdded.After(time.Now()))
	})
}

func TestUpdateItemRequest(t *testing.T) {
	price := "100"
	checked := false

	req := dto.UpdateItemRequest{Price: &price, Checked: &checked}

	assert.False(t, req.IsEmpty())
	assert.True(t, (&dto.UpdateItemRequest{}).IsEmpty())

	patch := req.ToPatch()

	assert.Nil(t, patch.Name)
	assert.Nil(t, patch.Category)
	assert.Nil(t, patch.DateAdded)
	assert.Equal(t, "100.00", *patch.Price)
	assert.False(t, *patch.Checked)
	assert.Equal(t, "100", price, "request value is not modified")
}

func TestItemResponse_FromModel(t *testing.T) {
	item := model.Item{
		ID: 3,
		ItemFields: model.ItemFields{
			Name:      "chicken",
			Price:     "7.00",
			DateAdded: time.Date(1979, 10, 24, 16, 28, 32, 615000000, time.UTC),
			Checked:   true,
			Category:  "Main",
		},
	}

	var res dto.ItemResponse
	res.FromModel(item)

	assert.Equal(t, dto.ItemResponse{
		ID:        3,
		Name:      "chicken",
		Price:     "7.00",
		DateAdded: "1979-10-24T16:28:32.615Z",
		Checked:   true,
		Category:  "Main",
	}, res)
}

func TestFromModels(t *testing.T) {
	assert.Equal(t, []dto.ItemResponse{}, dto.FromModels(nil))

	res := dto.FromModels([]model.Item{{ID: 1}, {ID: 2}})

	assert.Len(t, res, 2)
	assert.Equal(t, int64(2), res[1].ID)
}

func TestNormalizePrice(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "2.50", want: "2.50"},
		{in: "2.5", want: "2.50"},
		{in: "4", want: "4.00"},
		{in: "007.1", want: "7.10"},
		{in: "0.99", want: "0.99"},
		{in: ".5", want: "0.50"},
		{in: " 100.00 ", want: "100.00"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, dto.NormalizePrice(tt.in))
		})
	}
}
