package shared_test

import (
	"reflect"
	"shoppinglist/shared"
	"shoppinglist/shared/dto"
	"testing"
	"time"
)

func TestTransformFields(t *testing.T) {
	type TestStruct struct {
		ID         int    `db:"id"`
		Name       string `db:"name"`
		EmptyField string `db:"empty_field"`
		NoDBTag    string
		IgnoredTag string `db:"-"`
	}

	tests := []struct {
		name     string
		data     any
		expected map[string]any
	}{
		{
			name: "struct with populated fields",
			data: TestStruct{
				ID:         1,
				Name:       "banana",
				NoDBTag:    "ignored",
				IgnoredTag: "ignored",
			},
			expected: map[string]any{
				"id":   1,
				"name": "banana",
			},
		},
		{
			name:     "struct with all zero values",
			data:     TestStruct{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTransformFieldsWithPointers(t *testing.T) {
	type TestStructWithPointers struct {
		Name      *string    `db:"name"`
		Checked   *bool      `db:"checked"`
		DateAdded *time.Time `db:"date_added"`
		Category  *string    `db:"category"`
	}

	name := "Bologna"
	checked := false
	added := time.Date(2029, 1, 22, 16, 28, 32, 615000000, time.UTC)

	result := shared.TransformFields(TestStructWithPointers{
		Name:      &name,
		Checked:   &checked,
		DateAdded: &added,
	})

	expected := map[string]any{
		"name":       "Bologna",
		"checked":    false,
		"date_added": added,
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %v, got %v", expected, result)
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(int64(3), "id", "shopping_list")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    int64(3),
				Operator: dto.FilterOperatorEq,
				Table:    "shopping_list",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	where, args := result.GetWhereClause()
	if where != "(shopping_list.id = :id)" {
		t.Errorf("unexpected where clause %q", where)
	}

	if args["id"] != int64(3) {
		t.Errorf("expected id arg to be 3, got %v", args["id"])
	}
}
