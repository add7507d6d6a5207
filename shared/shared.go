package shared

import (
	"reflect"
	"shoppinglist/shared/dto"
)

// TransformFields converts the set fields of a struct into a column/value map keyed by `db` tag.
// Nil pointers and zero values are skipped; pointers are dereferenced, so a pointer to a zero
// value (false, "") is kept.
func TransformFields(data any) map[string]any {
	val := reflect.ValueOf(data)
	typ := val.Type()

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		if field.Kind() == reflect.Pointer {
			field = field.Elem()
		}

		updatedFields[fieldName] = field.Interface()
	}

	return updatedFields
}

func FilterByID[ID any](id ID, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
