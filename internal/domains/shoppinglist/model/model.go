package model

import "time"

const (
	TableName  = "shopping_list"
	EntityName = "shopping_list"

	FieldID        = "id"
	FieldName      = "name"
	FieldPrice     = "price"
	FieldDateAdded = "date_added"
	FieldChecked   = "checked"
	FieldCategory  = "category"
)

// ItemFields is the writable part of a row. Every field is written on insert.
// Price is fixed-point text ("2.50") so it never passes through a float.
type ItemFields struct {
	Name      string    `db:"name"`
	Price     string    `db:"price"`
	DateAdded time.Time `db:"date_added"`
	Checked   bool      `db:"checked"`
	Category  string    `db:"category"`
}

// Item is one row of shopping_list. ID is assigned by the database on insert; an Item with
// ID 0 means "no such row".
type Item struct {
	ID int64 `db:"id"`
	ItemFields
}

// Found reports whether the item came from an existing row.
func (i Item) Found() bool {
	return i.ID != 0
}

// ItemPatch is a partial update: only non-nil fields are written.
type ItemPatch struct {
	Name      *string    `db:"name"`
	Price     *string    `db:"price"`
	DateAdded *time.Time `db:"date_added"`
	Checked   *bool      `db:"checked"`
	Category  *string    `db:"category"`
}

// IsEmpty reports whether the patch sets nothing.
func (p ItemPatch) IsEmpty() bool {
	return p == ItemPatch{}
}

// Apply returns item with the patch applied. ID is never touched.
func (p ItemPatch) Apply(item Item) Item {
	if p.Name != nil {
		item.Name = *p.Name
	}

	if p.Price != nil {
		item.Price = *p.Price
	}

	if p.DateAdded != nil {
		item.DateAdded = *p.DateAdded
	}

	if p.Checked != nil {
		item.Checked = *p.Checked
	}

	if p.Category != nil {
		item.Category = *p.Category
	}

	return item
}
