package dto

import (
	"shoppinglist/internal/domains/shoppinglist/model"
	"shoppinglist/shared/constant"
	"shoppinglist/shared/timezone"
	"strings"
	"time"
)

const priceScale = 2

type CreateItemRequest struct {
	Name      string     `json:"name" validate:"required,max=255"`
	Price     string     `json:"price" validate:"required,price"`
	DateAdded *time.Time `json:"date_added"`
	Checked   bool       `json:"checked"`
	Category  string     `json:"category" validate:"required,max=255"`
}

// ToModel fills date_added with the current time when the client left it out.
func (c *CreateItemRequest) ToModel() model.ItemFields {
	dateAdded := timezone.Now()
	if c.DateAdded != nil {
		dateAdded = *c.DateAdded
	}

	return model.ItemFields{
		Name:      c.Name,
		Price:     NormalizePrice(c.Price),
		DateAdded: dateAdded,
		Checked:   c.Checked,
		Category:  c.Category,
	}
}

type UpdateItemRequest struct {
	Name      *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Price     *string    `json:"price" validate:"omitempty,price"`
	DateAdded *time.Time `json:"date_added"`
	Checked   *bool      `json:"checked"`
	Category  *string    `json:"category" validate:"omitempty,min=1,max=255"`
}

func (u *UpdateItemRequest) IsEmpty() bool {
	return *u == UpdateItemRequest{}
}

func (u *UpdateItemRequest) ToPatch() model.ItemPatch {
	patch := model.ItemPatch{
		Name:      u.Name,
		DateAdded: u.DateAdded,
		Checked:   u.Checked,
		Category:  u.Category,
	}

	if u.Price != nil {
		price := NormalizePrice(*u.Price)
		patch.Price = &price
	}

	return patch
}

type ItemResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	DateAdded string `json:"date_added"`
	Checked   bool   `json:"checked"`
	Category  string `json:"category"`
}

func (r *ItemResponse) FromModel(item model.Item) {
	r.ID = item.ID
	r.Name = item.Name
	r.Price = item.Price
	r.DateAdded = timezone.Format(item.DateAdded, constant.DateFormat)
	r.Checked = item.Checked
	r.Category = item.Category
}

func FromModels(items []model.Item) []ItemResponse {
	res := make([]ItemResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res
}

// NormalizePrice pads or trims a validated decimal to two fraction digits ("2.5" -> "2.50"),
// matching what a NUMERIC(12,2) column returns.
func NormalizePrice(price string) string {
	whole, fraction, _ := strings.Cut(strings.TrimSpace(price), ".")

	whole = strings.TrimLeft(whole, "0")
	if whole == "" {
		whole = "0"
	}

	if len(fraction) > priceScale {
		fraction = fraction[:priceScale]
	}

	return whole + "." + fraction + strings.Repeat("0", priceScale-len(fraction))
}
