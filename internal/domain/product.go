package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int             `json:"productId"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  int             `json:"categoryId"`
	Description string          `json:"description"`
	SubCategory string          `json:"subCategory"`
	Stock       int             `json:"stock"`
	IsFeatured  bool            `json:"isFeatured"`
	ImageURL    string          `json:"imageUrl"`
}

// ProductFilter narrows a product search. Nil or empty fields are ignored.
type ProductFilter struct {
	CategoryID  *int
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	SubCategory string
}

type ProductRepository interface {
	Search(ctx context.Context, filter ProductFilter) ([]Product, error)
	ListByCategoryID(ctx context.Context, categoryID int) ([]Product, error)
	GetByID(ctx context.Context, id int) (*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
	Update(ctx context.Context, id int, product *Product) error
	Delete(ctx context.Context, id int) error
}
