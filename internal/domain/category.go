package domain

import "context"

type Category struct {
	ID          int    `json:"categoryId"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CategoryRepository returns (nil, nil) from GetCategoryByID when no row
// matches. Update and Delete treat a missing row as a logged no-op.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]Category, error)
	GetCategoryByID(ctx context.Context, id int) (*Category, error)
	CreateCategory(ctx context.Context, category *Category) (*Category, error)
	UpdateCategory(ctx context.Context, id int, category *Category) error
	DeleteCategory(ctx context.Context, id int) error
}
