package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT category_id, name, description FROM categories ORDER BY category_id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.log.Errorf("Failed to list categories: %v", err)
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description); err != nil {
			r.log.Errorf("Failed to scan category row: %v", err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, category)
	}

	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories list iteration: %v", err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	r.log.Debugf("Retrieved %d categories", len(categories))
	return categories, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `SELECT category_id, name, description FROM categories WHERE category_id = $1`
	category := &domain.Category{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&category.ID, &category.Name, &category.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Debugf("Category with ID %d not found", id)
			return nil, nil
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id %d: %w", id, err)
	}
	return category, nil
}

func (r *postgresCategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING category_id`
	err := r.db.QueryRowContext(ctx, query, category.Name, category.Description).Scan(&category.ID)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			r.log.Warnf("Attempted to create category with duplicate name: %s", category.Name)
			return nil, fmt.Errorf("category with name '%s' already exists: %w", category.Name, domain.ErrConflict)
		}
		if pqCode(err) == pqStringTooLong {
			r.log.Warnf("Category value too long for column: %v", err)
			return nil, fmt.Errorf("category field exceeds maximum length: %w", domain.ErrInvalidInput)
		}
		r.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	r.log.Infof("Category created successfully with ID: %d, Name: %s", category.ID, category.Name)
	return category, nil
}

func (r *postgresCategoryRepository) UpdateCategory(ctx context.Context, id int, category *domain.Category) error {
	query := `UPDATE categories SET name = $1, description = $2 WHERE category_id = $3`
	result, err := r.db.ExecContext(ctx, query, category.Name, category.Description, id)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			r.log.Warnf("Attempted to update category ID %d with duplicate name: %s", id, category.Name)
			return fmt.Errorf("category with name '%s' already exists: %w", category.Name, domain.ErrConflict)
		}
		if pqCode(err) == pqStringTooLong {
			r.log.Warnf("Category ID %d value too long for column: %v", id, err)
			return fmt.Errorf("category field exceeds maximum length: %w", domain.ErrInvalidInput)
		}
		r.log.Errorf("Failed to update category ID %d: %v", id, err)
		return fmt.Errorf("could not update category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("No category found with ID: %d, nothing updated", id)
		return nil
	}

	category.ID = id
	r.log.Infof("Category updated successfully with ID: %d", id)
	return nil
}

func (r *postgresCategoryRepository) DeleteCategory(ctx context.Context, id int) error {
	query := `DELETE FROM categories WHERE category_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			r.log.Warnf("Attempted to delete category ID %d that still has products", id)
			return fmt.Errorf("category with id %d still has products: %w", id, domain.ErrConflict)
		}
		r.log.Errorf("Failed to delete category ID %d: %v", id, err)
		return fmt.Errorf("could not delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting category ID %d: %v", id, err)
		return fmt.Errorf("could not confirm category deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("No category found with ID: %d, nothing deleted", id)
		return nil
	}

	r.log.Infof("Category deleted successfully with ID: %d", id)
	return nil
}
