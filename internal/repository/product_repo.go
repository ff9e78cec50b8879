package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const productColumns = `product_id, name, price, category_id, description, subcategory, stock, featured, image_url`

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner, product *domain.Product) error {
	return row.Scan(
		&product.ID,
		&product.Name,
		&product.Price,
		&product.CategoryID,
		&product.Description,
		&product.SubCategory,
		&product.Stock,
		&product.IsFeatured,
		&product.ImageURL,
	)
}

func (r *postgresProductRepository) Search(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	whereClauses := []string{}
	args := []interface{}{}
	argCounter := 1

	if filter.CategoryID != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("category_id = $%d", argCounter))
		args = append(args, *filter.CategoryID)
		argCounter++
	}
	if filter.MinPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price >= $%d", argCounter))
		args = append(args, *filter.MinPrice)
		argCounter++
	}
	if filter.MaxPrice != nil {
		whereClauses = append(whereClauses, fmt.Sprintf("price <= $%d", argCounter))
		args = append(args, *filter.MaxPrice)
		argCounter++
	}
	if filter.SubCategory != "" {
		whereClauses = append(whereClauses, fmt.Sprintf("subcategory = $%d", argCounter))
		args = append(args, filter.SubCategory)
	}

	query := `SELECT ` + productColumns + ` FROM products`
	if len(whereClauses) > 0 {
		query += " WHERE " + strings.Join(whereClauses, " AND ")
	}
	query += " ORDER BY product_id ASC"

	r.log.Debugf("Executing product search: %s with args: %v", query, args)
	return r.queryProducts(ctx, query, args...)
}

func (r *postgresProductRepository) ListByCategoryID(ctx context.Context, categoryID int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY product_id ASC`
	return r.queryProducts(ctx, query, categoryID)
}

func (r *postgresProductRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := scanProduct(rows, &product); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Debugf("Retrieved %d products", len(products))
	return products, nil
}

func (r *postgresProductRepository) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE product_id = $1`
	product := &domain.Product{}
	err := scanProduct(r.db.QueryRowContext(ctx, query, id), product)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Debugf("Product with ID %d not found", id)
			return nil, nil
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id %d: %w", id, err)
	}
	return product, nil
}

func (r *postgresProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (name, price, category_id, description, subcategory, stock, featured, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING product_id`
	err := r.db.QueryRowContext(ctx, query,
		product.Name,
		product.Price,
		product.CategoryID,
		product.Description,
		product.SubCategory,
		product.Stock,
		product.IsFeatured,
		product.ImageURL,
	).Scan(&product.ID)
	if err != nil {
		if mapped := r.mapConstraintError(err, product); mapped != nil {
			return nil, mapped
		}
		r.log.Errorf("Failed to create product '%s': %v", product.Name, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ID, product.Name)
	return product, nil
}

func (r *postgresProductRepository) Update(ctx context.Context, id int, product *domain.Product) error {
	query := `
        UPDATE products
        SET name = $1, price = $2, category_id = $3, description = $4,
            subcategory = $5, stock = $6, featured = $7, image_url = $8
        WHERE product_id = $9`
	result, err := r.db.ExecContext(ctx, query,
		product.Name,
		product.Price,
		product.CategoryID,
		product.Description,
		product.SubCategory,
		product.Stock,
		product.IsFeatured,
		product.ImageURL,
		id,
	)
	if err != nil {
		if mapped := r.mapConstraintError(err, product); mapped != nil {
			return mapped
		}
		r.log.Errorf("Failed to update product ID %d: %v", id, err)
		return fmt.Errorf("could not update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("No product found with ID: %d, nothing updated", id)
		return nil
	}

	product.ID = id
	r.log.Infof("Product updated successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM products WHERE product_id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("No product found with ID: %d, nothing deleted", id)
		return nil
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) mapConstraintError(err error, product *domain.Product) error {
	switch pqCode(err) {
	case pqForeignKeyViolation:
		r.log.Warnf("Product '%s' references non-existent category ID: %d", product.Name, product.CategoryID)
		return fmt.Errorf("category with id %d does not exist: %w", product.CategoryID, domain.ErrInvalidInput)
	case pqCheckViolation:
		r.log.Warnf("Check constraint violation for product '%s': %v", product.Name, err)
		return fmt.Errorf("product data constraint violation: %w", domain.ErrInvalidInput)
	case pqStringTooLong:
		r.log.Warnf("Product '%s' has a value too long for its column: %v", product.Name, err)
		return fmt.Errorf("product field exceeds maximum length: %w", domain.ErrInvalidInput)
	}
	return nil
}
