package repository

import (
	"context"
	"database/sql"
	"fmt"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresShoppingCartRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresShoppingCartRepository(db *sql.DB, logger *logrus.Logger) domain.ShoppingCartRepository {
	return &postgresShoppingCartRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresShoppingCartRepository) GetByUserID(ctx context.Context, userID int) (*domain.ShoppingCart, error) {
	query := `
        SELECT p.product_id, p.name, p.price, p.category_id, p.description, p.subcategory,
               p.stock, p.featured, p.image_url, sc.quantity
        FROM shopping_cart sc
        JOIN products p ON p.product_id = sc.product_id
        WHERE sc.user_id = $1
        ORDER BY p.product_id ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.log.Errorf("Failed to load cart for user %d: %v", userID, err)
		return nil, fmt.Errorf("could not load cart: %w", err)
	}
	defer rows.Close()

	cart := domain.NewShoppingCart(userID)
	for rows.Next() {
		var item domain.ShoppingCartItem
		p := &item.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.CategoryID,
			&p.Description,
			&p.SubCategory,
			&p.Stock,
			&p.IsFeatured,
			&p.ImageURL,
			&item.Quantity,
		); err != nil {
			r.log.Errorf("Failed to scan cart row for user %d: %v", userID, err)
			return nil, fmt.Errorf("error scanning cart data: %w", err)
		}
		cart.Add(item)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during cart iteration for user %d: %v", userID, err)
		return nil, fmt.Errorf("error iterating cart: %w", err)
	}

	r.log.Debugf("Loaded cart for user %d with %d lines", userID, len(cart.Items))
	return cart, nil
}

// AddItem inserts the product with quantity 1, or bumps the existing line by
// one, in a single statement.
func (r *postgresShoppingCartRepository) AddItem(ctx context.Context, userID, productID int) error {
	query := `
        INSERT INTO shopping_cart (user_id, product_id, quantity)
        VALUES ($1, $2, 1)
        ON CONFLICT (user_id, product_id)
        DO UPDATE SET quantity = shopping_cart.quantity + 1`
	_, err := r.db.ExecContext(ctx, query, userID, productID)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			r.log.Warnf("Attempted to add non-existent product %d to cart of user %d", productID, userID)
			return fmt.Errorf("product with id %d does not exist: %w", productID, domain.ErrNotFound)
		}
		r.log.Errorf("Failed to add product %d to cart of user %d: %v", productID, userID, err)
		return fmt.Errorf("could not add product to cart: %w", err)
	}
	r.log.Infof("Product %d added to cart of user %d", productID, userID)
	return nil
}

func (r *postgresShoppingCartRepository) UpdateQuantity(ctx context.Context, userID, productID, quantity int) error {
	query := `UPDATE shopping_cart SET quantity = $1 WHERE user_id = $2 AND product_id = $3`
	result, err := r.db.ExecContext(ctx, query, quantity, userID, productID)
	if err != nil {
		if pqCode(err) == pqCheckViolation {
			return fmt.Errorf("quantity %d violates cart constraints: %w", quantity, domain.ErrInvalidInput)
		}
		r.log.Errorf("Failed to update quantity of product %d for user %d: %v", productID, userID, err)
		return fmt.Errorf("could not update cart quantity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after cart update for user %d: %v", userID, err)
		return fmt.Errorf("could not confirm cart update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Product %d not found in cart for user %d, nothing updated", productID, userID)
		return nil
	}

	r.log.Infof("Cart quantity of product %d set to %d for user %d", productID, quantity, userID)
	return nil
}

func (r *postgresShoppingCartRepository) ClearCart(ctx context.Context, userID int) error {
	query := `DELETE FROM shopping_cart WHERE user_id = $1`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		r.log.Errorf("Failed to clear cart for user %d: %v", userID, err)
		return fmt.Errorf("could not clear cart: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	r.log.Infof("Cleared %d cart lines for user %d", rowsAffected, userID)
	return nil
}
