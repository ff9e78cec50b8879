package usecase

import (
	"context"
	"fmt"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// CartUseCase operates on the cart of the authenticated principal, identified
// by username.
type CartUseCase interface {
	GetCart(ctx context.Context, username string) (*domain.ShoppingCart, error)
	AddProduct(ctx context.Context, username string, productID int) (*domain.ShoppingCart, error)
	UpdateQuantity(ctx context.Context, username string, productID, quantity int) (*domain.ShoppingCart, error)
	ClearCart(ctx context.Context, username string) (*domain.ShoppingCart, error)
}

type cartUseCase struct {
	cartRepo    domain.ShoppingCartRepository
	userRepo    domain.UserRepository
	productRepo domain.ProductRepository
	log         *logrus.Logger
}

func NewCartUseCase(cartRepo domain.ShoppingCartRepository, userRepo domain.UserRepository, productRepo domain.ProductRepository, logger *logrus.Logger) CartUseCase {
	return &cartUseCase{
		cartRepo:    cartRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		log:         logger,
	}
}

func (uc *cartUseCase) resolveUserID(ctx context.Context, username string) (int, error) {
	user, err := uc.userRepo.GetByUserName(ctx, username)
	if err != nil {
		return 0, err
	}
	if user == nil {
		uc.log.Warnf("Use Case: Principal '%s' has no user record", username)
		return 0, fmt.Errorf("user '%s' is not registered: %w", username, domain.ErrUnauthorized)
	}
	return user.ID, nil
}

func (uc *cartUseCase) GetCart(ctx context.Context, username string) (*domain.ShoppingCart, error) {
	userID, err := uc.resolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	return uc.cartRepo.GetByUserID(ctx, userID)
}

func (uc *cartUseCase) AddProduct(ctx context.Context, username string, productID int) (*domain.ShoppingCart, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("invalid product ID %d: %w", productID, domain.ErrInvalidInput)
	}
	userID, err := uc.resolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		uc.log.Warnf("Use Case: User %d tried to add missing product %d", userID, productID)
		return nil, fmt.Errorf("product with id %d: %w", productID, domain.ErrNotFound)
	}

	if err := uc.cartRepo.AddItem(ctx, userID, productID); err != nil {
		uc.log.Errorf("Use Case: Repository failed to add product %d for user %d: %v", productID, userID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product %d added to cart of user %d", productID, userID)
	return uc.cartRepo.GetByUserID(ctx, userID)
}

func (uc *cartUseCase) UpdateQuantity(ctx context.Context, username string, productID, quantity int) (*domain.ShoppingCart, error) {
	if quantity <= 0 {
		uc.log.Warnf("Use Case: Rejected non-positive quantity %d for product %d", quantity, productID)
		return nil, fmt.Errorf("quantity must be greater than 0: %w", domain.ErrInvalidInput)
	}
	if productID <= 0 {
		return nil, fmt.Errorf("invalid product ID %d: %w", productID, domain.ErrInvalidInput)
	}
	userID, err := uc.resolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}

	if err := uc.cartRepo.UpdateQuantity(ctx, userID, productID, quantity); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update quantity of product %d for user %d: %v", productID, userID, err)
		return nil, err
	}
	return uc.cartRepo.GetByUserID(ctx, userID)
}

func (uc *cartUseCase) ClearCart(ctx context.Context, username string) (*domain.ShoppingCart, error) {
	userID, err := uc.resolveUserID(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := uc.cartRepo.ClearCart(ctx, userID); err != nil {
		uc.log.Errorf("Use Case: Repository failed to clear cart for user %d: %v", userID, err)
		return nil, err
	}
	return domain.NewShoppingCart(userID), nil
}
