package usecase

import (
	"context"
	"fmt"
	"strings"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type ProductUseCase interface {
	SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id int) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

type productUseCase struct {
	productRepo  domain.ProductRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewProductUseCase(pRepo domain.ProductRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		productRepo:  pRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

func (uc *productUseCase) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		uc.log.Warnf("Use Case: minPrice %s exceeds maxPrice %s", filter.MinPrice, filter.MaxPrice)
		return nil, fmt.Errorf("minPrice cannot exceed maxPrice: %w", domain.ErrInvalidInput)
	}

	products, err := uc.productRepo.Search(ctx, filter)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to search products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}
	return products, nil
}

func (uc *productUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid product ID %d: %w", id, domain.ErrInvalidInput)
	}

	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		uc.log.Warnf("Use Case: Product ID %d not found", id)
		return nil, fmt.Errorf("product with id %d: %w", id, domain.ErrNotFound)
	}
	return product, nil
}

func (uc *productUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := uc.validate(ctx, product); err != nil {
		return nil, err
	}

	created, err := uc.productRepo.Create(ctx, product)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *productUseCase) UpdateProduct(ctx context.Context, id int, product *domain.Product) (*domain.Product, error) {
	if _, err := uc.GetProductByID(ctx, id); err != nil {
		return nil, err
	}
	if err := uc.validate(ctx, product); err != nil {
		return nil, err
	}

	if err := uc.productRepo.Update(ctx, id, product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", id, err)
		return nil, err
	}

	product.ID = id
	uc.log.Infof("Use Case: Product updated successfully for ID %d", id)
	return product, nil
}

func (uc *productUseCase) DeleteProduct(ctx context.Context, id int) error {
	if _, err := uc.GetProductByID(ctx, id); err != nil {
		return err
	}
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}

func (uc *productUseCase) validate(ctx context.Context, product *domain.Product) error {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" {
		uc.log.Warn("Use Case: Product with empty name rejected")
		return fmt.Errorf("product name cannot be empty: %w", domain.ErrInvalidInput)
	}
	if product.Price.IsNegative() {
		uc.log.Warnf("Use Case: Product '%s' with negative price rejected: %s", product.Name, product.Price)
		return fmt.Errorf("product price cannot be negative: %w", domain.ErrInvalidInput)
	}
	if product.Stock < 0 {
		uc.log.Warnf("Use Case: Product '%s' with negative stock rejected: %d", product.Name, product.Stock)
		return fmt.Errorf("product stock cannot be negative: %w", domain.ErrInvalidInput)
	}

	category, err := uc.categoryRepo.GetCategoryByID(ctx, product.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		uc.log.Warnf("Use Case: Category ID %d not found for product '%s'", product.CategoryID, product.Name)
		return fmt.Errorf("category with id %d does not exist: %w", product.CategoryID, domain.ErrInvalidInput)
	}
	return nil
}
