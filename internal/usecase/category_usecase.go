package usecase

import (
	"context"
	"fmt"
	"strings"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type CategoryUseCase interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id int) (*domain.Category, error)
	ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error)
	CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int, category *domain.Category) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int) error
}

type categoryUseCase struct {
	categoryRepo domain.CategoryRepository
	productRepo  domain.ProductRepository
	log          *logrus.Logger
}

func NewCategoryUseCase(cRepo domain.CategoryRepository, pRepo domain.ProductRepository, logger *logrus.Logger) CategoryUseCase {
	return &categoryUseCase{
		categoryRepo: cRepo,
		productRepo:  pRepo,
		log:          logger,
	}
}

func (uc *categoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list categories: %v", err)
		return nil, fmt.Errorf("could not retrieve categories: %w", err)
	}
	return categories, nil
}

func (uc *categoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get category with invalid ID: %d", id)
		return nil, fmt.Errorf("invalid category ID %d: %w", id, domain.ErrInvalidInput)
	}

	category, err := uc.categoryRepo.GetCategoryByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		uc.log.Warnf("Use Case: Category ID %d not found", id)
		return nil, fmt.Errorf("category with id %d: %w", id, domain.ErrNotFound)
	}
	return category, nil
}

func (uc *categoryUseCase) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	if _, err := uc.GetCategoryByID(ctx, categoryID); err != nil {
		return nil, err
	}

	products, err := uc.productRepo.ListByCategoryID(ctx, categoryID)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products for category %d: %v", categoryID, err)
		return nil, fmt.Errorf("could not retrieve products for category %d: %w", categoryID, err)
	}
	uc.log.Infof("Use Case: Retrieved %d products for category %d", len(products), categoryID)
	return products, nil
}

func (uc *categoryUseCase) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		uc.log.Warn("Use Case: Attempted to create category with empty name")
		return nil, fmt.Errorf("category name cannot be empty: %w", domain.ErrInvalidInput)
	}

	created, err := uc.categoryRepo.CreateCategory(ctx, category)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.Name, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Category '%s' created successfully with ID %d", created.Name, created.ID)
	return created, nil
}

func (uc *categoryUseCase) UpdateCategory(ctx context.Context, id int, category *domain.Category) (*domain.Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		uc.log.Warnf("Use Case: Attempted update for ID %d with empty name", id)
		return nil, fmt.Errorf("category name cannot be empty for update: %w", domain.ErrInvalidInput)
	}
	if _, err := uc.GetCategoryByID(ctx, id); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.UpdateCategory(ctx, id, category); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", id, err)
		return nil, err
	}

	category.ID = id
	uc.log.Infof("Use Case: Category updated successfully for ID %d", id)
	return category, nil
}

func (uc *categoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	if _, err := uc.GetCategoryByID(ctx, id); err != nil {
		return err
	}

	if err := uc.categoryRepo.DeleteCategory(ctx, id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete category ID %d: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Category deleted successfully for ID %d", id)
	return nil
}
