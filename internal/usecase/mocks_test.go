package usecase

import (
	"context"
	"io"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// --- Mock CategoryRepository ---
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCategoryRepo) UpdateCategory(ctx context.Context, id int, category *domain.Category) error {
	return m.Called(ctx, id, category).Error(0)
}
func (m *MockCategoryRepo) DeleteCategory(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Search(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListByCategoryID(ctx context.Context, categoryID int) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, id int, product *domain.Product) error {
	return m.Called(ctx, id, product).Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

// --- Mock ShoppingCartRepository ---
type MockCartRepo struct {
	mock.Mock
}

func (m *MockCartRepo) GetByUserID(ctx context.Context, userID int) (*domain.ShoppingCart, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingCart), args.Error(1)
}
func (m *MockCartRepo) AddItem(ctx context.Context, userID, productID int) error {
	return m.Called(ctx, userID, productID).Error(0)
}
func (m *MockCartRepo) UpdateQuantity(ctx context.Context, userID, productID, quantity int) error {
	return m.Called(ctx, userID, productID, quantity).Error(0)
}
func (m *MockCartRepo) ClearCart(ctx context.Context, userID int) error {
	return m.Called(ctx, userID).Error(0)
}

// --- Mock UserRepository ---
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByUserName(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Exists(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// --- Mock TokenIssuer ---
type MockTokens struct {
	mock.Mock
}

func (m *MockTokens) Generate(username, role string) (string, error) {
	args := m.Called(username, role)
	return args.String(0), args.Error(1)
}
