package delivery

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"easyshop_service/internal/auth"
	"easyshop_service/internal/domain"
	"easyshop_service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type MockCategoryUseCase struct{ mock.Mock }

func (m *MockCategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) GetCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) ListProductsByCategory(ctx context.Context, categoryID int) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockCategoryUseCase) CreateCategory(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) UpdateCategory(ctx context.Context, id int, category *domain.Category) (*domain.Category, error) {
	args := m.Called(ctx, id, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryUseCase) DeleteCategory(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductUseCase struct{ mock.Mock }

func (m *MockProductUseCase) SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductUseCase) GetProductByID(ctx context.Context, id int) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) UpdateProduct(ctx context.Context, id int, product *domain.Product) (*domain.Product, error) {
	args := m.Called(ctx, id, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductUseCase) DeleteProduct(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type MockCartUseCase struct{ mock.Mock }

func (m *MockCartUseCase) cart(args mock.Arguments) (*domain.ShoppingCart, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingCart), args.Error(1)
}

func (m *MockCartUseCase) GetCart(ctx context.Context, username string) (*domain.ShoppingCart, error) {
	return m.cart(m.Called(ctx, username))
}

func (m *MockCartUseCase) AddProduct(ctx context.Context, username string, productID int) (*domain.ShoppingCart, error) {
	return m.cart(m.Called(ctx, username, productID))
}

func (m *MockCartUseCase) UpdateQuantity(ctx context.Context, username string, productID, quantity int) (*domain.ShoppingCart, error) {
	return m.cart(m.Called(ctx, username, productID, quantity))
}

func (m *MockCartUseCase) ClearCart(ctx context.Context, username string) (*domain.ShoppingCart, error) {
	return m.cart(m.Called(ctx, username))
}

type MockAuthUseCase struct{ mock.Mock }

func (m *MockAuthUseCase) Register(ctx context.Context, username, password, confirmPassword, role string) (*domain.User, error) {
	args := m.Called(ctx, username, password, confirmPassword, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, username, password string) (*domain.AuthResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResponse), args.Error(1)
}

type testServer struct {
	router     *gin.Engine
	tokens     *auth.TokenManager
	categories *MockCategoryUseCase
	products   *MockProductUseCase
	carts      *MockCartUseCase
	auths      *MockAuthUseCase
}

// newTestServer wires the handlers the same way cmd/main.go does.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := newTestLogger()

	tokens, err := auth.NewTokenManager("handler-test-secret", time.Hour)
	require.NoError(t, err)

	s := &testServer{
		router:     gin.New(),
		tokens:     tokens,
		categories: new(MockCategoryUseCase),
		products:   new(MockProductUseCase),
		carts:      new(MockCartUseCase),
		auths:      new(MockAuthUseCase),
	}

	authenticated := s.router.Group("/")
	authenticated.Use(middleware.Authenticate(tokens, log))
	admin := authenticated.Group("/")
	admin.Use(middleware.RequireRole(domain.RoleAdmin, log))

	NewCategoryHandler(s.categories, log).RegisterRoutes(s.router, admin)
	NewProductHandler(s.products, log).RegisterRoutes(s.router, admin)
	NewCartHandler(s.carts, log).RegisterRoutes(authenticated)
	NewAuthHandler(s.auths, log).RegisterRoutes(s.router)
	return s
}

func (s *testServer) token(t *testing.T, username, role string) string {
	t.Helper()
	token, err := s.tokens.Generate(username, role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
