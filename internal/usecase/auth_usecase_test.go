package usecase

import (
	"context"
	"strings"
	"testing"

	"easyshop_service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthUseCase() (*authUseCase, *MockUserRepo, *MockTokens) {
	users := new(MockUserRepo)
	tokens := new(MockTokens)
	uc := NewAuthUseCase(users, tokens, newTestLogger()).(*authUseCase)
	uc.cost = bcrypt.MinCost
	return uc, users, tokens
}

func TestAuthUseCase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Password mismatch", func(t *testing.T) {
		uc, users, _ := newAuthUseCase()
		_, err := uc.Register(ctx, "alice", "Password1", "Password2", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Weak password", func(t *testing.T) {
		uc, _, _ := newAuthUseCase()
		_, err := uc.Register(ctx, "alice", "password", "password", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Password too long", func(t *testing.T) {
		uc, users, _ := newAuthUseCase()
		long := "Aa1" + strings.Repeat("x", 80)

		_, err := uc.Register(ctx, "alice", long, long, "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		users.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Duplicate user", func(t *testing.T) {
		uc, users, _ := newAuthUseCase()
		users.On("Exists", ctx, "alice").Return(true, nil).Once()

		_, err := uc.Register(ctx, "alice", "Password1", "Password1", "")
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Success hashes password and defaults role", func(t *testing.T) {
		uc, users, _ := newAuthUseCase()
		users.On("Exists", ctx, "alice").Return(false, nil).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "alice" &&
				u.Role == domain.RoleUser &&
				bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte("Password1")) == nil
		})).Return(&domain.User{ID: 1, Username: "alice", Role: domain.RoleUser}, nil).Once()

		user, err := uc.Register(ctx, " alice ", "Password1", "Password1", "")
		require.NoError(t, err)
		assert.Equal(t, 1, user.ID)
		users.AssertExpectations(t)
	})

	t.Run("Unknown role", func(t *testing.T) {
		uc, _, _ := newAuthUseCase()
		_, err := uc.Register(ctx, "alice", "Password1", "Password1", "ROLE_ROOT")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{ID: 1, Username: "alice", HashedPassword: string(hash), Role: domain.RoleAdmin}

	t.Run("Success", func(t *testing.T) {
		uc, users, tokens := newAuthUseCase()
		users.On("GetByUserName", ctx, "alice").Return(stored, nil).Once()
		tokens.On("Generate", "alice", domain.RoleAdmin).Return("signed-token", nil).Once()

		resp, err := uc.Login(ctx, "alice", "Password1")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", resp.Token)
		assert.Equal(t, 1, resp.User.ID)
	})

	t.Run("Wrong password", func(t *testing.T) {
		uc, users, tokens := newAuthUseCase()
		users.On("GetByUserName", ctx, "alice").Return(stored, nil).Once()

		_, err := uc.Login(ctx, "alice", "nope")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		tokens.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("Unknown user", func(t *testing.T) {
		uc, users, _ := newAuthUseCase()
		users.On("GetByUserName", ctx, "bob").Return(nil, nil).Once()

		_, err := uc.Login(ctx, "bob", "Password1")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, validatePassword("Sh0rt"))
	assert.Error(t, validatePassword("alllowercase1"))
	assert.Error(t, validatePassword("ALLUPPERCASE1"))
	assert.Error(t, validatePassword("NoDigitsHere"))
	assert.Error(t, validatePassword("Aa1"+strings.Repeat("x", 70)))
	assert.NoError(t, validatePassword("Aa1"+strings.Repeat("x", 69)))
	assert.NoError(t, validatePassword("Valid123"))
}
