package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

type TokenIssuer interface {
	Generate(username, role string) (string, error)
}

type AuthUseCase interface {
	Register(ctx context.Context, username, password, confirmPassword, role string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*domain.AuthResponse, error)
}

type authUseCase struct {
	userRepo domain.UserRepository
	tokens   TokenIssuer
	log      *logrus.Logger
	cost     int
}

func NewAuthUseCase(repo domain.UserRepository, tokens TokenIssuer, logger *logrus.Logger) AuthUseCase {
	return &authUseCase{
		userRepo: repo,
		tokens:   tokens,
		log:      logger,
		cost:     bcrypt.DefaultCost,
	}
}

func (uc *authUseCase) Register(ctx context.Context, username, password, confirmPassword, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	uc.log.Infof("Use Case: Attempting registration for user: %s", username)

	if username == "" {
		uc.log.Warn("Use Case: Registration failed - empty username")
		return nil, fmt.Errorf("username cannot be empty: %w", domain.ErrInvalidInput)
	}
	if password != confirmPassword {
		uc.log.Warnf("Use Case: Registration failed - password mismatch for %s", username)
		return nil, fmt.Errorf("passwords do not match: %w", domain.ErrInvalidInput)
	}
	if err := validatePassword(password); err != nil {
		uc.log.Warnf("Use Case: Registration failed - password validation error: %v", err)
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.IsValidRole(role) {
		return nil, fmt.Errorf("unknown role '%s': %w", role, domain.ErrInvalidInput)
	}

	exists, err := uc.userRepo.Exists(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		uc.log.Warnf("Use Case: Registration failed - user already exists: %s", username)
		return nil, fmt.Errorf("user '%s' already exists: %w", username, domain.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrInvalidInput)
	}
	if err != nil {
		uc.log.Errorf("Use Case: Failed to hash password for %s: %v", username, err)
		return nil, fmt.Errorf("internal error processing password: %w", err)
	}

	created, err := uc.userRepo.Create(ctx, &domain.User{
		Username:       username,
		HashedPassword: string(hashedPassword),
		Role:           role,
	})
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to create user %s: %v", username, err)
		return nil, err
	}

	uc.log.Infof("Use Case: User registered successfully. ID: %d, Username: %s", created.ID, created.Username)
	return created, nil
}

func (uc *authUseCase) Login(ctx context.Context, username, password string) (*domain.AuthResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
	}

	user, err := uc.userRepo.GetByUserName(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.log.Warnf("Use Case: Login failed - user not found: %s", username)
		return nil, fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			uc.log.Warnf("Use Case: Login failed - incorrect password for user %s (ID: %d)", username, user.ID)
			return nil, fmt.Errorf("invalid username or password: %w", domain.ErrUnauthorized)
		}
		uc.log.Errorf("Use Case: Error comparing password hash for user %s: %v", username, err)
		return nil, fmt.Errorf("internal error during authentication: %w", err)
	}

	token, err := uc.tokens.Generate(user.Username, user.Role)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to issue token for user %s: %v", username, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Authentication successful for user %s (ID: %d)", username, user.ID)
	return &domain.AuthResponse{Token: token, User: user}, nil
}

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

// validatePassword requires 8 to 72 bytes with at least one upper-case letter,
// one lower-case letter and one digit.
func validatePassword(password string) error {
	switch {
	case len(password) < 8:
		return errors.New("password must be at least 8 characters long")
	case len(password) > maxPasswordBytes:
		return fmt.Errorf("password must be at most %d bytes long", maxPasswordBytes)
	}

	var missing []string
	if !strings.ContainsFunc(password, unicode.IsUpper) {
		missing = append(missing, "an uppercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsLower) {
		missing = append(missing, "a lowercase letter")
	}
	if !strings.ContainsFunc(password, unicode.IsDigit) {
		missing = append(missing, "a digit")
	}
	if len(missing) > 0 {
		return fmt.Errorf("password must contain %s", strings.Join(missing, " and "))
	}
	return nil
}
