package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"easyshop_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresUserRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresUserRepository(db *sql.DB, logger *logrus.Logger) domain.UserRepository {
	return &postgresUserRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (username, hashed_password, role)
        VALUES ($1, $2, $3)
        RETURNING user_id`

	r.log.Debugf("Repository: Attempting to create user: %s", user.Username)

	err := r.db.QueryRowContext(ctx, query, user.Username, user.HashedPassword, user.Role).Scan(&user.ID)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			r.log.Warnf("Repository: Attempted to create duplicate user: %s", user.Username)
			return nil, fmt.Errorf("user '%s' already exists: %w", user.Username, domain.ErrConflict)
		}
		if pqCode(err) == pqStringTooLong {
			r.log.Warnf("Repository: Username too long: %d bytes", len(user.Username))
			return nil, fmt.Errorf("username exceeds maximum length: %w", domain.ErrInvalidInput)
		}
		r.log.Errorf("Repository: Failed to create user '%s': %v", user.Username, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}

	r.log.Infof("Repository: User created successfully with ID: %d, Username: %s", user.ID, user.Username)
	return user, nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	query := `SELECT user_id, username, hashed_password, role FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, id)
}

func (r *postgresUserRepository) GetByUserName(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT user_id, username, hashed_password, role FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

func (r *postgresUserRepository) getOne(ctx context.Context, query string, arg interface{}) (*domain.User, error) {
	user := &domain.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.HashedPassword,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Debugf("Repository: User %v not found", arg)
			return nil, nil
		}
		r.log.Errorf("Repository: Failed to get user %v: %v", arg, err)
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return user, nil
}

func (r *postgresUserRepository) Exists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		r.log.Errorf("Repository: Failed to check user existence for %s: %v", username, err)
		return false, fmt.Errorf("could not check user existence: %w", err)
	}
	return exists, nil
}
