package repositories

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"users-api/internal/db"
	"users-api/internal/models"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// ListUsers returns every row of the users table. No ORDER BY is applied, so
// callers must not rely on the order of the result.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	query, args, err := sq.Select("id", "username", "email").
		From(db.UsersTable).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build users query: %w", err)
	}

	users := make([]models.User, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
