package repository

import (
	"context"
	"errors"

	"opsboard/internal/domain"
)

var (
	// ErrNotFound is returned when no user matches the lookup key.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when an insert collides with an
	// existing username. The UNIQUE constraint is the enforcement
	// point; callers may pre-check but must handle this error anyway.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context) ([]domain.User, error)
}
