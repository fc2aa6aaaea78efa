package repositories

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// UserReader defines read operations for user data.
type UserReader interface {
	// FindUserByID retrieves a user by identifier.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindManagerID resolves the approving manager for a user. Returns nil
	// with no error when the user has no manager assigned.
	FindManagerID(ctx context.Context, userID int64) (*int64, error)

	// ListUsersByCompany returns all users belonging to a company, newest first.
	ListUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error)
}

// UserWriter defines write operations for user data.
type UserWriter interface {
	// SaveUser persists a new user and returns it with the assigned
	// identifier. Returns apperrors.ErrDuplicate when the email is taken.
	SaveUser(ctx context.Context, user domain.User) (*domain.User, error)
}

// UserRepositoryFacade combines all user-related repository interfaces.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
