package services

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/dto"
)

// IdentityDirectorySvc resolves manager, company and subsidiary linkage for
// routing and authorization scope checks.
type IdentityDirectorySvc interface {
	// FindManagerID resolves the approving manager for a user; nil when the
	// user has no manager assigned.
	FindManagerID(ctx context.Context, userID int64) (*int64, error)

	// FindUserRoleAndScope resolves a user's role and company/subsidiary scope.
	FindUserRoleAndScope(ctx context.Context, userID int64) (*domain.UserScope, error)
}

// UserSvcFacade combines the identity directory with user management.
type UserSvcFacade interface {
	IdentityDirectorySvc

	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by identifier.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// ListEmployees returns all users belonging to a company.
	ListEmployees(ctx context.Context, companyID int64) ([]domain.User, error)
}

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the credentials and returns a signed token with the
	// user's profile. Fails with apperrors.ErrNotFound for an unknown email
	// and apperrors.ErrUnauthorized for a wrong password.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
