package services

import (
	"context"
	"fmt"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/middleware"
	"github.com/tripvault/tripvault/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the identity directory service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a new user with a bcrypt-hashed password. The manager
// linkage is validated so bookings always route to a real user.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, req.Role)
	}

	if req.ManagerID != nil {
		if _, err := s.userRepo.FindUserByID(ctx, *req.ManagerID); err != nil {
			return nil, fmt.Errorf("failed to verify manager %d: %w", *req.ManagerID, err)
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to hash password: %v", apperrors.ErrInternal, err)
	}

	user := domain.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CompanyID:    req.CompanyID,
		SubsidiaryID: req.SubsidiaryID,
		ManagerID:    req.ManagerID,
	}

	saved, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("user registered", "user_id", saved.UserID, "role", saved.Role)
	return saved, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ListEmployees(ctx context.Context, companyID int64) ([]domain.User, error) {
	users, err := s.userRepo.ListUsersByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users for company %d: %w", companyID, err)
	}
	return users, nil
}

func (s *userService) FindManagerID(ctx context.Context, userID int64) (*int64, error) {
	managerID, err := s.userRepo.FindManagerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manager for user %d: %w", userID, err)
	}
	return managerID, nil
}

func (s *userService) FindUserRoleAndScope(ctx context.Context, userID int64) (*domain.UserScope, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scope for user %d: %w", userID, err)
	}
	return &domain.UserScope{
		Role:         user.Role,
		CompanyID:    user.CompanyID,
		SubsidiaryID: user.SubsidiaryID,
	}, nil
}
