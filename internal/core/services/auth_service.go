package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tripvault/tripvault/internal/apperrors"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/middleware"
	"github.com/tripvault/tripvault/internal/utils"
)

type authService struct {
	userRepo  portsrepo.UserReader
	jwtSecret string
	jwtExpiry time.Duration
	issuer    string
}

// NewAuthService creates the authentication service.
func NewAuthService(userRepo portsrepo.UserReader, jwtSecret string, jwtExpiry time.Duration, issuer string) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtExpiry: jwtExpiry,
		issuer:    issuer,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the credentials and issues a signed access token carrying
// the user's role and company scope.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// An unknown email answers the same as a wrong password, so the
			// login endpoint cannot be used to enumerate accounts.
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(user.UserID, user.Role, user.CompanyID, s.jwtSecret, s.jwtExpiry, s.issuer)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to sign token: %v", apperrors.ErrInternal, err)
	}

	logger.Info("user logged in", "user_id", user.UserID, "role", user.Role)

	return &dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	}, nil
}
