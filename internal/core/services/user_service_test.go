package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/core/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/utils"
)

// --- Mock UserRepository (reader + writer) ---
type MockUserRepository struct {
	MockUserReader
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
	authService  portssvc.AuthSvcFacade
	ctx          context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
	suite.authService = services.NewAuthService(suite.mockUserRepo, "test-secret", time.Hour, "tripvault-test")
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) registerRequest() dto.RegisterUserRequest {
	return dto.RegisterUserRequest{
		Name:      "Asha Nair",
		Email:     "asha@example.com",
		Password:  "s3cret-password",
		Role:      "EMPLOYEE",
		CompanyID: 2,
	}
}

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	req := suite.registerRequest()

	var saved domain.User
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		saved = u
		return u.Email == req.Email
	})).Return(&domain.User{UserID: 7, Email: req.Email, Role: domain.RoleEmployee}, nil).Once()

	user, err := suite.service.Register(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), user.UserID)
	assert.NotEqual(suite.T(), req.Password, saved.PasswordHash)
	assert.True(suite.T(), utils.CheckPasswordHash(req.Password, saved.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_RejectsUnknownRole() {
	req := suite.registerRequest()
	req.Role = "INTERN"

	_, err := suite.service.Register(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestRegister_VerifiesManagerExists() {
	managerID := int64(99)
	req := suite.registerRequest()
	req.ManagerID = &managerID

	suite.mockUserRepo.On("FindUserByID", suite.ctx, managerID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.Register(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestRegister_PropagatesDuplicateEmail() {
	req := suite.registerRequest()
	suite.mockUserRepo.On("SaveUser", suite.ctx, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	_, err := suite.service.Register(suite.ctx, req)

	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestLogin_Success() {
	hash, err := utils.HashPassword("s3cret-password")
	assert.NoError(suite.T(), err)

	user := &domain.User{
		UserID:       7,
		Email:        "asha@example.com",
		PasswordHash: hash,
		Role:         domain.RoleEmployee,
		CompanyID:    2,
	}
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "asha@example.com").Return(user, nil).Once()

	resp, err := suite.authService.Login(suite.ctx, dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "s3cret-password",
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.Token)
	assert.Equal(suite.T(), int64(7), resp.User.UserID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, "test-secret")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.RoleEmployee, claims.Role)
	assert.Equal(suite.T(), int64(2), claims.CompanyID)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPassword() {
	hash, err := utils.HashPassword("s3cret-password")
	assert.NoError(suite.T(), err)

	user := &domain.User{UserID: 7, Email: "asha@example.com", PasswordHash: hash}
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "asha@example.com").Return(user, nil).Once()

	_, err = suite.authService.Login(suite.ctx, dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownEmailLooksLikeWrongPassword() {
	suite.mockUserRepo.On("FindUserByEmail", suite.ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.authService.Login(suite.ctx, dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// An unknown account must be indistinguishable from a bad password.
	assert.ErrorIs(suite.T(), err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(suite.T(), err, apperrors.ErrNotFound)
	assert.Contains(suite.T(), err.Error(), "invalid credentials")
}

func (suite *UserServiceTestSuite) TestFindUserRoleAndScope() {
	subsidiaryID := int64(5)
	user := &domain.User{
		UserID:       7,
		Role:         domain.RoleEmployee,
		CompanyID:    2,
		SubsidiaryID: &subsidiaryID,
	}
	suite.mockUserRepo.On("FindUserByID", suite.ctx, int64(7)).Return(user, nil).Once()

	scope, err := suite.service.FindUserRoleAndScope(suite.ctx, 7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), domain.RoleEmployee, scope.Role)
	assert.Equal(suite.T(), int64(2), scope.CompanyID)
	assert.Equal(suite.T(), &subsidiaryID, scope.SubsidiaryID)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
