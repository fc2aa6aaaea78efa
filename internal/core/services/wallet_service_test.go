package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/core/services"
)

// --- Mock WalletRepository ---
type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) GetMainWallet(ctx context.Context) (*domain.MainWallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MainWallet), args.Error(1)
}

func (m *MockWalletRepository) GetCompanyWallet(ctx context.Context, companyID int64) (*domain.CompanyWallet, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyWallet), args.Error(1)
}

func (m *MockWalletRepository) GetEmployeeWallet(ctx context.Context, employeeID int64) (*domain.EmployeeWallet, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeWallet), args.Error(1)
}

func (m *MockWalletRepository) AllocateToCompany(ctx context.Context, companyID int64, amount decimal.Decimal) (*domain.CompanyWallet, error) {
	args := m.Called(ctx, companyID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyWallet), args.Error(1)
}

func (m *MockWalletRepository) AllocateToEmployee(ctx context.Context, employeeID, companyID int64, amount decimal.Decimal) (*domain.EmployeeWallet, error) {
	args := m.Called(ctx, employeeID, companyID, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeWallet), args.Error(1)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransactionRecord), args.Error(1)
}

// --- Test Suite Setup ---
type WalletServiceTestSuite struct {
	suite.Suite
	mockWalletRepo *MockWalletRepository
	service        portssvc.WalletSvcFacade
	ctx            context.Context
}

func (suite *WalletServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.service = services.NewWalletService(suite.mockWalletRepo)
	suite.ctx = context.Background()
}

func (suite *WalletServiceTestSuite) TestAllocateToCompany_Success() {
	amount := decimal.NewFromInt(500)
	expected := &domain.CompanyWallet{
		CompanyID:       2,
		AllocatedAmount: decimal.NewFromInt(500),
		UsedAmount:      decimal.Zero,
	}
	suite.mockWalletRepo.On("AllocateToCompany", suite.ctx, int64(2), amount).Return(expected, nil).Once()

	wallet, err := suite.service.AllocateToCompany(suite.ctx, 2, amount)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, wallet)
	assert.True(suite.T(), wallet.Available().Equal(decimal.NewFromInt(500)))
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestAllocateToCompany_RejectsNonPositiveAmount() {
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
		_, err := suite.service.AllocateToCompany(suite.ctx, 2, amount)
		assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	}
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "AllocateToCompany")
}

func (suite *WalletServiceTestSuite) TestAllocateToCompany_RejectsMissingCompanyID() {
	_, err := suite.service.AllocateToCompany(suite.ctx, 0, decimal.NewFromInt(100))
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "AllocateToCompany")
}

func (suite *WalletServiceTestSuite) TestAllocateToCompany_PropagatesInsufficientFunds() {
	amount := decimal.NewFromInt(100000)
	suite.mockWalletRepo.On("AllocateToCompany", suite.ctx, int64(2), amount).
		Return(nil, apperrors.ErrInsufficientFunds).Once()

	_, err := suite.service.AllocateToCompany(suite.ctx, 2, amount)

	assert.ErrorIs(suite.T(), err, apperrors.ErrInsufficientFunds)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestAllocateToEmployee_Success() {
	amount := decimal.NewFromInt(200)
	expected := &domain.EmployeeWallet{
		EmployeeID: 7,
		CompanyID:  2,
		Balance:    decimal.NewFromInt(200),
	}
	suite.mockWalletRepo.On("AllocateToEmployee", suite.ctx, int64(7), int64(2), amount).Return(expected, nil).Once()

	wallet, err := suite.service.AllocateToEmployee(suite.ctx, 7, 2, amount)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), expected, wallet)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestAllocateToEmployee_RejectsNonPositiveAmount() {
	_, err := suite.service.AllocateToEmployee(suite.ctx, 7, 2, decimal.Zero)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "AllocateToEmployee")
}

func (suite *WalletServiceTestSuite) TestAllocateToEmployee_PropagatesMissingCompanyWallet() {
	amount := decimal.NewFromInt(50)
	suite.mockWalletRepo.On("AllocateToEmployee", suite.ctx, int64(7), int64(9), amount).
		Return(nil, apperrors.ErrWalletNotFound).Once()

	_, err := suite.service.AllocateToEmployee(suite.ctx, 7, 9, amount)

	assert.ErrorIs(suite.T(), err, apperrors.ErrWalletNotFound)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *WalletServiceTestSuite) TestGetCompanyWallet_UnprovisionedReadsAsZero() {
	suite.mockWalletRepo.On("GetCompanyWallet", suite.ctx, int64(5)).
		Return(nil, apperrors.ErrWalletNotFound).Once()

	wallet, err := suite.service.GetCompanyWallet(suite.ctx, 5)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(5), wallet.CompanyID)
	assert.True(suite.T(), wallet.AllocatedAmount.IsZero())
	assert.True(suite.T(), wallet.UsedAmount.IsZero())
}

func (suite *WalletServiceTestSuite) TestGetEmployeeWallet_UnprovisionedReadsAsZero() {
	suite.mockWalletRepo.On("GetEmployeeWallet", suite.ctx, int64(7)).
		Return(nil, apperrors.ErrWalletNotFound).Once()

	wallet, err := suite.service.GetEmployeeWallet(suite.ctx, 7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), wallet.EmployeeID)
	assert.True(suite.T(), wallet.Balance.IsZero())
}

func (suite *WalletServiceTestSuite) TestListTransactions_NilBecomesEmptySlice() {
	suite.mockWalletRepo.On("ListTransactions", suite.ctx).Return(nil, nil).Once()

	records, err := suite.service.ListTransactions(suite.ctx)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), records)
	assert.Empty(suite.T(), records)
}

func TestWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}
