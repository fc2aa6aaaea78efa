package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/middleware"
)

type walletService struct {
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates the wallet allocation service.
func NewWalletService(walletRepo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: walletRepo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) GetMainWallet(ctx context.Context) (*domain.MainWallet, error) {
	wallet, err := s.walletRepo.GetMainWallet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get main wallet: %w", err)
	}
	return wallet, nil
}

// GetCompanyWallet reads a company wallet snapshot. A company that has never
// received an allocation reads as zero balances rather than an error.
func (s *walletService) GetCompanyWallet(ctx context.Context, companyID int64) (*domain.CompanyWallet, error) {
	wallet, err := s.walletRepo.GetCompanyWallet(ctx, companyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWalletNotFound) {
			return &domain.CompanyWallet{CompanyID: companyID}, nil
		}
		return nil, fmt.Errorf("failed to get company wallet: %w", err)
	}
	return wallet, nil
}

// GetEmployeeWallet reads an employee wallet snapshot, zero-valued when the
// employee has never received an allocation.
func (s *walletService) GetEmployeeWallet(ctx context.Context, employeeID int64) (*domain.EmployeeWallet, error) {
	wallet, err := s.walletRepo.GetEmployeeWallet(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrWalletNotFound) {
			return &domain.EmployeeWallet{EmployeeID: employeeID}, nil
		}
		return nil, fmt.Errorf("failed to get employee wallet: %w", err)
	}
	return wallet, nil
}

func (s *walletService) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	transactions, err := s.walletRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		return []domain.TransactionRecord{}, nil
	}
	return transactions, nil
}

func (s *walletService) AllocateToCompany(ctx context.Context, companyID int64, amount decimal.Decimal) (*domain.CompanyWallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if companyID <= 0 {
		return nil, fmt.Errorf("%w: company_id is required", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	wallet, err := s.walletRepo.AllocateToCompany(ctx, companyID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate to company %d: %w", companyID, err)
	}

	logger.Info("allocated funds to company wallet",
		"company_id", companyID, "amount", amount.String())
	return wallet, nil
}

func (s *walletService) AllocateToEmployee(ctx context.Context, employeeID, companyID int64, amount decimal.Decimal) (*domain.EmployeeWallet, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if employeeID <= 0 {
		return nil, fmt.Errorf("%w: employee_id is required", apperrors.ErrValidation)
	}
	if companyID <= 0 {
		return nil, fmt.Errorf("%w: company_id is required", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	wallet, err := s.walletRepo.AllocateToEmployee(ctx, employeeID, companyID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate to employee %d: %w", employeeID, err)
	}

	logger.Info("allocated funds to employee wallet",
		"employee_id", employeeID, "company_id", companyID, "amount", amount.String())
	return wallet, nil
}
