package repositories

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// WalletReader defines read operations for wallet snapshots.
type WalletReader interface {
	// GetMainWallet retrieves the singleton main wallet.
	GetMainWallet(ctx context.Context) (*domain.MainWallet, error)

	// GetCompanyWallet retrieves a company's wallet. Returns
	// apperrors.ErrWalletNotFound if it has not been provisioned.
	GetCompanyWallet(ctx context.Context, companyID int64) (*domain.CompanyWallet, error)

	// GetEmployeeWallet retrieves an employee's wallet. Returns
	// apperrors.ErrWalletNotFound if it has not been provisioned.
	GetEmployeeWallet(ctx context.Context, employeeID int64) (*domain.EmployeeWallet, error)
}

// WalletAllocator defines the atomic downward fund movements. Each call is
// one database transaction: the source wallet row is locked, the capacity
// check runs against the locked row, the target wallet is upserted and a
// transaction record is appended. Partial application is not possible.
type WalletAllocator interface {
	// AllocateToCompany moves amount from the main wallet into the company's
	// wallet. Returns apperrors.ErrInsufficientFunds if the main wallet's
	// unallocated capacity is smaller than amount.
	AllocateToCompany(ctx context.Context, companyID int64, amount decimal.Decimal) (*domain.CompanyWallet, error)

	// AllocateToEmployee moves amount from the company wallet into the
	// employee's wallet. Returns apperrors.ErrWalletNotFound if the company
	// wallet is absent and apperrors.ErrInsufficientFunds if its remaining
	// capacity is smaller than amount.
	AllocateToEmployee(ctx context.Context, employeeID, companyID int64, amount decimal.Decimal) (*domain.EmployeeWallet, error)
}

// TransactionLogReader reads the append-only audit trail.
type TransactionLogReader interface {
	// ListTransactions returns the full transaction log, newest first.
	ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletAllocator
	TransactionLogReader
}
