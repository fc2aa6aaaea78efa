package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// WalletReaderSvc defines read operations for wallet snapshots.
type WalletReaderSvc interface {
	// GetMainWallet retrieves the singleton main wallet.
	GetMainWallet(ctx context.Context) (*domain.MainWallet, error)

	// GetCompanyWallet retrieves a company wallet; an unprovisioned wallet
	// reads as a zero-valued snapshot.
	GetCompanyWallet(ctx context.Context, companyID int64) (*domain.CompanyWallet, error)

	// GetEmployeeWallet retrieves an employee wallet; an unprovisioned
	// wallet reads as a zero-valued snapshot.
	GetEmployeeWallet(ctx context.Context, employeeID int64) (*domain.EmployeeWallet, error)

	// ListTransactions returns the full audit log, newest first.
	ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error)
}

// WalletAllocatorSvc defines the downward fund movements of the hierarchy.
type WalletAllocatorSvc interface {
	// AllocateToCompany moves amount main wallet -> company wallet.
	AllocateToCompany(ctx context.Context, companyID int64, amount decimal.Decimal) (*domain.CompanyWallet, error)

	// AllocateToEmployee moves amount company wallet -> employee wallet.
	AllocateToEmployee(ctx context.Context, employeeID, companyID int64, amount decimal.Decimal) (*domain.EmployeeWallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces.
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletAllocatorSvc
}
