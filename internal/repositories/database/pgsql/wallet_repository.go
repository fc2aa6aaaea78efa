package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	"github.com/tripvault/tripvault/internal/models"
	"github.com/tripvault/tripvault/internal/utils/mapping"
)

// PgxWalletRepository owns the wallet rows and the append-only transaction
// log. Every allocation runs its read-check-write sequence inside one
// database transaction with the source wallet row locked, so concurrent
// allocations against the same wallet serialize and cannot both pass a
// capacity check on a stale balance.
type PgxWalletRepository struct {
	BaseRepository
}

// NewWalletRepository creates a new repository for wallet and transaction data.
func NewWalletRepository(pool PGXPool) portsrepo.WalletRepositoryFacade {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

// GetMainWallet retrieves the singleton main wallet row.
func (r *PgxWalletRepository) GetMainWallet(ctx context.Context) (*domain.MainWallet, error) {
	var m models.MainWallet
	err := r.Pool.QueryRow(ctx, `SELECT total_balance, allocated_balance FROM main_wallet LIMIT 1`).
		Scan(&m.TotalBalance, &m.AllocatedBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: main wallet", apperrors.ErrWalletNotFound)
		}
		return nil, fmt.Errorf("%w: failed to read main wallet: %v", apperrors.ErrInternal, err)
	}
	wallet := mapping.ToDomainMainWallet(m)
	return &wallet, nil
}

// GetCompanyWallet retrieves a company's wallet row.
func (r *PgxWalletRepository) GetCompanyWallet(ctx context.Context, companyID int64) (*domain.CompanyWallet, error) {
	var m models.CompanyWallet
	err := r.Pool.QueryRow(ctx,
		`SELECT company_id, allocated_amount, used_amount FROM company_wallets WHERE company_id = $1`, companyID).
		Scan(&m.CompanyID, &m.AllocatedAmount, &m.UsedAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company wallet %d", apperrors.ErrWalletNotFound, companyID)
		}
		return nil, fmt.Errorf("%w: failed to read company wallet %d: %v", apperrors.ErrInternal, companyID, err)
	}
	wallet := mapping.ToDomainCompanyWallet(m)
	return &wallet, nil
}

// GetEmployeeWallet retrieves an employee's wallet row.
func (r *PgxWalletRepository) GetEmployeeWallet(ctx context.Context, employeeID int64) (*domain.EmployeeWallet, error) {
	var m models.EmployeeWallet
	err := r.Pool.QueryRow(ctx,
		`SELECT employee_id, company_id, balance FROM employee_wallets WHERE employee_id = $1`, employeeID).
		Scan(&m.EmployeeID, &m.CompanyID, &m.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: employee wallet %d", apperrors.ErrWalletNotFound, employeeID)
		}
		return nil, fmt.Errorf("%w: failed to read employee wallet %d: %v", apperrors.ErrInternal, employeeID, err)
	}
	wallet := mapping.ToDomainEmployeeWallet(m)
	return &wallet, nil
}

// AllocateToCompany moves amount from the main wallet into the company's
// wallet. One transaction: the main wallet row is locked, the capacity check
// runs against the locked balances, the company wallet is upserted, the main
// wallet's allocated balance is bumped and a transaction record is appended.
func (r *PgxWalletRepository) AllocateToCompany(ctx context.Context, companyID int64, amount decimal.Decimal) (*domain.CompanyWallet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var main models.MainWallet
	err = tx.QueryRow(ctx, `SELECT total_balance, allocated_balance FROM main_wallet LIMIT 1 FOR UPDATE`).
		Scan(&main.TotalBalance, &main.AllocatedBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: main wallet", apperrors.ErrWalletNotFound)
		}
		return nil, fmt.Errorf("%w: failed to lock main wallet: %v", apperrors.ErrInternal, err)
	}

	if main.AllocatedBalance.Add(amount).GreaterThan(main.TotalBalance) {
		return nil, fmt.Errorf("%w: main wallet has %s unallocated, requested %s",
			apperrors.ErrInsufficientFunds, main.TotalBalance.Sub(main.AllocatedBalance), amount)
	}

	// Atomic upsert: two concurrent first-time allocations to the same
	// company cannot both insert.
	var cw models.CompanyWallet
	err = tx.QueryRow(ctx, `
		INSERT INTO company_wallets (company_id, allocated_amount, used_amount)
		VALUES ($1, $2, 0)
		ON CONFLICT (company_id)
		DO UPDATE SET allocated_amount = company_wallets.allocated_amount + EXCLUDED.allocated_amount
		RETURNING company_id, allocated_amount, used_amount`, companyID, amount).
		Scan(&cw.CompanyID, &cw.AllocatedAmount, &cw.UsedAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upsert company wallet %d: %v", apperrors.ErrInternal, companyID, err)
	}

	if _, err := tx.Exec(ctx, `UPDATE main_wallet SET allocated_balance = allocated_balance + $1`, amount); err != nil {
		return nil, fmt.Errorf("%w: failed to update main wallet: %v", apperrors.ErrInternal, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO transactions (from_level, from_id, to_level, to_id, amount, description)
		VALUES ('main', 1, 'company', $1, $2, $3)`,
		companyID, amount, "Allocated to subsidiary"); err != nil {
		return nil, fmt.Errorf("%w: failed to append transaction record: %v", apperrors.ErrInternal, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	wallet := mapping.ToDomainCompanyWallet(cw)
	return &wallet, nil
}

// AllocateToEmployee moves amount from the company wallet into the
// employee's wallet. One transaction: the company wallet row is locked
// (absent wallet fails, there is nothing to draw from), the capacity check
// runs against the locked figures, the employee wallet is upserted, the
// company's used amount is bumped and a transaction record is appended.
func (r *PgxWalletRepository) AllocateToEmployee(ctx context.Context, employeeID, companyID int64, amount decimal.Decimal) (*domain.EmployeeWallet, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	var cw models.CompanyWallet
	err = tx.QueryRow(ctx,
		`SELECT company_id, allocated_amount, used_amount FROM company_wallets WHERE company_id = $1 FOR UPDATE`,
		companyID).
		Scan(&cw.CompanyID, &cw.AllocatedAmount, &cw.UsedAmount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company wallet %d", apperrors.ErrWalletNotFound, companyID)
		}
		return nil, fmt.Errorf("%w: failed to lock company wallet %d: %v", apperrors.ErrInternal, companyID, err)
	}

	if cw.UsedAmount.Add(amount).GreaterThan(cw.AllocatedAmount) {
		return nil, fmt.Errorf("%w: company wallet %d has %s available, requested %s",
			apperrors.ErrInsufficientFunds, companyID, cw.AllocatedAmount.Sub(cw.UsedAmount), amount)
	}

	var ew models.EmployeeWallet
	err = tx.QueryRow(ctx, `
		INSERT INTO employee_wallets (employee_id, company_id, balance)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id)
		DO UPDATE SET balance = employee_wallets.balance + EXCLUDED.balance
		RETURNING employee_id, company_id, balance`, employeeID, companyID, amount).
		Scan(&ew.EmployeeID, &ew.CompanyID, &ew.Balance)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to upsert employee wallet %d: %v", apperrors.ErrInternal, employeeID, err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE company_wallets SET used_amount = used_amount + $1 WHERE company_id = $2`,
		amount, companyID); err != nil {
		return nil, fmt.Errorf("%w: failed to update company wallet %d: %v", apperrors.ErrInternal, companyID, err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO transactions (from_level, from_id, to_level, to_id, amount, description)
		VALUES ('company', $1, 'employee', $2, $3, $4)`,
		companyID, employeeID, amount, "Allocated to employee"); err != nil {
		return nil, fmt.Errorf("%w: failed to append transaction record: %v", apperrors.ErrInternal, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	wallet := mapping.ToDomainEmployeeWallet(ew)
	return &wallet, nil
}

// ListTransactions returns the full audit log, newest first.
func (r *PgxWalletRepository) ListTransactions(ctx context.Context) ([]domain.TransactionRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, from_level, from_id, to_level, to_id, amount, description, created_at
		FROM transactions
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transactions: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	records := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.TransactionID, &t.FromLevel, &t.FromID, &t.ToLevel, &t.ToID, &t.Amount, &t.Description, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction row: %v", apperrors.ErrInternal, err)
		}
		records = append(records, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating transaction rows: %v", apperrors.ErrInternal, err)
	}

	return mapping.ToDomainTransactionSlice(records), nil
}
