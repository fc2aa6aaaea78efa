package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// AllocateToCompanyRequest moves funds main wallet -> company wallet.
type AllocateToCompanyRequest struct {
	CompanyID int64           `json:"company_id" binding:"required"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
}

// AllocateToEmployeeRequest moves funds company wallet -> employee wallet.
type AllocateToEmployeeRequest struct {
	EmployeeID int64           `json:"employee_id" binding:"required"`
	CompanyID  int64           `json:"company_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// MainWalletResponse is a snapshot of the root fund pool.
type MainWalletResponse struct {
	TotalBalance     decimal.Decimal `json:"total_balance"`
	AllocatedBalance decimal.Decimal `json:"allocated_balance"`
	Available        decimal.Decimal `json:"available"`
}

// CompanyWalletResponse is a snapshot of a subsidiary's wallet.
type CompanyWalletResponse struct {
	CompanyID       int64           `json:"company_id"`
	AllocatedAmount decimal.Decimal `json:"allocated_amount"`
	UsedAmount      decimal.Decimal `json:"used_amount"`
	Available       decimal.Decimal `json:"available"`
}

// EmployeeWalletResponse is a snapshot of an employee's wallet.
type EmployeeWalletResponse struct {
	EmployeeID int64           `json:"employee_id"`
	CompanyID  int64           `json:"company_id"`
	Balance    decimal.Decimal `json:"balance"`
}

// TransactionResponse is one audit-log entry.
type TransactionResponse struct {
	TransactionID int64           `json:"id"`
	FromLevel     string          `json:"from_level"`
	FromID        int64           `json:"from_id"`
	ToLevel       string          `json:"to_level"`
	ToID          int64           `json:"to_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToMainWalletResponse converts a domain main wallet to its response DTO.
func ToMainWalletResponse(w domain.MainWallet) MainWalletResponse {
	return MainWalletResponse{
		TotalBalance:     w.TotalBalance,
		AllocatedBalance: w.AllocatedBalance,
		Available:        w.Available(),
	}
}

// ToCompanyWalletResponse converts a domain company wallet to its response DTO.
func ToCompanyWalletResponse(w domain.CompanyWallet) CompanyWalletResponse {
	return CompanyWalletResponse{
		CompanyID:       w.CompanyID,
		AllocatedAmount: w.AllocatedAmount,
		UsedAmount:      w.UsedAmount,
		Available:       w.Available(),
	}
}

// ToEmployeeWalletResponse converts a domain employee wallet to its response DTO.
func ToEmployeeWalletResponse(w domain.EmployeeWallet) EmployeeWalletResponse {
	return EmployeeWalletResponse{
		EmployeeID: w.EmployeeID,
		CompanyID:  w.CompanyID,
		Balance:    w.Balance,
	}
}

// ToTransactionResponseSlice converts domain transaction records to response DTOs.
func ToTransactionResponseSlice(records []domain.TransactionRecord) []TransactionResponse {
	out := make([]TransactionResponse, len(records))
	for i, r := range records {
		out[i] = TransactionResponse{
			TransactionID: r.TransactionID,
			FromLevel:     string(r.FromLevel),
			FromID:        r.FromID,
			ToLevel:       string(r.ToLevel),
			ToID:          r.ToID,
			Amount:        r.Amount,
			Description:   r.Description,
			CreatedAt:     r.CreatedAt,
		}
	}
	return out
}
