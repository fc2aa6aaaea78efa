package domain

import (
	"github.com/shopspring/decimal"
)

// MainWallet is the single root fund pool for the whole organization.
// Invariant: AllocatedBalance <= TotalBalance.
type MainWallet struct {
	TotalBalance     decimal.Decimal `json:"totalBalance"`
	AllocatedBalance decimal.Decimal `json:"allocatedBalance"`
}

// Available returns the portion of the pool not yet allocated downward.
func (w MainWallet) Available() decimal.Decimal {
	return w.TotalBalance.Sub(w.AllocatedBalance)
}

// CompanyWallet is a subsidiary's sub-pool funded from the main wallet.
// AllocatedAmount is what it has received, UsedAmount what it has passed on
// to employees. Invariant: UsedAmount <= AllocatedAmount.
type CompanyWallet struct {
	CompanyID       int64           `json:"companyID"`
	AllocatedAmount decimal.Decimal `json:"allocatedAmount"`
	UsedAmount      decimal.Decimal `json:"usedAmount"`
}

// Available returns the capacity left for employee allocations.
func (w CompanyWallet) Available() decimal.Decimal {
	return w.AllocatedAmount.Sub(w.UsedAmount)
}

// EmployeeWallet is an individual's spendable balance.
// Invariant: Balance >= 0.
type EmployeeWallet struct {
	EmployeeID int64           `json:"employeeID"`
	CompanyID  int64           `json:"companyID"`
	Balance    decimal.Decimal `json:"balance"`
}
