package models

import (
	"github.com/shopspring/decimal"
)

// MainWallet is the singleton main_wallet row.
type MainWallet struct {
	TotalBalance     decimal.Decimal `db:"total_balance"`
	AllocatedBalance decimal.Decimal `db:"allocated_balance"`
}

// CompanyWallet is a company_wallets row, one per company/subsidiary.
// Created lazily on first allocation.
type CompanyWallet struct {
	CompanyID       int64           `db:"company_id"`
	AllocatedAmount decimal.Decimal `db:"allocated_amount"`
	UsedAmount      decimal.Decimal `db:"used_amount"`
}

// EmployeeWallet is an employee_wallets row, one per employee.
// Created lazily on first allocation.
type EmployeeWallet struct {
	EmployeeID int64           `db:"employee_id"`
	CompanyID  int64           `db:"company_id"`
	Balance    decimal.Decimal `db:"balance"`
}
