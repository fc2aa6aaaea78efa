package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company is a companies row. ParentCompanyID is NULL for the root company.
type Company struct {
	CompanyID       int64     `db:"id"`
	Name            string    `db:"name"`
	ContactEmail    string    `db:"contact_email"`
	ParentCompanyID *int64    `db:"parent_company_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// SubsidiarySummary is a subsidiary joined with its wallet figures.
type SubsidiarySummary struct {
	CompanyID        int64           `db:"id"`
	Name             string          `db:"name"`
	AllocatedAmount  decimal.Decimal `db:"allocated_amount"`
	UsedAmount       decimal.Decimal `db:"used_amount"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	CreatedAt        time.Time       `db:"created_at"`
}

// Department is a departments row.
type Department struct {
	DepartmentID int64     `db:"id"`
	Name         string    `db:"name"`
	CompanyID    int64     `db:"company_id"`
	CreatedAt    time.Time `db:"created_at"`
}

// Storehouse is a storehouses row.
type Storehouse struct {
	StorehouseID int64     `db:"id"`
	Name         string    `db:"name"`
	Location     string    `db:"location"`
	CompanyID    int64     `db:"company_id"`
	CreatedAt    time.Time `db:"created_at"`
}
