package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerLevel identifies one party of a fund movement.
type LedgerLevel string

const (
	LevelMain     LedgerLevel = "main"
	LevelCompany  LedgerLevel = "company"
	LevelEmployee LedgerLevel = "employee"
	LevelBooking  LedgerLevel = "booking"
)

// TransactionRecord is an immutable audit entry for one fund movement
// between two ledger parties. Records are only ever appended, never updated
// or deleted; they are the sole audit trail for all fund movement.
type TransactionRecord struct {
	TransactionID int64           `json:"transactionID"`
	FromLevel     LedgerLevel     `json:"fromLevel"`
	FromID        int64           `json:"fromID"`
	ToLevel       LedgerLevel     `json:"toLevel"`
	ToID          int64           `json:"toID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"createdAt"`
}
