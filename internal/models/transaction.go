package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a transactions row. The table is append-only.
type Transaction struct {
	TransactionID int64           `db:"id"`
	FromLevel     string          `db:"from_level"`
	FromID        int64           `db:"from_id"`
	ToLevel       string          `db:"to_level"`
	ToID          int64           `db:"to_id"`
	Amount        decimal.Decimal `db:"amount"`
	Description   string          `db:"description"`
	CreatedAt     time.Time       `db:"created_at"`
}
