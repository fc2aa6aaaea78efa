package mapping

import (
	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/models"
)

// ToDomainMainWallet converts the singleton main_wallet row.
func ToDomainMainWallet(m models.MainWallet) domain.MainWallet {
	return domain.MainWallet{
		TotalBalance:     m.TotalBalance,
		AllocatedBalance: m.AllocatedBalance,
	}
}

// ToDomainCompanyWallet converts a company_wallets row.
func ToDomainCompanyWallet(m models.CompanyWallet) domain.CompanyWallet {
	return domain.CompanyWallet{
		CompanyID:       m.CompanyID,
		AllocatedAmount: m.AllocatedAmount,
		UsedAmount:      m.UsedAmount,
	}
}

// ToDomainEmployeeWallet converts an employee_wallets row.
func ToDomainEmployeeWallet(m models.EmployeeWallet) domain.EmployeeWallet {
	return domain.EmployeeWallet{
		EmployeeID: m.EmployeeID,
		CompanyID:  m.CompanyID,
		Balance:    m.Balance,
	}
}

// ToDomainTransaction converts a transactions row.
func ToDomainTransaction(m models.Transaction) domain.TransactionRecord {
	return domain.TransactionRecord{
		TransactionID: m.TransactionID,
		FromLevel:     domain.LedgerLevel(m.FromLevel),
		FromID:        m.FromID,
		ToLevel:       domain.LedgerLevel(m.ToLevel),
		ToID:          m.ToID,
		Amount:        m.Amount,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainTransactionSlice converts a slice of transactions rows.
func ToDomainTransactionSlice(ms []models.Transaction) []domain.TransactionRecord {
	out := make([]domain.TransactionRecord, len(ms))
	for i, m := range ms {
		out[i] = ToDomainTransaction(m)
	}
	return out
}
