package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
)

// NewRepositoryProvider builds every Postgres repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:    NewUserRepository(dbPool),
		CompanyRepo: NewCompanyRepository(dbPool),
		WalletRepo:  NewWalletRepository(dbPool),
		BookingRepo: NewBookingRepository(dbPool),
		CatalogRepo: NewCatalogRepository(dbPool),
	}
}
