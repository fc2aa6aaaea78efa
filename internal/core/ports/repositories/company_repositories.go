package repositories

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/models"
)

// CompanyReader defines read operations for company hierarchy data.
type CompanyReader interface {
	// FindCompanyByID retrieves a company or subsidiary.
	FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error)

	// FindRootCompany retrieves the root of the hierarchy.
	FindRootCompany(ctx context.Context) (*domain.Company, error)

	// ListCompanies returns every company, root first.
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// ListSubsidiaries returns all subsidiaries with their wallet figures
	// joined in; subsidiaries without a wallet read as zero.
	ListSubsidiaries(ctx context.Context) ([]models.SubsidiarySummary, error)
}

// CompanyWriter defines write operations for company hierarchy data.
type CompanyWriter interface {
	// SaveCompany persists a company or subsidiary and returns it with the
	// assigned identifier.
	SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error)
}

// DepartmentRepository manages departments inside a company.
type DepartmentRepository interface {
	SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error)
	ListDepartmentsByCompany(ctx context.Context, companyID int64) ([]domain.Department, error)
	DeleteDepartment(ctx context.Context, departmentID int64) error
}

// StorehouseRepository manages travel desk storehouses.
type StorehouseRepository interface {
	SaveStorehouse(ctx context.Context, storehouse domain.Storehouse) (*domain.Storehouse, error)
	ListStorehousesByCompany(ctx context.Context, companyID int64) ([]domain.Storehouse, error)
}

// CompanyRepositoryFacade combines all org-structure repository interfaces.
type CompanyRepositoryFacade interface {
	CompanyReader
	CompanyWriter
	DepartmentRepository
	StorehouseRepository
}
