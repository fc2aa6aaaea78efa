package services

import (
	"context"

	"github.com/tripvault/tripvault/internal/core/domain"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/models"
)

// CompanySvcFacade manages the two-level company hierarchy and its
// supporting org structures.
type CompanySvcFacade interface {
	// CreateCompany creates the root company.
	CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error)

	// CreateSubsidiary creates a subsidiary under the root company.
	CreateSubsidiary(ctx context.Context, req dto.CreateSubsidiaryRequest) (*domain.Company, error)

	// ListCompanies returns every company, root first.
	ListCompanies(ctx context.Context) ([]domain.Company, error)

	// ListSubsidiaries returns all subsidiaries with wallet figures.
	ListSubsidiaries(ctx context.Context) ([]models.SubsidiarySummary, error)

	// Departments.
	CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error)
	ListDepartments(ctx context.Context, companyID int64) ([]domain.Department, error)
	DeleteDepartment(ctx context.Context, departmentID int64) error

	// Storehouses.
	CreateStorehouse(ctx context.Context, req dto.CreateStorehouseRequest) (*domain.Storehouse, error)
	ListStorehouses(ctx context.Context, companyID int64) ([]domain.Storehouse, error)
}
