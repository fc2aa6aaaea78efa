package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	portssvc "github.com/tripvault/tripvault/internal/core/ports/services"
	"github.com/tripvault/tripvault/internal/dto"
	"github.com/tripvault/tripvault/internal/middleware"
	"github.com/tripvault/tripvault/internal/models"
)

type companyService struct {
	companyRepo portsrepo.CompanyRepositoryFacade
}

// NewCompanyService creates the org-structure service.
func NewCompanyService(companyRepo portsrepo.CompanyRepositoryFacade) portssvc.CompanySvcFacade {
	return &companyService{companyRepo: companyRepo}
}

var _ portssvc.CompanySvcFacade = (*companyService)(nil)

// CreateCompany creates the root company. The hierarchy holds exactly one
// root; a second attempt fails with ErrDuplicate.
func (s *companyService) CreateCompany(ctx context.Context, req dto.CreateCompanyRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.companyRepo.FindRootCompany(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for root company: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: root company already exists", apperrors.ErrDuplicate)
	}

	company := domain.Company{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
	}
	saved, err := s.companyRepo.SaveCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	logger.Info("root company created", "company_id", saved.CompanyID, "name", saved.Name)
	return saved, nil
}

// CreateSubsidiary creates a subsidiary under the root company.
func (s *companyService) CreateSubsidiary(ctx context.Context, req dto.CreateSubsidiaryRequest) (*domain.Company, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	root, err := s.companyRepo.FindRootCompany(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find root company: %w", err)
	}

	subsidiary := domain.Company{
		Name:            req.Name,
		ContactEmail:    req.ContactEmail,
		ParentCompanyID: &root.CompanyID,
	}
	saved, err := s.companyRepo.SaveCompany(ctx, subsidiary)
	if err != nil {
		return nil, fmt.Errorf("failed to create subsidiary: %w", err)
	}

	logger.Info("subsidiary created", "company_id", saved.CompanyID, "name", saved.Name)
	return saved, nil
}

func (s *companyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) ListSubsidiaries(ctx context.Context) ([]models.SubsidiarySummary, error) {
	summaries, err := s.companyRepo.ListSubsidiaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list subsidiaries: %w", err)
	}
	return summaries, nil
}

func (s *companyService) CreateDepartment(ctx context.Context, req dto.CreateDepartmentRequest) (*domain.Department, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to verify company %d: %w", req.CompanyID, err)
	}

	department := domain.Department{Name: req.Name, CompanyID: req.CompanyID}
	saved, err := s.companyRepo.SaveDepartment(ctx, department)
	if err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return saved, nil
}

func (s *companyService) ListDepartments(ctx context.Context, companyID int64) ([]domain.Department, error) {
	departments, err := s.companyRepo.ListDepartmentsByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments for company %d: %w", companyID, err)
	}
	return departments, nil
}

func (s *companyService) DeleteDepartment(ctx context.Context, departmentID int64) error {
	if err := s.companyRepo.DeleteDepartment(ctx, departmentID); err != nil {
		return fmt.Errorf("failed to delete department %d: %w", departmentID, err)
	}
	return nil
}

func (s *companyService) CreateStorehouse(ctx context.Context, req dto.CreateStorehouseRequest) (*domain.Storehouse, error) {
	if _, err := s.companyRepo.FindCompanyByID(ctx, req.CompanyID); err != nil {
		return nil, fmt.Errorf("failed to verify company %d: %w", req.CompanyID, err)
	}

	storehouse := domain.Storehouse{Name: req.Name, Location: req.Location, CompanyID: req.CompanyID}
	saved, err := s.companyRepo.SaveStorehouse(ctx, storehouse)
	if err != nil {
		return nil, fmt.Errorf("failed to create storehouse: %w", err)
	}
	return saved, nil
}

func (s *companyService) ListStorehouses(ctx context.Context, companyID int64) ([]domain.Storehouse, error) {
	storehouses, err := s.companyRepo.ListStorehousesByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list storehouses for company %d: %w", companyID, err)
	}
	return storehouses, nil
}
