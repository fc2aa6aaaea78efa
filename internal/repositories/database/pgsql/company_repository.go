package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tripvault/tripvault/internal/apperrors"
	"github.com/tripvault/tripvault/internal/core/domain"
	portsrepo "github.com/tripvault/tripvault/internal/core/ports/repositories"
	"github.com/tripvault/tripvault/internal/models"
	"github.com/tripvault/tripvault/internal/utils/mapping"
)

const companyColumns = `id, name, contact_email, parent_company_id, created_at`

// PgxCompanyRepository provides org-structure persistence backed by Postgres.
type PgxCompanyRepository struct {
	BaseRepository
}

// NewCompanyRepository creates a new repository for company hierarchy data.
func NewCompanyRepository(pool PGXPool) portsrepo.CompanyRepositoryFacade {
	return &PgxCompanyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CompanyRepositoryFacade = (*PgxCompanyRepository)(nil)

func scanCompany(row pgx.Row) (*models.Company, error) {
	var m models.Company
	err := row.Scan(&m.CompanyID, &m.Name, &m.ContactEmail, &m.ParentCompanyID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCompany persists a company or subsidiary row.
func (r *PgxCompanyRepository) SaveCompany(ctx context.Context, company domain.Company) (*domain.Company, error) {
	row := r.Pool.QueryRow(ctx, `
		INSERT INTO companies (name, contact_email, parent_company_id)
		VALUES ($1, $2, $3)
		RETURNING `+companyColumns,
		company.Name, company.ContactEmail, company.ParentCompanyID)

	m, err := scanCompany(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: company %s already exists", apperrors.ErrDuplicate, company.Name)
		}
		return nil, fmt.Errorf("%w: failed to insert company: %v", apperrors.ErrInternal, err)
	}

	result := mapping.ToDomainCompany(*m)
	return &result, nil
}

// FindCompanyByID retrieves a company or subsidiary.
func (r *PgxCompanyRepository) FindCompanyByID(ctx context.Context, companyID int64) (*domain.Company, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, companyID)
	m, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: company %d", apperrors.ErrNotFound, companyID)
		}
		return nil, fmt.Errorf("%w: failed to find company %d: %v", apperrors.ErrInternal, companyID, err)
	}
	result := mapping.ToDomainCompany(*m)
	return &result, nil
}

// FindRootCompany retrieves the single company with no parent.
func (r *PgxCompanyRepository) FindRootCompany(ctx context.Context) (*domain.Company, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE parent_company_id IS NULL ORDER BY id LIMIT 1`)
	m, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: root company", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find root company: %v", apperrors.ErrInternal, err)
	}
	result := mapping.ToDomainCompany(*m)
	return &result, nil
}

// ListCompanies returns every company, root first.
func (r *PgxCompanyRepository) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query companies: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	companies := []domain.Company{}
	for rows.Next() {
		m, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan company row: %v", apperrors.ErrInternal, err)
		}
		companies = append(companies, mapping.ToDomainCompany(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating company rows: %v", apperrors.ErrInternal, err)
	}
	return companies, nil
}

// ListSubsidiaries returns all subsidiaries with their wallet figures joined
// in. Subsidiaries that have never received an allocation read as zero.
func (r *PgxCompanyRepository) ListSubsidiaries(ctx context.Context) ([]models.SubsidiarySummary, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT c.id, c.name,
		       COALESCE(w.allocated_amount, 0) AS allocated_amount,
		       COALESCE(w.used_amount, 0) AS used_amount,
		       COALESCE(w.allocated_amount - w.used_amount, 0) AS available_balance,
		       c.created_at
		FROM companies c
		LEFT JOIN company_wallets w ON w.company_id = c.id
		WHERE c.parent_company_id IS NOT NULL
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query subsidiaries: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	summaries := []models.SubsidiarySummary{}
	for rows.Next() {
		var m models.SubsidiarySummary
		err := rows.Scan(&m.CompanyID, &m.Name, &m.AllocatedAmount, &m.UsedAmount, &m.AvailableBalance, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan subsidiary row: %v", apperrors.ErrInternal, err)
		}
		summaries = append(summaries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating subsidiary rows: %v", apperrors.ErrInternal, err)
	}
	return summaries, nil
}

// SaveDepartment persists a department row.
func (r *PgxCompanyRepository) SaveDepartment(ctx context.Context, department domain.Department) (*domain.Department, error) {
	var m models.Department
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO departments (name, company_id)
		VALUES ($1, $2)
		RETURNING id, name, company_id, created_at`,
		department.Name, department.CompanyID).
		Scan(&m.DepartmentID, &m.Name, &m.CompanyID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert department: %v", apperrors.ErrInternal, err)
	}
	result := mapping.ToDomainDepartment(m)
	return &result, nil
}

// ListDepartmentsByCompany returns a company's departments.
func (r *PgxCompanyRepository) ListDepartmentsByCompany(ctx context.Context, companyID int64) ([]domain.Department, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, name, company_id, created_at FROM departments WHERE company_id = $1 ORDER BY id`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query departments: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	departments := []domain.Department{}
	for rows.Next() {
		var m models.Department
		if err := rows.Scan(&m.DepartmentID, &m.Name, &m.CompanyID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan department row: %v", apperrors.ErrInternal, err)
		}
		departments = append(departments, mapping.ToDomainDepartment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating department rows: %v", apperrors.ErrInternal, err)
	}
	return departments, nil
}

// DeleteDepartment removes a department row.
func (r *PgxCompanyRepository) DeleteDepartment(ctx context.Context, departmentID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM departments WHERE id = $1`, departmentID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete department %d: %v", apperrors.ErrInternal, departmentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: department %d", apperrors.ErrNotFound, departmentID)
	}
	return nil
}

// SaveStorehouse persists a storehouse row.
func (r *PgxCompanyRepository) SaveStorehouse(ctx context.Context, storehouse domain.Storehouse) (*domain.Storehouse, error) {
	var m models.Storehouse
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO storehouses (name, location, company_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, location, company_id, created_at`,
		storehouse.Name, storehouse.Location, storehouse.CompanyID).
		Scan(&m.StorehouseID, &m.Name, &m.Location, &m.CompanyID, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to insert storehouse: %v", apperrors.ErrInternal, err)
	}
	result := mapping.ToDomainStorehouse(m)
	return &result, nil
}

// ListStorehousesByCompany returns a company's storehouses.
func (r *PgxCompanyRepository) ListStorehousesByCompany(ctx context.Context, companyID int64) ([]domain.Storehouse, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT id, name, location, company_id, created_at FROM storehouses WHERE company_id = $1 ORDER BY id`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query storehouses: %v", apperrors.ErrInternal, err)
	}
	defer rows.Close()

	storehouses := []domain.Storehouse{}
	for rows.Next() {
		var m models.Storehouse
		if err := rows.Scan(&m.StorehouseID, &m.Name, &m.Location, &m.CompanyID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: failed to scan storehouse row: %v", apperrors.ErrInternal, err)
		}
		storehouses = append(storehouses, mapping.ToDomainStorehouse(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating storehouse rows: %v", apperrors.ErrInternal, err)
	}
	return storehouses, nil
}
