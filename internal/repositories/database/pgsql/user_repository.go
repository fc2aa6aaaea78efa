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

const uniqueViolationCode = "23505"

const userColumns = `id, name, email, password_hash, role, company_id, subsidiary_id, manager_id, created_at`

// PgxUserRepository provides user persistence backed by Postgres.
type PgxUserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new repository for user data.
func NewUserRepository(pool PGXPool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(&m.UserID, &m.Name, &m.Email, &m.PasswordHash, &m.Role,
		&m.CompanyID, &m.SubsidiaryID, &m.ManagerID, &m.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser persists a new user row. A unique violation on the email column is
// reported as ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role, company_id, subsidiary_id, manager_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+userColumns,
		user.Name, user.Email, user.PasswordHash, string(user.Role),
		user.CompanyID, user.SubsidiaryID, user.ManagerID)

	m, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, fmt.Errorf("%w: email %s already registered", apperrors.ErrDuplicate, user.Email)
		}
		return nil, fmt.Errorf("%w: failed to insert user: %v", apperrors.ErrInternal, err)
	}

	result := mapping.ToDomainUser(*m)
	return &result, nil
}

// FindUserByID retrieves a user by identifier.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
	m, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: failed to find user %d: %v", apperrors.ErrInternal, userID, err)
	}
	result := mapping.ToDomainUser(*m)
	return &result, nil
}

// FindUserByEmail retrieves a user by their unique email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	m, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user with email %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("%w: failed to find user by email: %v", apperrors.ErrInternal, err)
	}
	result := mapping.ToDomainUser(*m)
	return &result, nil
}

// FindManagerID resolves the approving manager for a user. A user without a
// manager yields a nil id and no error.
func (r *PgxUserRepository) FindManagerID(ctx context.Context, userID int64) (*int64, error) {
	var managerID *int64
	err := r.Pool.QueryRow(ctx, `SELECT manager_id FROM users WHERE id = $1`, userID).Scan(&managerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("%w: failed to resolve manager for user %d: %v", apperrors.ErrInternal, userID, err)
	}
	return managerID, nil
}

// ListUsersByCompany returns all users belonging to a company, newest first.
func (r *PgxUserRepository) ListUsersByCompany(ctx context.Context, companyID int64) ([]domain.User, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE company_id = $1 OR subsidiary_id = $1 ORDER BY id DESC`,
		companyID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query users for company %d: %v", apperrors.ErrInternal, companyID, err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan user row: %v", apperrors.ErrInternal, err)
		}
		users = append(users, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: error iterating user rows: %v", apperrors.ErrInternal, err)
	}

	return mapping.ToDomainUserSlice(users), nil
}
