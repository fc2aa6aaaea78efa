package models

import "time"

// User is a users row.
type User struct {
	UserID       int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CompanyID    int64     `db:"company_id"`
	SubsidiaryID *int64    `db:"subsidiary_id"`
	ManagerID    *int64    `db:"manager_id"`
	CreatedAt    time.Time `db:"created_at"`
}
