package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// User is the stored account record, including the password hash. Only
// this package sees the hash; API types carry the public fields.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

// CheckEmailExists reports whether an account with the email exists.
func (db *DB) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// CreateUser inserts an account and returns its id.
func (db *DB) CreateUser(ctx context.Context, name, email, passwordHash, role string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		name, email, passwordHash, role,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

// GetUser retrieves an account by id; nil when not found.
func (db *DB) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return db.scanUser(ctx,
		`SELECT id, name, email, role, password_hash, created_at FROM users WHERE id = $1`, id)
}

// GetUserByEmail retrieves an account by email; nil when not found.
func (db *DB) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return db.scanUser(ctx,
		`SELECT id, name, email, role, password_hash, created_at FROM users WHERE email = $1`, email)
}

func (db *DB) scanUser(ctx context.Context, query string, arg any) (*User, error) {
	var u User
	err := db.pool.QueryRow(ctx, query, arg).
		Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}

// BootstrapAdmin creates the initial admin account when no account with
// that email exists yet. Safe to call on every startup.
func (db *DB) BootstrapAdmin(ctx context.Context, name, email, passwordHash string) error {
	exists, err := db.CheckEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if _, err := db.CreateUser(ctx, name, email, passwordHash, "admin"); err != nil {
		return fmt.Errorf("failed to bootstrap admin: %w", err)
	}
	return nil
}
