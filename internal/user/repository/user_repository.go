package repository

import (
	"context"
	"database/sql"
	"fmt"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
)

type MySQLUserRepository struct {
	db *sql.DB
}

func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}

const userColumns = `id, full_name, email, phone, address, is_active, created_at, last_login_at`

func (r *MySQLUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER(?)`

	return r.queryUser(ctx, query, email)
}

func (r *MySQLUserRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER(?) AND is_active = 1`

	return r.queryUser(ctx, query, email)
}

func (r *MySQLUserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`

	user, err := r.queryUser(ctx, query, id)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); ok {
			return nil, errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", id))
		}
		return nil, err
	}
	return user, nil
}

func (r *MySQLUserRepository) FindAllActive(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE is_active = 1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.FullName, &user.Email, &user.Phone, &user.Address,
			&user.IsActive, &user.CreatedAt, &user.LastLoginAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating users: %w", err)
	}

	return users, nil
}

func (r *MySQLUserRepository) Insert(ctx context.Context, user domain.User) (uint, error) {
	query := `
		INSERT INTO users (full_name, email, phone, address, is_active, last_login_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		user.FullName, user.Email, user.Phone, user.Address, user.IsActive, user.LastLoginAt,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting user: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLUserRepository) Update(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET full_name = ?, phone = ?, address = ?, last_login_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		user.FullName, user.Phone, user.Address, user.LastLoginAt, user.ID,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("user with id %d not found", user.ID))
	}

	return nil
}

// SoftDelete flips the active flag. Existence is checked by the caller;
// deactivating an already-inactive user is a no-op.
func (r *MySQLUserRepository) SoftDelete(ctx context.Context, id uint) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE users SET is_active = 0 WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deactivating user: %w", err)
	}
	return nil
}

func (r *MySQLUserRepository) queryUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.FullName, &user.Email, &user.Phone, &user.Address,
		&user.IsActive, &user.CreatedAt, &user.LastLoginAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("querying user: %w", err)
	}

	return &user, nil
}
