package repository

import (
	"context"
	"database/sql"
	"fmt"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
)

type MySQLContactRepository struct {
	db *sql.DB
}

func NewMySQLContactRepository(db *sql.DB) *MySQLContactRepository {
	return &MySQLContactRepository{db: db}
}

const contactColumns = `id, first_name, last_name, email, phone, subject, message,
	       newsletter, is_read, is_resolved, created_at, updated_at`

func (r *MySQLContactRepository) Insert(ctx context.Context, contact domain.Contact) (uint, error) {
	query := `
		INSERT INTO contacts (first_name, last_name, email, phone, subject, message, newsletter)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.Subject, contact.Message, contact.Newsletter,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting contact: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLContactRepository) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`

	var contact domain.Contact
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email,
		&contact.Phone, &contact.Subject, &contact.Message, &contact.Newsletter,
		&contact.IsRead, &contact.IsResolved, &contact.CreatedAt, &contact.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("contact with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying contact by id: %w", err)
	}

	return &contact, nil
}

func (r *MySQLContactRepository) FindAll(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`

	return r.queryContacts(ctx, query)
}

func (r *MySQLContactRepository) FindUnread(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE is_read = 0 ORDER BY created_at DESC`

	return r.queryContacts(ctx, query)
}

func (r *MySQLContactRepository) SetRead(ctx context.Context, id uint) error {
	return r.setFlag(ctx, `UPDATE contacts SET is_read = 1 WHERE id = ?`, id)
}

func (r *MySQLContactRepository) SetResolved(ctx context.Context, id uint) error {
	return r.setFlag(ctx, `UPDATE contacts SET is_resolved = 1 WHERE id = ?`, id)
}

func (r *MySQLContactRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting contact: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("contact with id %d not found", id))
	}

	return nil
}

// setFlag is idempotent; existence is checked by the caller.
func (r *MySQLContactRepository) setFlag(ctx context.Context, query string, id uint) error {
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("updating contact flag: %w", err)
	}
	return nil
}

func (r *MySQLContactRepository) queryContacts(ctx context.Context, query string) ([]domain.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var contacts []domain.Contact
	for rows.Next() {
		var contact domain.Contact
		err := rows.Scan(
			&contact.ID, &contact.FirstName, &contact.LastName, &contact.Email,
			&contact.Phone, &contact.Subject, &contact.Message, &contact.Newsletter,
			&contact.IsRead, &contact.IsResolved, &contact.CreatedAt, &contact.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}

	return contacts, nil
}
