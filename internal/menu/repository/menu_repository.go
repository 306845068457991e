package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

const menuColumns = `id, name, description, price, category, image, rating,
	       is_popular, is_available, created_at, updated_at`

func (r *MySQLMenuRepository) FindAllAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE is_available = 1 ORDER BY category, name`

	return r.queryItems(ctx, query)
}

func (r *MySQLMenuRepository) FindByID(ctx context.Context, id uint) (*domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ?`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.Image, &item.Rating, &item.IsPopular, &item.IsAvailable,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLMenuRepository) FindByCategory(ctx context.Context, category string) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items
		WHERE LOWER(category) = LOWER(?) AND is_available = 1 ORDER BY name`

	return r.queryItems(ctx, query, category)
}

func (r *MySQLMenuRepository) FindPopular(ctx context.Context, limit int) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items
		WHERE is_popular = 1 AND is_available = 1 ORDER BY rating DESC LIMIT ?`

	return r.queryItems(ctx, query, limit)
}

func (r *MySQLMenuRepository) Search(ctx context.Context, term string) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items
		WHERE is_available = 1
		  AND (LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?)
		ORDER BY name`

	pattern := "%" + strings.ToLower(term) + "%"
	return r.queryItems(ctx, query, pattern, pattern, pattern)
}

func (r *MySQLMenuRepository) Insert(ctx context.Context, item domain.MenuItem) (uint, error) {
	query := `
		INSERT INTO menu_items (name, description, price, category, image, rating, is_popular, is_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.Category,
		item.Image, item.Rating, item.IsPopular, item.IsAvailable,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting menu item: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLMenuRepository) Update(ctx context.Context, item domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = ?, description = ?, price = ?, category = ?, image = ?,
		    rating = ?, is_popular = ?, is_available = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.Image,
		item.Rating, item.IsPopular, item.IsAvailable, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", item.ID))
	}

	return nil
}

func (r *MySQLMenuRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item with id %d not found", id))
	}

	return nil
}

func (r *MySQLMenuRepository) queryItems(ctx context.Context, query string, args ...any) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.Image, &item.Rating, &item.IsPopular, &item.IsAvailable,
			&item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu items: %w", err)
	}

	return items, nil
}
