package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, order_number, user_id, customer_name, customer_email, customer_phone,
	       delivery_address, total_amount, status, notes, order_date, delivery_date,
	       created_at, updated_at`

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error) {
	query := `
		INSERT INTO orders (order_number, user_id, customer_name, customer_email, customer_phone,
		                    delivery_address, total_amount, status, notes, order_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.OrderNumber, order.UserID, order.CustomerName, order.CustomerEmail,
		order.CustomerPhone, order.DeliveryAddress, order.TotalAmount, order.Status,
		order.Notes, order.OrderDate,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, orderNumber))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", orderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by number: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC`

	return r.queryOrders(ctx, query)
}

func (r *MySQLOrderRepository) FindByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE LOWER(status) = LOWER(?) ORDER BY order_date DESC`

	return r.queryOrders(ctx, query, status)
}

func (r *MySQLOrderRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY order_date DESC`

	return r.queryOrders(ctx, query, userID)
}

// UpdateStatus overwrites the status unconditionally. A non-nil deliveryDate
// is stamped alongside; a nil one leaves the stored value untouched.
func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id uint, status string, deliveryDate *time.Time) error {
	var result sql.Result
	var err error

	if deliveryDate != nil {
		query := `UPDATE orders SET status = ?, delivery_date = ? WHERE id = ?`
		result, err = r.db.ExecContext(ctx, query, status, deliveryDate, id)
	} else {
		query := `UPDATE orders SET status = ? WHERE id = ?`
		result, err = r.db.ExecContext(ctx, query, status, id)
	}
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) Delete(ctx context.Context, id uint) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}

func (r *MySQLOrderRepository) queryOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, *order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.CustomerName,
		&order.CustomerEmail, &order.CustomerPhone, &order.DeliveryAddress,
		&order.TotalAmount, &order.Status, &order.Notes, &order.OrderDate,
		&order.DeliveryDate, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
