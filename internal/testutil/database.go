package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Expects a local MySQL
// with a 'foodiexpress_test' schema; tests skip when it is unavailable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/foodiexpress_test?parseTime=true&loc=UTC&clientFoundRows=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB removes test rows. Children first to satisfy foreign keys.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_items", "orders", "menu_items", "users", "contacts"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the integration tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createMenuItems := `
	CREATE TABLE IF NOT EXISTS menu_items (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description VARCHAR(500) NOT NULL DEFAULT '',
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(50) NOT NULL,
		image VARCHAR(500) NOT NULL DEFAULT '',
		rating DECIMAL(3,1) NOT NULL DEFAULT 0,
		is_popular TINYINT(1) NOT NULL DEFAULT 0,
		is_available TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_category (category),
		INDEX idx_popular (is_popular)
	)`

	createUsers := `
	CREATE TABLE IF NOT EXISTS users (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		full_name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		address VARCHAR(500) NOT NULL DEFAULT '',
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_login_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE INDEX idx_email (email)
	)`

	createOrders := `
	CREATE TABLE IF NOT EXISTS orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_number VARCHAR(50) NOT NULL,
		user_id INT UNSIGNED NULL,
		customer_name VARCHAR(100) NOT NULL DEFAULT '',
		customer_email VARCHAR(100) NOT NULL DEFAULT '',
		customer_phone VARCHAR(20) NOT NULL DEFAULT '',
		delivery_address VARCHAR(500) NOT NULL DEFAULT '',
		total_amount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		status VARCHAR(50) NOT NULL,
		notes VARCHAR(500) NOT NULL DEFAULT '',
		order_date DATETIME NOT NULL,
		delivery_date DATETIME NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE INDEX idx_order_number (order_number),
		INDEX idx_status (status),
		INDEX idx_order_date (order_date),
		FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE SET NULL
	)`

	createOrderItems := `
	CREATE TABLE IF NOT EXISTS order_items (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id INT UNSIGNED NOT NULL,
		menu_item_id INT UNSIGNED NOT NULL,
		item_name VARCHAR(100) NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		unit_price DECIMAL(10,2) NOT NULL,
		special_instructions VARCHAR(500) NOT NULL DEFAULT '',
		INDEX idx_order (order_id),
		INDEX idx_menu_item (menu_item_id),
		FOREIGN KEY (order_id) REFERENCES orders(id) ON DELETE CASCADE,
		FOREIGN KEY (menu_item_id) REFERENCES menu_items(id) ON DELETE RESTRICT
	)`

	createContacts := `
	CREATE TABLE IF NOT EXISTS contacts (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(50) NOT NULL,
		last_name VARCHAR(50) NOT NULL,
		email VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		subject VARCHAR(50) NOT NULL,
		message VARCHAR(2000) NOT NULL,
		newsletter TINYINT(1) NOT NULL DEFAULT 0,
		is_read TINYINT(1) NOT NULL DEFAULT 0,
		is_resolved TINYINT(1) NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_email (email),
		INDEX idx_read (is_read)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"menu_items", createMenuItems},
		{"users", createUsers},
		{"orders", createOrders},
		{"order_items", createOrderItems},
		{"contacts", createContacts},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}

// InsertMenuItem inserts a catalog row and returns its id.
func InsertMenuItem(t *testing.T, db *sql.DB, name string, price float64, category string) uint {
	result, err := db.Exec(`
		INSERT INTO menu_items (name, description, price, category)
		VALUES (?, '', ?, ?)
	`, name, price, category)
	if err != nil {
		t.Fatalf("failed to insert menu item: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get menu item id: %v", err)
	}

	return uint(id)
}
