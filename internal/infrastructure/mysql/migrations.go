package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"
)

var schema = []struct {
	name  string
	query string
}{
	{"menu_items", `
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
	)`},
	{"users", `
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
	)`},
	{"orders", `
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
	)`},
	{"order_items", `
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
	)`},
	{"contacts", `
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
	)`},
}

// Migrate creates the schema and seeds the demo catalog when the
// menu_items table is empty.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	for _, tbl := range schema {
		if _, err := db.ExecContext(ctx, tbl.query); err != nil {
			return fmt.Errorf("creating table %s: %w", tbl.name, err)
		}
	}
	logger.Info("schema ready", zap.Int("tables", len(schema)))

	return seedMenuItems(ctx, db, logger)
}

type seedItem struct {
	name        string
	description string
	price       float64
	category    string
	image       string
	rating      float64
	isPopular   bool
}

var seedCatalog = []seedItem{
	{"Margherita Pizza", "Fresh tomatoes, mozzarella, basil on a crispy crust", 12.99, "pizza", "margherita.jpg", 4.8, true},
	{"Pepperoni Pizza", "Classic pepperoni with mozzarella and tomato sauce", 14.99, "pizza", "pepperoni.jpg", 4.9, true},
	{"BBQ Chicken Pizza", "Grilled chicken, BBQ sauce, red onions and cilantro", 15.99, "pizza", "bbq-chicken.jpg", 4.7, false},
	{"Veggie Supreme Pizza", "Bell peppers, mushrooms, olives, onions and tomatoes", 13.99, "pizza", "veggie-supreme.jpg", 4.5, false},
	{"Classic Cheeseburger", "Beef patty, cheddar, lettuce, tomato and house sauce", 9.99, "burger", "cheeseburger.jpg", 4.8, true},
	{"Bacon Deluxe Burger", "Double beef, crispy bacon, cheese and onion rings", 12.99, "burger", "bacon-deluxe.jpg", 4.9, true},
	{"Mushroom Swiss Burger", "Beef patty with sauteed mushrooms and swiss cheese", 11.49, "burger", "mushroom-swiss.jpg", 4.6, false},
	{"Veggie Burger", "Plant-based patty with avocado and sprouts", 10.99, "burger", "veggie-burger.jpg", 4.4, false},
	{"California Roll", "Crab, avocado and cucumber wrapped in seaweed", 8.99, "sushi", "california-roll.jpg", 4.7, true},
	{"Spicy Tuna Roll", "Fresh tuna with spicy mayo and scallions", 10.99, "sushi", "spicy-tuna.jpg", 4.8, true},
	{"Dragon Roll", "Eel, cucumber, avocado with unagi sauce", 14.99, "sushi", "dragon-roll.jpg", 4.9, false},
	{"Chocolate Lava Cake", "Warm chocolate cake with a molten center", 6.99, "dessert", "lava-cake.jpg", 4.9, true},
	{"Tiramisu", "Espresso-soaked ladyfingers with mascarpone", 7.49, "dessert", "tiramisu.jpg", 4.8, false},
	{"New York Cheesecake", "Creamy cheesecake with berry compote", 6.49, "dessert", "cheesecake.jpg", 4.7, false},
}

func seedMenuItems(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		return fmt.Errorf("counting menu items: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO menu_items (name, description, price, category, image, rating, is_popular, is_available)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)
	`
	for _, item := range seedCatalog {
		if _, err := db.ExecContext(ctx, query,
			item.name, item.description, item.price, item.category,
			item.image, item.rating, item.isPopular,
		); err != nil {
			return fmt.Errorf("seeding menu item %q: %w", item.name, err)
		}
	}

	logger.Info("demo catalog seeded", zap.Int("items", len(seedCatalog)))
	return nil
}
