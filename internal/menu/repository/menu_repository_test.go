package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
	"foodiexpress/internal/testutil"
)

// Unit Tests

func TestNewMySQLMenuRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLMenuRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertItem(t *testing.T, repo *MySQLMenuRepository, item domain.MenuItem) uint {
	id, err := repo.Insert(context.Background(), item)
	require.NoError(t, err)
	return id
}

func TestMenuRepository_FindAllAvailable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	insertItem(t, repo, domain.MenuItem{Name: "Margherita Pizza", Price: 12.99, Category: "pizza", IsAvailable: true})
	insertItem(t, repo, domain.MenuItem{Name: "Classic Burger", Price: 9.99, Category: "burger", IsAvailable: true})
	insertItem(t, repo, domain.MenuItem{Name: "Off Menu Special", Price: 20.00, Category: "pizza", IsAvailable: false})

	items, err := repo.FindAllAvailable(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Ordered by category, then name.
	assert.Equal(t, "Classic Burger", items[0].Name)
	assert.Equal(t, "Margherita Pizza", items[1].Name)
}

func TestMenuRepository_FindByCategory_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)
	insertItem(t, repo, domain.MenuItem{Name: "Margherita Pizza", Price: 12.99, Category: "pizza", IsAvailable: true})

	items, err := repo.FindByCategory(context.Background(), "PIZZA")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita Pizza", items[0].Name)
}

func TestMenuRepository_FindPopular_RatingOrderAndLimit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)
	insertItem(t, repo, domain.MenuItem{Name: "Margherita Pizza", Price: 12.99, Category: "pizza", Rating: 4.2, IsPopular: true, IsAvailable: true})
	insertItem(t, repo, domain.MenuItem{Name: "Classic Burger", Price: 9.99, Category: "burger", Rating: 4.8, IsPopular: true, IsAvailable: true})
	insertItem(t, repo, domain.MenuItem{Name: "Garden Salad", Price: 7.50, Category: "salad", Rating: 5.0, IsPopular: false, IsAvailable: true})

	items, err := repo.FindPopular(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Classic Burger", items[0].Name)
}

func TestMenuRepository_Search(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)
	insertItem(t, repo, domain.MenuItem{Name: "Margherita Pizza", Description: "Classic tomato base", Price: 12.99, Category: "pizza", IsAvailable: true})
	insertItem(t, repo, domain.MenuItem{Name: "Classic Burger", Description: "Beef patty", Price: 9.99, Category: "burger", IsAvailable: true})

	items, err := repo.Search(context.Background(), "PIZZA")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Margherita Pizza", items[0].Name)

	// Description matches too.
	items, err = repo.Search(context.Background(), "beef")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Classic Burger", items[0].Name)

	items, err = repo.Search(context.Background(), "sushi")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMenuRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)
	id := insertItem(t, repo, domain.MenuItem{Name: "Margherita Pizza", Price: 12.99, Category: "pizza", IsAvailable: true})

	err := repo.Update(context.Background(), domain.MenuItem{
		ID:          id,
		Name:        "Margherita Pizza",
		Price:       13.49,
		Category:    "pizza",
		IsAvailable: true,
	})
	require.NoError(t, err)

	item, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, 13.49, item.Price)
}

func TestMenuRepository_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	err := repo.Update(context.Background(), domain.MenuItem{ID: 99999, Name: "Ghost", Price: 1.00, Category: "pizza"})
	require.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMenuRepository_Delete_RestrictedByOrderItems(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)
	id := insertItem(t, repo, domain.MenuItem{Name: "Margherita Pizza", Price: 12.99, Category: "pizza", IsAvailable: true})

	result, err := db.Exec(`
		INSERT INTO orders (order_number, customer_name, total_amount, status, order_date)
		VALUES ('ORD-20250315-A1B2C3D4', 'John Doe', 12.99, 'Confirmed', ?)
	`, time.Now().UTC())
	require.NoError(t, err)
	orderID, err := result.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`
		INSERT INTO order_items (order_id, menu_item_id, item_name, quantity, unit_price)
		VALUES (?, ?, 'Margherita Pizza', 1, 12.99)
	`, orderID, id)
	require.NoError(t, err)

	err = repo.Delete(context.Background(), id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1451")
}

func TestMenuRepository_Delete_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLMenuRepository(db)

	err := repo.Delete(context.Background(), 99999)
	require.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
