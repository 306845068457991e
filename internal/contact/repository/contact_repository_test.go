package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
	"foodiexpress/internal/testutil"
)

// Unit Tests

func TestNewMySQLContactRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLContactRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func insertContact(t *testing.T, repo *MySQLContactRepository) uint {
	id, err := repo.Insert(context.Background(), domain.Contact{
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
		Subject:   "feedback",
		Message:   "Great pizza!",
	})
	require.NoError(t, err)
	return id
}

func TestContactRepository_InsertAndFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLContactRepository(db)
	id := insertContact(t, repo)

	contact, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Jane", contact.FirstName)
	assert.Equal(t, "feedback", contact.Subject)
	assert.False(t, contact.IsRead)
	assert.False(t, contact.IsResolved)
}

func TestContactRepository_FindUnread(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLContactRepository(db)
	first := insertContact(t, repo)
	insertContact(t, repo)

	require.NoError(t, repo.SetRead(context.Background(), first))

	unread, err := repo.FindUnread(context.Background())
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.NotEqual(t, first, unread[0].ID)
}

func TestContactRepository_SetFlags_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLContactRepository(db)
	id := insertContact(t, repo)

	require.NoError(t, repo.SetRead(context.Background(), id))
	require.NoError(t, repo.SetRead(context.Background(), id))
	require.NoError(t, repo.SetResolved(context.Background(), id))
	require.NoError(t, repo.SetResolved(context.Background(), id))

	contact, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, contact.IsRead)
	assert.True(t, contact.IsResolved)
}

func TestContactRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLContactRepository(db)
	id := insertContact(t, repo)

	require.NoError(t, repo.Delete(context.Background(), id))

	_, err := repo.FindByID(context.Background(), id)
	require.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)

	err = repo.Delete(context.Background(), id)
	require.Error(t, err)
	_, ok = errors.IsNotFoundError(err)
	assert.True(t, ok)
}
