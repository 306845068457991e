package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
)

// Mock implementations

type mockRepository struct {
	InsertFunc      func(ctx context.Context, contact domain.Contact) (uint, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*domain.Contact, error)
	FindAllFunc     func(ctx context.Context) ([]domain.Contact, error)
	FindUnreadFunc  func(ctx context.Context) ([]domain.Contact, error)
	SetReadFunc     func(ctx context.Context, id uint) error
	SetResolvedFunc func(ctx context.Context, id uint) error
	DeleteFunc      func(ctx context.Context, id uint) error
}

func (m *mockRepository) Insert(ctx context.Context, contact domain.Contact) (uint, error) {
	return m.InsertFunc(ctx, contact)
}

func (m *mockRepository) FindByID(ctx context.Context, id uint) (*domain.Contact, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockRepository) FindAll(ctx context.Context) ([]domain.Contact, error) {
	return m.FindAllFunc(ctx)
}

func (m *mockRepository) FindUnread(ctx context.Context) ([]domain.Contact, error) {
	return m.FindUnreadFunc(ctx)
}

func (m *mockRepository) SetRead(ctx context.Context, id uint) error {
	return m.SetReadFunc(ctx, id)
}

func (m *mockRepository) SetResolved(ctx context.Context, id uint) error {
	return m.SetResolvedFunc(ctx, id)
}

func (m *mockRepository) Delete(ctx context.Context, id uint) error {
	return m.DeleteFunc(ctx, id)
}

func sampleContact(id uint) domain.Contact {
	return domain.Contact{
		ID:        id,
		FirstName: "Jane",
		LastName:  "Smith",
		Email:     "jane.smith@example.com",
		Subject:   "feedback",
		Message:   "Great pizza!",
	}
}

// Tests

func TestContactCreate_ReturnsStoredMessage(t *testing.T) {
	var inserted domain.Contact
	repo := &mockRepository{
		InsertFunc: func(ctx context.Context, contact domain.Contact) (uint, error) {
			inserted = contact
			return 5, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Contact, error) {
			contact := sampleContact(id)
			return &contact, nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), CreateContactRequest{
		FirstName:  "Jane",
		LastName:   "Smith",
		Email:      "jane.smith@example.com",
		Subject:    "feedback",
		Message:    "Great pizza!",
		Newsletter: true,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(5), created.ID)
	assert.True(t, inserted.Newsletter)
	assert.False(t, inserted.IsRead)
	assert.False(t, inserted.IsResolved)
}

func TestMarkRead_FlipsFlag(t *testing.T) {
	var readID uint
	findCalls := 0
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Contact, error) {
			findCalls++
			contact := sampleContact(id)
			contact.IsRead = findCalls > 1
			return &contact, nil
		},
		SetReadFunc: func(ctx context.Context, id uint) error {
			readID = id
			return nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	contact, err := svc.MarkRead(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), readID)
	assert.True(t, contact.IsRead)
}

func TestMarkRead_NotFound(t *testing.T) {
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Contact, error) {
			return nil, errors.NewNotFoundError("contact not found")
		},
		SetReadFunc: func(ctx context.Context, id uint) error {
			t.Fatal("flag update should not run for a missing contact")
			return nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	_, err := svc.MarkRead(context.Background(), 999)
	require.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestMarkResolved_FlipsFlag(t *testing.T) {
	var resolvedID uint
	repo := &mockRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*domain.Contact, error) {
			contact := sampleContact(id)
			contact.IsResolved = resolvedID == id
			return &contact, nil
		},
		SetResolvedFunc: func(ctx context.Context, id uint) error {
			resolvedID = id
			return nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	contact, err := svc.MarkResolved(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, uint(5), resolvedID)
	assert.True(t, contact.IsResolved)
}

func TestGetUnread(t *testing.T) {
	repo := &mockRepository{
		FindUnreadFunc: func(ctx context.Context) ([]domain.Contact, error) {
			return []domain.Contact{sampleContact(1), sampleContact(2)}, nil
		},
	}

	svc := NewService(repo, zap.NewNop())

	contacts, err := svc.GetUnread(context.Background())
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestContactDelete_NotFound(t *testing.T) {
	repo := &mockRepository{
		DeleteFunc: func(ctx context.Context, id uint) error {
			return errors.NewNotFoundError("contact not found")
		},
	}

	svc := NewService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), 999)
	require.Error(t, err)

	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
