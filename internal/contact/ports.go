package contact

import (
	"context"

	"foodiexpress/internal/domain"
)

type Service interface {
	Create(ctx context.Context, req CreateContactRequest) (*ContactDTO, error)
	GetAll(ctx context.Context) ([]ContactDTO, error)
	GetByID(ctx context.Context, id uint) (*ContactDTO, error)
	GetUnread(ctx context.Context) ([]ContactDTO, error)
	MarkRead(ctx context.Context, id uint) (*ContactDTO, error)
	MarkResolved(ctx context.Context, id uint) (*ContactDTO, error)
	Delete(ctx context.Context, id uint) error
}

type Repository interface {
	Insert(ctx context.Context, contact domain.Contact) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Contact, error)
	FindAll(ctx context.Context) ([]domain.Contact, error)
	FindUnread(ctx context.Context) ([]domain.Contact, error)
	SetRead(ctx context.Context, id uint) error
	SetResolved(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}
