package menu

import (
	"context"

	"foodiexpress/internal/domain"
)

type Service interface {
	ListAvailable(ctx context.Context) ([]MenuItemDTO, error)
	GetByID(ctx context.Context, id uint) (*MenuItemDTO, error)
	ListByCategory(ctx context.Context, category string) ([]MenuItemDTO, error)
	ListPopular(ctx context.Context) ([]MenuItemDTO, error)
	Search(ctx context.Context, term string) ([]MenuItemDTO, error)
	Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemDTO, error)
	Update(ctx context.Context, id uint, req UpdateMenuItemRequest) (*MenuItemDTO, error)
	Delete(ctx context.Context, id uint) error
}

type Repository interface {
	FindAllAvailable(ctx context.Context) ([]domain.MenuItem, error)
	FindByID(ctx context.Context, id uint) (*domain.MenuItem, error)
	FindByCategory(ctx context.Context, category string) ([]domain.MenuItem, error)
	FindPopular(ctx context.Context, limit int) ([]domain.MenuItem, error)
	Search(ctx context.Context, term string) ([]domain.MenuItem, error)
	Insert(ctx context.Context, item domain.MenuItem) (uint, error)
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id uint) error
}

// Cache is the read-through cache over the available-menu listing. A false
// second return means miss; cache failures are treated as misses.
type Cache interface {
	Get(ctx context.Context) ([]MenuItemDTO, bool)
	Set(ctx context.Context, items []MenuItemDTO)
	Invalidate(ctx context.Context)
}
