package menu

import (
	"context"
	stderrors "errors"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
)

// popularLimit caps the popular listing.
const popularLimit = 8

type menuService struct {
	repo   Repository
	cache  Cache
	logger *zap.Logger
}

func NewService(repo Repository, cache Cache, logger *zap.Logger) Service {
	return &menuService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *menuService) ListAvailable(ctx context.Context) ([]MenuItemDTO, error) {
	if items, ok := s.cache.Get(ctx); ok {
		return items, nil
	}

	found, err := s.repo.FindAllAvailable(ctx)
	if err != nil {
		return nil, err
	}

	items := mapItems(found)
	s.cache.Set(ctx, items)
	return items, nil
}

func (s *menuService) GetByID(ctx context.Context, id uint) (*MenuItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapped := mapItem(*item)
	return &mapped, nil
}

func (s *menuService) ListByCategory(ctx context.Context, category string) ([]MenuItemDTO, error) {
	found, err := s.repo.FindByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return mapItems(found), nil
}

func (s *menuService) ListPopular(ctx context.Context) ([]MenuItemDTO, error) {
	found, err := s.repo.FindPopular(ctx, popularLimit)
	if err != nil {
		return nil, err
	}
	return mapItems(found), nil
}

func (s *menuService) Search(ctx context.Context, term string) ([]MenuItemDTO, error) {
	found, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapItems(found), nil
}

func (s *menuService) Create(ctx context.Context, req CreateMenuItemRequest) (*MenuItemDTO, error) {
	item := domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		IsPopular:   req.IsPopular,
		IsAvailable: true,
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = id

	s.cache.Invalidate(ctx)
	s.logger.Info("menu item created", zap.String("name", item.Name), zap.Uint("id", id))

	mapped := mapItem(item)
	return &mapped, nil
}

func (s *menuService) Update(ctx context.Context, id uint, req UpdateMenuItemRequest) (*MenuItemDTO, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Price != nil {
		item.Price = *req.Price
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.Image != nil {
		item.Image = *req.Image
	}
	if req.Rating != nil {
		item.Rating = *req.Rating
	}
	if req.IsPopular != nil {
		item.IsPopular = *req.IsPopular
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := s.repo.Update(ctx, *item); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("menu item updated", zap.String("name", item.Name), zap.Uint("id", id))

	mapped := mapItem(*item)
	return &mapped, nil
}

func (s *menuService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if isRestrictError(err) {
			return errors.NewConflictError("menu item is referenced by existing orders")
		}
		return err
	}

	s.cache.Invalidate(ctx)
	s.logger.Info("menu item deleted", zap.Uint("id", id))
	return nil
}

func mapItem(item domain.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		Image:       item.Image,
		Rating:      item.Rating,
		IsPopular:   item.IsPopular,
		IsAvailable: item.IsAvailable,
	}
}

func mapItems(items []domain.MenuItem) []MenuItemDTO {
	result := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapItem(item))
	}
	return result
}

// 1451: row is referenced by a foreign key (order item snapshots).
func isRestrictError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if stderrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1451
	}
	return false
}
