package user

import (
	"context"

	"foodiexpress/internal/domain"
	orderdto "foodiexpress/internal/order/dto"
)

type Service interface {
	LoginOrRegister(ctx context.Context, req LoginRequest) *LoginResponse
	GetAll(ctx context.Context) ([]UserDTO, error)
	GetByID(ctx context.Context, id uint) (*UserDTO, error)
	GetByEmail(ctx context.Context, email string) (*UserDTO, error)
	Update(ctx context.Context, id uint, req UpdateUserRequest) (*UserDTO, error)
	GetOrders(ctx context.Context, id uint) ([]orderdto.OrderDTO, error)
	Delete(ctx context.Context, id uint) error
}

type Repository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindAllActive(ctx context.Context) ([]domain.User, error)
	Insert(ctx context.Context, user domain.User) (uint, error)
	Update(ctx context.Context, user domain.User) error
	SoftDelete(ctx context.Context, id uint) error
}

// OrderLister provides a user's order history; implemented by the order
// workflow service.
type OrderLister interface {
	GetByUserID(ctx context.Context, userID uint) ([]orderdto.OrderDTO, error)
}
