package user

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
	orderdto "foodiexpress/internal/order/dto"
)

type userService struct {
	repo   Repository
	orders OrderLister
	logger *zap.Logger
	now    func() time.Time
}

func NewService(repo Repository, orders OrderLister, logger *zap.Logger) Service {
	return &userService{
		repo:   repo,
		orders: orders,
		logger: logger,
		now:    time.Now,
	}
}

// LoginOrRegister upserts by email. There is no credential check; identity is
// asserted by email alone. Failures are logged and turned into a generic
// failure response, never propagated.
func (s *userService) LoginOrRegister(ctx context.Context, req LoginRequest) *LoginResponse {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if _, ok := errors.IsNotFoundError(err); !ok {
			s.logger.Error("login lookup failed", zap.String("email", req.Email), zap.Error(err))
			return &LoginResponse{
				Success: false,
				Message: "An error occurred. Please try again.",
			}
		}
		existing = nil
	}

	if existing != nil {
		existing.LastLoginAt = s.now().UTC()
		if req.FullName != "" {
			existing.FullName = req.FullName
		}
		if req.Phone != "" {
			existing.Phone = req.Phone
		}
		if req.Address != "" {
			existing.Address = req.Address
		}

		if err := s.repo.Update(ctx, *existing); err != nil {
			s.logger.Error("login update failed", zap.String("email", req.Email), zap.Error(err))
			return &LoginResponse{
				Success: false,
				Message: "An error occurred. Please try again.",
			}
		}

		s.logger.Info("user logged in", zap.String("email", existing.Email))

		mapped := mapUser(*existing)
		return &LoginResponse{
			Success: true,
			Message: "Welcome back!",
			User:    &mapped,
		}
	}

	newUser := domain.User{
		FullName:    req.FullName,
		Email:       strings.ToLower(req.Email),
		Phone:       req.Phone,
		Address:     req.Address,
		IsActive:    true,
		CreatedAt:   s.now().UTC(),
		LastLoginAt: s.now().UTC(),
	}

	id, err := s.repo.Insert(ctx, newUser)
	if err != nil {
		s.logger.Error("user registration failed", zap.String("email", req.Email), zap.Error(err))
		return &LoginResponse{
			Success: false,
			Message: "An error occurred. Please try again.",
		}
	}
	newUser.ID = id

	s.logger.Info("new user registered", zap.String("email", newUser.Email))

	mapped := mapUser(newUser)
	return &LoginResponse{
		Success: true,
		Message: "Account created successfully! Welcome to FoodieExpress!",
		User:    &mapped,
	}
}

func (s *userService) GetAll(ctx context.Context) ([]UserDTO, error) {
	users, err := s.repo.FindAllActive(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, mapUser(u))
	}
	return result, nil
}

func (s *userService) GetByID(ctx context.Context, id uint) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	mapped := mapUser(*u)
	return &mapped, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*UserDTO, error) {
	u, err := s.repo.FindActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	mapped := mapUser(*u)
	return &mapped, nil
}

func (s *userService) Update(ctx context.Context, id uint, req UpdateUserRequest) (*UserDTO, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != "" {
		u.FullName = req.FullName
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if req.Address != "" {
		u.Address = req.Address
	}

	if err := s.repo.Update(ctx, *u); err != nil {
		return nil, err
	}

	mapped := mapUser(*u)
	return &mapped, nil
}

func (s *userService) GetOrders(ctx context.Context, id uint) ([]orderdto.OrderDTO, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.orders.GetByUserID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("user deactivated", zap.Uint("id", id))
	return nil
}

func mapUser(u domain.User) UserDTO {
	return UserDTO{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		Phone:       u.Phone,
		Address:     u.Address,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
