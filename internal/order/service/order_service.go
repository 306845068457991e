package service

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"foodiexpress/internal/domain"
	"foodiexpress/internal/errors"
	"foodiexpress/internal/order/dto"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	FindAll(ctx context.Context) ([]domain.Order, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Order, error)
	FindByUserID(ctx context.Context, userID uint) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id uint, status string, deliveryDate *time.Time) error
	Delete(ctx context.Context, id uint) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type OrderService struct {
	db        TransactionManager
	orderRepo OrderRepository
	itemRepo  OrderItemRepository
	logger    *zap.Logger
	now       func() time.Time
	newToken  func() string
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		db:        db,
		orderRepo: orderRepo,
		itemRepo:  itemRepo,
		logger:    logger,
		now:       time.Now,
		newToken:  RandomToken,
	}
}

// Create persists an order and its item snapshots in one transaction. Item
// name/price/quantity are copied from the request verbatim; the storefront
// already fetched authoritative prices and is trusted here. On an order-number
// collision the insert is retried once with a fresh token.
func (s *OrderService) Create(ctx context.Context, req dto.CreateOrderRequest) (*dto.CreateOrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.NewValidationError("order must contain at least one item", errors.ValidationDetail{
			Field:   "items",
			Message: "items must not be empty",
		})
	}

	now := s.now().UTC()

	orderDate := req.OrderDate
	if orderDate.IsZero() {
		orderDate = now
	}

	order := domain.Order{
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Status:          domain.OrderStatusConfirmed,
		OrderDate:       orderDate,
	}

	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:          item.MenuItemID,
			ItemName:            item.ItemName,
			Quantity:            item.Quantity,
			UnitPrice:           item.Price,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	order.TotalAmount = req.TotalAmount
	if order.TotalAmount == 0 {
		order.TotalAmount = order.ItemsTotal()
	}

	const maxAttempts = 2
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		order.OrderNumber = FormatOrderNumber(now, s.newToken())

		id, err := s.insertOrder(ctx, order)
		if err == nil {
			s.logger.Info("order created",
				zap.String("orderNumber", order.OrderNumber),
				zap.Uint("orderId", id),
				zap.Int("itemCount", len(order.Items)),
				zap.Float64("totalAmount", order.TotalAmount),
			)
			return &dto.CreateOrderResponse{
				ID:      order.OrderNumber,
				Status:  order.Status,
				Message: "Order placed successfully!",
			}, nil
		}

		if isDuplicateKeyError(err) {
			if attempt < maxAttempts {
				s.logger.Warn("order number collision, regenerating",
					zap.String("orderNumber", order.OrderNumber),
					zap.Int("attempt", attempt),
				)
				continue
			}
			return nil, errors.NewConflictError("could not assign a unique order number")
		}

		return nil, err
	}

	return nil, errors.NewConflictError("could not assign a unique order number")
}

func (s *OrderService) insertOrder(ctx context.Context, order domain.Order) (uint, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.NewInternalError("beginning transaction", err)
	}
	// Rollback is a no-op after commit.
	defer tx.Rollback()

	orderID, err := s.orderRepo.Insert(ctx, tx, order)
	if err != nil {
		return 0, err
	}

	for _, item := range order.Items {
		item.OrderID = orderID
		if _, err := s.itemRepo.Insert(ctx, tx, item); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.NewInternalError("committing order transaction", err)
	}

	return orderID, nil
}

func (s *OrderService) GetByID(ctx context.Context, id uint) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, order)
}

func (s *OrderService) GetByOrderNumber(ctx context.Context, orderNumber string) (*dto.OrderDTO, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, order)
}

func (s *OrderService) GetAll(ctx context.Context) ([]dto.OrderDTO, error) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.allWithItems(ctx, orders)
}

func (s *OrderService) GetByStatus(ctx context.Context, status string) ([]dto.OrderDTO, error) {
	orders, err := s.orderRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return s.allWithItems(ctx, orders)
}

func (s *OrderService) GetByUserID(ctx context.Context, userID uint) ([]dto.OrderDTO, error) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.allWithItems(ctx, orders)
}

// UpdateStatus overwrites the order's status with any enumerated value; the
// boundary has already validated membership. Delivered stamps the delivery
// timestamp, no other status touches it.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status string) (*dto.OrderDTO, error) {
	var deliveryDate *time.Time
	if status == domain.OrderStatusDelivered {
		t := s.now().UTC()
		deliveryDate = &t
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status, deliveryDate); err != nil {
		return nil, err
	}

	order, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("orderNumber", order.OrderNumber),
		zap.String("status", status),
	)

	return order, nil
}

func (s *OrderService) Delete(ctx context.Context, id uint) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.Uint("orderId", id))
	return nil
}

func (s *OrderService) withItems(ctx context.Context, order *domain.Order) (*dto.OrderDTO, error) {
	items, err := s.itemRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	mapped := mapOrder(*order)
	return &mapped, nil
}

func (s *OrderService) allWithItems(ctx context.Context, orders []domain.Order) ([]dto.OrderDTO, error) {
	result := make([]dto.OrderDTO, 0, len(orders))
	for _, order := range orders {
		mapped, err := s.withItems(ctx, &order)
		if err != nil {
			return nil, err
		}
		result = append(result, *mapped)
	}
	return result, nil
}

func mapOrder(order domain.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemDTO{
			MenuItemID:          item.MenuItemID,
			ItemName:            item.ItemName,
			Quantity:            item.Quantity,
			Price:               item.UnitPrice,
			SpecialInstructions: item.SpecialInstructions,
		})
	}

	return dto.OrderDTO{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		DeliveryAddress: order.DeliveryAddress,
		TotalAmount:     order.TotalAmount,
		Status:          order.Status,
		Notes:           order.Notes,
		OrderDate:       order.OrderDate,
		DeliveryDate:    order.DeliveryDate,
		Items:           items,
	}
}

func isDuplicateKeyError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if stderrors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	return false
}
