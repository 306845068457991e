package order

import (
	"database/sql"

	"go.uber.org/zap"

	"foodiexpress/internal/order/controller"
	orderrepo "foodiexpress/internal/order/repository"
	"foodiexpress/internal/order/service"
)

func NewModule(db *sql.DB, logger *zap.Logger) (*controller.Controller, *service.OrderService) {
	orderRepo := orderrepo.NewMySQLOrderRepository(db)
	itemRepo := orderrepo.NewMySQLOrderItemRepository(db)

	svc := service.NewOrderService(db, orderRepo, itemRepo, logger)

	return controller.NewController(svc, logger), svc
}
