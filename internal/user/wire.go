package user

import (
	"database/sql"

	"go.uber.org/zap"

	"foodiexpress/internal/user/repository"
)

func NewModule(db *sql.DB, orders OrderLister, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLUserRepository(db)
	svc := NewService(repo, orders, logger)
	return NewController(svc, logger)
}
