package contact

import (
	"database/sql"

	"go.uber.org/zap"

	"foodiexpress/internal/contact/repository"
)

func NewModule(db *sql.DB, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLContactRepository(db)
	svc := NewService(repo, logger)
	return NewController(svc, logger)
}
