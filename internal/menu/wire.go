package menu

import (
	"database/sql"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"foodiexpress/internal/menu/repository"
)

func NewModule(db *sql.DB, rdb *goredis.Client, cacheTTL time.Duration, logger *zap.Logger) *Controller {
	repo := repository.NewMySQLMenuRepository(db)
	cache := NewRedisCache(rdb, cacheTTL, logger)
	svc := NewService(repo, cache, logger)
	return NewController(svc, logger)
}
