package server

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"foodiexpress/internal/config"
)

func TestNew_UsesConfiguredTimeouts(t *testing.T) {
	cfg := config.ServerConfig{
		Port:         9090,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  time.Minute,
	}

	srv := New(cfg, http.NewServeMux(), zap.NewNop())
	require.NotNil(t, srv)

	assert.Equal(t, ":9090", srv.httpServer.Addr)
	assert.Equal(t, 15*time.Second, srv.httpServer.ReadTimeout)
	assert.Equal(t, 20*time.Second, srv.httpServer.WriteTimeout)
	assert.Equal(t, time.Minute, srv.httpServer.IdleTimeout)
}
