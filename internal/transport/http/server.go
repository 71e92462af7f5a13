package http

import (
	stdhttp "net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/chatrelay-server/internal/config"
	"github.com/vovakirdan/chatrelay-server/internal/core"
	"github.com/vovakirdan/chatrelay-server/internal/metrics"
)

// NewServer builds the HTTP server: WebSocket endpoint, snapshot API,
// metrics, and optional static client hosting.
func NewServer(hub *core.Hub, store *core.Store, m *metrics.Metrics, cfg config.Config, logger *zerolog.Logger) *stdhttp.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(logger))

	router.GET("/health", healthHandler)
	router.GET("/ws", gin.WrapH(NewWSHandler(hub, logger)))
	router.GET("/metrics", gin.WrapH(m.Handler()))

	api := NewAPIHandlers(store, logger)
	router.GET("/api/rooms", api.Rooms)
	router.GET("/api/rooms/:room/users", api.RoomUsers)

	if cfg.StaticDir != "" {
		router.Static("/app", cfg.StaticDir)
	}

	return &stdhttp.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
}

func healthHandler(c *gin.Context) {
	c.String(stdhttp.StatusOK, "ok")
}
