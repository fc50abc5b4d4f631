package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	httperr "github.com/aevon-lab/favourite-service/internal/core/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is echoed on every response, generated when the caller sent none.
const RequestIDHeader = "X-Request-ID"

const (
	healthTimeout     = 2 * time.Second
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// HealthChecker reports whether the favourite store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Server hosts the favourite API. Feature packages register their routes on Engine.
type Server struct {
	Engine *gin.Engine
	Addr   string
	store  HealthChecker
}

// New builds the engine with recovery, request ids and slog access logging.
// A nil store makes /health report healthy without a connectivity check.
func New(addr string, store HealthChecker, mode string) *Server {
	gin.SetMode(ginMode(mode))

	r := gin.New()
	r.Use(gin.Recovery(), requestID(), accessLog())

	s := &Server{Engine: r, Addr: addr, store: store}
	r.GET("/health", s.handleHealth)
	return s
}

func ginMode(mode string) string {
	if mode == "debug" {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

// requestID propagates the caller's X-Request-ID or assigns a fresh UUID,
// and stores it under httperr.RequestIDKey for handler logging.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(httperr.RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("[Server] Request handled",
			"request_id", c.GetString(httperr.RequestIDKey),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "store": "memory"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		slog.Error("[Server] Favourite store unreachable",
			"request_id", c.GetString(httperr.RequestIDKey),
			"error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "store": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "store": "connected"})
}

// Run serves until ctx is cancelled, then drains in-flight requests for up to shutdownTimeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		slog.Info("[Server] Shutting down", "timeout", shutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Server] Forced shutdown", "error", err)
		}
	}()

	slog.Info("[Server] Listening", "address", s.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-stopped
	return nil
}
