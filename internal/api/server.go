// Package api provides the REST management surface of the
// splithorizon manager via a Gin-based HTTP server.
//
// The underlying configuration model is strictly sequential: one user
// action at a time, run to completion against the DNS server. The
// server preserves that by serializing all API requests (see
// middleware.SerializeRequests) instead of allowing concurrent
// mutation.
package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/gin-gonic/gin"
	"github.com/nvdberg/splithorizon/internal/api/handlers"
	"github.com/nvdberg/splithorizon/internal/api/middleware"
	"github.com/nvdberg/splithorizon/internal/config"
)

// Server is the management REST API server.
//
// Security note: do not expose the API to untrusted networks without
// an API key.
type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	engine     *gin.Engine
	httpServer *http.Server
}

// New wires the engine, routes and middleware for the given handler
// set.
func New(cfg *config.Config, h *handlers.Handler, logger *slog.Logger) *Server {
	if cfg == nil {
		panic("api.New: cfg is nil")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.SlogRequestLogger(logger))

	RegisterRoutes(engine, h, cfg)
	MountUI(engine, logger)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &Server{cfg: cfg, logger: logger, engine: engine, httpServer: httpServer}
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s.httpServer == nil {
		return ""
	}
	return s.httpServer.Addr
}

// Engine exposes the gin engine, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Listen opens the server's TCP listener with SO_REUSEADDR so a fast
// restart does not trip over a socket in TIME_WAIT.
func (s *Server) Listen(ctx context.Context) (net.Listener, error) {
	lc := net.ListenConfig{
		Control: func(_, _ string, c syscall.RawConn) error {
			return c.Control(func(fd uintptr) {
				_ = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1)
			})
		},
	}
	return lc.Listen(ctx, "tcp", s.httpServer.Addr)
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	return s.httpServer.Serve(l)
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
