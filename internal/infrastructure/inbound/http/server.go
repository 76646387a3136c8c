package delivery_http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	ports "blog-service/internal/domain/ports/output"
	"blog-service/internal/infrastructure/config"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
	"blog-service/internal/infrastructure/inbound/http/templates"
)

type Server struct {
	server  *http.Server
	address string
	port    int
	log     ports.Logger
}

// NewRouter wires middleware, templates and routes onto a new engine.
func NewRouter(
	blogHandler *blog_http.BlogHandler,
	healthHandler *HealthHandler,
	log ports.Logger,
	metrics ports.MetricsProvider,
) (*gin.Engine, error) {
	tmpl, err := templates.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	router := gin.New()
	// Route on the escaped path so a tag title may contain "/".
	router.UseRawPath = true
	router.SetHTMLTemplate(tmpl)

	router.Use(gin.Recovery())
	router.Use(LoggerMiddleware(log))
	router.Use(MetricsMiddleware(metrics))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	router.GET("/health", healthHandler.Health)
	blogHandler.Register(router)

	return router, nil
}

func NewServer(router http.Handler, cfg config.HTTPServer, log ports.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Address, cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		address: cfg.Address,
		port:    cfg.Port,
		log:     log,
	}
}

func (s *Server) Run() error {
	s.log.Info("Starting HTTP server", slog.String("address", s.address), slog.Int("port", s.port))
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
