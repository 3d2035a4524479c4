package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/user235678/yt-adawi-sub002/internal/config"
	"github.com/user235678/yt-adawi-sub002/internal/service"
)

// Server is the storefront HTTP surface over the catalog pipeline.
type Server struct {
	engine *gin.Engine
	addr   string
}

func New(cfg config.ServerConfig, svc *service.Service, sessionTTL time.Duration) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	if sessionTTL <= 0 {
		sessionTTL = 30 * time.Minute
	}
	// The cookie lives exactly as long as the stored session state, so the
	// two lifetimes cannot drift.
	h := &handlers{svc: svc, sessionMaxAge: int(sessionTTL.Seconds())}

	api := engine.Group("/api")
	api.GET("/products", h.listProducts)
	api.GET("/products/:id", h.openDetail)
	api.POST("/detail/close", h.closeDetail)

	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return &Server{
		engine: engine,
		addr:   fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
	}
}

// Engine exposes the router for handler tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🛒 Storefront listening on %s", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
