// Package web serves the portfolio over HTTP: full pages and HTMX
// fragments for browsers, a JSON scene endpoint and a WebSocket display
// channel.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
	"github.com/gorilla/websocket"

	"github.com/alexrivera/archfolio/internal/analytics"
	"github.com/alexrivera/archfolio/internal/session"
)

//go:embed static
var staticFiles embed.FS

// Config holds server configuration.
type Config struct {
	Port int
	// AllowAllOrigins opens CORS and the WebSocket origin check to any
	// origin (dev mode).
	AllowAllOrigins bool
}

// Recorder stores analytics events. A nil Recorder disables tracking.
type Recorder interface {
	Record(ctx context.Context, e analytics.Event) error
}

// Server routes requests to sessions.
type Server struct {
	cfg        Config
	store      *session.Store
	tracker    Recorder
	engine     *gin.Engine
	handler    http.Handler
	upgrader   websocket.Upgrader
	httpServer *http.Server
}

// New creates a server over store. tracker may be nil.
func New(cfg Config, store *session.Store, tracker Recorder) *Server {
	s := &Server{
		cfg:     cfg,
		store:   store,
		tracker: tracker,
	}
	if cfg.AllowAllOrigins {
		s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}

	s.engine = s.buildRouter()

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target", "HX-Current-URL"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if cfg.AllowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	s.handler = cors.Handler(corsOpts)(s.engine)
	return s
}

// buildRouter creates the gin engine with all routes.
func (s *Server) buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(s.trackViews())

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("web: embedded static files: %v", err))
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", s.handleIndex)

	sg := r.Group("/s/:sid", s.loadSession)
	sg.POST("/tabs/:tab", s.handleSelectTab)
	sg.POST("/menu/tabs/:tab", s.handleMenuSelect)
	sg.POST("/menu/toggle", s.handleToggleMenu)
	sg.POST("/projects/:id", s.handleOpenProject)
	sg.DELETE("/projects", s.handleCloseProject)

	r.GET("/api/sessions/:sid/scene", s.handleScene)
	r.GET("/ws", s.handleWebSocket)

	return r
}

// Handler returns the root handler, CORS included.
func (s *Server) Handler() http.Handler { return s.handler }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("archfolio listening on %s", addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
