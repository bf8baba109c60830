package web

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alexrivera/archfolio/internal/analytics"
)

// untracked paths never count as page views. Session routes record their
// own interaction events.
var untracked = []string{"/static/", "/healthz", "/ws", "/api/", "/s/", "/favicon"}

// trackViews records a page view for successful GET requests outside the
// untracked paths.
func (s *Server) trackViews() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		path := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		for _, prefix := range untracked {
			if strings.HasPrefix(path, prefix) {
				return
			}
		}
		s.record(c, analytics.Event{Kind: analytics.KindView, Path: path})
	}
}

// record stores e in the background. Do Not Track is honored.
func (s *Server) record(c *gin.Context, e analytics.Event) {
	if s.tracker == nil || c.GetHeader("DNT") == "1" {
		return
	}
	e.ClientIP = c.ClientIP()
	e.UserAgent = c.GetHeader("User-Agent")
	if e.Path == "" {
		e.Path = c.Request.URL.Path
	}
	e.At = time.Now()

	go func() {
		if err := s.tracker.Record(context.Background(), e); err != nil {
			log.Printf("Error recording %s event: %v", e.Kind, err)
		}
	}()
}
