package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"

	"github.com/alexrivera/archfolio/internal/analytics"
	"github.com/alexrivera/archfolio/internal/motion"
	"github.com/alexrivera/archfolio/internal/session"
	"github.com/alexrivera/archfolio/internal/ui"
	"github.com/alexrivera/archfolio/internal/view"
)

const sessionKey = "session"

func render(c *gin.Context, code int, n g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := n.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}

// handleIndex mounts a fresh session, so every load starts from the
// Projects tab with nothing selected.
func (s *Server) handleIndex(c *gin.Context) {
	sess := s.store.Mount()
	c.Header("Cache-Control", "no-store")
	render(c, http.StatusOK, ui.Page(sess.Scene(), ui.SessionRoutes(sess.ID)))
}

// loadSession resolves :sid. An expired session answers 410 and asks HTMX
// to reload the page, which mounts a new one.
func (s *Server) loadSession(c *gin.Context) {
	sess, err := s.store.Get(c.Param("sid"))
	if err != nil {
		c.Header("HX-Refresh", "true")
		render(c, http.StatusGone, ui.Gone())
		c.Abort()
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func (s *Server) handleSelectTab(c *gin.Context) { s.selectTab(c, view.SelectTabEvent) }

func (s *Server) handleMenuSelect(c *gin.Context) { s.selectTab(c, view.MenuSelectEvent) }

func (s *Server) selectTab(c *gin.Context, event func(view.Tab) view.Event) {
	tab, err := view.ParseTab(c.Param("tab"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	s.record(c, analytics.Event{Kind: analytics.KindTab, Subject: tab.String()})
	s.apply(c, event(tab))
}

func (s *Server) handleToggleMenu(c *gin.Context) {
	s.apply(c, view.ToggleMenuEvent())
}

func (s *Server) handleOpenProject(c *gin.Context) {
	sess := c.MustGet(sessionKey).(*session.Session)
	ref, err := sess.Catalog().Lookup(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, err.Error())
		return
	}
	s.record(c, analytics.Event{Kind: analytics.KindProject, Subject: ref.ID()})
	s.apply(c, view.OpenProjectEvent(ref))
}

func (s *Server) handleCloseProject(c *gin.Context) {
	s.apply(c, view.CloseProjectEvent())
}

func (s *Server) apply(c *gin.Context, ev view.Event) {
	sess := c.MustGet(sessionKey).(*session.Session)
	change, scene := sess.Apply(ev)
	render(c, http.StatusOK, ui.App(scene, ui.SessionRoutes(sess.ID), motion.CuesFor(change)))
}

func (s *Server) handleScene(c *gin.Context) {
	sess, err := s.store.Get(c.Param("sid"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, encodeScene(sess.ID, sess.Scene()))
}
