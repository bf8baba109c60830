package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/alexrivera/archfolio/internal/analytics"
	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/view"
)

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Op  string `json:"op"` // selectTab, menuSelect, toggleMenu, openProject or closeProject
	Tab string `json:"tab,omitempty"`
	ID  string `json:"id,omitempty"`
}

type wsError struct {
	Error string `json:"error"`
}

// handleWebSocket mounts a pinned session for the lifetime of the
// connection, so idle sweeps and eviction leave it alone. The scene is
// pushed on connect and after every accepted message.
func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("web: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	sess := s.store.MountPinned()
	defer s.store.Unmount(sess.ID)

	if err := conn.WriteJSON(encodeScene(sess.ID, sess.Scene())); err != nil {
		log.Printf("web: websocket write: %v", err)
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("web: websocket read: %v", err)
			}
			return
		}

		if _, err := s.store.Get(sess.ID); err != nil {
			sendError(conn, "session expired")
			closeConn(conn, websocket.CloseGoingAway, "session expired")
			return
		}

		ev, err := decodeEvent(sess.Catalog(), msg)
		if err != nil {
			if !sendError(conn, err.Error()) {
				return
			}
			continue
		}

		switch ev.Kind {
		case view.EventSelectTab, view.EventMenuSelect:
			s.record(c, analytics.Event{Kind: analytics.KindTab, Subject: ev.Tab.String()})
		case view.EventOpenProject:
			s.record(c, analytics.Event{Kind: analytics.KindProject, Subject: ev.Project.ID()})
		}

		_, scene := sess.Apply(ev)
		if err := conn.WriteJSON(encodeScene(sess.ID, scene)); err != nil {
			log.Printf("web: websocket write: %v", err)
			return
		}
	}
}

func sendError(conn *websocket.Conn, message string) bool {
	if err := conn.WriteJSON(wsError{Error: message}); err != nil {
		log.Printf("web: websocket write error: %v", err)
		return false
	}
	return true
}

// closeConn sends a close frame before the server drops the connection.
func closeConn(conn *websocket.Conn, code int, reason string) {
	msg := websocket.FormatCloseMessage(code, reason)
	if err := conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second)); err != nil {
		log.Printf("web: websocket close: %v", err)
	}
}

// decodeEvent turns a client message into an event. Tab names and project
// ids are resolved here, so only valid events reach the controller.
func decodeEvent(catalog *content.Catalog, data []byte) (view.Event, error) {
	var req wsRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return view.Event{}, errors.New("invalid message format")
	}

	switch req.Op {
	case "selectTab", "menuSelect":
		tab, err := view.ParseTab(req.Tab)
		if err != nil {
			return view.Event{}, err
		}
		if req.Op == "menuSelect" {
			return view.MenuSelectEvent(tab), nil
		}
		return view.SelectTabEvent(tab), nil
	case "toggleMenu":
		return view.ToggleMenuEvent(), nil
	case "openProject":
		ref, err := catalog.Lookup(req.ID)
		if err != nil {
			return view.Event{}, err
		}
		return view.OpenProjectEvent(ref), nil
	case "closeProject":
		return view.CloseProjectEvent(), nil
	default:
		return view.Event{}, fmt.Errorf("unknown op %q", req.Op)
	}
}
