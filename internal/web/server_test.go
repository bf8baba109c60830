package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/alexrivera/archfolio/internal/analytics"
	"github.com/alexrivera/archfolio/internal/content"
	"github.com/alexrivera/archfolio/internal/session"
	"github.com/alexrivera/archfolio/internal/view"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeRecorder struct {
	events chan analytics.Event
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{events: make(chan analytics.Event, 16)}
}

func (f *fakeRecorder) Record(_ context.Context, e analytics.Event) error {
	f.events <- e
	return nil
}

func (f *fakeRecorder) next(t *testing.T) analytics.Event {
	t.Helper()
	select {
	case e := <-f.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for analytics event")
		return analytics.Event{}
	}
}

func (f *fakeRecorder) none(t *testing.T) {
	t.Helper()
	select {
	case e := <-f.events:
		t.Fatalf("unexpected analytics event %+v", e)
	case <-time.After(50 * time.Millisecond):
	}
}

func newTestServer(t *testing.T, cfg Config, rec Recorder) *Server {
	t.Helper()
	store := session.NewStore(content.Default(), session.Options{IdleTimeout: time.Hour, MaxSessions: 16})
	return New(cfg, store, rec)
}

func do(srv *Server, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	w := do(srv, "GET", "/healthz")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t, Config{AllowAllOrigins: true}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("expected CORS Allow-Origin header")
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "" {
		t.Errorf("credentials must not be allowed for every origin, got %q", got)
	}
}

func TestCORSCredentialsForLocalOrigins(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)

	req := httptest.NewRequest("OPTIONS", "/healthz", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected local origin to be allowed, got %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials for local origins, got %q", got)
	}
}

func TestStaticStylesheet(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	w := do(srv, "GET", "/static/site.css")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `[data-motion="enter"]`) {
		t.Error("stylesheet missing enter animation rule")
	}
}

func TestIndexMountsSession(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)

	for i := 1; i <= 2; i++ {
		w := do(srv, "GET", "/")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		if !strings.Contains(body, `data-panel="projects"`) {
			t.Error("a fresh mount should show the projects panel")
		}
		if strings.Contains(body, `class="lightbox"`) {
			t.Error("a fresh mount should have no overlay")
		}
		if got := srv.store.Len(); got != i {
			t.Errorf("expected %d sessions, got %d", i, got)
		}
	}
}

func TestTransitions(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	sess := srv.store.Mount()
	base := "/s/" + sess.ID

	w := do(srv, "POST", base+"/tabs/about")
	if w.Code != http.StatusOK {
		t.Fatalf("select tab: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `data-panel="about"`) {
		t.Error("expected about panel fragment")
	}
	if !strings.Contains(w.Body.String(), `id="app"`) {
		t.Error("fragment should replace #app")
	}

	w = do(srv, "POST", base+"/menu/toggle")
	if !strings.Contains(w.Body.String(), `aria-expanded="true"`) {
		t.Error("menu should be open after toggle")
	}

	w = do(srv, "POST", base+"/menu/tabs/contact")
	body := w.Body.String()
	if !strings.Contains(body, `data-panel="contact"`) || !strings.Contains(body, `aria-expanded="false"`) {
		t.Error("menu selection should switch tab and close the menu")
	}

	w = do(srv, "POST", base+"/projects/4")
	if !strings.Contains(w.Body.String(), `class="lightbox"`) {
		t.Error("expected overlay after opening a project")
	}
	if sel := sess.Scene().Overlay; sel == nil || sel.Project.ID != "4" {
		t.Errorf("expected project 4 selected, got %+v", sel)
	}

	w = do(srv, "DELETE", base+"/projects")
	if strings.Contains(w.Body.String(), `class="lightbox"`) {
		t.Error("overlay should be gone after close")
	}
	if sess.Scene().ActiveTab() != view.TabContact {
		t.Error("closing the overlay should not change the tab")
	}
}

func TestUnknownSession(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	w := do(srv, "POST", "/s/missing/tabs/about")

	if w.Code != http.StatusGone {
		t.Fatalf("expected 410, got %d", w.Code)
	}
	if w.Header().Get("HX-Refresh") != "true" {
		t.Error("expected HX-Refresh header")
	}
}

func TestUnknownTabAndProject(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	sess := srv.store.Mount()
	base := "/s/" + sess.ID

	if w := do(srv, "POST", base+"/tabs/blog"); w.Code != http.StatusNotFound {
		t.Errorf("unknown tab: expected 404, got %d", w.Code)
	}
	if w := do(srv, "POST", base+"/projects/99"); w.Code != http.StatusNotFound {
		t.Errorf("unknown project: expected 404, got %d", w.Code)
	}

	scene := sess.Scene()
	if scene.ActiveTab() != view.TabProjects || scene.Overlay != nil {
		t.Error("rejected requests should not change state")
	}
}

func TestSceneJSON(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	sess := srv.store.Mount()
	ref, _ := sess.Catalog().Lookup("5")
	sess.Apply(view.OpenProjectEvent(ref))

	w := do(srv, "GET", "/api/sessions/"+sess.ID+"/scene")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var scene sceneJSON
	if err := json.Unmarshal(w.Body.Bytes(), &scene); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if scene.ActiveTab != view.TabProjects {
		t.Errorf("active tab: got %s", scene.ActiveTab)
	}
	if len(scene.Panel.Projects) != 6 || scene.Panel.Projects[0].ID != "1" {
		t.Errorf("expected six projects in seed order, got %d", len(scene.Panel.Projects))
	}
	if scene.Overlay == nil || scene.Overlay.ID != "5" {
		t.Errorf("expected overlay for project 5, got %+v", scene.Overlay)
	}
	if !strings.Contains(w.Body.String(), `"active_tab":"projects"`) {
		t.Error("tabs should encode by name")
	}

	if w := do(srv, "GET", "/api/sessions/nope/scene"); w.Code != http.StatusNotFound {
		t.Errorf("unknown session: expected 404, got %d", w.Code)
	}
}

func TestWebSocketRoundTrip(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	server := httptest.NewServer(srv.Handler())
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	defer conn.Close()

	var scene sceneJSON
	if err := conn.ReadJSON(&scene); err != nil {
		t.Fatalf("read initial scene: %v", err)
	}
	if scene.ActiveTab != view.TabProjects || scene.Overlay != nil {
		t.Fatalf("unexpected initial scene: %+v", scene)
	}
	if srv.store.Len() != 1 {
		t.Errorf("expected one mounted session, got %d", srv.store.Len())
	}

	send := func(msg string) map[string]any {
		t.Helper()
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			t.Fatalf("write: %v", err)
		}
		var resp map[string]any
		if err := conn.ReadJSON(&resp); err != nil {
			t.Fatalf("read: %v", err)
		}
		return resp
	}

	resp := send(`{"op":"selectTab","tab":"about"}`)
	if resp["active_tab"] != "about" {
		t.Errorf("expected about, got %v", resp["active_tab"])
	}

	for _, bad := range []string{`not json`, `{"op":"openProject","id":"42"}`, `{"op":"selectTab","tab":"blog"}`, `{"op":"dance"}`} {
		resp = send(bad)
		if _, ok := resp["error"]; !ok {
			t.Errorf("%s: expected error frame, got %v", bad, resp)
		}
	}

	resp = send(`{"op":"openProject","id":"2"}`)
	overlay, _ := resp["overlay"].(map[string]any)
	if overlay["id"] != "2" || resp["active_tab"] != "about" {
		t.Errorf("expected project 2 over the about panel, got %v", resp)
	}

	conn.Close()
	deadline := time.Now().Add(2 * time.Second)
	for srv.store.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatal("session should be unmounted when the connection closes")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestTrackingRecordsViewsAndInteractions(t *testing.T) {
	rec := newFakeRecorder()
	srv := newTestServer(t, Config{}, rec)

	do(srv, "GET", "/")
	if e := rec.next(t); e.Kind != analytics.KindView || e.Path != "/" {
		t.Errorf("expected page view, got %+v", e)
	}

	sess := srv.store.Mount()
	do(srv, "POST", "/s/"+sess.ID+"/tabs/contact")
	if e := rec.next(t); e.Kind != analytics.KindTab || e.Subject != "contact" {
		t.Errorf("expected tab event, got %+v", e)
	}

	do(srv, "POST", "/s/"+sess.ID+"/projects/6")
	if e := rec.next(t); e.Kind != analytics.KindProject || e.Subject != "6" {
		t.Errorf("expected project event, got %+v", e)
	}

	do(srv, "GET", "/static/site.css")
	do(srv, "GET", "/healthz")
	rec.none(t)
}

func TestTrackingHonorsDNT(t *testing.T) {
	rec := newFakeRecorder()
	srv := newTestServer(t, Config{}, rec)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("DNT", "1")
	srv.Handler().ServeHTTP(httptest.NewRecorder(), req)

	rec.none(t)
}

func dialWS(t *testing.T, srv *Server) (*websocket.Conn, sceneJSON) {
	t.Helper()
	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	var scene sceneJSON
	if err := conn.ReadJSON(&scene); err != nil {
		t.Fatalf("read initial scene: %v", err)
	}
	return conn, scene
}

func TestWebSocketSessionSurvivesIdleSweep(t *testing.T) {
	store := session.NewStore(content.Default(), session.Options{IdleTimeout: time.Millisecond, MaxSessions: 1})
	srv := New(Config{}, store, nil)
	conn, _ := dialWS(t, srv)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"selectTab","tab":"contact"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var scene sceneJSON
	if err := conn.ReadJSON(&scene); err != nil {
		t.Fatalf("read: %v", err)
	}

	time.Sleep(20 * time.Millisecond)
	if n := store.Sweep(); n != 0 {
		t.Errorf("sweep removed %d sessions of an open connection", n)
	}
	store.Mount()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"openProject","id":"3"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp map[string]any
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, ok := resp["error"]; ok {
		t.Fatalf("expected a scene, got %v", resp)
	}
	overlay, _ := resp["overlay"].(map[string]any)
	if resp["active_tab"] != "contact" || overlay["id"] != "3" {
		t.Errorf("state was lost while the connection was idle: %v", resp)
	}
}

func TestWebSocketClosesWhenSessionGone(t *testing.T) {
	srv := newTestServer(t, Config{}, nil)
	conn, scene := dialWS(t, srv)

	srv.store.Unmount(scene.Session)

	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"op":"toggleMenu"}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp map[string]any
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if resp["error"] != "session expired" {
		t.Errorf("expected session expired frame, got %v", resp)
	}

	_, _, err := conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("expected a going-away close frame, got %v", err)
	}
}
