// Package web serves the dashboard pages, the panel JSON API and the
// redraw websocket.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"time"

	"AltRadar/internal/dashboard"
)

// Server is the dashboard HTTP server.
type Server struct {
	Live  *dashboard.LivePanel
	Saved *dashboard.SavedPanel
	Hub   *Hub

	addr    string
	started time.Time
	server  *http.Server
}

// NewServer creates a server for both panels.
func NewServer(addr string, live *dashboard.LivePanel, saved *dashboard.SavedPanel, hub *Hub) *Server {
	s := &Server{Live: live, Saved: saved, Hub: hub, addr: addr, started: time.Now()}
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /dashboard", s.handleLivePage)
	mux.HandleFunc("GET /saved-dashboard", s.handleSavedPage)
	mux.HandleFunc("POST /dashboard/refresh", s.handleLiveRefresh)
	mux.HandleFunc("POST /saved-dashboard/refresh", s.handleSavedRefresh)
	mux.HandleFunc("POST /saved-dashboard/filter", s.handleSavedFilter)
	mux.HandleFunc("POST /saved-dashboard/reset", s.handleSavedReset)
	mux.HandleFunc("GET /api/panels/live", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Live.Snapshot())
	})
	mux.HandleFunc("GET /api/panels/saved", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.Saved.Snapshot())
	})
	mux.HandleFunc("GET /ws", s.Hub.ServeWS)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})

	return mux
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("[INFO] dashboard listening on %s", s.addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	s.Hub.Close()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleLivePage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, s.Live.View(), "/dashboard")
}

func (s *Server) handleSavedPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, s.Saved.View(), "/saved-dashboard")
}

func (s *Server) handleLiveRefresh(w http.ResponseWriter, r *http.Request) {
	s.Live.Load(r.Context())
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (s *Server) handleSavedRefresh(w http.ResponseWriter, r *http.Request) {
	s.Saved.Load(r.Context())
	http.Redirect(w, r, "/saved-dashboard", http.StatusSeeOther)
}

func (s *Server) handleSavedFilter(w http.ResponseWriter, r *http.Request) {
	s.Saved.FilterBuyCandidates()
	http.Redirect(w, r, "/saved-dashboard", http.StatusSeeOther)
}

func (s *Server) handleSavedReset(w http.ResponseWriter, r *http.Request) {
	s.Saved.ShowAll()
	http.Redirect(w, r, "/saved-dashboard", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":         "ok",
		"uptime":         time.Since(s.started).Round(time.Second).String(),
		"live_revision":  s.Live.Revision(),
		"saved_revision": s.Saved.Revision(),
		"ws_clients":     s.Hub.Clients(),
	})
}

type pageData struct {
	dashboard.View
	Path      string
	TableHTML template.HTML
}

func (s *Server) writePage(w http.ResponseWriter, v dashboard.View, path string) {
	var table bytes.Buffer
	if err := v.Table.WriteHTML(&table); err != nil {
		log.Printf("[ERROR] render table %s: %v", v.Table.ID, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	var page bytes.Buffer
	data := pageData{View: v, Path: path, TableHTML: template.HTML(table.String())}
	if err := pageTmpl.Execute(&page, data); err != nil {
		log.Printf("[ERROR] render page %s: %v", path, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.Bytes())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[WARN] encode response: %v", err)
	}
}
