// Package web is the local preview server for the generated site. It is a
// development convenience only; the published site is plain static files.
package web

import (
	"fmt"
	"net/http"

	"github.com/ebochsler/personal-site/internal/store"
)

// Server serves a built site directory plus a small dev API.
type Server struct {
	Store *store.Store
	Dir   string
	Addr  string
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	fmt.Printf("Previewing %s at http://%s\n", s.Dir, s.Addr)
	return http.ListenAndServe(s.Addr, s.Handler())
}

// Handler builds the preview mux: the built site at /, cache introspection
// under /api.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/cache", s.handleCache)
	mux.Handle("/", http.FileServer(http.Dir(s.Dir)))
	return mux
}
