// Package site serves the embedded landing page under /static/.
package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"
)

// Prefix is the URL prefix the landing page assets live under.
const Prefix = "/static/"

// IndexPath is the landing page the root path redirects to.
const IndexPath = Prefix + "index.html"

// ErrServe is returned when an embedded asset cannot be read.
var ErrServe = errors.New("site serve failed")

// Register attaches the landing page routes to mux.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}

	// http.FileServer redirects ".../index.html" to the directory, so the
	// page itself is served directly.
	mux.HandleFunc("GET "+IndexPath, NewIndexHandler().HandleIndex)
	mux.Handle("GET "+Prefix, http.StripPrefix(Prefix[:len(Prefix)-1], http.FileServer(FS())))
}

// IndexHandler serves the embedded landing page.
type IndexHandler struct {
	page []byte
}

// NewIndexHandler creates a new index handler.
func NewIndexHandler() *IndexHandler {
	page, _ := Index()
	return &IndexHandler{page: page}
}

// HandleIndex handles GET /static/index.html.
func (h *IndexHandler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if len(h.page) == 0 {
		http.Error(w, ErrServe.Error(), http.StatusInternalServerError)
		return
	}
	http.ServeContent(w, r, "index.html", time.Time{}, bytes.NewReader(h.page))
}
