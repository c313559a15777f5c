package api

import "net/http"

// DefaultLandingPath is the static page GET / redirects to.
const DefaultLandingPath = "/static/index.html"

// RootHandler redirects the bare root to the landing page.
type RootHandler struct {
	target string
}

// NewRootHandler creates a root handler redirecting to target.
func NewRootHandler(target string) *RootHandler {
	return &RootHandler{target: target}
}

// HandleRoot handles GET / with a 307 so the method is preserved.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.target, http.StatusTemporaryRedirect)
}
