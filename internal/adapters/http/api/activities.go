package api

import (
	"net/http"

	"github.com/mergington/activities/pkg/logger"
)

// ActivitiesHandler serves the activity listing and roster mutations.
type ActivitiesHandler struct {
	deps   Dependencies
	logger logger.Logger
}

// NewActivitiesHandler creates a new activities handler. A nil logger falls back to the global one.
func NewActivitiesHandler(deps Dependencies, l logger.Logger) *ActivitiesHandler {
	return &ActivitiesHandler{deps: deps, logger: l}
}

// HandleList handles GET /activities.
func (h *ActivitiesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	activities, err := h.deps.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// HandleSignup handles POST /activities/{name}/signup?email=...
// PathValue and Query both return percent-decoded values.
func (h *ActivitiesHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.URL.Query().Get("email")

	msg, err := h.deps.Signup(r.Context(), name, email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

// HandleRemove handles DELETE /activities/{name}/participants/{email}.
func (h *ActivitiesHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	email := r.PathValue("email")

	msg, err := h.deps.Remove(r.Context(), name, email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: msg})
}

func (h *ActivitiesHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, detail := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.log().Error(r.Context(), "request failed",
			logger.String("path", r.URL.Path),
			logger.String("request_id", RequestIDFromContext(r.Context())),
			logger.Error(err),
		)
	}
	writeError(w, status, detail)
}

func (h *ActivitiesHandler) log() logger.Logger {
	if h.logger == nil {
		return logger.Get()
	}
	return h.logger
}
