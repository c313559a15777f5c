package api

import (
	"errors"
	"net/http"

	"github.com/mergington/activities/internal/app"
)

// Client-facing detail strings. Clients match on "not found", "already signed up"
// and "not enrolled", so keep those phrases intact.
const (
	detailActivityNotFound = "Activity not found"
	detailAlreadySignedUp  = "Student is already signed up for this activity"
	detailNotEnrolled      = "Student is not enrolled in this activity"
	detailEmailRequired    = "email is required"
	detailInternal         = "internal server error"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Detail string `json:"detail"`
}

func writeError(w http.ResponseWriter, status int, detail string) {
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Detail: detail})
}

// statusFor maps service errors to a status code and detail string.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrActivityNotFound):
		return http.StatusNotFound, detailActivityNotFound
	case errors.Is(err, app.ErrAlreadySignedUp):
		return http.StatusBadRequest, detailAlreadySignedUp
	case errors.Is(err, app.ErrNotEnrolled):
		return http.StatusNotFound, detailNotEnrolled
	case errors.Is(err, app.ErrEmailRequired):
		return http.StatusBadRequest, detailEmailRequired
	default:
		return http.StatusInternalServerError, detailInternal
	}
}
