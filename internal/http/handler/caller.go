package handler

import (
	"errors"
	"net/http"

	"builderboard/internal/auth"
	"builderboard/internal/profile"
)

// callerProfileFor resolves the session user's profile. Owner-scoped
// operations and bookmarks hang off the profile id, not the user id.
func callerProfileFor(w http.ResponseWriter, r *http.Request, profiles *profile.Service) (*profile.Profile, bool) {
	uid, _ := auth.UserIDFromContext(r.Context())
	p, err := profiles.ByUserID(r.Context(), uid)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "user profile not found")
		} else {
			writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		}
		return nil, false
	}
	return p, true
}
