package handler

import (
	"errors"
	"net/http"

	"builderboard/internal/auth"
	"builderboard/internal/profile"

	"gorm.io/gorm"
)

type MeHandler struct {
	DB       *gorm.DB
	Profiles *profile.Service
}

func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var u auth.User
	if err := h.DB.First(&u, uid).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	out := map[string]any{
		"user_id": u.ID,
		"email":   u.Email,
	}
	p, err := h.Profiles.ByUserID(r.Context(), uid)
	switch {
	case err == nil:
		out["profile"] = profileDTO(p)
	case errors.Is(err, profile.ErrNotFound):
		out["profile"] = nil
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	writeJSON(w, http.StatusOK, out)
}
