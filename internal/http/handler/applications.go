package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"builderboard/internal/application"
	"builderboard/internal/auth"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
)

type ApplicationHandler struct {
	Svc *application.Service
	DB  *gorm.DB
	JWT *auth.JWT
}

type applyReq struct {
	ApplicantName string   `json:"applicant_name"`
	Message       string   `json:"application_message"`
	ProfileLinks  []string `json:"profile_links"`
	PhoneNumber   *string  `json:"phone_number"`
}

// Apply creates an application for the session user. Identity comes from the
// verified session only; the body carries just the pitch.
func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	jobID, err := strconv.ParseUint(chi.URLParam(r, "jobId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid job id")
		return
	}

	uid, _ := auth.UserIDFromContext(r.Context())
	var u auth.User
	if err := h.DB.First(&u, uid).Error; err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	var req applyReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "bad json")
		return
	}

	app, err := h.Svc.Submit(r.Context(), application.Identity{UserID: u.ID, Email: u.Email}, jobID, application.SubmitInput{
		ApplicantName: req.ApplicantName,
		Message:       req.Message,
		ProfileLinks:  req.ProfileLinks,
		PhoneNumber:   req.PhoneNumber,
	})
	if err != nil {
		var fe application.FieldErrors
		switch {
		case errors.As(err, &fe):
			writeFieldErrors(w, fe)
		case errors.Is(err, application.ErrJobNotFound):
			writeError(w, http.StatusNotFound, "not_found", "job not found")
		case errors.Is(err, application.ErrDuplicate):
			writeError(w, http.StatusConflict, "conflict", "you have already applied for this job")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":        true,
		"application_id": app.ID,
		"status":         string(app.Status),
	})
}

// Accept and Reject share one flow; the action is implied by which endpoint
// was hit.
func (h *ApplicationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, application.ActionAccept)
}

func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, application.ActionReject)
}

// decide authorizes either path: an emailed single-use token (?token=), or
// a session proving the caller owns the job.
func (h *ApplicationHandler) decide(w http.ResponseWriter, r *http.Request, action application.Action) {
	appID, err := strconv.ParseUint(chi.URLParam(r, "applicationId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid application id")
		return
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("token")); raw != "" {
		h.writeDecision(w, h.Svc.DecideWithToken(r.Context(), raw, appID, action))
		return
	}

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		writeError(w, http.StatusUnauthorized, "unauthorized", "a session or decision token is required")
		return
	}
	uid, err := h.JWT.Verify(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing or invalid session")
		return
	}

	h.writeDecision(w, h.Svc.DecideAsOwner(r.Context(), application.Identity{UserID: uid}, appID, action))
}

func (h *ApplicationHandler) writeDecision(w http.ResponseWriter, err error) {
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	case errors.Is(err, application.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid_token", "this link is not valid")
	case errors.Is(err, application.ErrTokenUsed):
		writeError(w, http.StatusConflict, "token_used", "this link has already been used")
	case errors.Is(err, application.ErrNotFound), errors.Is(err, application.ErrJobNotFound):
		writeError(w, http.StatusNotFound, "not_found", "application not found")
	case errors.Is(err, application.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "only the job owner can decide this application")
	case errors.Is(err, application.ErrAlreadyDecided):
		writeError(w, http.StatusConflict, "conflict", "application already decided")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
	}
}
