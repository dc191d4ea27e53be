package handler

import (
	"errors"
	"net/http"
	"strconv"

	"builderboard/internal/job"
	"builderboard/internal/profile"
	"builderboard/internal/shortlist"

	"github.com/go-chi/chi/v5"
)

type ShortlistHandler struct {
	Shortlists *shortlist.Service
	Jobs       *job.Service
	Profiles   *profile.Service
}

func (h *ShortlistHandler) jobID(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, "jobId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid job id")
		return 0, false
	}
	return id, true
}

func (h *ShortlistHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.jobID(w, r)
	if !ok {
		return
	}
	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}

	listed, err := h.Shortlists.IsShortlisted(r.Context(), jobID, p.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"shortlisted": listed})
}

func (h *ShortlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.jobID(w, r)
	if !ok {
		return
	}
	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}

	if _, err := h.Jobs.ByID(r.Context(), jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	sl, err := h.Shortlists.Add(r.Context(), jobID, p.ID)
	if err != nil {
		if errors.Is(err, shortlist.ErrDuplicate) {
			writeError(w, http.StatusConflict, "conflict", "job already shortlisted")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"job_id":          sl.JobID,
		"user_profile_id": sl.UserProfileID,
		"created_at":      sl.CreatedAt,
	})
}

func (h *ShortlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	jobID, ok := h.jobID(w, r)
	if !ok {
		return
	}
	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}

	if err := h.Shortlists.Remove(r.Context(), jobID, p.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
