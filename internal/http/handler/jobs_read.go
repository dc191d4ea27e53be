package handler

import (
	"net/http"
	"strconv"
	"strings"

	"builderboard/internal/auth"
	"builderboard/internal/listing"
	"builderboard/internal/profile"
)

type JobReadHandler struct {
	Listings *listing.Service
	Profiles *profile.Service
}

func pageParam(r *http.Request, def int) int {
	v := strings.TrimSpace(r.URL.Query().Get("page"))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

func (h *JobReadHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.Listings.List(r.Context(), pageParam(r, 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load jobs")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *JobReadHandler) Recommended(w http.ResponseWriter, r *http.Request) {
	page, err := h.Listings.Recommended(r.Context(), pageParam(r, 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load jobs")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *JobReadHandler) Shortlisted(w http.ResponseWriter, r *http.Request) {
	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}
	page, err := h.Listings.Shortlisted(r.Context(), p.ID, pageParam(r, 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load shortlisted jobs")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *JobReadHandler) Sent(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	page, err := h.Listings.Sent(r.Context(), uid, pageParam(r, 0))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load sent applications")
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *JobReadHandler) MyProjects(w http.ResponseWriter, r *http.Request) {
	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}
	page, err := h.Listings.MyProjects(r.Context(), p.ID, pageParam(r, 1))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to load projects")
		return
	}
	writeJSON(w, http.StatusOK, page)
}
