package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"builderboard/internal/job"
	"builderboard/internal/profile"

	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	Jobs     *job.Service
	Profiles *profile.Service
}

type jobResp struct {
	ID             uint64    `json:"id"`
	OwnerProfileID uint64    `json:"owner_profile_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Location       *string   `json:"location"`
	SkillsNeeded   []string  `json:"skills_needed"`
	Commitment     string    `json:"commitment"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func jobDTO(j *job.Job) jobResp {
	return jobResp{
		ID:             j.ID,
		OwnerProfileID: j.OwnerProfileID,
		Title:          j.Title,
		Description:    j.Description,
		Location:       j.Location,
		SkillsNeeded:   []string(j.SkillsNeeded),
		Commitment:     string(j.Commitment),
		Status:         string(j.Status),
		CreatedAt:      j.CreatedAt,
		UpdatedAt:      j.UpdatedAt,
	}
}

type createJobReq struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     *string  `json:"location"`
	SkillsNeeded []string `json:"skills_needed"`
	Commitment   string   `json:"commitment"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}

	var req createJobReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "bad json")
		return
	}

	j, err := h.Jobs.Create(r.Context(), p.ID, job.CreateInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SkillsNeeded: req.SkillsNeeded,
		Commitment:   req.Commitment,
	})
	if err != nil {
		var fe job.FieldErrors
		if errors.As(err, &fe) {
			writeFieldErrors(w, fe)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	writeJSON(w, http.StatusCreated, jobDTO(j))
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "jobId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid job id")
		return
	}

	j, err := h.Jobs.ByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	writeJSON(w, http.StatusOK, jobDTO(j))
}

type updateJobReq struct {
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Location     *string  `json:"location"`
	SkillsNeeded []string `json:"skills_needed"`
	Commitment   *string  `json:"commitment"`
	Status       *string  `json:"status"`
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "jobId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "invalid job id")
		return
	}

	p, ok := callerProfileFor(w, r, h.Profiles)
	if !ok {
		return
	}

	var req updateJobReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "bad json")
		return
	}

	j, err := h.Jobs.Update(r.Context(), id, p.ID, job.UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		SkillsNeeded: req.SkillsNeeded,
		Commitment:   req.Commitment,
		Status:       req.Status,
	})
	if err != nil {
		var fe job.FieldErrors
		switch {
		case errors.As(err, &fe):
			writeFieldErrors(w, fe)
		case errors.Is(err, job.ErrNotFound):
			writeError(w, http.StatusNotFound, "not_found", "job not found")
		case errors.Is(err, job.ErrForbidden):
			writeError(w, http.StatusForbidden, "forbidden", "only the owner can edit a job")
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, jobDTO(j))
}
