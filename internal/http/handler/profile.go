package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"builderboard/internal/application"
	"builderboard/internal/auth"
	"builderboard/internal/profile"
)

type ProfileHandler struct {
	Profiles *profile.Service
}

type profileResp struct {
	ID           uint64   `json:"id"`
	FullName     string   `json:"full_name"`
	AvatarURL    *string  `json:"avatar_url"`
	Bio          *string  `json:"bio"`
	PortfolioURL []string `json:"portfolio_url"`
	Skills       []string `json:"skills"`
	PhoneNumber  *string  `json:"phone_number"`
}

func profileDTO(p *profile.Profile) profileResp {
	return profileResp{
		ID:           p.ID,
		FullName:     p.FullName,
		AvatarURL:    p.AvatarURL,
		Bio:          p.Bio,
		PortfolioURL: []string(p.PortfolioURL),
		Skills:       []string(p.Skills),
		PhoneNumber:  p.PhoneNumber,
	}
}

type upsertProfileReq struct {
	FullName     string   `json:"full_name"`
	AvatarURL    *string  `json:"avatar_url"`
	Bio          *string  `json:"bio"`
	PortfolioURL []string `json:"portfolio_url"`
	Skills       []string `json:"skills"`
	PhoneNumber  *string  `json:"phone_number"`
}

func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req upsertProfileReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation_error", "bad json")
		return
	}

	fields := map[string]string{}
	req.FullName = strings.TrimSpace(req.FullName)
	if len(req.FullName) < 2 {
		fields["full_name"] = "name must be at least 2 characters"
	}

	portfolio := make([]string, 0, len(req.PortfolioURL))
	for _, u := range req.PortfolioURL {
		n, ok := application.NormalizeURL(u)
		if !ok {
			fields["portfolio_url"] = "each portfolio link must be a valid URL"
			continue
		}
		portfolio = append(portfolio, n)
	}

	if req.PhoneNumber != nil {
		p := strings.TrimSpace(*req.PhoneNumber)
		if p == "" {
			req.PhoneNumber = nil
		} else if !application.ValidPhoneNumber(p) {
			fields["phone_number"] = "phone number may contain digits and a leading + only"
		} else {
			req.PhoneNumber = &p
		}
	}

	if len(fields) > 0 {
		writeFieldErrors(w, fields)
		return
	}

	p, err := h.Profiles.Upsert(r.Context(), uid, profile.UpsertInput{
		FullName:     req.FullName,
		AvatarURL:    req.AvatarURL,
		Bio:          req.Bio,
		PortfolioURL: portfolio,
		Skills:       req.Skills,
		PhoneNumber:  req.PhoneNumber,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "server error")
		return
	}

	writeJSON(w, http.StatusOK, profileDTO(p))
}
