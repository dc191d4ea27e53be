package job

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	ErrNotFound  = errors.New("job not found")
	ErrForbidden = errors.New("not the job owner")
)

type Service struct {
	DB *gorm.DB
}

type CreateInput struct {
	Title        string
	Description  string
	Location     *string
	SkillsNeeded []string
	Commitment   string
}

// FieldErrors maps field name to a human-readable message. Detected before
// any store write.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for f, m := range e {
		parts = append(parts, f+": "+m)
	}
	return strings.Join(parts, "; ")
}

// validateCreate mirrors the posting form rules: title 3-100, description
// 50-2000, 1-8 skills, commitment must be a known band.
func validateCreate(in *CreateInput) (Commitment, FieldErrors) {
	fe := FieldErrors{}

	in.Title = strings.TrimSpace(in.Title)
	if n := len(in.Title); n < 3 || n > 100 {
		fe["title"] = "title must be 3-100 characters"
	}
	in.Description = strings.TrimSpace(in.Description)
	if n := len(in.Description); n < 50 || n > 2000 {
		fe["description"] = "description must be 50-2000 characters"
	}
	if n := len(in.SkillsNeeded); n < 1 || n > 8 {
		fe["skills_needed"] = "select between 1 and 8 skills"
	}

	c, err := ParseCommitment(in.Commitment)
	if err != nil {
		fe["commitment"] = "unknown commitment band"
	}

	if len(fe) > 0 {
		return "", fe
	}
	return c, nil
}

func (s *Service) Create(ctx context.Context, ownerProfileID uint64, in CreateInput) (*Job, error) {
	c, fe := validateCreate(&in)
	if fe != nil {
		return nil, fe
	}

	j := Job{
		OwnerProfileID: ownerProfileID,
		Title:          in.Title,
		Description:    in.Description,
		Location:       in.Location,
		SkillsNeeded:   in.SkillsNeeded,
		Commitment:     c,
		Status:         StatusActive,
	}
	if err := s.DB.WithContext(ctx).Create(&j).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *Service) ByID(ctx context.Context, id uint64) (*Job, error) {
	var j Job
	if err := s.DB.WithContext(ctx).First(&j, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

type UpdateInput struct {
	Title        *string
	Description  *string
	Location     *string
	SkillsNeeded []string
	Commitment   *string
	Status       *string
}

// Update edits owner-mutable fields. OwnerProfileID is never touched.
func (s *Service) Update(ctx context.Context, id, callerProfileID uint64, in UpdateInput) (*Job, error) {
	j, err := s.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if j.OwnerProfileID != callerProfileID {
		return nil, ErrForbidden
	}

	fe := FieldErrors{}
	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if n := len(t); n < 3 || n > 100 {
			fe["title"] = "title must be 3-100 characters"
		} else {
			j.Title = t
		}
	}
	if in.Description != nil {
		d := strings.TrimSpace(*in.Description)
		if n := len(d); n < 50 || n > 2000 {
			fe["description"] = "description must be 50-2000 characters"
		} else {
			j.Description = d
		}
	}
	if in.Location != nil {
		j.Location = in.Location
	}
	if in.SkillsNeeded != nil {
		if n := len(in.SkillsNeeded); n < 1 || n > 8 {
			fe["skills_needed"] = "select between 1 and 8 skills"
		} else {
			j.SkillsNeeded = in.SkillsNeeded
		}
	}
	if in.Commitment != nil {
		c, err := ParseCommitment(*in.Commitment)
		if err != nil {
			fe["commitment"] = "unknown commitment band"
		} else {
			j.Commitment = c
		}
	}
	if in.Status != nil {
		st, err := ParseStatus(*in.Status)
		if err != nil {
			fe["status"] = "status must be active or inactive"
		} else {
			j.Status = st
		}
	}
	if len(fe) > 0 {
		return nil, fe
	}

	if err := s.DB.WithContext(ctx).Save(j).Error; err != nil {
		return nil, err
	}
	return j, nil
}
