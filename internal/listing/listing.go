// Package listing is the read side: paginated projections of jobs joined
// with creator profiles and counts. No write invariants live here.
package listing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"builderboard/internal/application"
	"builderboard/internal/cache"
	"builderboard/internal/job"
	"builderboard/internal/profile"
	"builderboard/internal/shortlist"

	"gorm.io/gorm"
)

const (
	pageSize            = 10
	recommendedPageSize = 20

	recommendedCacheTTL = 30 * time.Second
)

type Service struct {
	DB    *gorm.DB
	Cache *cache.Cache
}

// Creator is the slice of a profile exposed on job cards.
type Creator struct {
	ID        uint64  `json:"id"`
	FullName  string  `json:"full_name"`
	AvatarURL *string `json:"avatar_url"`
}

type JobCard struct {
	ID           uint64    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Location     *string   `json:"location"`
	CreatedAt    time.Time `json:"created_at"`
	SkillsNeeded []string  `json:"skills_needed"`
	Commitment   string    `json:"commitment"`
	Status       string    `json:"status"`
	Creator      Creator   `json:"creator"`
}

type JobPage struct {
	Jobs    []JobCard `json:"jobs"`
	HasMore bool      `json:"hasMore"`
}

type RecommendedPage struct {
	Jobs    []JobCard `json:"jobs"`
	HasMore bool      `json:"hasMore"`
	Total   int64     `json:"total"`
}

// SentJobCard is a job card annotated with the caller's application.
type SentJobCard struct {
	JobCard
	ApplicationStatus string    `json:"application_status"`
	ApplicationDate   time.Time `json:"application_date"`
}

type SentPage struct {
	Jobs    []SentJobCard `json:"jobs"`
	HasMore bool          `json:"hasMore"`
}

// MyProjectCard is an owned job with its engagement counts.
type MyProjectCard struct {
	JobCard
	ShortlistCount  int64 `json:"shortlist_count"`
	ConnectionCount int64 `json:"connection_count"`
}

type Pagination struct {
	TotalPages   int64 `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	TotalCount   int64 `json:"totalCount"`
	ItemsPerPage int   `json:"itemsPerPage"`
}

type MyProjectsPage struct {
	Projects   []MyProjectCard `json:"projects"`
	Pagination Pagination      `json:"pagination"`
}

// List returns all jobs, newest first, 10 per zero-based page.
func (s *Service) List(ctx context.Context, page int) (*JobPage, error) {
	var jobs []job.Job
	err := s.DB.WithContext(ctx).
		Order("created_at desc").
		Offset(page * pageSize).Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	cards, err := s.toCards(ctx, jobs)
	if err != nil {
		return nil, err
	}
	return &JobPage{Jobs: cards, HasMore: len(jobs) == pageSize}, nil
}

// Recommended returns active jobs, 20 per zero-based page, with an exact
// total. Pages are served from Redis for a short TTL when available.
func (s *Service) Recommended(ctx context.Context, page int) (*RecommendedPage, error) {
	key := fmt.Sprintf("listing:recommended:%d", page)
	if b, ok := s.Cache.Get(ctx, key); ok {
		var cached RecommendedPage
		if err := json.Unmarshal(b, &cached); err == nil {
			return &cached, nil
		}
	}

	var total int64
	err := s.DB.WithContext(ctx).Model(&job.Job{}).
		Where("status = ?", job.StatusActive).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	var jobs []job.Job
	err = s.DB.WithContext(ctx).
		Where("status = ?", job.StatusActive).
		Order("created_at desc").
		Offset(page * recommendedPageSize).Limit(recommendedPageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	cards, err := s.toCards(ctx, jobs)
	if err != nil {
		return nil, err
	}
	out := &RecommendedPage{
		Jobs:    cards,
		HasMore: total > int64((page+1)*recommendedPageSize),
		Total:   total,
	}

	if b, err := json.Marshal(out); err == nil {
		s.Cache.Set(ctx, key, b, recommendedCacheTTL)
	}
	return out, nil
}

// Shortlisted returns the caller's bookmarked jobs, most recently
// bookmarked first.
func (s *Service) Shortlisted(ctx context.Context, profileID uint64, page int) (*JobPage, error) {
	var marks []shortlist.Shortlist
	err := s.DB.WithContext(ctx).
		Where("user_profile_id = ?", profileID).
		Order("created_at desc").
		Offset(page * pageSize).Limit(pageSize).
		Find(&marks).Error
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uint64, 0, len(marks))
	for _, m := range marks {
		jobIDs = append(jobIDs, m.JobID)
	}
	byID, err := s.jobsByID(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	ordered := make([]job.Job, 0, len(marks))
	for _, m := range marks {
		if j, ok := byID[m.JobID]; ok {
			ordered = append(ordered, j)
		}
	}
	cards, err := s.toCards(ctx, ordered)
	if err != nil {
		return nil, err
	}
	return &JobPage{Jobs: cards, HasMore: len(marks) == pageSize}, nil
}

// Sent returns the caller's applications joined with their jobs, newest
// application first.
func (s *Service) Sent(ctx context.Context, userID uint64, page int) (*SentPage, error) {
	var apps []application.Application
	err := s.DB.WithContext(ctx).
		Where("applicant_user_id = ?", userID).
		Order("created_at desc").
		Offset(page * pageSize).Limit(pageSize).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uint64, 0, len(apps))
	for _, a := range apps {
		jobIDs = append(jobIDs, a.JobID)
	}
	byID, err := s.jobsByID(ctx, jobIDs)
	if err != nil {
		return nil, err
	}

	ordered := make([]job.Job, 0, len(apps))
	kept := make([]application.Application, 0, len(apps))
	for _, a := range apps {
		if j, ok := byID[a.JobID]; ok {
			ordered = append(ordered, j)
			kept = append(kept, a)
		}
	}
	cards, err := s.toCards(ctx, ordered)
	if err != nil {
		return nil, err
	}

	out := make([]SentJobCard, 0, len(cards))
	for i, c := range cards {
		out = append(out, SentJobCard{
			JobCard:           c,
			ApplicationStatus: string(kept[i].Status),
			ApplicationDate:   kept[i].CreatedAt,
		})
	}
	return &SentPage{Jobs: out, HasMore: len(apps) == pageSize}, nil
}

// MyProjects returns the caller's own jobs with shortlist and connection
// counts, 10 per one-based page, plus full pagination metadata.
func (s *Service) MyProjects(ctx context.Context, profileID uint64, page int) (*MyProjectsPage, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	err := s.DB.WithContext(ctx).Model(&job.Job{}).
		Where("owner_profile_id = ?", profileID).
		Count(&total).Error
	if err != nil {
		return nil, err
	}

	var jobs []job.Job
	err = s.DB.WithContext(ctx).
		Where("owner_profile_id = ?", profileID).
		Order("created_at desc").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	jobIDs := make([]uint64, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}
	shortlistCounts, err := s.countByJob(ctx, &shortlist.Shortlist{}, "", jobIDs)
	if err != nil {
		return nil, err
	}
	connectionCounts, err := s.countByJob(ctx, &application.Application{}, string(application.StatusAccepted), jobIDs)
	if err != nil {
		return nil, err
	}

	cards, err := s.toCards(ctx, jobs)
	if err != nil {
		return nil, err
	}
	out := make([]MyProjectCard, 0, len(cards))
	for _, c := range cards {
		out = append(out, MyProjectCard{
			JobCard:         c,
			ShortlistCount:  shortlistCounts[c.ID],
			ConnectionCount: connectionCounts[c.ID],
		})
	}

	totalPages := (total + pageSize - 1) / pageSize
	return &MyProjectsPage{
		Projects: out,
		Pagination: Pagination{
			TotalPages:   totalPages,
			CurrentPage:  page,
			TotalCount:   total,
			ItemsPerPage: pageSize,
		},
	}, nil
}

func (s *Service) jobsByID(ctx context.Context, ids []uint64) (map[uint64]job.Job, error) {
	out := make(map[uint64]job.Job, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var jobs []job.Job
	if err := s.DB.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error; err != nil {
		return nil, err
	}
	for _, j := range jobs {
		out[j.ID] = j
	}
	return out, nil
}

// toCards joins jobs to their creator profiles in one query.
func (s *Service) toCards(ctx context.Context, jobs []job.Job) ([]JobCard, error) {
	cards := make([]JobCard, 0, len(jobs))
	if len(jobs) == 0 {
		return cards, nil
	}

	profileIDs := make([]uint64, 0, len(jobs))
	for _, j := range jobs {
		profileIDs = append(profileIDs, j.OwnerProfileID)
	}
	var profiles []profile.Profile
	if err := s.DB.WithContext(ctx).Where("id IN ?", profileIDs).Find(&profiles).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint64]profile.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	for _, j := range jobs {
		c := Creator{ID: j.OwnerProfileID}
		if p, ok := byID[j.OwnerProfileID]; ok {
			c.FullName = p.FullName
			c.AvatarURL = p.AvatarURL
		}
		cards = append(cards, JobCard{
			ID:           j.ID,
			Title:        j.Title,
			Description:  j.Description,
			Location:     j.Location,
			CreatedAt:    j.CreatedAt,
			SkillsNeeded: []string(j.SkillsNeeded),
			Commitment:   string(j.Commitment),
			Status:       string(j.Status),
			Creator:      c,
		})
	}
	return cards, nil
}

// countByJob groups row counts by job id, optionally filtered by status.
func (s *Service) countByJob(ctx context.Context, model any, status string, jobIDs []uint64) (map[uint64]int64, error) {
	out := make(map[uint64]int64, len(jobIDs))
	if len(jobIDs) == 0 {
		return out, nil
	}

	type row struct {
		JobID uint64
		N     int64
	}
	q := s.DB.WithContext(ctx).Model(model).
		Select("job_id, count(*) as n").
		Where("job_id IN ?", jobIDs)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var rows []row
	if err := q.Group("job_id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, r := range rows {
		out[r.JobID] = r.N
	}
	return out, nil
}
