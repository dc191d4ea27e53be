package shortlist

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrDuplicate = errors.New("job already shortlisted")

type Service struct {
	DB *gorm.DB
}

func (s *Service) IsShortlisted(ctx context.Context, jobID, profileID uint64) (bool, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&Shortlist{}).
		Where("job_id = ? AND user_profile_id = ?", jobID, profileID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Add inserts the bookmark. The unique index owns the no-duplicates
// invariant; a conflicting insert surfaces as ErrDuplicate.
func (s *Service) Add(ctx context.Context, jobID, profileID uint64) (*Shortlist, error) {
	sl := Shortlist{JobID: jobID, UserProfileID: profileID}
	if err := s.DB.WithContext(ctx).Create(&sl).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &sl, nil
}

func (s *Service) Remove(ctx context.Context, jobID, profileID uint64) error {
	return s.DB.WithContext(ctx).
		Where("job_id = ? AND user_profile_id = ?", jobID, profileID).
		Delete(&Shortlist{}).Error
}
