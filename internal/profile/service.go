package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("profile not found")

type Service struct {
	DB *gorm.DB
}

func (s *Service) ByUserID(ctx context.Context, userID uint64) (*Profile, error) {
	var p Profile
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

type UpsertInput struct {
	FullName     string
	AvatarURL    *string
	Bio          *string
	PortfolioURL []string
	Skills       []string
	PhoneNumber  *string
}

// Upsert creates or updates the caller's own profile. Only the owner ever
// reaches this path; ownership is the user id itself.
func (s *Service) Upsert(ctx context.Context, userID uint64, in UpsertInput) (*Profile, error) {
	var p Profile
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("user_id = ?", userID).First(&p).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			p = Profile{UserID: userID}
		case err != nil:
			return err
		}

		p.FullName = in.FullName
		p.AvatarURL = in.AvatarURL
		p.Bio = in.Bio
		p.PortfolioURL = in.PortfolioURL
		p.Skills = in.Skills
		p.PhoneNumber = in.PhoneNumber
		return tx.Save(&p).Error
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
