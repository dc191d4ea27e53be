package shortlist

import "time"

// Shortlist marks "profile bookmarked job". Existence is the whole state;
// the (job_id, user_profile_id) pair is unique at the store level.
type Shortlist struct {
	ID            uint64    `gorm:"primaryKey"`
	JobID         uint64    `gorm:"index;not null"`
	UserProfileID uint64    `gorm:"index;not null"`
	CreatedAt     time.Time `gorm:"not null;default:now()"`
}
