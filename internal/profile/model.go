package profile

import (
	"time"

	"github.com/lib/pq"
)

// Profile is the public identity of a user, 1:1 with auth.User.
type Profile struct {
	ID           uint64         `gorm:"primaryKey"`
	UserID       uint64         `gorm:"uniqueIndex;not null"`
	FullName     string         `gorm:"not null"`
	AvatarURL    *string        `gorm:"type:text"`
	Bio          *string        `gorm:"type:text"`
	PortfolioURL pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Skills       pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	PhoneNumber  *string        `gorm:"type:text"`
	CreatedAt    time.Time      `gorm:"not null;default:now()"`
	UpdatedAt    time.Time      `gorm:"not null;default:now()"`
}
