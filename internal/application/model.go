package application

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Status moves pending→accepted or pending→rejected, once, and never back.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// Action is the owner's decision carried by an emailed link.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionAccept, ActionReject:
		return a, nil
	}
	return "", fmt.Errorf("unknown decision action %q", s)
}

// Decided returns the terminal status an action leads to.
func (a Action) Decided() Status {
	if a == ActionAccept {
		return StatusAccepted
	}
	return StatusRejected
}

// Application is one user's pitch for one job. The (job_id,
// applicant_user_id) pair is unique at the store level.
type Application struct {
	ID              uint64         `gorm:"primaryKey"`
	JobID           uint64         `gorm:"index;not null"`
	ApplicantUserID uint64         `gorm:"index;not null"`
	ApplicantEmail  string         `gorm:"not null"`
	ApplicantName   string         `gorm:"not null"`
	ProfileLinks    pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Message         string         `gorm:"type:text;not null"`
	PhoneNumber     *string        `gorm:"type:text"`
	Status          Status         `gorm:"type:text;index;not null;default:'pending'"`
	CreatedAt       time.Time      `gorm:"not null;default:now()"`
	UpdatedAt       time.Time      `gorm:"not null;default:now()"`
}

// DecisionToken is the server-side half of an emailed action link. Minted in
// accept/reject pairs before the notification email goes out; each is
// consumable exactly once.
type DecisionToken struct {
	TokenID       string     `gorm:"primaryKey;type:text"`
	ApplicationID uint64     `gorm:"index;not null"`
	Action        Action     `gorm:"type:text;not null"`
	Used          bool       `gorm:"not null;default:false"`
	UsedAt        *time.Time `gorm:"type:timestamptz"`
	CreatedAt     time.Time  `gorm:"not null;default:now()"`
}
