package job

import (
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Commitment is the weekly time band a posting asks for.
type Commitment string

const (
	CommitmentUnder5 Commitment = "< 5 hrs/week"
	Commitment5To10  Commitment = "5-10 hrs/week"
	Commitment10To20 Commitment = "10-20 hrs/week"
	Commitment20To40 Commitment = "20-40 hrs/week"
)

func ParseCommitment(s string) (Commitment, error) {
	c := Commitment(s)
	switch c {
	case CommitmentUnder5, Commitment5To10, Commitment10To20, Commitment20To40:
		return c, nil
	}
	return "", fmt.Errorf("unknown commitment band %q", s)
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusActive, StatusInactive:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// Job is a project posting. OwnerProfileID is fixed at creation and never
// reassigned; jobs are toggled inactive instead of deleted.
type Job struct {
	ID             uint64         `gorm:"primaryKey"`
	OwnerProfileID uint64         `gorm:"index;not null"`
	Title          string         `gorm:"not null"`
	Description    string         `gorm:"type:text;not null"`
	Location       *string        `gorm:"type:text"`
	SkillsNeeded   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Commitment     Commitment     `gorm:"type:text;not null"`
	Status         Status         `gorm:"type:text;not null;default:'active'"`
	CreatedAt      time.Time      `gorm:"not null;default:now()"`
	UpdatedAt      time.Time      `gorm:"not null;default:now()"`
}
