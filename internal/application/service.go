package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"builderboard/internal/auth"
	"builderboard/internal/job"
	"builderboard/internal/mailer"
	"builderboard/internal/profile"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotFound       = errors.New("application not found")
	ErrJobNotFound    = errors.New("job not found")
	ErrDuplicate      = errors.New("already applied for this job")
	ErrInvalidToken   = errors.New("invalid decision token")
	ErrTokenUsed      = errors.New("this link has already been used")
	ErrAlreadyDecided = errors.New("application already decided")
	ErrForbidden      = errors.New("not the job owner")
)

// Notifier sends workflow emails. Failures are best-effort side effects and
// never abort the mutation that preceded them.
type Notifier interface {
	SendApplicationReceived(ctx context.Context, creatorEmail string, data mailer.ApplicationReceivedData) error
	SendConnectionEstablished(ctx context.Context, data mailer.ConnectionEstablishedData) error
}

// Alerter is the side channel for swallowed notification failures.
type Alerter interface {
	Notify(ctx context.Context, message string, cause error)
}

// Identity is the verified caller, resolved from the session by the
// transport layer and threaded explicitly through the workflow.
type Identity struct {
	UserID uint64
	Email  string
}

type Service struct {
	DB       *gorm.DB
	Signer   *TokenSigner
	Notifier Notifier
	Alerts   Alerter
	BaseURL  string
}

// Submit validates and creates an application in state pending, then
// notifies the job owner with accept/reject links. The duplicate invariant
// is owned by the unique index on (job_id, applicant_user_id); the pre-check
// only gives a friendlier error before the insert attempt.
func (s *Service) Submit(ctx context.Context, applicant Identity, jobID uint64, in SubmitInput) (*Application, error) {
	if fe := validateSubmit(applicant.Email, &in); fe != nil {
		return nil, fe
	}

	j, owner, ownerUser, err := s.loadJobOwner(ctx, jobID)
	if err != nil {
		return nil, err
	}

	var count int64
	err = s.DB.WithContext(ctx).Model(&Application{}).
		Where("job_id = ? AND applicant_user_id = ?", jobID, applicant.UserID).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	app := Application{
		JobID:           jobID,
		ApplicantUserID: applicant.UserID,
		ApplicantEmail:  applicant.Email,
		ApplicantName:   in.ApplicantName,
		ProfileLinks:    in.ProfileLinks,
		Message:         in.Message,
		PhoneNumber:     in.PhoneNumber,
		Status:          StatusPending,
	}
	if err := s.DB.WithContext(ctx).Create(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}

	s.notifyOwner(ctx, &app, j, owner, ownerUser)
	return &app, nil
}

// notifyOwner mints the decision-token pair and emails the owner. Token rows
// are persisted before the email goes out so verification never trusts the
// link alone. Every failure here is non-fatal to the submission.
func (s *Service) notifyOwner(ctx context.Context, app *Application, j *job.Job, owner *profile.Profile, ownerUser *auth.User) {
	acceptURL, rejectURL, err := s.issueDecisionTokens(ctx, app.ID, owner.UserID)
	if err != nil {
		logrus.WithError(err).WithField("application_id", app.ID).Error("decision token issuance failed")
		s.Alerts.Notify(ctx, fmt.Sprintf("Failed to issue decision tokens for application %d", app.ID), err)
		return
	}

	err = s.Notifier.SendApplicationReceived(ctx, ownerUser.Email, mailer.ApplicationReceivedData{
		JobTitle:       j.Title,
		CreatorName:    owner.FullName,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
		Message:        app.Message,
		ProfileLinks:   app.ProfileLinks,
		AcceptURL:      acceptURL,
		RejectURL:      rejectURL,
	})
	if err != nil {
		logrus.WithError(err).WithField("application_id", app.ID).Error("application email send failed")
		s.Alerts.Notify(ctx, fmt.Sprintf("Failed to send job application email for job %d", j.ID), err)
	}
}

// issueDecisionTokens creates one accept and one reject token, persists both
// with used=false, then signs the links.
func (s *Service) issueDecisionTokens(ctx context.Context, applicationID, ownerUserID uint64) (acceptURL, rejectURL string, err error) {
	records := map[Action]*DecisionToken{
		ActionAccept: {TokenID: uuid.NewString(), ApplicationID: applicationID, Action: ActionAccept},
		ActionReject: {TokenID: uuid.NewString(), ApplicationID: applicationID, Action: ActionReject},
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			if err := tx.Create(rec).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}

	urls := map[Action]*string{ActionAccept: &acceptURL, ActionReject: &rejectURL}
	for action, rec := range records {
		signed, err := s.Signer.Sign(DecisionClaims{
			TokenID:       rec.TokenID,
			ApplicationID: applicationID,
			Action:        action,
			OwnerUserID:   ownerUserID,
		})
		if err != nil {
			return "", "", err
		}
		*urls[action] = fmt.Sprintf("%s/applications/%d/%s?token=%s", s.BaseURL, applicationID, action, signed)
	}
	return acceptURL, rejectURL, nil
}

// DecideWithToken handles an emailed action link. The signature is checked
// first, then the payload against the URL, then the persisted token record.
// The record is consumed before the status transition runs, so a valid
// signature is never enough to act twice.
func (s *Service) DecideWithToken(ctx context.Context, rawToken string, applicationID uint64, action Action) error {
	claims, err := s.Signer.Parse(rawToken)
	if err != nil {
		return ErrInvalidToken
	}
	if claims.Action != action || claims.ApplicationID != applicationID {
		return ErrInvalidToken
	}

	var rec DecisionToken
	err = s.DB.WithContext(ctx).
		Where("token_id = ? AND application_id = ? AND action = ?", claims.TokenID, applicationID, action).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if rec.Used {
		return ErrTokenUsed
	}

	// Conditional update closes the race between concurrent clicks on the
	// same link; only one caller sees an affected row.
	res := s.DB.WithContext(ctx).Model(&DecisionToken{}).
		Where("token_id = ? AND used = false", rec.TokenID).
		Updates(map[string]any{"used": true, "used_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTokenUsed
	}

	return s.transition(ctx, applicationID, action)
}

// DecideAsOwner handles the session-authenticated path.
func (s *Service) DecideAsOwner(ctx context.Context, caller Identity, applicationID uint64, action Action) error {
	var app Application
	if err := s.DB.WithContext(ctx).First(&app, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	_, owner, _, err := s.loadJobOwner(ctx, app.JobID)
	if err != nil {
		return err
	}
	if owner.UserID != caller.UserID {
		return ErrForbidden
	}

	return s.transition(ctx, applicationID, action)
}

// transition moves pending→accepted/rejected exactly once. An accepted
// transition exchanges contact emails between both parties; a rejected one
// sends nothing.
func (s *Service) transition(ctx context.Context, applicationID uint64, action Action) error {
	newStatus := action.Decided()

	res := s.DB.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND status = ?", applicationID, StatusPending).
		Updates(map[string]any{"status": newStatus, "updated_at": time.Now()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var app Application
		if err := s.DB.WithContext(ctx).First(&app, applicationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return ErrAlreadyDecided
	}

	if newStatus != StatusAccepted {
		return nil
	}

	var app Application
	if err := s.DB.WithContext(ctx).First(&app, applicationID).Error; err != nil {
		return err
	}
	j, owner, ownerUser, err := s.loadJobOwner(ctx, app.JobID)
	if err != nil {
		return err
	}

	err = s.Notifier.SendConnectionEstablished(ctx, mailer.ConnectionEstablishedData{
		JobTitle:       j.Title,
		CreatorName:    owner.FullName,
		CreatorEmail:   ownerUser.Email,
		ApplicantName:  app.ApplicantName,
		ApplicantEmail: app.ApplicantEmail,
	})
	if err != nil {
		logrus.WithError(err).WithField("application_id", applicationID).Error("connection email send failed")
		s.Alerts.Notify(ctx, fmt.Sprintf("Failed to send connection email for application %d", applicationID), err)
	}
	return nil
}

// loadJobOwner resolves a job together with its owner's profile and account.
func (s *Service) loadJobOwner(ctx context.Context, jobID uint64) (*job.Job, *profile.Profile, *auth.User, error) {
	var j job.Job
	if err := s.DB.WithContext(ctx).First(&j, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, ErrJobNotFound
		}
		return nil, nil, nil, err
	}

	var owner profile.Profile
	if err := s.DB.WithContext(ctx).First(&owner, j.OwnerProfileID).Error; err != nil {
		return nil, nil, nil, err
	}

	var u auth.User
	if err := s.DB.WithContext(ctx).First(&u, owner.UserID).Error; err != nil {
		return nil, nil, nil, err
	}
	return &j, &owner, &u, nil
}
