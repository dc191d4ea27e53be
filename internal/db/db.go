package db

import (
	"fmt"

	"builderboard/internal/application"
	"builderboard/internal/auth"
	"builderboard/internal/job"
	"builderboard/internal/profile"
	"builderboard/internal/shortlist"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError turns unique violations into gorm.ErrDuplicatedKey,
	// which the duplicate-application and shortlist paths rely on.
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&auth.User{},
		&profile.Profile{},
		&job.Job{},
		&shortlist.Shortlist{},
		&application.Application{},
		&application.DecisionToken{},
	); err != nil {
		return err
	}

	// One application per (job, applicant). The store owns this invariant;
	// the service-level pre-check is advisory only.
	if err := gdb.Exec(`create unique index if not exists uq_applications_job_applicant on applications(job_id, applicant_user_id);`).Error; err != nil {
		return err
	}

	// One bookmark per (job, profile).
	if err := gdb.Exec(`create unique index if not exists uq_shortlists_job_profile on shortlists(job_id, user_profile_id);`).Error; err != nil {
		return err
	}

	// Helpful indexes
	stmts := []string{
		`create index if not exists idx_jobs_status_created on jobs(status, created_at desc);`,
		`create index if not exists idx_jobs_owner_created on jobs(owner_profile_id, created_at desc);`,
		`create index if not exists idx_applications_applicant_created on applications(applicant_user_id, created_at desc);`,
		`create index if not exists idx_decision_tokens_app_action on decision_tokens(application_id, action);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
