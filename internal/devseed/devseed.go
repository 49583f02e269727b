// Package devseed populates a development database with profiles and job
// templates so the UI has something to show after a reset.
package devseed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/chorebank/chorebank/internal/adapters/pwauth"
	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/data"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
)

// Services bundles the dependencies needed for development seeding.
type Services struct {
	DB       *sql.DB
	profiles core.ProfileRepository
	jobs     core.JobRepository
	userJobs core.UserJobRepository
}

// NewServices constructs all required repositories for seeding using the provided DB.
func NewServices(db *sql.DB) Services {
	return Services{
		DB:       db,
		profiles: data.NewProfileRepo(db),
		jobs:     data.NewJobRepo(db),
		userJobs: data.NewUserJobRepo(db),
	}
}

// Run executes the full development seeding workflow against the provided DB.
// Seeding is idempotent; existing rows are left alone.
func Run(ctx context.Context, svcs Services, logger *slog.Logger) error {
	profiles, profileFailures := seedProfiles(ctx, svcs.profiles, logger)
	jobs, jobFailures := seedJobs(ctx, svcs.jobs, logger)

	failures := profileFailures + jobFailures
	if assignErr := seedAssignments(ctx, svcs, profiles, jobs, logger); assignErr != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to seed assignments", "error", assignErr)
		}
		failures++
	}

	if failures > 0 {
		return fmt.Errorf("%d seed errors; check logs", failures)
	}
	return nil
}

type profileSeedSpec struct {
	name     string
	email    string
	role     model.Role
	password string
}

// Seed credentials are for local development only.
func defaultProfileSeedSpecs() []profileSeedSpec {
	return []profileSeedSpec{
		{name: "Admin", email: "admin@chorebank.local", role: model.RoleAdmin, password: "admin-dev-password"},
		{name: "Alice", email: "alice@chorebank.local", role: model.RoleMember, password: "alice-dev-password"},
		{name: "Bob", email: "bob@chorebank.local", role: model.RoleMember, password: "bob-dev-password"},
	}
}

func seedProfiles(
	ctx context.Context,
	repo core.ProfileRepository,
	logger *slog.Logger,
) (map[string]*model.Profile, int) {
	out := make(map[string]*model.Profile)
	failures := 0
	for _, spec := range defaultProfileSeedSpecs() {
		profile, created, err := ensureProfile(ctx, repo, spec)
		if err != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create profile", "email", spec.email, "error", err)
			}
			failures++
			continue
		}
		out[spec.email] = profile
		if logger != nil {
			msg := "profile already exists"
			if created {
				msg = "created profile"
			}
			logger.InfoContext(ctx, msg, "email", spec.email, "role", profile.Role)
		}
	}
	return out, failures
}

func ensureProfile(
	ctx context.Context,
	repo core.ProfileRepository,
	spec profileSeedSpec,
) (*model.Profile, bool, error) {
	existing, err := repo.GetByEmail(ctx, spec.email)
	if err == nil {
		return existing, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return nil, false, err
	}

	hash, err := pwauth.HashPassword(spec.password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}
	created, err := repo.Create(ctx, &model.CreateProfileRequest{
		Name:         spec.name,
		Email:        spec.email,
		Role:         spec.role,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

func defaultJobSeeds() []*model.CreateJobRequest {
	return []*model.CreateJobRequest{
		{
			Title:       "Take out the trash",
			Description: "Empty all bins and bring the bags to the curb before pickup.",
			Address:     "Kitchen",
			Duration:    10,
			Delivery:    "18:00:00",
			Money:       150,
		},
		{
			Title:       "Mow the lawn",
			Description: "Front and back yard, bag the clippings.",
			Address:     "Garden",
			Duration:    45,
			Delivery:    "16:30:00",
			Money:       500,
		},
		{
			Title:       "Wash the dishes",
			Description: "Everything in the sink, dried and put away.",
			Address:     "Kitchen",
			Duration:    20,
			Delivery:    "20:00:00",
			Money:       200,
		},
		{
			Title:       "Walk the dog",
			Description: "At least 30 minutes around the block.",
			Address:     "Neighborhood",
			Duration:    30,
			Delivery:    "07:30:00",
			Money:       250,
		},
	}
}

func seedJobs(
	ctx context.Context,
	repo core.JobRepository,
	logger *slog.Logger,
) ([]*model.Job, int) {
	existing, err := repo.List(ctx)
	if err != nil {
		if logger != nil {
			logger.ErrorContext(ctx, "failed to list jobs", "error", err)
		}
		return nil, 1
	}
	byTitle := make(map[string]*model.Job, len(existing))
	for _, j := range existing {
		byTitle[j.Title] = j
	}

	var out []*model.Job
	failures := 0
	for _, req := range defaultJobSeeds() {
		if job, ok := byTitle[req.Title]; ok {
			out = append(out, job)
			if logger != nil {
				logger.InfoContext(ctx, "job already exists", "title", req.Title)
			}
			continue
		}
		job, createErr := repo.Create(ctx, req)
		if createErr != nil {
			if logger != nil {
				logger.ErrorContext(ctx, "failed to create job", "title", req.Title, "error", createErr)
			}
			failures++
			continue
		}
		out = append(out, job)
		if logger != nil {
			logger.InfoContext(ctx, "created job", "title", req.Title)
		}
	}
	return out, failures
}

// seedAssignments hands the first job template to each member profile so the
// board is not empty. Members with any open assignment are skipped.
func seedAssignments(
	ctx context.Context,
	svcs Services,
	profiles map[string]*model.Profile,
	jobs []*model.Job,
	logger *slog.Logger,
) error {
	if len(jobs) == 0 {
		return nil
	}
	template := jobs[0]

	for _, profile := range profiles {
		if profile.Role != model.RoleMember {
			continue
		}
		open, err := svcs.userJobs.ListByUser(ctx, profile.ID)
		if err != nil {
			return fmt.Errorf("list assignments for %s: %w", profile.Email, err)
		}
		if len(open) > 0 {
			continue
		}

		uj := &model.UserJob{
			UserID:      profile.ID,
			JobID:       template.ID,
			Title:       template.Title,
			Description: template.Description,
			Address:     template.Address,
			Duration:    template.Duration,
			Delivery:    template.Delivery,
			Money:       template.Money,
		}
		if _, insertErr := svcs.userJobs.Insert(ctx, uj); insertErr != nil {
			return fmt.Errorf("assign %q to %s: %w", template.Title, profile.Email, insertErr)
		}
		if logger != nil {
			logger.InfoContext(ctx, "assigned job", "title", template.Title, "email", profile.Email)
		}
	}
	return nil
}
