package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/domain/statistics"
)

// StatisticsServiceOptions groups dependencies for StatisticsService.
type StatisticsServiceOptions struct {
	UserJobRepo    core.UserJobRepository
	PunishmentRepo core.PunishmentRepository
	ProfileRepo    core.ProfileRepository
}

// StatisticsService builds the earnings dashboard from settled assignments
// and punishment history.
type StatisticsService struct {
	userJobs    core.UserJobRepository
	punishments core.PunishmentRepository
	profiles    core.ProfileRepository
}

// NewStatisticsService constructs a new StatisticsService.
func NewStatisticsService(opts StatisticsServiceOptions) *StatisticsService {
	return &StatisticsService{
		userJobs:    opts.UserJobRepo,
		punishments: opts.PunishmentRepo,
		profiles:    opts.ProfileRepo,
	}
}

// Dashboard fetches the three inputs concurrently and aggregates them into
// the summary and cumulative series.
func (s *StatisticsService) Dashboard(ctx context.Context) (*statistics.Result, error) {
	var (
		approved    []*model.UserJob
		punishments []*model.PunishmentWithName
		profiles    []*model.Profile
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		approved, err = s.userJobs.ListApproved(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		punishments, err = s.punishments.List(gctx, core.PunishmentListOptions{})
		return err
	})
	g.Go(func() error {
		var err error
		profiles, err = s.profiles.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetch dashboard inputs: %w", err)
	}

	in := statistics.Input{
		Jobs:        make([]model.UserJob, 0, len(approved)),
		Punishments: make([]model.Punishment, 0, len(punishments)),
		Profiles:    make([]model.Profile, 0, len(profiles)),
	}
	for _, uj := range approved {
		in.Jobs = append(in.Jobs, *uj)
	}
	for _, p := range punishments {
		in.Punishments = append(in.Punishments, p.Punishment)
	}
	for _, pr := range profiles {
		in.Profiles = append(in.Profiles, *pr)
	}

	result := statistics.Aggregate(in)
	return &result, nil
}
