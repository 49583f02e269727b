package service

import (
	"context"
	"fmt"
	"io"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/ports"
)

// UserJobServiceOptions groups dependencies for UserJobService.
type UserJobServiceOptions struct {
	UserJobRepo core.UserJobRepository
	JobRepo     core.JobRepository
	Images      ports.ObjectStore
}

// UserJobService orchestrates the assignment lifecycle: assign, solve,
// review and settle.
type UserJobService struct {
	userJobs core.UserJobRepository
	jobs     core.JobRepository
	images   ports.ObjectStore
}

// NewUserJobService constructs a new UserJobService.
func NewUserJobService(opts UserJobServiceOptions) *UserJobService {
	return &UserJobService{
		userJobs: opts.UserJobRepo,
		jobs:     opts.JobRepo,
		images:   opts.Images,
	}
}

// Assign copies a job template onto a user. The copied fields freeze the
// terms, so later template edits or deletion never change what the user was
// promised.
func (s *UserJobService) Assign(ctx context.Context, req *model.AssignJobRequest) (*model.UserJob, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	tmpl, err := s.jobs.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, err
	}

	return s.userJobs.Insert(ctx, &model.UserJob{
		UserID:      req.UserID,
		JobID:       tmpl.ID,
		Title:       tmpl.Title,
		Description: tmpl.Description,
		Address:     tmpl.Address,
		Duration:    tmpl.Duration,
		Delivery:    tmpl.Delivery,
		Money:       tmpl.Money,
	})
}

// GetByID retrieves an assignment by ID.
func (s *UserJobService) GetByID(ctx context.Context, id string) (*model.UserJob, error) {
	return s.userJobs.GetByID(ctx, id)
}

// ListByUser returns the open assignments of one user.
func (s *UserJobService) ListByUser(ctx context.Context, userID string) ([]*model.UserJob, error) {
	return s.userJobs.ListByUser(ctx, userID)
}

// ListSolved returns all assignments awaiting review.
func (s *UserJobService) ListSolved(ctx context.Context) ([]*model.UserJob, error) {
	return s.userJobs.ListSolved(ctx)
}

// ListApproved returns all settled assignments.
func (s *UserJobService) ListApproved(ctx context.Context) ([]*model.UserJob, error) {
	return s.userJobs.ListApproved(ctx)
}

// Solve marks an assignment solved with an optional proof image URL already
// stored elsewhere. Use SolveWithImage to upload proof in the same call.
func (s *UserJobService) Solve(ctx context.Context, id string, req *model.SolveJobRequest) (*model.UserJob, error) {
	var imageURL *string
	if req != nil {
		imageURL = req.ImageSolvedURL
	}
	return s.userJobs.MarkSolved(ctx, id, imageURL)
}

// SolveWithImageInput groups parameters for SolveWithImage.
type SolveWithImageInput struct {
	UserJobID   string
	ContentType string
	Body        io.Reader
}

// SolveWithImage uploads the proof image and marks the assignment solved.
func (s *UserJobService) SolveWithImage(ctx context.Context, in SolveWithImageInput) (*model.UserJob, error) {
	if s.images == nil {
		return nil, apperrors.Internal("image storage is not configured")
	}
	if _, err := s.userJobs.GetByID(ctx, in.UserJobID); err != nil {
		return nil, err
	}

	key := imageKey("solved", in.UserJobID, in.ContentType)
	url, err := s.images.Upload(ctx, ports.UploadInput{
		Key:         key,
		ContentType: in.ContentType,
		Body:        in.Body,
	})
	if err != nil {
		return nil, fmt.Errorf("upload proof image: %w", err)
	}

	return s.userJobs.MarkSolved(ctx, in.UserJobID, &url)
}

// Unsolve returns an assignment to the open pool.
func (s *UserJobService) Unsolve(ctx context.Context, id string) (*model.UserJob, error) {
	return s.userJobs.MarkUnsolved(ctx, id)
}

// Approve reviews a solved assignment. A failed grade sends the work back
// unsolved with no payout; any other grade settles the assignment, crediting
// the graded share of the promised amount in one transaction.
func (s *UserJobService) Approve(ctx context.Context, id string, req *model.ApproveJobRequest) (*model.ApprovalResult, error) {
	if req == nil {
		return nil, apperrors.Validation("approval request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	uj, err := s.userJobs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if uj.Approved {
		return nil, apperrors.Conflict("Job is already approved")
	}
	if !uj.Solved {
		return nil, apperrors.Conflict("Job is not solved yet")
	}

	if req.Rating == model.RatingFailed {
		rejected, unsolveErr := s.userJobs.MarkUnsolved(ctx, id)
		if unsolveErr != nil {
			return nil, unsolveErr
		}
		return &model.ApprovalResult{UserJob: rejected, Rejected: true}, nil
	}

	payout := req.Rating.Payout(uj.Money)
	settled, newBalance, err := s.userJobs.Approve(ctx, core.SettleApprovalParams{
		UserJobID: id,
		Payout:    payout,
	})
	if err != nil {
		return nil, err
	}

	return &model.ApprovalResult{
		UserJob:    settled,
		Payout:     payout,
		NewBalance: newBalance,
	}, nil
}

// Delete removes an open assignment. Settled history is immutable.
func (s *UserJobService) Delete(ctx context.Context, id string) (bool, error) {
	ok, err := s.userJobs.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user job: %w", err)
	}
	return ok, nil
}
