package core

import (
	"context"

	"github.com/chorebank/chorebank/internal/domain/changefeed"
	"github.com/chorebank/chorebank/internal/domain/model"
)

// This file contains repository interface definitions (ports in hexagonal architecture).
// These interfaces define the contracts between the service layer and data layer.
// Service implementations should depend on these interfaces, not concrete implementations.

// JobRepository defines the interface for job template data operations.
type JobRepository interface {
	Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context) ([]*model.Job, error)
	Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// SettleApprovalParams groups parameters for UserJobRepository.Approve.
type SettleApprovalParams struct {
	UserJobID string
	Payout    int64
}

// UserJobRepository defines the interface for assignment data operations.
// Approve performs the whole settlement (mark approved + credit balance) in
// one database transaction; re-approving an approved assignment is a
// Conflict, never a second credit.
type UserJobRepository interface {
	Insert(ctx context.Context, uj *model.UserJob) (*model.UserJob, error)
	GetByID(ctx context.Context, id string) (*model.UserJob, error)
	ListByUser(ctx context.Context, userID string) ([]*model.UserJob, error)
	ListSolved(ctx context.Context) ([]*model.UserJob, error)
	ListApproved(ctx context.Context) ([]*model.UserJob, error)
	MarkSolved(ctx context.Context, id string, imageSolvedURL *string) (*model.UserJob, error)
	MarkUnsolved(ctx context.Context, id string) (*model.UserJob, error)
	Approve(ctx context.Context, params SettleApprovalParams) (*model.UserJob, int64, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// ProfileRepository defines the interface for profile data operations.
// Balances are mutated only by the settlement operations on the user-job and
// punishment repositories; this repository reads them.
type ProfileRepository interface {
	Create(ctx context.Context, req *model.CreateProfileRequest) (*model.Profile, error)
	GetByID(ctx context.Context, id string) (*model.Profile, error)
	GetByEmail(ctx context.Context, email string) (*model.Profile, error)
	List(ctx context.Context) ([]*model.Profile, error)
	SetRole(ctx context.Context, id string, role model.Role) (*model.Profile, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PunishmentListOptions controls paging for punishment history.
type PunishmentListOptions struct {
	UserID string // empty lists all users
	Limit  int    // <=0 means no limit
}

// PunishmentRepository defines the interface for punishment data operations.
// CreateAndDebit performs the whole settlement (debit balance + insert audit
// row) in one database transaction; the debit is guarded so the balance can
// never be driven below zero by a racing settlement.
type PunishmentRepository interface {
	CreateAndDebit(ctx context.Context, req *model.CreatePunishmentRequest) (*model.Punishment, int64, error)
	List(ctx context.Context, opts PunishmentListOptions) ([]*model.PunishmentWithName, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ChangeWaiter blocks until a watched table changes. The data layer
// implements it on top of Postgres LISTEN/NOTIFY.
type ChangeWaiter interface {
	WaitForChange(ctx context.Context, table changefeed.Table) error
}
