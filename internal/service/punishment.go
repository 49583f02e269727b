package service

import (
	"context"
	"fmt"

	"github.com/chorebank/chorebank/internal/core"
	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
)

// PunishmentServiceOptions groups dependencies for PunishmentService.
type PunishmentServiceOptions struct {
	PunishmentRepo core.PunishmentRepository
	ProfileRepo    core.ProfileRepository
}

// PunishmentService orchestrates punishment settlements against balances.
type PunishmentService struct {
	punishments core.PunishmentRepository
	profiles    core.ProfileRepository
}

// NewPunishmentService constructs a new PunishmentService.
func NewPunishmentService(opts PunishmentServiceOptions) *PunishmentService {
	return &PunishmentService{punishments: opts.PunishmentRepo, profiles: opts.ProfileRepo}
}

// Create validates the punishment, checks the balance covers it and settles
// the debit plus audit row in one transaction. The transaction re-checks the
// balance, so a racing settlement cannot overdraw it.
func (s *PunishmentService) Create(ctx context.Context, req *model.CreatePunishmentRequest) (*model.PunishmentResult, error) {
	if req == nil {
		return nil, apperrors.Validation("punishment request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	profile, err := s.profiles.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if profile.Money < req.Amount {
		return nil, apperrors.InsufficientBalancef(
			"Balance %d does not cover punishment of %d", profile.Money, req.Amount)
	}

	punishment, newBalance, err := s.punishments.CreateAndDebit(ctx, req)
	if err != nil {
		return nil, err
	}
	return &model.PunishmentResult{Punishment: punishment, NewBalance: newBalance}, nil
}

// List returns punishment history, optionally for one user.
func (s *PunishmentService) List(ctx context.Context, opts core.PunishmentListOptions) ([]*model.PunishmentWithName, error) {
	return s.punishments.List(ctx, opts)
}

// Delete removes a punishment record from history. The debit it settled
// stays on the balance.
func (s *PunishmentService) Delete(ctx context.Context, id int64) (bool, error) {
	ok, err := s.punishments.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete punishment: %w", err)
	}
	return ok, nil
}
