package model

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	minPunishmentReasonLen = 3
	maxPunishmentReasonLen = 200
	maxPunishmentAmount    = 10_000
)

// Punishment is an administrative balance deduction with a recorded reason.
// Rows are append-only audit records; deleting one does not reverse the debit.
type Punishment struct {
	ID        int64     `json:"id"         db:"id"`
	UserID    string    `json:"user_id"    db:"user_id"`
	Amount    int64     `json:"amount"     db:"amount"`
	Reason    string    `json:"reason"     db:"reason"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PunishmentWithName is a punishment joined with the punished user's name for
// history views.
type PunishmentWithName struct {
	Punishment
	UserName string `json:"user_name" db:"user_name"`
}

// CreatePunishmentRequest represents parameters to punish a user.
type CreatePunishmentRequest struct {
	UserID string `json:"user_id"`
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// Validate validates CreatePunishmentRequest bounds. The balance check is a
// business rule applied by the service, not here.
func (r *CreatePunishmentRequest) Validate() error {
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	if r.Amount < 1 || r.Amount > maxPunishmentAmount {
		return errors.New("amount must be between 1 and 10000")
	}
	r.Reason = strings.TrimSpace(r.Reason)
	n := utf8.RuneCountInString(r.Reason)
	if n < minPunishmentReasonLen {
		return errors.New("reason must be at least 3 characters")
	}
	if n > maxPunishmentReasonLen {
		return errors.New("reason cannot exceed 200 characters")
	}
	return nil
}

// PunishmentResult reports the outcome of a punishment settlement.
type PunishmentResult struct {
	Punishment *Punishment `json:"punishment"`
	NewBalance int64       `json:"new_balance"`
}
