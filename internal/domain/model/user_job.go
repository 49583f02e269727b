package model

import (
	"errors"
	"strings"
	"time"
)

// UserJob is a job template copied and attached to a specific user.
// money is fixed at assignment time; later template edits do not change it.
type UserJob struct {
	ID             string     `json:"id"                         db:"id"`
	UserID         string     `json:"user_id"                    db:"user_id"`
	JobID          string     `json:"job_id"                     db:"job_id"`
	Title          string     `json:"title"                      db:"title"`
	Description    string     `json:"description"                db:"description"`
	Address        string     `json:"address"                    db:"address"`
	Duration       int        `json:"duration"                   db:"duration"`
	Delivery       string     `json:"delivery"                   db:"delivery"`
	Money          int64      `json:"money"                      db:"money"`
	Solved         bool       `json:"solved"                     db:"solved"`
	Approved       bool       `json:"approved"                   db:"approved"`
	// Payout is the amount credited at approval, zero until settled.
	Payout         int64      `json:"payout"                     db:"payout"`
	ImageSolvedURL *string    `json:"image_solved_url,omitempty" db:"image_solved_url"`
	ApprovedTime   *time.Time `json:"approved_time,omitempty"    db:"approved_time"`
	CreatedAt      time.Time  `json:"created_at"                 db:"created_at"`
}

// AssignJobRequest represents parameters to assign a job template to a user.
type AssignJobRequest struct {
	JobID  string `json:"job_id"`
	UserID string `json:"user_id"`
}

// Validate validates AssignJobRequest.
func (r *AssignJobRequest) Validate() error {
	if strings.TrimSpace(r.JobID) == "" {
		return errors.New("job_id is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return errors.New("user_id is required")
	}
	return nil
}

// SolveJobRequest represents parameters to mark an assignment solved.
type SolveJobRequest struct {
	ImageSolvedURL *string `json:"image_solved_url,omitempty"`
}

// ApproveJobRequest carries the quality grade chosen by the reviewer.
type ApproveJobRequest struct {
	Rating Rating `json:"rating"`
}

// Validate validates ApproveJobRequest.
func (r *ApproveJobRequest) Validate() error {
	normalized, ok := ParseRating(string(r.Rating))
	if !ok {
		return errors.New("rating must be one of: excellent, good, poor, failed")
	}
	r.Rating = normalized
	return nil
}

// ApprovalResult reports the outcome of an approval settlement.
type ApprovalResult struct {
	UserJob    *UserJob `json:"user_job"`
	Payout     int64    `json:"payout"`
	NewBalance int64    `json:"new_balance"`
	// Rejected is true when the failed rating returned the assignment to
	// the unsolved pool instead of crediting a payout.
	Rejected bool `json:"rejected"`
}
