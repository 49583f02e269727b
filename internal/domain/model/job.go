package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxJobTitleLen       = 120
	maxJobDescriptionLen = 2000
	maxJobAddressLen     = 255
	maxJobMoney          = 1_000_000
)

// reDelivery matches a time-of-day in HH:MM:SS form.
var reDelivery = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)

// Job is an administrator-created job template. Assignments copy its fields,
// so editing a template never changes payouts already handed out.
type Job struct {
	ID          string    `json:"id"                  db:"id"`
	Title       string    `json:"title"               db:"title"`
	Description string    `json:"description"         db:"description"`
	Address     string    `json:"address"             db:"address"`
	Duration    int       `json:"duration"            db:"duration"`
	Delivery    string    `json:"delivery"            db:"delivery"`
	Money       int64     `json:"money"               db:"money"`
	ImageURL    *string   `json:"image_url,omitempty" db:"image_url"`
	CreatedAt   time.Time `json:"created_at"          db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"          db:"updated_at"`
}

// CreateJobRequest represents parameters to create a Job template.
type CreateJobRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Duration    int     `json:"duration"`
	Delivery    string  `json:"delivery"`
	Money       int64   `json:"money"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// UpdateJobRequest represents parameters to update a Job template.
// Nil fields are left unchanged.
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Address     *string `json:"address,omitempty"`
	Duration    *int    `json:"duration,omitempty"`
	Delivery    *string `json:"delivery,omitempty"`
	Money       *int64  `json:"money,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Validate validates CreateJobRequest.
func (r *CreateJobRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return errors.New("title is required and cannot be empty")
	}
	if utf8.RuneCountInString(r.Title) > maxJobTitleLen {
		return errors.New("title cannot exceed 120 characters")
	}
	if utf8.RuneCountInString(r.Description) > maxJobDescriptionLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	if utf8.RuneCountInString(r.Address) > maxJobAddressLen {
		return errors.New("address cannot exceed 255 characters")
	}
	if r.Duration <= 0 {
		return errors.New("duration must be > 0 minutes")
	}
	if !reDelivery.MatchString(r.Delivery) {
		return errors.New("delivery must be a time of day in HH:MM:SS form")
	}
	if r.Money < 0 {
		return errors.New("money cannot be negative")
	}
	if r.Money > maxJobMoney {
		return errors.New("money exceeds the allowed maximum")
	}
	return nil
}

// Validate validates UpdateJobRequest.
func (r *UpdateJobRequest) Validate() error {
	if r.Title != nil {
		trimmed := strings.TrimSpace(*r.Title)
		if trimmed == "" {
			return errors.New("title cannot be empty")
		}
		if utf8.RuneCountInString(trimmed) > maxJobTitleLen {
			return errors.New("title cannot exceed 120 characters")
		}
		*r.Title = trimmed
	}
	if r.Description != nil && utf8.RuneCountInString(*r.Description) > maxJobDescriptionLen {
		return errors.New("description cannot exceed 2000 characters")
	}
	if r.Address != nil && utf8.RuneCountInString(*r.Address) > maxJobAddressLen {
		return errors.New("address cannot exceed 255 characters")
	}
	if r.Duration != nil && *r.Duration <= 0 {
		return errors.New("duration must be > 0 minutes")
	}
	if r.Delivery != nil && !reDelivery.MatchString(*r.Delivery) {
		return errors.New("delivery must be a time of day in HH:MM:SS form")
	}
	if r.Money != nil && (*r.Money < 0 || *r.Money > maxJobMoney) {
		return errors.New("money must be between 0 and 1000000")
	}
	return nil
}
