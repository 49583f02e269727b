package testutil

import (
	"github.com/chorebank/chorebank/internal/domain/model"
)

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a new JobRequestBuilder with sensible defaults.
func NewJobRequest() *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			Title:       "Take out the trash",
			Description: "Empty all bins",
			Address:     "Kitchen",
			Duration:    15,
			Delivery:    "18:00:00",
			Money:       150,
		},
	}
}

// WithTitle sets the job title.
func (b *JobRequestBuilder) WithTitle(title string) *JobRequestBuilder {
	b.req.Title = title
	return b
}

// WithDescription sets the job description.
func (b *JobRequestBuilder) WithDescription(description string) *JobRequestBuilder {
	b.req.Description = description
	return b
}

// WithAddress sets the job address.
func (b *JobRequestBuilder) WithAddress(address string) *JobRequestBuilder {
	b.req.Address = address
	return b
}

// WithDuration sets the expected duration in minutes.
func (b *JobRequestBuilder) WithDuration(minutes int) *JobRequestBuilder {
	b.req.Duration = minutes
	return b
}

// WithDelivery sets the delivery time of day.
func (b *JobRequestBuilder) WithDelivery(delivery string) *JobRequestBuilder {
	b.req.Delivery = delivery
	return b
}

// WithMoney sets the payout amount.
func (b *JobRequestBuilder) WithMoney(money int64) *JobRequestBuilder {
	b.req.Money = money
	return b
}

// WithImageURL sets the template image URL.
func (b *JobRequestBuilder) WithImageURL(url string) *JobRequestBuilder {
	b.req.ImageURL = &url
	return b
}

// Build returns the constructed CreateJobRequest.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	return b.req
}

// ProfileRequestBuilder provides a fluent interface for building CreateProfileRequest objects for testing.
type ProfileRequestBuilder struct {
	req *model.CreateProfileRequest
}

// NewProfileRequest creates a new ProfileRequestBuilder with sensible defaults.
func NewProfileRequest() *ProfileRequestBuilder {
	return &ProfileRequestBuilder{
		req: &model.CreateProfileRequest{
			Name:  "Test User",
			Email: "test.user@example.com",
			Role:  model.RoleMember,
		},
	}
}

// WithName sets the profile name.
func (b *ProfileRequestBuilder) WithName(name string) *ProfileRequestBuilder {
	b.req.Name = name
	return b
}

// WithEmail sets the profile email.
func (b *ProfileRequestBuilder) WithEmail(email string) *ProfileRequestBuilder {
	b.req.Email = email
	return b
}

// WithRole sets the profile role.
func (b *ProfileRequestBuilder) WithRole(role model.Role) *ProfileRequestBuilder {
	b.req.Role = role
	return b
}

// WithPasswordHash sets the stored password hash.
func (b *ProfileRequestBuilder) WithPasswordHash(hash string) *ProfileRequestBuilder {
	b.req.PasswordHash = hash
	return b
}

// Build returns the constructed CreateProfileRequest.
func (b *ProfileRequestBuilder) Build() *model.CreateProfileRequest {
	return b.req
}

// UserJobBuilder provides a fluent interface for building UserJob rows for testing.
type UserJobBuilder struct {
	uj *model.UserJob
}

// NewUserJob creates a new UserJobBuilder with template fields already copied.
func NewUserJob(userID, jobID string) *UserJobBuilder {
	return &UserJobBuilder{
		uj: &model.UserJob{
			UserID:      userID,
			JobID:       jobID,
			Title:       "Take out the trash",
			Description: "Empty all bins",
			Address:     "Kitchen",
			Duration:    15,
			Delivery:    "18:00:00",
			Money:       150,
		},
	}
}

// WithTitle sets the copied title.
func (b *UserJobBuilder) WithTitle(title string) *UserJobBuilder {
	b.uj.Title = title
	return b
}

// WithMoney sets the copied payout amount.
func (b *UserJobBuilder) WithMoney(money int64) *UserJobBuilder {
	b.uj.Money = money
	return b
}

// WithDelivery sets the copied delivery time.
func (b *UserJobBuilder) WithDelivery(delivery string) *UserJobBuilder {
	b.uj.Delivery = delivery
	return b
}

// Build returns the constructed UserJob.
func (b *UserJobBuilder) Build() *model.UserJob {
	return b.uj
}
