package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJobRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() CreateJobRequest {
		return CreateJobRequest{
			Title:    "Vacuum the living room",
			Address:  "Elm Street 4",
			Duration: 30,
			Delivery: "17:30:00",
			Money:    150,
		}
	}

	req := valid()
	require.NoError(t, req.Validate())

	req = valid()
	req.Title = "   "
	assert.Error(t, req.Validate())

	req = valid()
	req.Delivery = "25:00:00"
	assert.Error(t, req.Validate())

	req = valid()
	req.Delivery = "17:30"
	assert.Error(t, req.Validate())

	req = valid()
	req.Duration = 0
	assert.Error(t, req.Validate())

	req = valid()
	req.Money = -1
	assert.Error(t, req.Validate())

	// Zero payout templates are allowed.
	req = valid()
	req.Money = 0
	assert.NoError(t, req.Validate())
}

func TestUpdateJobRequest_Validate(t *testing.T) {
	t.Parallel()

	title := "  New title  "
	req := UpdateJobRequest{Title: &title}
	require.NoError(t, req.Validate())
	assert.Equal(t, "New title", *req.Title)

	bad := ""
	req = UpdateJobRequest{Title: &bad}
	assert.Error(t, req.Validate())

	delivery := "9:00:00"
	req = UpdateJobRequest{Delivery: &delivery}
	assert.Error(t, req.Validate(), "single-digit hour is not HH:MM:SS")
}

func TestCreatePunishmentRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := func() CreatePunishmentRequest {
		return CreatePunishmentRequest{UserID: "u1", Amount: 40, Reason: "late"}
	}

	req := valid()
	require.NoError(t, req.Validate())

	req = valid()
	req.UserID = " "
	assert.Error(t, req.Validate())

	req = valid()
	req.Amount = 0
	assert.Error(t, req.Validate())

	req = valid()
	req.Amount = 10_001
	assert.Error(t, req.Validate())

	req = valid()
	req.Reason = "ab"
	assert.Error(t, req.Validate())

	req = valid()
	req.Reason = strings.Repeat("x", 201)
	assert.Error(t, req.Validate())

	// Boundary lengths are accepted.
	req = valid()
	req.Reason = strings.Repeat("x", 200)
	assert.NoError(t, req.Validate())
}

func TestCreateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	req := CreateProfileRequest{Name: " Anna ", Email: "Anna@Example.com"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "Anna", req.Name)
	assert.Equal(t, "anna@example.com", req.Email)
	assert.Equal(t, RoleMember, req.Role)

	req = CreateProfileRequest{Name: "Anna", Email: "not-an-email"}
	assert.Error(t, req.Validate())
}

func TestProfile_DisplayName(t *testing.T) {
	t.Parallel()

	p := Profile{Name: "Anna"}
	assert.Equal(t, "Anna", p.DisplayName())

	p = Profile{Name: "Annabelle Worthington"}
	assert.Equal(t, "Annabelle Worth...", p.DisplayName())
}

func TestApproveJobRequest_Validate(t *testing.T) {
	t.Parallel()

	req := ApproveJobRequest{Rating: " GOOD "}
	require.NoError(t, req.Validate())
	assert.Equal(t, RatingGood, req.Rating)

	req = ApproveJobRequest{Rating: "meh"}
	assert.Error(t, req.Validate())
}
