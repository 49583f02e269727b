package pwauth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/chorebank/chorebank/internal/domain/model"
	apperrors "github.com/chorebank/chorebank/internal/errors"
	"github.com/chorebank/chorebank/internal/mocks"
	"github.com/chorebank/chorebank/internal/ports"
)

func newProvider(t *testing.T) (*mocks.MockProfileRepository, *Provider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	profiles := mocks.NewMockProfileRepository(ctrl)
	return profiles, NewProvider(profiles)
}

func TestProvider_Authenticate_Success(t *testing.T) {
	t.Parallel()
	profiles, provider := newProvider(t)

	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	ctx := context.Background()
	profiles.EXPECT().
		GetByEmail(ctx, "alice@example.com").
		Return(&model.Profile{
			ID:           "user-123",
			Name:         "Alice",
			Email:        "alice@example.com",
			Role:         model.RoleMember,
			PasswordHash: hash,
		}, nil).
		Times(1)

	identity, err := provider.Authenticate(ctx, ports.CredentialsInput{
		Email:    "alice@example.com",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, model.RoleMember, identity.Role)
}

func TestProvider_Authenticate_NormalizesEmail(t *testing.T) {
	t.Parallel()
	profiles, provider := newProvider(t)

	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	ctx := context.Background()
	profiles.EXPECT().
		GetByEmail(ctx, "alice@example.com").
		Return(&model.Profile{ID: "user-123", Email: "alice@example.com", PasswordHash: hash}, nil).
		Times(1)

	_, err = provider.Authenticate(ctx, ports.CredentialsInput{
		Email:    "  Alice@Example.COM ",
		Password: "correct horse battery",
	})

	require.NoError(t, err)
}

func TestProvider_Authenticate_WrongPassword(t *testing.T) {
	t.Parallel()
	profiles, provider := newProvider(t)

	hash, err := HashPassword("correct horse battery")
	require.NoError(t, err)

	ctx := context.Background()
	profiles.EXPECT().
		GetByEmail(ctx, "alice@example.com").
		Return(&model.Profile{ID: "user-123", Email: "alice@example.com", PasswordHash: hash}, nil).
		Times(1)

	_, err = provider.Authenticate(ctx, ports.CredentialsInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProvider_Authenticate_UnknownEmail(t *testing.T) {
	t.Parallel()
	profiles, provider := newProvider(t)

	ctx := context.Background()
	profiles.EXPECT().
		GetByEmail(ctx, "nobody@example.com").
		Return(nil, apperrors.NotFound("Profile not found")).
		Times(1)

	_, err := provider.Authenticate(ctx, ports.CredentialsInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	// Same error as a wrong password so the response does not leak which
	// accounts exist.
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProvider_Authenticate_SSOOnlyProfile(t *testing.T) {
	t.Parallel()
	profiles, provider := newProvider(t)

	ctx := context.Background()
	profiles.EXPECT().
		GetByEmail(ctx, "sso@example.com").
		Return(&model.Profile{ID: "user-123", Email: "sso@example.com"}, nil).
		Times(1)

	_, err := provider.Authenticate(ctx, ports.CredentialsInput{
		Email:    "sso@example.com",
		Password: "whatever",
	})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProvider_Authenticate_EmptyInput(t *testing.T) {
	t.Parallel()
	_, provider := newProvider(t)

	_, err := provider.Authenticate(context.Background(), ports.CredentialsInput{})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestHashPassword_ProducesDistinctHashes(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same password")
	require.NoError(t, err)
	second, err := HashPassword("same password")
	require.NoError(t, err)

	// bcrypt salts every hash.
	assert.NotEqual(t, first, second)
}
