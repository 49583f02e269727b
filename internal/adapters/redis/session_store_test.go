package redis

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorebank/chorebank/internal/domain/auth"
	"github.com/chorebank/chorebank/internal/domain/model"
	"github.com/chorebank/chorebank/internal/testutil"
)

func testSession(ttl time.Duration) auth.Session {
	return auth.Session{
		ID:        fmt.Sprintf("sess-%d", time.Now().UnixNano()),
		UserID:    "user-1",
		Name:      "Alice",
		Email:     "alice@example.com",
		Role:      model.RoleMember,
		ExpiresAt: time.Now().Add(ttl),
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test-session:")
	ctx := context.Background()

	sess := testSession(time.Minute)
	require.NoError(t, store.Save(ctx, sess))
	t.Cleanup(func() { _ = store.Delete(ctx, sess.ID) })

	got, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.UserID, got.UserID)
	assert.Equal(t, sess.Email, got.Email)
	assert.Equal(t, sess.Role, got.Role)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestSessionStore_GetMissing(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test-session:")

	_, err := store.Get(context.Background(), "no-such-session")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_SaveRejectsExpired(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test-session:")

	sess := testSession(-time.Minute)
	err := store.Save(context.Background(), sess)
	require.Error(t, err)

	sess.ID = ""
	sess.ExpiresAt = time.Now().Add(time.Minute)
	assert.Error(t, store.Save(context.Background(), sess), "empty ID rejected")
}

func TestSessionStore_ExpiryEvictsOnRead(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test-session:")
	ctx := context.Background()

	// Short but positive TTL so Save accepts it, then wait it out.
	sess := testSession(150 * time.Millisecond)
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(300 * time.Millisecond)

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStore_Delete(t *testing.T) {
	client := testutil.SetupTestRedis(t)
	store := NewSessionStoreWithPrefix(client, "test-session:")
	ctx := context.Background()

	sess := testSession(time.Minute)
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Delete(ctx, ""), "empty ID is a no-op")
}
