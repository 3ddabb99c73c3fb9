package revocation

import (
	"context"
	"errors"
	"os"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/rueidis"
	"github.com/redis/rueidis/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"task-manager-api.com/task-manager-api/internal/testdb"
)

func TestDatabaseStore_RevokeAndCheck(t *testing.T) {
	store := NewDatabaseStore(testdb.New(t))
	ctx := context.Background()

	revoked, err := store.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "token-1", time.Now().Add(time.Hour)))
	require.NoError(t, store.Revoke(ctx, "token-1", time.Now().Add(time.Hour)), "revoking twice is a no-op")

	revoked, err = store.IsRevoked(ctx, "token-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestDatabaseStore_PurgeExpired(t *testing.T) {
	store := NewDatabaseStore(testdb.New(t))
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "old", time.Now().Add(-time.Minute)))
	require.NoError(t, store.Revoke(ctx, "fresh", time.Now().Add(time.Hour)))

	removed, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	revoked, err := store.IsRevoked(ctx, "fresh")
	require.NoError(t, err)
	assert.True(t, revoked)
}

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeExpired(ctx context.Context) (int64, error) {
	p.calls.Add(1)
	return 0, nil
}

func TestJanitor_PurgesUntilShutdown(t *testing.T) {
	purger := &countingPurger{}
	janitor := NewJanitor(purger, 10*time.Millisecond)

	assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)

	janitor.Shutdown(context.Background())
	calls := purger.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, purger.calls.Load())
}

func newMockRedisStore(t *testing.T, now time.Time) (*RedisStore, *mock.Client) {
	t.Helper()

	client := mock.NewClient(gomock.NewController(t))
	store := NewRedisStore(client, "revoked:")
	store.now = func() time.Time { return now }
	return store, client
}

func TestRedisStore_RevokeSetsKeyUntilExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	expiresAt := now.Add(time.Hour)
	store, client := newMockRedisStore(t, now)
	ctx := context.Background()

	client.EXPECT().
		Do(ctx, mock.Match("SET", "revoked:abc", "1", "EXAT", strconv.FormatInt(expiresAt.Unix(), 10))).
		Return(mock.Result(mock.RedisString("OK")))

	require.NoError(t, store.Revoke(ctx, "abc", expiresAt))
}

func TestRedisStore_RevokeSkipsExpiredTokens(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	store, _ := newMockRedisStore(t, now)

	// No Do call is expected; gomock fails the test on any.
	require.NoError(t, store.Revoke(context.Background(), "abc", now.Add(-time.Second)))
	require.NoError(t, store.Revoke(context.Background(), "abc", now))
}

func TestRedisStore_RevokeError(t *testing.T) {
	now := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	store, client := newMockRedisStore(t, now)
	ctx := context.Background()

	client.EXPECT().
		Do(ctx, mock.Match("SET", "revoked:abc", "1", "EXAT", strconv.FormatInt(now.Add(time.Minute).Unix(), 10))).
		Return(mock.ErrorResult(errors.New("connection refused")))

	err := store.Revoke(ctx, "abc", now.Add(time.Minute))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestRedisStore_IsRevoked(t *testing.T) {
	store, client := newMockRedisStore(t, time.Now())
	ctx := context.Background()

	gomock.InOrder(
		client.EXPECT().
			Do(ctx, mock.Match("EXISTS", "revoked:abc")).
			Return(mock.Result(mock.RedisInt64(1))),
		client.EXPECT().
			Do(ctx, mock.Match("EXISTS", "revoked:other")).
			Return(mock.Result(mock.RedisInt64(0))),
		client.EXPECT().
			Do(ctx, mock.Match("EXISTS", "revoked:broken")).
			Return(mock.ErrorResult(errors.New("timeout"))),
	)

	revoked, err := store.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = store.IsRevoked(ctx, "other")
	require.NoError(t, err)
	assert.False(t, revoked)

	_, err = store.IsRevoked(ctx, "broken")
	assert.Error(t, err)
}

// TestRedisStore_Live runs against a real server when REDIS_ADDR is set.
func TestRedisStore_Live(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{InitAddress: []string{addr}})
	require.NoError(t, err)
	defer client.Close()

	store := NewRedisStore(client, "test:revoked:")
	ctx := context.Background()
	tokenID := uuid.NewString()

	revoked, err := store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, tokenID, time.Now().Add(time.Minute)))

	revoked, err = store.IsRevoked(ctx, tokenID)
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, store.Revoke(ctx, uuid.NewString(), time.Now().Add(-time.Minute)))
}
