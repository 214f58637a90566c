package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"farm_manager/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Needs a live server: REDIS_TEST_URL=redis://localhost:6379/15
func newTestClient(t *testing.T) *Client {
	t.Helper()
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}
	client, err := Initialize(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionRoundTrip(t *testing.T) {
	client := newTestClient(t)
	token := uuid.NewString()
	now := time.Now().UTC().Truncate(time.Second)

	require.NoError(t, client.SetSession(token, &SessionData{
		Token: token, UserID: 42, Email: "lan@example.com", FullName: "Lan",
		CreatedAt: now, ExpiresAt: now.Add(time.Hour),
	}, time.Minute))

	got, err := client.GetSession(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), got.UserID)
	assert.True(t, got.ExpiresAt.Equal(now.Add(time.Hour)))

	require.NoError(t, client.DeleteSession(token))
	_, err = client.GetSession(token)
	assert.ErrorIs(t, err, models.ErrUnauthenticated)
	assert.NoError(t, client.Ping(context.Background()))
}

func TestInitializeRejectsBadURL(t *testing.T) {
	_, err := Initialize("not a url")
	assert.Error(t, err)
}
