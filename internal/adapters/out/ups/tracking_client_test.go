package ups_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"printship/internal/adapters/out/ups"
	"printship/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTrackingClient(t *testing.T) {
	t.Run("empty base URL is refused", func(t *testing.T) {
		_, err := ups.NewTrackingClient("", "key", nil)
		require.ErrorIs(t, err, ups.ErrBaseURLIsRequired)
	})
}

func TestTrackingClient_FetchActivities_Success(t *testing.T) {
	var gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"activities": [
				{"status": "Pickup Scan", "location": "Portland, OR", "occurred_at": "2026-05-01T09:15:00Z"},
				{"status": "Label Created", "location": "", "occurred_at": "2026-04-30T17:00:00Z"}
			]
		}`))
	}))
	defer server.Close()

	client, err := ups.NewTrackingClient(server.URL, "secret", server.Client())
	require.NoError(t, err)

	activities, err := client.FetchActivities(context.Background(), "1Z999AA10123456784")
	require.NoError(t, err)

	assert.Equal(t, "/api/track/1Z999AA10123456784", gotPath)
	require.Len(t, activities, 2)
	assert.Equal(t, "Pickup Scan", activities[0].StatusDescription)
	assert.Equal(t, "Portland, OR", activities[0].Location)
	assert.Equal(t, time.Date(2026, 5, 1, 9, 15, 0, 0, time.UTC), activities[0].OccurredAt.UTC())
	assert.Equal(t, "Label Created", activities[1].StatusDescription)
}

func TestTrackingClient_FetchActivities_UnknownTrackingNumberIsEmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := ups.NewTrackingClient(server.URL, "secret", server.Client())
	require.NoError(t, err)

	activities, err := client.FetchActivities(context.Background(), "1Z-UNKNOWN")
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestTrackingClient_FetchActivities_MalformedTimestampKeepsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"activities": [{"status": "Delivered", "occurred_at": "yesterday"}]}`))
	}))
	defer server.Close()

	client, err := ups.NewTrackingClient(server.URL, "secret", server.Client())
	require.NoError(t, err)

	activities, err := client.FetchActivities(context.Background(), "1Z999")
	require.NoError(t, err)

	require.Len(t, activities, 1)
	assert.Equal(t, "Delivered", activities[0].StatusDescription)
	assert.True(t, activities[0].OccurredAt.IsZero())
}

func TestTrackingClient_FetchActivities_CarrierErrorsBecomeUpstreamFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := ups.NewTrackingClient(server.URL, "secret", server.Client())
	require.NoError(t, err)

	_, err = client.FetchActivities(context.Background(), "1Z999")
	require.ErrorIs(t, err, errs.ErrUpstreamFailure)
}
