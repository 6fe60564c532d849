package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"places/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEvent() *service.PlaceEvent {
	return &service.PlaceEvent{
		RequestID:  "req-123",
		EventID:    "evt-1",
		Type:       service.PlaceEventCreated,
		PlaceID:    "0f8fad5b-d9cb-469f-a165-70867728950e",
		OwnerID:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		OwnerType:  "USER",
		ActorID:    "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		OccurredAt: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishPlaceEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		requestID = r.Header.Get("X-Request-Id")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	event := newTestEvent()

	require.NoError(t, publisher.PublishPlaceEvent(context.Background(), event))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, event.OwnerID, received.Message.OrderingKey)
	assert.Equal(t, "place.created", received.Message.Attributes["event_type"])
	assert.Equal(t, event.PlaceID, received.Message.Attributes["place_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.PlaceEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())

	err := publisher.PublishPlaceEvent(context.Background(), newTestEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
