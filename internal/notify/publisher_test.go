package notify

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"touchline/internal/admission/models"
	id "touchline/pkg/domain"
)

func newEvent() models.EnrollmentCompleted {
	return models.EnrollmentCompleted{
		ApplicantID: id.ApplicantID(uuid.New()),
		MemberID:    id.MemberID(uuid.New()),
		GuardianID:  id.GuardianID(uuid.New()),
		Outcome:     "converted",
	}
}

func TestPublisher_SyncMode(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink)
	defer pub.Close()

	event := newEvent()
	require.NoError(t, pub.Emit(context.Background(), event))

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.ApplicantID, events[0].ApplicantID)
}

func TestPublisher_AsyncMode(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink, WithAsyncBuffer(10))

	event := newEvent()
	require.NoError(t, pub.Emit(context.Background(), event))

	// Close drains the buffer.
	pub.Close()

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, event.MemberID, events[0].MemberID)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink, WithAsyncBuffer(100))

	for range 10 {
		require.NoError(t, pub.Emit(context.Background(), newEvent()))
	}

	pub.Close()
	assert.Len(t, sink.Events(), 10, "all events should be drained on close")
}

func TestPublisher_BufferFull_DropsEvent(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink, WithAsyncBuffer(1))
	defer pub.Close()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pub.Emit(context.Background(), newEvent())
		}()
	}
	wg.Wait()
	// Some events may be dropped; the publisher must stay usable.
	require.NoError(t, pub.Emit(context.Background(), newEvent()))
}

func TestPublisher_SetsTimestamp(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink)
	defer pub.Close()

	before := time.Now()
	require.NoError(t, pub.Emit(context.Background(), newEvent()))
	after := time.Now()

	events := sink.Events()
	require.Len(t, events, 1)
	assert.False(t, events[0].Timestamp.Before(before))
	assert.False(t, events[0].Timestamp.After(after))
}

func TestPublisher_PreservesExistingTimestamp(t *testing.T) {
	sink := NewMemorySink()
	pub := NewPublisher(sink)
	defer pub.Close()

	customTime := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	event := newEvent()
	event.Timestamp = customTime

	require.NoError(t, pub.Emit(context.Background(), event))

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, customTime, events[0].Timestamp)
}

func TestPublisher_SyncModePropagatesSinkError(t *testing.T) {
	sink := NewMemorySink()
	sink.FailPublish = context.DeadlineExceeded
	pub := NewPublisher(sink)
	defer pub.Close()

	err := pub.Emit(context.Background(), newEvent())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
