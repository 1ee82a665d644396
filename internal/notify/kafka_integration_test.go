//go:build integration

package notify_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/twmb/franz-go/pkg/kgo"

	"touchline/internal/admission/models"
	"touchline/internal/notify"
	id "touchline/pkg/domain"
	"touchline/pkg/testutil/containers"
)

func TestKafkaSinkPublish(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	redpanda := containers.NewRedpandaContainer(t)
	const topic = "touchline.enrollment.completed.test"

	sink, err := notify.NewKafkaSink(ctx, []string{redpanda.Broker}, topic)
	require.NoError(t, err)
	defer sink.Close()

	event := models.EnrollmentCompleted{
		ApplicantID: id.ApplicantID(uuid.New()),
		MemberID:    id.MemberID(uuid.New()),
		GuardianID:  id.GuardianID(uuid.New()),
		Outcome:     "converted",
		Timestamp:   time.Now().UTC().Truncate(time.Millisecond),
	}
	require.NoError(t, sink.Publish(ctx, event))

	consumer, err := kgo.NewClient(
		kgo.SeedBrokers(redpanda.Broker),
		kgo.ConsumeTopics(topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	)
	require.NoError(t, err)
	defer consumer.Close()

	fetches := consumer.PollFetches(ctx)
	require.NoError(t, fetches.Err())

	records := fetches.Records()
	require.Len(t, records, 1)
	require.Equal(t, event.ApplicantID.String(), string(records[0].Key),
		"records are keyed by applicant so retries land in the same partition")

	var got models.EnrollmentCompleted
	require.NoError(t, json.Unmarshal(records[0].Value, &got))
	require.Equal(t, event.ApplicantID, got.ApplicantID)
	require.Equal(t, event.MemberID, got.MemberID)
	require.Equal(t, event.GuardianID, got.GuardianID)
	require.Equal(t, event.Outcome, got.Outcome)
	require.True(t, event.Timestamp.Equal(got.Timestamp))
}
