package events

import (
	"context"
	"doctor-appointment-service/internal/app/models"
	"doctor-appointment-service/internal/pkg/constvars"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(zap.NewNop())

	event := models.AppointmentEvent{ID: "evt-1", Type: constvars.EventAppointmentBooked}
	assert.NoError(t, publisher.Publish(context.Background(), event))
	assert.NoError(t, publisher.Close())
}

func TestAppointmentEventPayload(t *testing.T) {
	appointment := &models.Appointment{
		ID:       primitive.NewObjectID(),
		UserID:   "665f1c2b9d3e4a0000000001",
		DoctorID: primitive.NewObjectID(),
		Date:     "2099-01-10",
		TimeSlot: "09:00-09:30",
		Status:   models.AppointmentStatusCancelled,
	}
	occurredAt := time.Date(2030, 6, 10, 9, 0, 0, 0, time.UTC)

	event := models.NewAppointmentEvent("evt-2", constvars.EventAppointmentCancelled, appointment, occurredAt)
	body, err := json.Marshal(event)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &payload))
	assert.Equal(t, "appointment.cancelled", payload["type"])
	assert.Equal(t, appointment.ID.Hex(), payload["appointment_id"])
	assert.Equal(t, appointment.DoctorID.Hex(), payload["doctor_id"])
	assert.Equal(t, "cancelled", payload["status"])
	assert.Equal(t, "2030-06-10T09:00:00Z", payload["occurred_at"])
}

type pendingConfirmation struct {
	ack chan bool
}

func (c *pendingConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-c.ack:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakePublishChannel struct {
	mu         sync.Mutex
	published  []amqp.Publishing
	publishErr error
	pending    chan *pendingConfirmation
}

func newFakePublishChannel() *fakePublishChannel {
	return &fakePublishChannel{pending: make(chan *pendingConfirmation, 8)}
}

func (c *fakePublishChannel) PublishWithDeferredConfirm(ctx context.Context, queue string, msg amqp.Publishing) (deliveryConfirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.publishErr != nil {
		return nil, c.publishErr
	}
	confirmation := &pendingConfirmation{ack: make(chan bool, 1)}
	c.published = append(c.published, msg)
	c.pending <- confirmation
	return confirmation, nil
}

func (c *fakePublishChannel) Close() error {
	return nil
}

func TestRabbitMQPublisher_TimedOutConfirmDoesNotLeakIntoNextPublish(t *testing.T) {
	ch := newFakePublishChannel()
	publisher := newRabbitMQPublisher(ch, zap.NewNop(), "appointment-events")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	err := publisher.Publish(ctx, models.AppointmentEvent{ID: "evt-a", Type: constvars.EventAppointmentBooked})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// the broker acks the first message late
	first := <-ch.pending
	first.ack <- true

	done := make(chan error, 1)
	go func() {
		done <- publisher.Publish(context.Background(), models.AppointmentEvent{ID: "evt-b", Type: constvars.EventAppointmentCancelled})
	}()

	second := <-ch.pending
	select {
	case err := <-done:
		t.Fatalf("second publish returned before its own confirm: %v", err)
	case <-time.After(20 * time.Millisecond):
	}

	second.ack <- false
	assert.Error(t, <-done, "second publish must see its own nack")

	ch.mu.Lock()
	defer ch.mu.Unlock()
	require.Len(t, ch.published, 2)
	assert.Equal(t, "evt-b", ch.published[1].MessageId)
}

func TestRabbitMQPublisher_Publish(t *testing.T) {
	ch := newFakePublishChannel()
	publisher := newRabbitMQPublisher(ch, zap.NewNop(), "appointment-events")

	go func() {
		confirmation := <-ch.pending
		confirmation.ack <- true
	}()

	event := models.AppointmentEvent{ID: "evt-c", Type: constvars.EventAppointmentBooked}
	require.NoError(t, publisher.Publish(context.Background(), event))
	require.Len(t, ch.published, 1)
	assert.Equal(t, constvars.MIMEApplicationJSON, ch.published[0].ContentType)
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)
	assert.Equal(t, constvars.EventAppointmentBooked, ch.published[0].Type)

	ch.publishErr = errors.New("channel closed")
	assert.Error(t, publisher.Publish(context.Background(), event))
}
