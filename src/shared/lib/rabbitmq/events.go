package rabbitmq

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rabbitmq/amqp091-go"
)

const (
	UserRegisteredEvent = "user_registered"
	UserVerifiedEvent   = "user_verified"
	UserDeletedEvent    = "user_deleted"
)

// AccountEvent is the message shape downstream consumers (mail digests,
// analytics) read off the account queue.
type AccountEvent struct {
	Event      string    `json:"event"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}

func PublishAccountEvent(publisher Publisher, event string, userID string, email string) error {
	body, err := json.Marshal(AccountEvent{
		Event:      event,
		UserID:     userID,
		Email:      email,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "Failed to marshal the account event")
	}

	err = publisher.Publish(amqp091.Publishing{
		Type: event,
		Body: body,
	})
	if err != nil {
		return errors.Wrap(err, "Failed to publish the account event")
	}

	return nil
}
