package testing

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/dev334/hemo-be/src/shared/lib/mailer"
	"github.com/dev334/hemo-be/src/shared/lib/rabbitmq"
	"github.com/dev334/hemo-be/src/shared/lib/token"
	"github.com/onsi/gomega"
	"github.com/rabbitmq/amqp091-go"
)

type SentMail struct {
	To      string
	Subject string
	Body    string
}

var _ mailer.Mailer = &FakeMailer{}

// FakeMailer records outbound mail instead of dialing a relay. Flip
// FailSends to simulate the relay being down.
type FakeMailer struct {
	FailSends bool
	Sent      []SentMail
}

func (f *FakeMailer) Send(_ context.Context, toAddress string, subject string, htmlBody string) error {
	if f.FailSends {
		return errors.New("Fake mailer set to fail sends")
	}

	f.Sent = append(f.Sent, SentMail{
		To:      toAddress,
		Subject: subject,
		Body:    htmlBody,
	})

	return nil
}

func (f *FakeMailer) Ping(_ context.Context) error {
	if f.FailSends {
		return errors.New("Fake mailer set to fail sends")
	}

	return nil
}

func (f *FakeMailer) LastMail() SentMail {
	gomega.ExpectWithOffset(1, f.Sent).NotTo(gomega.BeEmpty())
	return f.Sent[len(f.Sent)-1]
}

var _ rabbitmq.Publisher = &FakePublisher{}

type FakePublisher struct {
	Published []amqp091.Publishing
}

func (f *FakePublisher) Publish(msg amqp091.Publishing) error {
	f.Published = append(f.Published, msg)
	return nil
}

func (f *FakePublisher) Events() []rabbitmq.AccountEvent {
	events := []rabbitmq.AccountEvent{}

	for _, msg := range f.Published {
		event := rabbitmq.AccountEvent{}
		err := json.Unmarshal(msg.Body, &event)
		gomega.ExpectWithOffset(1, err).NotTo(gomega.HaveOccurred())

		events = append(events, event)
	}

	return events
}

var _ token.Signer = FakeSigner{}

type FakeSigner struct{}

func (f FakeSigner) Sign(userID string) (string, error) {
	return BearerTokenForUserID(userID), nil
}

func BearerTokenForUserID(userID string) string {
	return fmt.Sprintf("%s-bearer-token", userID)
}
