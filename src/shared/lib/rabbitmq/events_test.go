package rabbitmq_test

import (
	"encoding/json"
	"time"

	"github.com/dev334/hemo-be/src/shared/lib/rabbitmq"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rabbitmq/amqp091-go"
)

type recordingPublisher struct {
	published []amqp091.Publishing
}

func (r *recordingPublisher) Publish(msg amqp091.Publishing) error {
	r.published = append(r.published, msg)
	return nil
}

var _ = Describe("PublishAccountEvent", func() {
	var (
		publisher *recordingPublisher
	)

	BeforeEach(func() {
		publisher = &recordingPublisher{}
	})

	It("types the message by the event name", func() {
		err := rabbitmq.PublishAccountEvent(
			publisher, rabbitmq.UserRegisteredEvent, "some-user-id", "someone@hemo.com")
		Expect(err).NotTo(HaveOccurred())

		Expect(publisher.published).To(HaveLen(1))
		Expect(publisher.published[0].Type).To(Equal(rabbitmq.UserRegisteredEvent))
	})

	It("carries the account details and a timestamp in the body", func() {
		before := time.Now().UTC()

		err := rabbitmq.PublishAccountEvent(
			publisher, rabbitmq.UserDeletedEvent, "some-user-id", "someone@hemo.com")
		Expect(err).NotTo(HaveOccurred())

		event := rabbitmq.AccountEvent{}
		Expect(json.Unmarshal(publisher.published[0].Body, &event)).To(Succeed())

		Expect(event.Event).To(Equal(rabbitmq.UserDeletedEvent))
		Expect(event.UserID).To(Equal("some-user-id"))
		Expect(event.Email).To(Equal("someone@hemo.com"))
		Expect(event.OccurredAt).To(BeTemporally(">=", before.Truncate(time.Second)))
	})
})
