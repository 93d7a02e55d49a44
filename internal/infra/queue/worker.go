package queue

import (
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kmufreight/leads-api/internal/entity"
	"github.com/kmufreight/leads-api/internal/infra/http/middleware"
)

// LeadNotifier is the contract the mail layer fulfils for notification jobs.
type LeadNotifier interface {
	NotifyAdmin(lead entity.Lead) error
	SendOptIn(email, token string) error
}

type Worker struct {
	Channel  *amqp.Channel
	Notifier LeadNotifier
}

func NewWorker(ch *amqp.Channel, notifier LeadNotifier) *Worker {
	return &Worker{
		Channel:  ch,
		Notifier: notifier,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var job NotificationJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				log.Printf("❌ [WORKER] Invalid JSON: %s", err)
				// Poison message. Reject without requeue so it lands on the DLQ.
				d.Nack(false, false)
				continue
			}

			log.Printf("📥 [WORKER] Processing %s notification for %s", job.Kind, job.Lead.Email)

			if err := runJob(w.Notifier, job); err != nil {
				log.Printf("❌ [WORKER] Notification failed: %s", err)
				middleware.RecordNotificationError(job.Kind)
				// Failed sends are not retried automatically. Off to the DLQ.
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("👷 Notification worker listening on queue %s", queueName)
	<-forever
}

// runJob routes a notification job to the matching notifier capability. Shared
// with the local dispatcher so broker and in-process paths behave identically.
func runJob(n LeadNotifier, job NotificationJob) error {
	switch job.Kind {
	case KindAdminAlert:
		return n.NotifyAdmin(job.Lead)
	case KindOptIn:
		return n.SendOptIn(job.Lead.Email, job.Token)
	default:
		return fmt.Errorf("unknown notification kind %q", job.Kind)
	}
}
