package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kmufreight/leads-api/internal/entity"
)

const (
	KindAdminAlert = "admin_alert"
	KindOptIn      = "opt_in"
)

// NotificationJob is one deferred email: either the admin alert for a new
// lead or the double opt-in mail for the submitter. The confirm token rides
// alongside the lead because the lead strips it from JSON.
type NotificationJob struct {
	Kind  string      `json:"kind"` // admin_alert, opt_in
	Token string      `json:"token,omitempty"`
	Lead  entity.Lead `json:"lead"`
}

type NotificationDispatcherInterface interface {
	Dispatch(ctx context.Context, job NotificationJob) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) Dispatch(ctx context.Context, job NotificationJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode notification job: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)

	if err != nil {
		return fmt.Errorf("failed to publish notification job: %w", err)
	}

	return nil
}
