package usecase

import (
	"context"

	"github.com/kmufreight/leads-api/internal/infra/queue"
)

type NotificationDispatcherInterface interface {
	Dispatch(ctx context.Context, job queue.NotificationJob) error
}
