package queue

import (
	"context"
	"log"

	"github.com/kmufreight/leads-api/internal/infra/http/middleware"
)

// LocalDispatcher runs notification jobs on goroutines inside the API
// process. Used when no broker is configured; the submit response never
// waits on it and send errors only reach the log.
type LocalDispatcher struct {
	Notifier LeadNotifier
}

func NewLocalDispatcher(notifier LeadNotifier) *LocalDispatcher {
	return &LocalDispatcher{Notifier: notifier}
}

func (d *LocalDispatcher) Dispatch(ctx context.Context, job NotificationJob) error {
	go func() {
		if err := runJob(d.Notifier, job); err != nil {
			log.Printf("❌ [DISPATCH] %s notification for %s failed: %v", job.Kind, job.Lead.Email, err)
			middleware.RecordNotificationError(job.Kind)
		}
	}()
	return nil
}
