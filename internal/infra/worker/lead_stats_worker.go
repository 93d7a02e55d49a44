package worker

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/kmufreight/leads-api/internal/entity"
	"github.com/kmufreight/leads-api/internal/infra/http/middleware"
)

// LeadStatsWorker periodically counts leads per status and publishes the
// numbers as gauges.
type LeadStatsWorker struct {
	db           *sql.DB
	tickInterval time.Duration
}

func NewLeadStatsWorker(db *sql.DB) *LeadStatsWorker {
	return &LeadStatsWorker{
		db:           db,
		tickInterval: 1 * time.Minute,
	}
}

func (w *LeadStatsWorker) Start(ctx context.Context) {
	log.Println("🕒 Lead stats worker started (1min interval)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Lead stats worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *LeadStatsWorker) sweep(ctx context.Context) {
	query := `
		SELECT status, COUNT(*)
		FROM leads
		GROUP BY status
	`

	rows, err := w.db.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ Failed to count leads: %v", err)
		return
	}
	defer rows.Close()

	var pending, confirmed float64
	for rows.Next() {
		var status string
		var count float64

		if err := rows.Scan(&status, &count); err != nil {
			log.Printf("⚠️ Failed to scan lead count: %v", err)
			continue
		}

		switch status {
		case entity.StatusPending:
			pending = count
		case entity.StatusConfirmed:
			confirmed = count
		}
	}

	middleware.SetLeadCounts(pending, confirmed)
}
