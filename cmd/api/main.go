package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kmufreight/leads-api/internal/config"
	"github.com/kmufreight/leads-api/internal/infra/database"
	"github.com/kmufreight/leads-api/internal/infra/http/handlers"
	"github.com/kmufreight/leads-api/internal/infra/http/middleware"
	"github.com/kmufreight/leads-api/internal/infra/mail"
	"github.com/kmufreight/leads-api/internal/infra/queue"
	"github.com/kmufreight/leads-api/internal/infra/worker"
	"github.com/kmufreight/leads-api/internal/usecase"
)

func main() {
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// 1. Repository
	leadRepo := database.NewLeadRepository(db)

	// 2. Mail: SMTP when fully configured, console fallback otherwise
	var sender mail.Sender
	if cfg.SMTPConfigured() {
		sender = mail.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	} else {
		log.Println("⚠️ SMTP not configured, notifications go to the log")
		sender = mail.ConsoleSender{}
	}
	notifier := mail.NewNotifier(sender, cfg.AdminEmail, cfg.FrontendURL)

	// 3. Notification dispatch: RabbitMQ when configured, in-process otherwise
	var dispatcher queue.NotificationDispatcherInterface
	rabbitMQ := connectRabbitMQ(cfg.RabbitMQURL)
	if rabbitMQ != nil {
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		notificationWorker := queue.NewWorker(rabbitMQ.Ch, notifier)
		go notificationWorker.Start(queue.QueueName)

		dispatcher = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	} else {
		dispatcher = queue.NewLocalDispatcher(notifier)
	}

	// 4. UseCases
	submitLeadUC := usecase.NewSubmitLeadUseCase(leadRepo, dispatcher)
	confirmLeadUC := usecase.NewConfirmLeadUseCase(leadRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(submitLeadUC)
	confirmHandler := handlers.NewConfirmHandler(confirmLeadUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.SMTPConfigured())
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil, cfg.SMTPConfigured())
	}

	// 6. Stats worker
	statsWorker := worker.NewLeadStatsWorker(db)
	go statsWorker.Start(context.Background())

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Post("/leads", leadHandler.HandleSubmit)
	r.Get("/confirm", confirmHandler.HandleConfirm)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + cfg.Port
	log.Printf("🔥 KMU-Freight Leads API running on port %s", port)
	http.ListenAndServe(port, r)
}

// connectRabbitMQ treats the broker as optional: unset URL or a failed dial
// both leave the service running with in-process dispatch.
func connectRabbitMQ(url string) *queue.RabbitMQ {
	if url == "" {
		log.Println("⚠️ RABBITMQ_URL not set, using in-process notification dispatch")
		return nil
	}

	rabbitMQ, err := queue.NewRabbitMQ(url)
	if err != nil {
		log.Printf("⚠️ RabbitMQ unavailable (%v), using in-process notification dispatch", err)
		return nil
	}

	return rabbitMQ
}
