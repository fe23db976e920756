package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-course-marketplace/config"
	"github.com/oksasatya/go-course-marketplace/internal/application"
	"github.com/oksasatya/go-course-marketplace/internal/domain/event"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/mail"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/messaging"
	"github.com/oksasatya/go-course-marketplace/internal/infrastructure/security"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
	"github.com/oksasatya/go-course-marketplace/pkg/mailer"
	mailtpl "github.com/oksasatya/go-course-marketplace/pkg/mailer/templates"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid config: %v", err)
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEventsQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if !cfg.MailgunConfigured() {
		logger.Fatal("Mailgun not configured")
	}

	conn, ch, err := helpers.DialRabbit(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue)
	if err != nil {
		logger.Fatalf("amqp: %v", err)
	}
	defer func() { _ = conn.Close() }()
	defer func() { _ = ch.Close() }()

	// fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	msgs, err := ch.Consume(cfg.RabbitMQEventsQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	clock := helpers.SystemClock{}
	tokens := security.NewConfirmationTokens(cfg.EmailSecret, cfg.ConfirmTokenTTL, cfg.ConfirmUserURL, clock)
	sender := mail.NewConfirmationSender(
		mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender),
		mailtpl.Brand{
			CompanyName: cfg.CompanyName,
			AppName:     cfg.CompanyName,
			LogoURL:     cfg.LogoURL,
			SupportURL:  cfg.SupportURL,
		},
		cfg.ConfirmTokenTTL,
		clock,
	)
	dispatcher := application.NewConfirmationEmailDispatcher(tokens, sender, logger)

	consumer := messaging.NewEventConsumer(logger, 15*time.Second).
		WithClaimer(messaging.NewRedisClaimer(rdb, cfg.AppName, cfg.EventDedupTTL))
	consumer.Register(event.UserCreatedName, messaging.UserCreatedHandler(dispatcher))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx, msgs)
		close(done)
	}()

	logger.Infof("email worker listening on queue=%s", cfg.RabbitMQEventsQueue)
	<-ctx.Done()
	logger.Info("shutting down...")
	select {
	case <-done:
	case <-time.After(5 * time.Second):
	}
}
