package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/prometheus/client_golang/prometheus"

	"membership/internal/membership/metrics"
	"membership/internal/membership/notify"
	"membership/internal/membership/policy"
	"membership/internal/membership/service"
	"membership/internal/membership/store"
	"membership/internal/membership/tokens"
	"membership/internal/membership/tracking"
	"membership/internal/membership/validator"
	"membership/internal/payment"
	"membership/internal/platform/amqp"
	"membership/internal/platform/config"
	"membership/internal/platform/kafka/producer"
	"membership/internal/platform/postgres"
	"membership/internal/platform/redis"
)

// metricsRegisterer receives the service metrics. Tests swap in a fresh registry.
var metricsRegisterer prometheus.Registerer = prometheus.DefaultRegisterer

// application holds the wired service and the resources to release on exit.
type application struct {
	service *service.Service
	log     *slog.Logger
	closers []func()
}

func (a *application) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

// applicationStore is satisfied by both store implementations.
type applicationStore interface {
	service.Repository
	service.ApplicationTracker
	service.Transactor
}

func wire(ctx context.Context, cfg config.Config, log *slog.Logger) (*application, error) {
	app := &application{log: log}
	fail := func(err error) (*application, error) {
		app.Close()
		return nil, err
	}

	repo, err := app.wireStore(ctx, cfg.Postgres)
	if err != nil {
		return fail(err)
	}
	blocklist, err := app.wireBlocklist(ctx, cfg.Redis, cfg.Payment.BlockedIBANs)
	if err != nil {
		return fail(err)
	}
	mailer, err := wireMailer(cfg.Mailjet, log)
	if err != nil {
		return fail(err)
	}
	publisher, err := app.wirePublisher(cfg.Analytics)
	if err != nil {
		return fail(err)
	}
	analytics, err := tracking.NewAnalyticsTracker(publisher, tracking.WithLogger(log))
	if err != nil {
		return fail(err)
	}
	jwtService, err := tokens.NewJWTService(cfg.Tokens.SigningKey, cfg.Tokens.Issuer, cfg.Tokens.AccessTTL, cfg.Tokens.UpdateTTL)
	if err != nil {
		return fail(err)
	}
	evaluator, err := policy.New(policy.Config{
		YearlyAmountThreshold: payment.EuroFromCents(cfg.Policy.YearlyAmountThresholdCents),
		BadWords:              cfg.Policy.BadWords,
		EmailBlocklist:        cfg.Policy.EmailBlocklist,
	})
	if err != nil {
		return fail(err)
	}

	var emailOpts []validator.EmailOption
	if cfg.Email.MXCheck {
		emailOpts = append(emailOpts, validator.WithMXLookup(net.DefaultResolver))
	}
	appValidator := validator.New(
		validator.NewFeeValidator(
			validator.WithMinimums(
				payment.EuroFromCents(cfg.Fees.PersonMinimumCents),
				payment.EuroFromCents(cfg.Fees.CompanyMinimumCents),
			),
			validator.WithMaximum(payment.EuroFromCents(cfg.Fees.MaximumCents)),
		),
		payment.NewBankDataValidator(),
		validator.NewEmailValidator(emailOpts...),
		blocklist,
	)

	svc, err := service.New(service.Dependencies{
		Validator:          appValidator,
		Policy:             evaluator,
		Repository:         repo,
		Tokens:             jwtService,
		Mailer:             mailer,
		ApplicationTracker: repo,
		AnalyticsTracker:   analytics,
		DelayCalculator:    payment.NewDelayCalculator(cfg.Payment.FirstPaymentDelay),
	},
		service.WithLogger(log),
		service.WithMetrics(metrics.NewWithRegisterer(metricsRegisterer)),
		service.WithAuthorizer(jwtService),
		service.WithTransactor(repo),
	)
	if err != nil {
		return fail(err)
	}
	app.service = svc
	return app, nil
}

func (a *application) wireStore(ctx context.Context, cfg config.PostgresConfig) (applicationStore, error) {
	if cfg.DSN == "" {
		a.log.WarnContext(ctx, "POSTGRES_DSN not set, applications are kept in memory")
		return store.NewInMemory(), nil
	}
	db, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, func() { _ = db.Close() })
	if cfg.AutoMigrate {
		if err := store.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return store.NewPostgres(db), nil
}

func (a *application) wireBlocklist(ctx context.Context, cfg config.RedisConfig, seed []string) (validator.IBANBlocklist, error) {
	client, err := redis.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return payment.NewStaticBlocklist(seed), nil
	}
	a.closers = append(a.closers, func() { _ = client.Close() })

	blocklist := payment.NewRedisBlocklist(client.Client, payment.WithKey(cfg.BlocklistKey))
	if len(seed) > 0 {
		if err := blocklist.Block(ctx, seed...); err != nil {
			return nil, err
		}
	}
	return blocklist, nil
}

func wireMailer(cfg config.MailjetConfig, log *slog.Logger) (service.Mailer, error) {
	if !cfg.Enabled() {
		return notify.NewLoggingMailer(log), nil
	}
	return notify.NewMailjetMailer(cfg.PublicKey, cfg.PrivateKey, cfg.TemplateID,
		notify.WithSender(cfg.SenderEmail, cfg.SenderName),
		notify.WithSubject(cfg.Subject),
		notify.WithLogger(log),
	)
}

func (a *application) wirePublisher(cfg config.AnalyticsConfig) (tracking.Publisher, error) {
	switch cfg.Backend {
	case config.AnalyticsKafka:
		p, err := producer.New(cfg.Kafka.Brokers, cfg.Kafka.Topic, producer.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, p.Close)
		return p, nil
	case config.AnalyticsAMQP:
		p, err := amqp.Dial(cfg.AMQP.URL, cfg.AMQP.Exchange, amqp.WithLogger(a.log))
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, p.Close)
		return p, nil
	default:
		return tracking.NopPublisher{}, nil
	}
}
