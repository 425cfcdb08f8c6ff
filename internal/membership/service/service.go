package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"membership/internal/membership/builder"
	"membership/internal/membership/metrics"
	"membership/internal/membership/models"
	dErrors "membership/pkg/domain-errors"
	"membership/pkg/requestcontext"
)

var tracer = otel.Tracer("membership/service")

// Dependencies are the collaborators every Service needs.
type Dependencies struct {
	Validator          Validator
	Policy             PolicyEvaluator
	Repository         Repository
	Tokens             TokenFetcher
	Mailer             Mailer
	ApplicationTracker ApplicationTracker
	AnalyticsTracker   AnalyticsTracker
	DelayCalculator    PaymentDelayCalculator
}

// Service runs the membership application use cases.
type Service struct {
	validator          Validator
	policy             PolicyEvaluator
	repository         Repository
	tokens             TokenFetcher
	mailer             Mailer
	applicationTracker ApplicationTracker
	analyticsTracker   AnalyticsTracker
	delayCalculator    PaymentDelayCalculator
	authorizer         Authorizer
	transactor         Transactor
	logger             *slog.Logger
	metrics            *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithAuthorizer enables the token-guarded lifecycle operations.
func WithAuthorizer(authorizer Authorizer) Option {
	return func(s *Service) {
		s.authorizer = authorizer
	}
}

// WithTransactor makes cancel and anonymize a single unit of work.
func WithTransactor(transactor Transactor) Option {
	return func(s *Service) {
		s.transactor = transactor
	}
}

// New constructs a Service.
//
// Errors: CodeInternal when a dependency is missing.
func New(deps Dependencies, opts ...Option) (*Service, error) {
	required := []struct {
		ok   bool
		name string
	}{
		{deps.Validator != nil, "validator"},
		{deps.Policy != nil, "policy evaluator"},
		{deps.Repository != nil, "repository"},
		{deps.Tokens != nil, "token fetcher"},
		{deps.Mailer != nil, "mailer"},
		{deps.ApplicationTracker != nil, "application tracker"},
		{deps.AnalyticsTracker != nil, "analytics tracker"},
		{deps.DelayCalculator != nil, "payment delay calculator"},
	}
	for _, r := range required {
		if !r.ok {
			return nil, dErrors.New(dErrors.CodeInternal, r.name+" is required")
		}
	}

	s := &Service{
		validator:          deps.Validator,
		policy:             deps.Policy,
		repository:         deps.Repository,
		tokens:             deps.Tokens,
		mailer:             deps.Mailer,
		applicationTracker: deps.ApplicationTracker,
		analyticsTracker:   deps.AnalyticsTracker,
		delayCalculator:    deps.DelayCalculator,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ApplyForMembership validates req and, when it is acceptable, stores a new
// application and runs the follow-up side effects.
//
// A rejected request yields a *FailureResponse and a nil error; nothing is stored and
// no side effect runs. Errors are returned only for storage and token failures. Once
// the application is stored it stays stored: tracker and mail failures are logged and
// swallowed, and a token failure never triggers a second store.
func (s *Service) ApplyForMembership(ctx context.Context, req *models.ApplyRequest) (ApplyResponse, error) {
	start := time.Now()
	defer s.metrics.ObserveApply(start)

	ctx, span := tracer.Start(ctx, "membership.Service.ApplyForMembership")
	defer span.End()

	if req == nil {
		return nil, s.fail(ctx, span, dErrors.New(dErrors.CodeBadRequest, "request is required"))
	}
	req.Normalize()

	result, err := s.validator.Validate(ctx, req)
	if err != nil {
		return nil, s.fail(ctx, span, ensureCode(err, "failed to validate application"))
	}
	if !result.IsSuccessful() {
		s.metrics.IncrementSubmission(metrics.OutcomeFailure)
		s.metrics.RecordViolations(result)
		span.SetAttributes(attribute.Int("membership.violations", result.Len()))
		s.logInfo(ctx, "membership application rejected", "violations", result.Len())
		return &FailureResponse{ValidationResult: result}, nil
	}

	app := builder.Build(req)
	if err := s.applyPolicy(ctx, app); err != nil {
		return nil, s.fail(ctx, span, err)
	}
	app.SetFirstPaymentDate(s.delayCalculator.CalculateFirstPaymentDate(ctx))
	app.CreatedAt = requestcontext.Now(ctx)

	if err := s.repository.StoreApplication(ctx, app); err != nil {
		return nil, s.fail(ctx, span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store application"))
	}
	span.SetAttributes(
		attribute.String("membership.application_id", app.ID.String()),
		attribute.String("membership.status", app.Status().String()),
	)
	span.AddEvent("application_stored")

	s.runSideEffects(ctx, app, req)

	tokens, err := s.tokens.GetTokens(ctx, app.ID)
	if err != nil {
		return nil, s.fail(ctx, span, dErrors.Wrap(err, dErrors.CodeInternal, "failed to fetch application tokens"))
	}

	s.metrics.IncrementSubmission(metrics.OutcomeSuccess)
	s.logInfo(ctx, "membership application stored",
		"application_id", app.ID.String(),
		"status", app.Status().String(),
		"payment_type", app.Payment.MethodID().String(),
	)
	return &SuccessResponse{
		AccessToken: tokens.AccessToken,
		UpdateToken: tokens.UpdateToken,
		Application: app,
	}, nil
}

func (s *Service) applyPolicy(ctx context.Context, app *models.Application) error {
	if s.policy.NeedsModeration(app) {
		if err := app.MarkForModeration(); err != nil {
			return err
		}
		s.metrics.IncrementFlagged("moderation")
		s.logInfo(ctx, "membership application needs moderation")
	}
	if s.policy.IsAutoDeleted(app) {
		app.MarkAsDeleted()
		s.metrics.IncrementFlagged("deleted")
		s.logInfo(ctx, "membership application auto-deleted")
	}
	return nil
}

// runSideEffects fires both trackers concurrently with the confirmation mail and
// waits for all of them. Each failure is isolated and only logged.
func (s *Service) runSideEffects(ctx context.Context, app *models.Application, req *models.ApplyRequest) {
	var g errgroup.Group

	g.Go(func() error {
		if err := s.applicationTracker.TrackApplication(ctx, app.ID, req.Tracking); err != nil {
			s.sideEffectFailed(ctx, metrics.StepApplicationTracker, app, err)
		}
		return nil
	})
	g.Go(func() error {
		if err := s.analyticsTracker.TrackApplication(ctx, app.ID, req.AnalyticsInfo()); err != nil {
			s.sideEffectFailed(ctx, metrics.StepAnalyticsTracker, app, err)
		}
		return nil
	})

	if app.Payment.IsDirectDebit() {
		s.sendConfirmationMail(ctx, app)
	}

	_ = g.Wait()
}

// sendConfirmationMail notifies direct debit applicants; their membership is
// confirmed without an external payment step.
func (s *Service) sendConfirmationMail(ctx context.Context, app *models.Application) {
	applicant, err := app.Applicant()
	if err != nil {
		s.sideEffectFailed(ctx, metrics.StepConfirmationMail, app, err)
		return
	}
	if err := s.mailer.SendMail(ctx, applicant.Email, confirmationMailFields(app, applicant)); err != nil {
		s.sideEffectFailed(ctx, metrics.StepConfirmationMail, app, err)
	}
}

func (s *Service) sideEffectFailed(ctx context.Context, step string, app *models.Application, err error) {
	s.metrics.IncrementSideEffectFailure(step)
	trace.SpanFromContext(ctx).AddEvent("side_effect_failed", trace.WithAttributes(attribute.String("step", step)))
	s.logError(ctx, "membership side effect failed",
		"step", step,
		"application_id", app.ID.String(),
		"error", err,
	)
}

func (s *Service) fail(ctx context.Context, span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.metrics.IncrementSubmission(metrics.OutcomeError)
	s.logError(ctx, "membership application failed", "error", err)
	return err
}

// ensureCode keeps coded errors as they are and marks everything else internal.
func ensureCode(err error, msg string) error {
	if dErrors.CodeOf(err) != "" {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, msg)
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.InfoContext(ctx, msg, s.withRequestID(ctx, args)...)
}

func (s *Service) logError(ctx context.Context, msg string, args ...any) {
	if s.logger == nil {
		return
	}
	s.logger.ErrorContext(ctx, msg, s.withRequestID(ctx, args)...)
}

func (s *Service) withRequestID(ctx context.Context, args []any) []any {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		return append(args, "request_id", requestID)
	}
	return args
}
