package service

import (
	"context"
	"time"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
	"membership/pkg/platform/validation"
)

// Validator checks a request. Violations are reported in the result; an error means
// the validator could not decide.
type Validator interface {
	Validate(ctx context.Context, req *models.ApplyRequest) (validation.Result, error)
}

// PolicyEvaluator decides moderation and auto-deletion of a new application.
type PolicyEvaluator interface {
	NeedsModeration(app *models.Application) bool
	IsAutoDeleted(app *models.Application) bool
}

// Repository persists applications. StoreApplication assigns the id on first store
// and updates on later calls. GetApplicationByID returns sentinel.ErrNotFound for
// unknown ids.
type Repository interface {
	StoreApplication(ctx context.Context, app *models.Application) error
	GetApplicationByID(ctx context.Context, applicationID id.ApplicationID) (*models.Application, error)
}

type TokenFetcher interface {
	GetTokens(ctx context.Context, applicationID id.ApplicationID) (models.Tokens, error)
}

// Authorizer verifies tokens handed out by TokenFetcher.
type Authorizer interface {
	CanAccessApplication(ctx context.Context, applicationID id.ApplicationID, accessToken string) bool
	CanModifyApplication(ctx context.Context, applicationID id.ApplicationID, updateToken string) bool
}

// Mailer sends a templated mail to recipient.
type Mailer interface {
	SendMail(ctx context.Context, recipient string, fields map[string]any) error
}

// ApplicationTracker records campaign attribution of an application.
type ApplicationTracker interface {
	TrackApplication(ctx context.Context, applicationID id.ApplicationID, info models.TrackingInfo) error
}

// AnalyticsTracker forwards a submission to web analytics.
type AnalyticsTracker interface {
	TrackApplication(ctx context.Context, applicationID id.ApplicationID, info models.AnalyticsInfo) error
}

type PaymentDelayCalculator interface {
	CalculateFirstPaymentDate(ctx context.Context) time.Time
}

// Transactor runs fn atomically against the repository. Repository calls made
// with the ctx passed to fn take part in the same unit of work.
type Transactor interface {
	Atomic(ctx context.Context, fn func(ctx context.Context) error) error
}
