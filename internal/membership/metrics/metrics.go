package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"membership/pkg/platform/validation"
)

// Submission outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "validation_failure"
	OutcomeError   = "error"
)

// Side effect steps that may fail without failing the submission.
const (
	StepApplicationTracker = "application_tracker"
	StepAnalyticsTracker   = "analytics_tracker"
	StepConfirmationMail   = "confirmation_mail"
)

// Metrics provides observability for the membership module.
// Every method is safe on a nil receiver.
type Metrics struct {
	Submissions        *prometheus.CounterVec
	Violations         *prometheus.CounterVec
	SideEffectFailures *prometheus.CounterVec
	Flagged            *prometheus.CounterVec
	ApplyDuration      prometheus.Histogram
}

// New registers the membership metrics with the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the membership metrics with reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "membership_applications_submitted_total",
			Help: "Membership application submissions by outcome",
		}, []string{"outcome"}),
		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "membership_validation_violations_total",
			Help: "Validation violations by source",
		}, []string{"source"}),
		SideEffectFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "membership_side_effect_failures_total",
			Help: "Failed best-effort side effects after an application was stored",
		}, []string{"step"}),
		Flagged: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "membership_applications_flagged_total",
			Help: "Applications flagged by policy",
		}, []string{"flag"}),
		ApplyDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "membership_apply_duration_seconds",
			Help:    "Duration of ApplyForMembership operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) IncrementSubmission(outcome string) {
	if m == nil {
		return
	}
	m.Submissions.WithLabelValues(outcome).Inc()
}

// RecordViolations counts each violated source of a failed validation.
func (m *Metrics) RecordViolations(result validation.Result) {
	if m == nil {
		return
	}
	for _, source := range result.Sources() {
		m.Violations.WithLabelValues(string(source)).Inc()
	}
}

func (m *Metrics) IncrementSideEffectFailure(step string) {
	if m == nil {
		return
	}
	m.SideEffectFailures.WithLabelValues(step).Inc()
}

// IncrementFlagged records a policy flag ("moderation" or "deleted").
func (m *Metrics) IncrementFlagged(flag string) {
	if m == nil {
		return
	}
	m.Flagged.WithLabelValues(flag).Inc()
}

// ObserveApply records the duration of an ApplyForMembership call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveApply(start time.Time) {
	if m == nil {
		return
	}
	m.ApplyDuration.Observe(time.Since(start).Seconds())
}
