// Package tracking forwards membership submissions to the analytics pipeline.
//
// Events are JSON documents keyed by application id, published to whatever
// backend the process wires (a Kafka topic or an AMQP topic exchange).
package tracking

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mssola/useragent"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
	dErrors "membership/pkg/domain-errors"
	"membership/pkg/requestcontext"
)

const EventTypeApplicationSubmitted = "membership_application_submitted"

// Publisher delivers one keyed message.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte) error
}

// Event is the analytics payload of one submission.
type Event struct {
	Type           string    `json:"type"`
	ApplicationID  string    `json:"application_id"`
	TrackingString string    `json:"tracking_string,omitempty"`
	Browser        string    `json:"browser,omitempty"`
	BrowserVersion string    `json:"browser_version,omitempty"`
	OS             string    `json:"os,omitempty"`
	Mobile         bool      `json:"mobile"`
	Bot            bool      `json:"bot"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// AnalyticsTracker turns submissions into analytics events.
type AnalyticsTracker struct {
	publisher Publisher
	logger    *slog.Logger
}

type Option func(*AnalyticsTracker)

func WithLogger(logger *slog.Logger) Option {
	return func(t *AnalyticsTracker) {
		t.logger = logger
	}
}

func NewAnalyticsTracker(publisher Publisher, opts ...Option) (*AnalyticsTracker, error) {
	if publisher == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "publisher is required")
	}
	t := &AnalyticsTracker{publisher: publisher}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// TrackApplication publishes one event for applicationID.
func (t *AnalyticsTracker) TrackApplication(ctx context.Context, applicationID id.ApplicationID, info models.AnalyticsInfo) error {
	event := NewEvent(applicationID, info, requestcontext.Now(ctx))
	body, err := json.Marshal(event)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode analytics event")
	}
	if err := t.publisher.Publish(ctx, event.ApplicationID, body); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to publish analytics event")
	}
	if t.logger != nil {
		t.logger.DebugContext(ctx, "analytics event published",
			"application_id", event.ApplicationID,
			"browser", event.Browser,
		)
	}
	return nil
}

// NewEvent builds the event for a submission. The user agent is reduced to
// browser, OS and device class; the raw string is not forwarded.
func NewEvent(applicationID id.ApplicationID, info models.AnalyticsInfo, at time.Time) Event {
	event := Event{
		Type:           EventTypeApplicationSubmitted,
		ApplicationID:  applicationID.String(),
		TrackingString: info.TrackingString,
		OccurredAt:     at.UTC(),
	}
	if info.UserAgent != "" {
		ua := useragent.New(info.UserAgent)
		event.Browser, event.BrowserVersion = ua.Browser()
		event.OS = ua.OS()
		event.Mobile = ua.Mobile()
		event.Bot = ua.Bot()
	}
	return event
}

// NopPublisher drops every message. Used when no analytics backend is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, []byte) error { return nil }
