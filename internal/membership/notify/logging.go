package notify

import (
	"context"
	"log/slog"
	"sort"
)

// LoggingMailer writes mails to the log instead of delivering them. Used when no
// mail provider is configured.
type LoggingMailer struct {
	logger *slog.Logger
}

func NewLoggingMailer(logger *slog.Logger) *LoggingMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingMailer{logger: logger}
}

func (m *LoggingMailer) SendMail(ctx context.Context, recipient string, fields map[string]any) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]any, 0, 2+len(keys))
	attrs = append(attrs, slog.String("recipient", recipient))
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, fields[k]))
	}
	m.logger.InfoContext(ctx, "confirmation mail", slog.Group("mail", attrs...))
	return nil
}
