// Package notify delivers the membership confirmation mail.
package notify

import (
	"context"
	"log/slog"
	"strings"

	mailjet "github.com/mailjet/mailjet-apiv3-go"

	dErrors "membership/pkg/domain-errors"
)

// SendFunc delivers a batch of mailjet v3.1 messages.
type SendFunc func(msgs *mailjet.MessagesV31) (*mailjet.ResultsV31, error)

// MailjetMailer sends template mails through the mailjet send API. Template
// variables are the fields handed to SendMail.
type MailjetMailer struct {
	send       SendFunc
	sender     string
	senderName string
	templateID int
	subject    string
	logger     *slog.Logger
}

type Option func(*MailjetMailer)

func WithSender(email, name string) Option {
	return func(m *MailjetMailer) {
		m.sender = email
		m.senderName = name
	}
}

func WithSubject(subject string) Option {
	return func(m *MailjetMailer) {
		m.subject = subject
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(m *MailjetMailer) {
		m.logger = logger
	}
}

// NewMailjetMailer creates a mailer backed by a mailjet client for the given key pair.
func NewMailjetMailer(publicKey, privateKey string, templateID int, opts ...Option) (*MailjetMailer, error) {
	if publicKey == "" || privateKey == "" {
		return nil, dErrors.New(dErrors.CodeInternal, "mailjet key pair is required")
	}
	clt := mailjet.NewMailjetClient(publicKey, privateKey)
	return NewMailjetMailerWithSend(func(msgs *mailjet.MessagesV31) (*mailjet.ResultsV31, error) {
		return clt.SendMailV31(msgs)
	}, templateID, opts...)
}

// NewMailjetMailerWithSend creates a mailer over an arbitrary send function.
func NewMailjetMailerWithSend(send SendFunc, templateID int, opts ...Option) (*MailjetMailer, error) {
	if send == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "send function is required")
	}
	if templateID <= 0 {
		return nil, dErrors.New(dErrors.CodeInternal, "mail template id is required")
	}
	m := &MailjetMailer{
		send:       send,
		templateID: templateID,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.sender == "" {
		return nil, dErrors.New(dErrors.CodeInternal, "mail sender is required")
	}
	return m, nil
}

// SendMail sends the confirmation template to recipient.
func (m *MailjetMailer) SendMail(ctx context.Context, recipient string, fields map[string]any) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "mail recipient is required")
	}

	vars := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		vars[k] = v
	}
	msgs := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
		From:             &mailjet.RecipientV31{Email: m.sender, Name: m.senderName},
		To:               &mailjet.RecipientsV31{mailjet.RecipientV31{Email: recipient}},
		Subject:          m.subject,
		TemplateID:       m.templateID,
		TemplateLanguage: true,
		Variables:        vars,
	}}}

	if _, err := m.send(&msgs); err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to send confirmation mail")
	}
	if m.logger != nil {
		m.logger.InfoContext(ctx, "confirmation mail sent",
			"template_id", m.templateID,
		)
	}
	return nil
}
