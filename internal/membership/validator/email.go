package validator

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/asaskevich/govalidator"

	"membership/pkg/platform/validation"
)

// SourceEmail is the source reported by EmailValidator. ApplicationValidator maps
// any failure of it to applicant-email/not-email.
const SourceEmail validation.Source = "email"

const (
	KindEmailWrongFormat          validation.Kind = "email_address_wrong_format"
	KindEmailInvalid              validation.Kind = "email_address_invalid"
	KindEmailDomainRecordNotFound validation.Kind = "email_address_domain_record_not_found"
)

// MXResolver is satisfied by *net.Resolver.
type MXResolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
}

// EmailValidator checks email syntax and, when a resolver is configured, that the
// domain has a mail exchanger.
type EmailValidator struct {
	resolver MXResolver
}

type EmailOption func(*EmailValidator)

// WithMXLookup enables the domain record check.
func WithMXLookup(resolver MXResolver) EmailOption {
	return func(v *EmailValidator) {
		v.resolver = resolver
	}
}

func NewEmailValidator(opts ...EmailOption) *EmailValidator {
	v := &EmailValidator{}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

func (v *EmailValidator) Validate(ctx context.Context, address string) validation.Result {
	var result validation.Result

	at := strings.LastIndex(address, "@")
	if at <= 0 || at == len(address)-1 {
		result.Add(SourceEmail, KindEmailWrongFormat)
		return result
	}
	if !govalidator.IsEmail(address) {
		result.Add(SourceEmail, KindEmailInvalid)
		return result
	}
	if v.resolver == nil {
		return result
	}

	records, err := v.resolver.LookupMX(ctx, address[at+1:])
	var dnsErr *net.DNSError
	if err != nil && errors.As(err, &dnsErr) && !dnsErr.IsNotFound {
		// Resolver trouble says nothing about the address.
		return result
	}
	if err != nil || len(records) == 0 {
		result.Add(SourceEmail, KindEmailDomainRecordNotFound)
	}
	return result
}
