package payment

import (
	"context"
	"time"

	"membership/pkg/requestcontext"
)

// FirstPaymentDateFormat is the ISO date layout attached to applications.
const FirstPaymentDateFormat = "2006-01-02"

// DelayCalculator derives the first debit date from the request time plus a fixed
// delay, giving the applicant time to object before money moves.
type DelayCalculator struct {
	delay time.Duration
}

func NewDelayCalculator(delay time.Duration) *DelayCalculator {
	if delay < 0 {
		delay = 0
	}
	return &DelayCalculator{delay: delay}
}

// CalculateFirstPaymentDate returns the first payment date for a request handled now.
func (c *DelayCalculator) CalculateFirstPaymentDate(ctx context.Context) time.Time {
	return requestcontext.Now(ctx).Add(c.delay)
}
