package service_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"membership/internal/membership/fixtures"
	"membership/internal/membership/metrics"
	"membership/internal/membership/models"
	"membership/internal/membership/policy"
	"membership/internal/membership/service"
	"membership/internal/membership/service/mocks"
	"membership/internal/membership/store"
	"membership/internal/membership/tokens"
	"membership/internal/membership/tracking"
	"membership/internal/membership/validator"
	"membership/internal/payment"
	"membership/pkg/platform/validation"
	"membership/pkg/requestcontext"
)

type memoryPublisher struct {
	bodies [][]byte
}

func (p *memoryPublisher) Publish(_ context.Context, _ string, body []byte) error {
	p.bodies = append(p.bodies, body)
	return nil
}

// MembershipFlowSuite runs the use cases over real collaborators; only the
// mailer is mocked.
type MembershipFlowSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mailer    *mocks.MockMailer
	store     *store.InMemoryStore
	publisher *memoryPublisher
	jwt       *tokens.JWTService
	service   *service.Service
	ctx       context.Context
}

func TestMembershipFlowSuite(t *testing.T) {
	suite.Run(t, new(MembershipFlowSuite))
}

func (s *MembershipFlowSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mailer = mocks.NewMockMailer(s.ctrl)
	s.store = store.NewInMemory()
	s.publisher = &memoryPublisher{}

	analytics, err := tracking.NewAnalyticsTracker(s.publisher)
	s.Require().NoError(err)
	s.jwt, err = tokens.NewJWTService("flow-secret", "membership", time.Hour, 24*time.Hour)
	s.Require().NoError(err)
	evaluator, err := policy.New(policy.Config{
		BadWords:       []string{"spam"},
		EmailBlocklist: []string{`@trashmail\.example$`},
	})
	s.Require().NoError(err)

	s.service, err = service.New(service.Dependencies{
		Validator: validator.New(
			validator.NewFeeValidator(),
			payment.NewBankDataValidator(),
			validator.NewEmailValidator(),
			payment.NewStaticBlocklist([]string{fixtures.BlockedIBAN}),
		),
		Policy:             evaluator,
		Repository:         s.store,
		Tokens:             s.jwt,
		Mailer:             s.mailer,
		ApplicationTracker: s.store,
		AnalyticsTracker:   analytics,
		DelayCalculator:    payment.NewDelayCalculator(14 * 24 * time.Hour),
	},
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		service.WithMetrics(metrics.NewWithRegisterer(prometheus.NewRegistry())),
		service.WithAuthorizer(s.jwt),
		service.WithTransactor(s.store),
	)
	s.Require().NoError(err)

	now := time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), now)
}

func (s *MembershipFlowSuite) apply(req *models.ApplyRequest) *service.SuccessResponse {
	resp, err := s.service.ApplyForMembership(s.ctx, req)
	s.Require().NoError(err)
	success, ok := resp.(*service.SuccessResponse)
	s.Require().True(ok, "expected success, got %#v", resp)
	return success
}

func (s *MembershipFlowSuite) TestSuccessfulApplication() {
	s.mailer.EXPECT().SendMail(gomock.Any(), fixtures.EmailAddress, gomock.Any()).Return(nil).Times(1)

	resp := s.apply(fixtures.ValidRequest())

	app := resp.Application
	s.Equal(models.StatusConfirmed, app.Status())
	s.Equal("2024-02-08", app.FirstPaymentDate)
	s.Equal(1, s.store.Count())

	tracked, ok := s.store.Tracking(app.ID)
	s.Require().True(ok)
	s.Equal(fixtures.Campaign, tracked.Campaign)

	s.Require().Len(s.publisher.bodies, 1)
	var event tracking.Event
	s.Require().NoError(json.Unmarshal(s.publisher.bodies[0], &event))
	s.Equal(app.ID.String(), event.ApplicationID)
	s.Equal("Firefox", event.Browser)

	s.True(s.jwt.CanAccessApplication(s.ctx, app.ID, resp.AccessToken))
	s.True(s.jwt.CanModifyApplication(s.ctx, app.ID, resp.UpdateToken))
}

func (s *MembershipFlowSuite) TestFeeTooLow() {
	req := fixtures.ValidRequest()
	req.PaymentAmountInCents = 100

	resp, err := s.service.ApplyForMembership(s.ctx, req)
	s.Require().NoError(err)
	failure, ok := resp.(*service.FailureResponse)
	s.Require().True(ok)
	s.True(failure.ValidationResult.Equal(validation.FromMap(map[validation.Source]validation.Kind{
		validator.SourcePaymentAmount: validator.KindTooLow,
	})))
	s.Zero(s.store.Count())
	s.Empty(s.publisher.bodies)
}

func (s *MembershipFlowSuite) TestFeeOverflowingYearIsRejected() {
	s.mailer.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	req := fixtures.ValidRequest()
	req.PaymentIntervalInMonths = 1
	req.PaymentAmountInCents = 1537228672809133468

	resp, err := s.service.ApplyForMembership(s.ctx, req)
	s.Require().NoError(err)
	failure, ok := resp.(*service.FailureResponse)
	s.Require().True(ok)
	s.True(failure.ValidationResult.Equal(validation.FromMap(map[validation.Source]validation.Kind{
		validator.SourcePaymentAmount: validator.KindTooHigh,
	})))
	s.Zero(s.store.Count())
	s.Empty(s.publisher.bodies)
}

func (s *MembershipFlowSuite) TestCompanyWithoutName() {
	s.mailer.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	req := fixtures.ValidCompanyRequest()
	req.CompanyName = ""

	resp, err := s.service.ApplyForMembership(s.ctx, req)
	s.Require().NoError(err)
	failure, ok := resp.(*service.FailureResponse)
	s.Require().True(ok, "expected failure, got %#v", resp)
	s.True(failure.ValidationResult.Equal(validation.FromMap(map[validation.Source]validation.Kind{
		validator.SourceApplicantCompany: validation.KindMissing,
	})), "got %v", failure.ValidationResult.Violations())
	s.Zero(s.store.Count())
	s.Empty(s.publisher.bodies)
}

func (s *MembershipFlowSuite) TestBlockedIBAN() {
	req := fixtures.ValidRequest()
	req.BankData.IBAN = fixtures.BlockedIBAN

	resp, err := s.service.ApplyForMembership(s.ctx, req)
	s.Require().NoError(err)
	s.False(resp.IsSuccessful())
	s.Zero(s.store.Count())
}

func (s *MembershipFlowSuite) TestPayPalSkipsMail() {
	resp := s.apply(fixtures.ValidPayPalRequest())
	s.Equal(models.StatusConfirmed, resp.Application.Status())
	s.Len(s.publisher.bodies, 1)
}

func (s *MembershipFlowSuite) TestPolicyOutcomes() {
	s.mailer.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s.Run("bad word is moderated", func() {
		req := fixtures.ValidRequest()
		req.City = "Spamtown"
		resp := s.apply(req)
		s.Equal(models.StatusPendingModeration, resp.Application.Status())
	})
	s.Run("blocklisted email is deleted", func() {
		req := fixtures.ValidRequest()
		req.EmailAddress = "someone@trashmail.example"
		resp := s.apply(req)
		s.Equal(models.StatusDeleted, resp.Application.Status())
	})
}

func (s *MembershipFlowSuite) TestLifecycle() {
	s.mailer.EXPECT().SendMail(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	resp := s.apply(fixtures.ValidRequest())
	appID := resp.Application.ID

	_, err := s.service.CancelApplication(s.ctx, appID, resp.AccessToken)
	s.Require().Error(err)

	cancelled, err := s.service.CancelApplication(s.ctx, appID, resp.UpdateToken)
	s.Require().NoError(err)
	s.Equal(models.StatusCancelled, cancelled.Status())

	s.Require().NoError(s.service.AnonymizeApplication(s.ctx, appID))
	_, err = s.service.GetApplication(s.ctx, appID, resp.AccessToken)
	s.Require().Error(err)
}
