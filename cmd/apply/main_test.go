package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"

	"membership/internal/membership/fixtures"
	"membership/internal/platform/config"
)

type RunSuite struct {
	suite.Suite
	cfg config.Config
	log *slog.Logger
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}

func (s *RunSuite) SetupTest() {
	metricsRegisterer = prometheus.NewRegistry()
	cfg, err := config.Load(s.T().TempDir())
	s.Require().NoError(err)
	s.cfg = cfg
	s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *RunSuite) run(stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	err := run(context.Background(), s.cfg, s.log, args, strings.NewReader(stdin), &out)
	return out.String(), err
}

func (s *RunSuite) encode(v any) string {
	b, err := json.Marshal(v)
	s.Require().NoError(err)
	return string(b)
}

func (s *RunSuite) TestSubmitValidRequest() {
	out, err := s.run(s.encode(fixtures.ValidRequest()), "submit")
	s.Require().NoError(err)

	var view submitView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.True(view.Success)
	s.NotEmpty(view.AccessToken)
	s.NotEmpty(view.UpdateToken)
	s.Require().NotNil(view.Application)
	s.Equal("confirmed", view.Application.Status)
	s.Equal("10.00", view.Application.Fee)
	s.Equal("BEZ", view.Application.PaymentType)
	s.NotEmpty(view.Application.FirstPaymentDate)
	s.Require().NotNil(view.Application.Applicant)
	s.Equal(fixtures.City, view.Application.Applicant.City)
	s.Empty(view.Violations)
}

func (s *RunSuite) TestSubmitRejectedRequest() {
	req := fixtures.ValidRequest()
	req.PaymentAmountInCents = 1

	out, err := s.run(s.encode(req), "submit")
	s.Require().ErrorIs(err, errRejected)
	s.Equal(3, exitCode(err))

	var view submitView
	s.Require().NoError(json.Unmarshal([]byte(out), &view))
	s.False(view.Success)
	s.Equal(map[string]string{"payment-amount": "too-low"}, view.Violations)
}

func (s *RunSuite) TestSubmitMalformedJSON() {
	_, err := s.run("{", "submit")
	s.Require().Error(err)
	s.Equal(1, exitCode(err))
}

func (s *RunSuite) TestUsageErrors() {
	s.Run("no command", func() {
		_, err := s.run("")
		s.ErrorIs(err, errUsage)
		s.Equal(2, exitCode(err))
	})
	s.Run("unknown command", func() {
		_, err := s.run("", "renew")
		s.ErrorIs(err, errUsage)
	})
	s.Run("cancel without id", func() {
		_, err := s.run("", "cancel", "-token", "x")
		s.ErrorIs(err, errUsage)
	})
	s.Run("anonymize with malformed id", func() {
		_, err := s.run("", "anonymize", "-id", "not-a-uuid")
		s.ErrorIs(err, errUsage)
	})
}

func (s *RunSuite) TestShowUnknownApplication() {
	_, err := s.run("", "show", "-id", "550e8400-e29b-41d4-a716-446655440000", "-token", "x")
	s.Require().Error(err)
	s.NotErrorIs(err, errUsage)
}
