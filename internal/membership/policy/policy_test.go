package policy_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"membership/internal/membership/fixtures"
	"membership/internal/membership/models"
	"membership/internal/membership/policy"
	"membership/internal/payment"
	dErrors "membership/pkg/domain-errors"
)

type PolicySuite struct {
	suite.Suite
	evaluator *policy.Evaluator
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicySuite))
}

func (s *PolicySuite) SetupTest() {
	evaluator, err := policy.New(policy.Config{
		BadWords:       []string{" Evil ", "SPAM", "spam"},
		EmailBlocklist: []string{`@bad\.example$`, `^throwaway\+`},
	})
	s.Require().NoError(err)
	s.evaluator = evaluator
}

func applicationWith(mutate func(*models.Applicant, *models.Payment)) *models.Application {
	applicant := fixtures.Applicant()
	p := fixtures.Payment()
	mutate(&applicant, &p)
	return models.NewApplication("sustaining", applicant, p, false)
}

func (s *PolicySuite) TestValidApplicationPassesUnflagged() {
	app := fixtures.NewApplication()
	s.False(s.evaluator.NeedsModeration(app))
	s.False(s.evaluator.IsAutoDeleted(app))
}

func (s *PolicySuite) TestModeration() {
	s.Run("yearly amount above threshold", func() {
		app := applicationWith(func(_ *models.Applicant, p *models.Payment) {
			p.IntervalInMonths = 1
			p.Amount = payment.EuroFromCents(8334)
		})
		s.True(s.evaluator.NeedsModeration(app))
	})

	s.Run("monthly amount too large to total in a year", func() {
		app := applicationWith(func(_ *models.Applicant, p *models.Payment) {
			p.IntervalInMonths = 1
			p.Amount = payment.EuroFromCents(1537228672809133468)
		})
		s.True(s.evaluator.NeedsModeration(app))
	})

	s.Run("yearly amount at threshold", func() {
		app := applicationWith(func(_ *models.Applicant, p *models.Payment) {
			p.IntervalInMonths = 12
			p.Amount = payment.EuroFromCents(100000)
		})
		s.False(s.evaluator.NeedsModeration(app))
	})

	s.Run("bad word in last name", func() {
		app := applicationWith(func(a *models.Applicant, _ *models.Payment) {
			a.Name = models.PersonName{Salutation: "Herr", FirstName: "Potato", LastName: "Evilson"}
		})
		s.True(s.evaluator.NeedsModeration(app))
	})

	s.Run("bad word in company name", func() {
		app := applicationWith(func(a *models.Applicant, _ *models.Payment) {
			a.Name = models.CompanyName{Name: "Spam Inc."}
		})
		s.True(s.evaluator.NeedsModeration(app))
	})

	s.Run("bad word in city", func() {
		app := applicationWith(func(a *models.Applicant, _ *models.Payment) {
			a.Address.City = "Evil City"
		})
		s.True(s.evaluator.NeedsModeration(app))
	})
}

func (s *PolicySuite) TestAutoDeletion() {
	for _, email := range []string{"someone@bad.example", "throwaway+1@gmail.com"} {
		s.Run(email, func() {
			app := applicationWith(func(a *models.Applicant, _ *models.Payment) {
				a.Email = email
			})
			s.True(s.evaluator.IsAutoDeleted(app))
		})
	}
}

func (s *PolicySuite) TestBothRulesCanHold() {
	app := applicationWith(func(a *models.Applicant, _ *models.Payment) {
		a.Email = "spam@bad.example"
		a.Address.StreetAddress = "Spam street"
	})
	s.True(s.evaluator.NeedsModeration(app))
	s.True(s.evaluator.IsAutoDeleted(app))
}

func (s *PolicySuite) TestAnonymizedApplicationsAreNotFlaggedForContent() {
	app := applicationWith(func(a *models.Applicant, _ *models.Payment) {
		a.Email = "spam@bad.example"
	})
	s.Require().NoError(app.Anonymize())
	s.False(s.evaluator.IsAutoDeleted(app))
	s.False(s.evaluator.NeedsModeration(app))
}

func (s *PolicySuite) TestInvalidPattern() {
	_, err := policy.New(policy.Config{EmailBlocklist: []string{"(unclosed"}})
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
}
