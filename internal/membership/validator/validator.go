package validator

import (
	"context"
	"regexp"
	"strconv"
	"time"

	"github.com/asaskevich/govalidator"

	"membership/internal/membership/models"
	"membership/internal/payment"
	id "membership/pkg/domain"
	dErrors "membership/pkg/domain-errors"
	"membership/pkg/platform/validation"
)

// Collaborators of ApplicationValidator.
type (
	FeeChecker interface {
		Validate(amount payment.Euro, intervalInMonths int, applicantType models.ApplicantType) validation.Result
	}
	BankDataChecker interface {
		Validate(bankData payment.BankData) validation.Result
	}
	EmailChecker interface {
		Validate(ctx context.Context, address string) validation.Result
	}
	IBANBlocklist interface {
		IsBlocked(ctx context.Context, iban payment.IBAN) (bool, error)
	}
)

// phonePattern is deliberately lenient: digits and common separators only.
var phonePattern = regexp.MustCompile(`^[0-9+\-/() ]+$`)

const dateOfBirthLayout = "2006-01-02"

// ApplicationValidator aggregates every field-level and cross-field check of a
// membership application into one validation.Result.
//
// All checks run; nothing short-circuits. Where two checks hit the same source the
// later one wins, and the length checks run last, so an overlong value always
// reports wrong-length.
type ApplicationValidator struct {
	fees      FeeChecker
	bankData  BankDataChecker
	email     EmailChecker
	blocklist IBANBlocklist
}

func New(fees FeeChecker, bankData BankDataChecker, email EmailChecker, blocklist IBANBlocklist) *ApplicationValidator {
	return &ApplicationValidator{
		fees:      fees,
		bankData:  bankData,
		email:     email,
		blocklist: blocklist,
	}
}

// Validate returns the violations of req. A validation failure is never an error;
// errors are reserved for collaborators that could not answer (e.g. the blocklist
// backend being down).
func (v *ApplicationValidator) Validate(ctx context.Context, req *models.ApplyRequest) (validation.Result, error) {
	if req == nil {
		return validation.Result{}, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}

	var result validation.Result

	v.validateFee(req, &result)
	if err := v.validatePaymentType(ctx, req, &result); err != nil {
		return validation.Result{}, err
	}
	v.validateEmail(ctx, req, &result)
	validatePhoneNumber(req, &result)
	validateDateOfBirth(req, &result)
	validateApplicantType(req, &result)
	validateIdentity(req, &result)
	validateAddress(req, &result)
	validateMembershipType(req, &result)
	validateLengths(req, &result)

	return result, nil
}

func (v *ApplicationValidator) validateFee(req *models.ApplyRequest, result *validation.Result) {
	result.Merge(v.fees.Validate(
		payment.EuroFromCents(req.PaymentAmountInCents),
		req.PaymentIntervalInMonths,
		req.ApplicantType,
	))
}

func (v *ApplicationValidator) validatePaymentType(ctx context.Context, req *models.ApplyRequest, result *validation.Result) error {
	method := payment.MethodID(req.PaymentType)
	if !method.IsValid() {
		result.Add(SourcePaymentType, KindInvalidPaymentType)
		return nil
	}
	if method != payment.MethodDirectDebit {
		return nil
	}
	return v.validateBankData(ctx, req, result)
}

func (v *ApplicationValidator) validateBankData(ctx context.Context, req *models.ApplyRequest, result *validation.Result) error {
	bankData := req.BankData.ToBankData()
	result.Merge(v.bankData.Validate(bankData))

	if bankData.IBAN.IsEmpty() {
		return nil
	}
	blocked, err := v.blocklist.IsBlocked(ctx, bankData.IBAN)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "failed to check iban blocklist")
	}
	if blocked {
		result.Add(payment.SourceIBAN, KindIBANBlocked)
	}
	return nil
}

func (v *ApplicationValidator) validateEmail(ctx context.Context, req *models.ApplyRequest, result *validation.Result) {
	if req.EmailAddress == "" {
		result.Add(SourceApplicantEmail, validation.KindMissing)
		return
	}
	if !v.email.Validate(ctx, req.EmailAddress).IsSuccessful() {
		result.Add(SourceApplicantEmail, KindNotEmail)
	}
}

func validatePhoneNumber(req *models.ApplyRequest, result *validation.Result) {
	if req.PhoneNumber != "" && !phonePattern.MatchString(req.PhoneNumber) {
		result.Add(SourceApplicantPhone, KindNotPhoneNumber)
	}
}

func validateDateOfBirth(req *models.ApplyRequest, result *validation.Result) {
	if req.DateOfBirth == "" {
		return
	}
	if _, err := time.Parse(dateOfBirthLayout, req.DateOfBirth); err != nil {
		result.Add(SourceApplicantDateOfBirth, KindNotDate)
	}
}

// validateApplicantType reports an unknown applicant type. The person fields are
// still checked in that case.
func validateApplicantType(req *models.ApplyRequest, result *validation.Result) {
	if !req.ApplicantType.IsValid() {
		result.Add(SourceApplicantType, KindInvalidApplicantType)
	}
}

func validateIdentity(req *models.ApplyRequest, result *validation.Result) {
	if req.IsCompanyApplication() {
		requireField(req.CompanyName, SourceApplicantCompany, result)
		return
	}
	requireField(req.FirstName, SourceApplicantFirstName, result)
	requireField(req.LastName, SourceApplicantLastName, result)
	requireField(req.Salutation, SourceApplicantSalutation, result)
}

func validateAddress(req *models.ApplyRequest, result *validation.Result) {
	requireField(req.StreetAddress, SourceApplicantStreet, result)
	requireField(req.PostalCode, SourceApplicantPostalCode, result)
	requireField(req.City, SourceApplicantCity, result)
	requireField(req.CountryCode, SourceApplicantCountry, result)
}

func validateMembershipType(req *models.ApplyRequest, result *validation.Result) {
	if _, err := id.ParseMembershipType(req.MembershipType); err != nil {
		result.Add(SourceMembershipType, KindInvalidMembershipType)
	}
}

func validateLengths(req *models.ApplyRequest, result *validation.Result) {
	fields := map[validation.Source]string{
		SourceApplicantStreet:     req.StreetAddress,
		SourceApplicantPostalCode: req.PostalCode,
		SourceApplicantCity:       req.City,
		SourceApplicantCountry:    req.CountryCode,
		SourceApplicantEmail:      req.EmailAddress,
		SourceApplicantPhone:      req.PhoneNumber,
	}
	if req.IsCompanyApplication() {
		fields[SourceApplicantCompany] = req.CompanyName
	} else {
		fields[SourceApplicantSalutation] = req.Salutation
		fields[SourceApplicantTitle] = req.Title
		fields[SourceApplicantFirstName] = req.FirstName
		fields[SourceApplicantLastName] = req.LastName
	}

	for source, value := range fields {
		if !govalidator.StringLength(value, "0", strconv.Itoa(maxLengths[source])) {
			result.Add(source, validation.KindWrongLength)
		}
	}
}

func requireField(value string, source validation.Source, result *validation.Result) {
	if value == "" {
		result.Add(source, validation.KindMissing)
	}
}
