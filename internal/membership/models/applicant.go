package models

import (
	"strings"
	"time"
)

// ApplicantName is either a PersonName or a CompanyName.
type ApplicantName interface {
	FullName() string
	isApplicantName()
}

// PersonName is the name of a private applicant.
type PersonName struct {
	Salutation string
	Title      string
	FirstName  string
	LastName   string
}

// FullName joins title, first and last name, skipping empty parts.
func (n PersonName) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{n.Title, n.FirstName, n.LastName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func (PersonName) isApplicantName() {}

// CompanyName is the name of an applying organization.
type CompanyName struct {
	Name string
}

func (n CompanyName) FullName() string {
	return n.Name
}

func (CompanyName) isApplicantName() {}

// Address is the postal address of an applicant.
type Address struct {
	StreetAddress string
	PostalCode    string
	City          string
	CountryCode   string
}

// Applicant is the personal data of an application.
type Applicant struct {
	Name        ApplicantName
	Address     Address
	Email       string
	PhoneNumber string
	// DateOfBirth is nil when not given.
	DateOfBirth *time.Time
}

// IsCompany reports whether the applicant applied as a company.
func (a Applicant) IsCompany() bool {
	_, ok := a.Name.(CompanyName)
	return ok
}

// PersonName returns the person name, or false for company applicants.
func (a Applicant) PersonName() (PersonName, bool) {
	n, ok := a.Name.(PersonName)
	return n, ok
}
