package service

import (
	"membership/internal/membership/models"
	"membership/pkg/platform/validation"
)

// ApplyResponse is either a *SuccessResponse or a *FailureResponse.
type ApplyResponse interface {
	IsSuccessful() bool
	isApplyResponse()
}

// SuccessResponse carries the stored application and the tokens granting later
// access to it.
type SuccessResponse struct {
	AccessToken string
	UpdateToken string
	Application *models.Application
}

func (*SuccessResponse) IsSuccessful() bool { return true }
func (*SuccessResponse) isApplyResponse()   {}

// FailureResponse carries the violations of a rejected request.
type FailureResponse struct {
	ValidationResult validation.Result
}

func (*FailureResponse) IsSuccessful() bool { return false }
func (*FailureResponse) isApplyResponse()   {}
