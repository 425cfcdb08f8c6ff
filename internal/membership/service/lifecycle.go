package service

import (
	"context"
	"errors"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
	dErrors "membership/pkg/domain-errors"
	"membership/pkg/platform/sentinel"
)

// GetApplication loads an application for the holder of its access token.
//
// Errors: CodeUnauthorized for a bad token, CodeNotFound for unknown ids,
// CodeAnonymized when the application was anonymized.
func (s *Service) GetApplication(ctx context.Context, applicationID id.ApplicationID, accessToken string) (*models.Application, error) {
	if err := s.authorize(ctx, applicationID, accessToken, false); err != nil {
		return nil, err
	}
	app, err := s.load(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	if app.IsAnonymized() {
		return nil, dErrors.Wrap(sentinel.ErrAnonymized, dErrors.CodeAnonymized, "tried to access an anonymized application")
	}
	return app, nil
}

// CancelApplication cancels an application on behalf of the holder of its update token.
func (s *Service) CancelApplication(ctx context.Context, applicationID id.ApplicationID, updateToken string) (*models.Application, error) {
	if err := s.authorize(ctx, applicationID, updateToken, true); err != nil {
		return nil, err
	}
	var app *models.Application
	err := s.atomic(ctx, func(ctx context.Context) error {
		var err error
		if app, err = s.load(ctx, applicationID); err != nil {
			return err
		}
		if err := app.Cancel(); err != nil {
			return err
		}
		if err := s.repository.StoreApplication(ctx, app); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store cancelled application")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(ctx, "membership application cancelled", "application_id", applicationID.String())
	return app, nil
}

// AnonymizeApplication scrubs the personal data of an application. It is an
// operator action and needs no token.
func (s *Service) AnonymizeApplication(ctx context.Context, applicationID id.ApplicationID) error {
	err := s.atomic(ctx, func(ctx context.Context) error {
		app, err := s.load(ctx, applicationID)
		if err != nil {
			return err
		}
		if err := app.Anonymize(); err != nil {
			return err
		}
		if err := s.repository.StoreApplication(ctx, app); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to store anonymized application")
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.logInfo(ctx, "membership application anonymized", "application_id", applicationID.String())
	return nil
}

// atomic runs fn through the transactor when one is configured.
func (s *Service) atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.transactor == nil {
		return fn(ctx)
	}
	if err := s.transactor.Atomic(ctx, fn); err != nil {
		return ensureCode(err, "application update failed")
	}
	return nil
}

func (s *Service) authorize(ctx context.Context, applicationID id.ApplicationID, token string, modify bool) error {
	if s.authorizer == nil {
		return dErrors.New(dErrors.CodeInternal, "authorizer is not configured")
	}
	var allowed bool
	if modify {
		allowed = s.authorizer.CanModifyApplication(ctx, applicationID, token)
	} else {
		allowed = s.authorizer.CanAccessApplication(ctx, applicationID, token)
	}
	if !allowed {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid application token")
	}
	return nil
}

func (s *Service) load(ctx context.Context, applicationID id.ApplicationID) (*models.Application, error) {
	app, err := s.repository.GetApplicationByID(ctx, applicationID)
	switch {
	case err == nil:
		return app, nil
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.New(dErrors.CodeNotFound, "application not found")
	case errors.Is(err, sentinel.ErrAnonymized):
		return nil, dErrors.Wrap(err, dErrors.CodeAnonymized, "tried to access an anonymized application")
	default:
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load application")
	}
}
