package store

import (
	"context"
	"sync"

	"membership/internal/membership/models"
	id "membership/pkg/domain"
	"membership/pkg/platform/sentinel"
	"membership/pkg/requestcontext"
)

// InMemoryStore keeps applications in process memory. It backs tests and local
// CLI runs without a database.
type InMemoryStore struct {
	atomicMu     sync.Mutex
	mu           sync.RWMutex
	applications map[id.ApplicationID]models.ApplicationState
	tracking     map[id.ApplicationID]models.TrackingInfo
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		applications: make(map[id.ApplicationID]models.ApplicationState),
		tracking:     make(map[id.ApplicationID]models.TrackingInfo),
	}
}

// Atomic serializes fn against other Atomic calls. It must not be nested.
func (s *InMemoryStore) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	s.atomicMu.Lock()
	defer s.atomicMu.Unlock()
	return fn(ctx)
}

// StoreApplication inserts or updates app. Updating an unknown id yields
// sentinel.ErrNotFound.
func (s *InMemoryStore) StoreApplication(ctx context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if app.IsPersisted() {
		if _, ok := s.applications[app.ID]; !ok {
			return sentinel.ErrNotFound
		}
		s.applications[app.ID] = app.State()
		return nil
	}

	if app.CreatedAt.IsZero() {
		app.CreatedAt = requestcontext.Now(ctx)
	}
	if err := app.AssignID(id.NewApplicationID()); err != nil {
		return err
	}
	s.applications[app.ID] = app.State()
	return nil
}

// GetApplicationByID returns a fresh copy of the stored application.
func (s *InMemoryStore) GetApplicationByID(_ context.Context, applicationID id.ApplicationID) (*models.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.applications[applicationID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if state.Anonymized {
		return nil, sentinel.ErrAnonymized
	}
	return models.RestoreApplication(state), nil
}

func (s *InMemoryStore) TrackApplication(_ context.Context, applicationID id.ApplicationID, info models.TrackingInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.applications[applicationID]; !ok {
		return sentinel.ErrNotFound
	}
	s.tracking[applicationID] = info
	return nil
}

// Tracking returns the recorded attribution of an application.
func (s *InMemoryStore) Tracking(applicationID id.ApplicationID) (models.TrackingInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	info, ok := s.tracking[applicationID]
	return info, ok
}

// Count returns the number of stored applications.
func (s *InMemoryStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.applications)
}
