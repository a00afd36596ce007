// Package store implements the document store backing all entity collections:
// one JSON document with three top-level arrays (users, surveys, responses)
// that is read, modified and rewritten as a whole on every mutating call.
package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"surveyforge/internal/domain"
	"surveyforge/internal/logger"
	"surveyforge/internal/util"

	"go.uber.org/zap"
)

// Document is the serialized store format. There is no versioning field;
// schema changes are not migrated.
type Document struct {
	Users     []domain.User           `json:"users"`
	Surveys   []domain.Survey         `json:"surveys"`
	Responses []domain.SurveyResponse `json:"responses"`
}

// Option configures a Store.
type Option func(*Store)

// WithLatency sets an artificial per-call delay simulating a remote API.
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// Store owns the canonical in-memory document and serializes every change
// back to its backend. A mutex makes each call's read-modify-write atomic;
// the original runtime relied on single-threaded scheduling for that.
type Store struct {
	mu      sync.Mutex
	backend Backend
	doc     *Document
	latency time.Duration
}

// Open loads the document from backend, seeding a fresh one when the backend
// is empty or holds an unparsable document. A corrupt document is discarded
// and re-seeded rather than failing.
func Open(ctx context.Context, backend Backend, opts ...Option) (*Store, error) {
	s := &Store{backend: backend}
	for _, opt := range opts {
		opt(s)
	}

	data, err := backend.Load(ctx)
	if err != nil {
		return nil, err
	}
	if data != nil {
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			logger.Get().Warn("Stored document is corrupt, re-seeding", zap.Error(err))
		} else {
			s.doc = &doc
			return s, nil
		}
	}

	s.doc = seedDocument()
	persisted, err := json.Marshal(s.doc)
	if err != nil {
		return nil, err
	}
	if err := backend.Save(ctx, persisted); err != nil {
		return nil, err
	}
	return s, nil
}

// seedDocument builds the initial document: one default admin user and empty
// survey/response collections.
func seedDocument() *Document {
	id := util.NewULID()
	admin := domain.User{
		ID:                id,
		Name:              "Jane Doe",
		Email:             "jane.doe@example.com",
		Role:              domain.RoleAdmin,
		ProfilePictureURL: "https://i.pravatar.cc/150?u=" + id,
		CreatedAt:         time.Now().UTC(),
	}
	return &Document{
		Users:     []domain.User{admin},
		Surveys:   []domain.Survey{},
		Responses: []domain.SurveyResponse{},
	}
}

// View runs fn against the document under the lock. fn must not retain or
// mutate the document; use Copy on anything returned to the caller.
func (s *Store) View(ctx context.Context, fn func(doc *Document) error) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.doc)
}

// Update runs fn against the document under the lock and, when fn succeeds,
// serializes the whole document back to the backend. The write is
// all-or-nothing per call: a failed fn leaves the document untouched in
// memory and on the backend.
func (s *Store) Update(ctx context.Context, fn func(doc *Document) error) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := Copy(*s.doc)
	if err != nil {
		return domain.NewInternalError("Failed to snapshot document", err)
	}
	if err := fn(&snapshot); err != nil {
		return err
	}
	data, err := json.Marshal(&snapshot)
	if err != nil {
		return domain.NewInternalError("Failed to serialize document", err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return domain.NewInternalError("Failed to persist document", err)
	}
	s.doc = &snapshot
	return nil
}

// wait applies the configured artificial latency, honoring ctx cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Copy returns an isolated deep copy of v via a JSON round trip, so callers
// mutating their copy cannot corrupt the store.
func Copy[T any](v T) (T, error) {
	var out T
	data, err := json.Marshal(v)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
