package refdata

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"court-booking/internal/domain/court"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Loader reads reference data from its source of truth.
type Loader interface {
	Court(ctx context.Context, id uuid.UUID) (*court.Court, error)
	Facility(ctx context.Context, id uuid.UUID) (*court.Facility, error)
	Sport(ctx context.Context, id uuid.UUID) (*court.Sport, error)
}

// Store is a read-through cache over a Loader. Cache failures degrade to direct loads.
type Store struct {
	loader Loader
	cache  Cache
	ttl    time.Duration
	logger *slog.Logger
}

func NewStore(loader Loader, cache Cache, ttl time.Duration, logger *slog.Logger) *Store {
	return &Store{
		loader: loader,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

type courtEntry struct {
	ID         uuid.UUID    `json:"id"`
	FacilityID uuid.UUID    `json:"facilityId"`
	SportID    uuid.UUID    `json:"sportId"`
	Name       string       `json:"name"`
	Status     court.Status `json:"status"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func courtKey(id uuid.UUID) string    { return "court:" + id.String() }
func facilityKey(id uuid.UUID) string { return "facility:" + id.String() }
func sportKey(id uuid.UUID) string    { return "sport:" + id.String() }

func (s *Store) Court(ctx context.Context, id uuid.UUID) (*court.Court, error) {
	var e courtEntry
	if s.fromCache(ctx, courtKey(id), &e) {
		return court.Reconstruct(e.ID, e.FacilityID, e.SportID, e.Name, e.Status, e.UpdatedAt), nil
	}

	c, err := s.loader.Court(ctx, id)
	if err != nil {
		return nil, unknownAsInvalid(err)
	}
	s.toCache(ctx, courtKey(id), courtEntry{
		ID:         c.ID(),
		FacilityID: c.FacilityID(),
		SportID:    c.SportID(),
		Name:       c.Name(),
		Status:     c.Status(),
		UpdatedAt:  c.UpdatedAt(),
	})
	return c, nil
}

func (s *Store) Facility(ctx context.Context, id uuid.UUID) (*court.Facility, error) {
	var f court.Facility
	if s.fromCache(ctx, facilityKey(id), &f) {
		return &f, nil
	}

	loaded, err := s.loader.Facility(ctx, id)
	if err != nil {
		return nil, unknownAsInvalid(err)
	}
	s.toCache(ctx, facilityKey(id), loaded)
	return loaded, nil
}

func (s *Store) Sport(ctx context.Context, id uuid.UUID) (*court.Sport, error) {
	var sp court.Sport
	if s.fromCache(ctx, sportKey(id), &sp) {
		return &sp, nil
	}

	loaded, err := s.loader.Sport(ctx, id)
	if err != nil {
		return nil, unknownAsInvalid(err)
	}
	s.toCache(ctx, sportKey(id), loaded)
	return loaded, nil
}

func (s *Store) InvalidateCourt(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, courtKey(id)); err != nil {
		s.logger.WarnContext(ctx, "failed to invalidate court cache", "court_id", id, "error", err.Error())
	}
}

func (s *Store) fromCache(ctx context.Context, key string, dst any) bool {
	if s.ttl <= 0 {
		return false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.WarnContext(ctx, "reference cache read failed", "key", key, "error", err.Error())
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.logger.WarnContext(ctx, "dropping undecodable cache entry", "key", key, "error", err.Error())
		_ = s.cache.Delete(ctx, key)
		return false
	}
	return true
}

func (s *Store) toCache(ctx context.Context, key string, v any) {
	if s.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.logger.WarnContext(ctx, "reference cache write failed", "key", key, "error", err.Error())
	}
}

func unknownAsInvalid(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrInvalidResource)
	}
	return err
}
