//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for use case tests. Write transactions
// are serialized store-wide, a coarser version of the court row lock, and commit atomically:
// a callback that returns an error leaves no trace.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/maintenance"
	"court-booking/internal/domain/matchrequest"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	courts     map[uuid.UUID]*court.Court
	facilities map[uuid.UUID]court.Facility
	sports     map[uuid.UUID]court.Sport
	bookings   map[uuid.UUID]booking.Snapshot
	blocks     map[uuid.UUID]maintenance.Snapshot
	requests   map[uuid.UUID]matchrequest.Request
	members    map[uuid.UUID]user.Member
	profiles   []pricing.Profile
}

func newState() *state {
	return &state{
		courts:     make(map[uuid.UUID]*court.Court),
		facilities: make(map[uuid.UUID]court.Facility),
		sports:     make(map[uuid.UUID]court.Sport),
		bookings:   make(map[uuid.UUID]booking.Snapshot),
		blocks:     make(map[uuid.UUID]maintenance.Snapshot),
		requests:   make(map[uuid.UUID]matchrequest.Request),
		members:    make(map[uuid.UUID]user.Member),
	}
}

func (s *state) clone() *state {
	c := newState()
	for k, v := range s.courts {
		c.courts[k] = v
	}
	for k, v := range s.facilities {
		c.facilities[k] = v
	}
	for k, v := range s.sports {
		c.sports[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	for k, v := range s.blocks {
		c.blocks[k] = v
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.members {
		c.members[k] = v
	}
	c.profiles = append(c.profiles, s.profiles...)
	return c
}

type Store struct {
	writeMu sync.Mutex

	mu        sync.RWMutex
	committed *state
	commits   int
}

func New() *Store {
	return &Store{committed: newState()}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.RLock()
	work := s.committed.clone()
	s.mu.RUnlock()

	if err := fn(ctx, &tx{st: work}); err != nil {
		return err
	}

	s.mu.Lock()
	s.committed = work
	s.commits++
	s.mu.Unlock()
	return nil
}

func (s *Store) ReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.RLock()
	snapshot := s.committed.clone()
	s.mu.RUnlock()
	return fn(ctx, &tx{st: snapshot, readOnly: true})
}

// Commits counts successful write transactions.
func (s *Store) Commits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.commits
}

func (s *Store) seed(fn func(st *state)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.committed)
}

func (s *Store) AddFacility(f court.Facility) {
	s.seed(func(st *state) { st.facilities[f.ID] = f })
}

func (s *Store) AddSport(sp court.Sport) {
	s.seed(func(st *state) { st.sports[sp.ID] = sp })
}

// AddCourt also registers the court's facility and sport when they are missing.
func (s *Store) AddCourt(c *court.Court) {
	s.seed(func(st *state) {
		st.courts[c.ID()] = c
		if _, ok := st.facilities[c.FacilityID()]; !ok {
			st.facilities[c.FacilityID()] = court.Facility{ID: c.FacilityID(), Name: "Facility", TimeZone: "UTC"}
		}
		if _, ok := st.sports[c.SportID()]; !ok {
			st.sports[c.SportID()] = court.Sport{ID: c.SportID(), Name: "Sport"}
		}
	})
}

func (s *Store) AddMember(m user.Member) {
	s.seed(func(st *state) { st.members[m.ID] = m })
}

func (s *Store) AddProfile(p pricing.Profile) {
	s.seed(func(st *state) { st.profiles = append(st.profiles, p) })
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.seed(func(st *state) { st.bookings[b.ID()] = b.Snapshot() })
}

func (s *Store) AddBlock(b *maintenance.Block) {
	s.seed(func(st *state) { st.blocks[b.ID()] = b.Snapshot() })
}

func (s *Store) AddMatchRequest(r matchrequest.Request) {
	s.seed(func(st *state) { st.requests[r.ID] = r })
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.committed.bookings[id]
	if !ok {
		return nil, false
	}
	return booking.Reconstruct(snap), true
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*booking.Booking, 0, len(s.committed.bookings))
	for _, snap := range s.committed.bookings {
		out = append(out, booking.Reconstruct(snap))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out
}

func (s *Store) Block(id uuid.UUID) (*maintenance.Block, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.committed.blocks[id]
	if !ok {
		return nil, false
	}
	return maintenance.Reconstruct(snap), true
}

func (s *Store) MatchRequest(id uuid.UUID) (matchrequest.Request, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.committed.requests[id]
	return r, ok
}

func (s *Store) CourtStatus(id uuid.UUID) court.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.committed.courts[id]; ok {
		return c.Status()
	}
	return ""
}

// SetBookingStatus overwrites a stored booking's status outside any transaction, standing
// in for a writer the code under test does not see.
func (s *Store) SetBookingStatus(id uuid.UUID, status booking.Status) {
	s.seed(func(st *state) {
		snap := st.bookings[id]
		snap.Status = status
		st.bookings[id] = snap
	})
}

// Court, Facility, Sport and InvalidateCourt make the store a shared.ReferenceDataStore
// over committed state.

func (s *Store) Court(_ context.Context, id uuid.UUID) (*court.Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.committed.courts[id]
	if !ok {
		return nil, errs.Mark(notFound("court"), errs.ErrInvalidResource)
	}
	return c, nil
}

func (s *Store) Facility(_ context.Context, id uuid.UUID) (*court.Facility, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	f, ok := s.committed.facilities[id]
	if !ok {
		return nil, errs.Mark(notFound("facility"), errs.ErrInvalidResource)
	}
	return &f, nil
}

func (s *Store) Sport(_ context.Context, id uuid.UUID) (*court.Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.committed.sports[id]
	if !ok {
		return nil, errs.Mark(notFound("sport"), errs.ErrInvalidResource)
	}
	return &sp, nil
}

func (s *Store) InvalidateCourt(context.Context, uuid.UUID) {}

func notFound(what string) error {
	return infra.NewRepoErr(infra.KindNotFound, what+" not found", nil)
}

type tx struct {
	st       *state
	readOnly bool
}

func (t *tx) Courts() shared.CourtRepository               { return courtRepo{t} }
func (t *tx) Bookings() shared.BookingRepository           { return bookingRepo{t} }
func (t *tx) Maintenance() shared.MaintenanceRepository    { return maintenanceRepo{t} }
func (t *tx) MatchRequests() shared.MatchRequestRepository { return matchRequestRepo{t} }
func (t *tx) Reads() shared.CommandReads                   { return reads{t} }

func (t *tx) write() error {
	if t.readOnly {
		return infra.NewRepoErr(infra.KindDBFailure, "write in read-only transaction", nil)
	}
	return nil
}

type courtRepo struct{ *tx }

func (r courtRepo) Lock(_ context.Context, id uuid.UUID) (*court.Court, error) {
	c, ok := r.st.courts[id]
	if !ok {
		return nil, notFound("court")
	}
	return c, nil
}

func (r courtRepo) UpdateStatus(_ context.Context, id uuid.UUID, status court.Status, at time.Time) error {
	if err := r.write(); err != nil {
		return err
	}
	c, ok := r.st.courts[id]
	if !ok {
		return notFound("court")
	}
	r.st.courts[id] = court.Reconstruct(c.ID(), c.FacilityID(), c.SportID(), c.Name(), status, at)
	return nil
}

type bookingRepo struct{ *tx }

// Create enforces the same no-overlap rule as the bookings exclusion constraint.
func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.write(); err != nil {
		return err
	}
	if b.Status().BlocksTimeline() {
		for _, other := range r.st.bookings {
			if other.CourtID == b.CourtID() && other.Status.BlocksTimeline() && other.Range.Overlaps(b.Range()) {
				return infra.NewRepoErr(infra.KindConflict, "bookings_no_overlap", nil)
			}
		}
	}
	r.st.bookings[b.ID()] = b.Snapshot()
	return nil
}

func (r bookingRepo) Transition(_ context.Context, b *booking.Booking, from booking.Status) (bool, error) {
	if err := r.write(); err != nil {
		return false, err
	}
	stored, ok := r.st.bookings[b.ID()]
	if !ok || stored.Status != from {
		return false, nil
	}
	r.st.bookings[b.ID()] = b.Snapshot()
	return true, nil
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	snap, ok := r.st.bookings[id]
	if !ok {
		return nil, notFound("booking")
	}
	return booking.Reconstruct(snap), nil
}

func (r bookingRepo) FindOverlapping(_ context.Context, courtID uuid.UUID, tr timerange.TimeRange, exclude *uuid.UUID) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, snap := range r.st.bookings {
		if snap.CourtID != courtID || !snap.Status.BlocksTimeline() || !snap.Range.Overlaps(tr) {
			continue
		}
		if exclude != nil && snap.ID == *exclude {
			continue
		}
		out = append(out, booking.Reconstruct(snap))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Range().Start().Before(out[j].Range().Start()) })
	return out, nil
}

func (r bookingRepo) ListStalePending(_ context.Context, cutoff time.Time, limit int) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, snap := range r.st.bookings {
		if snap.Status == booking.StatusPending && !snap.Range.Start().After(cutoff) {
			out = append(out, booking.Reconstruct(snap))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Range().Start().Before(out[j].Range().Start()) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type maintenanceRepo struct{ *tx }

func (r maintenanceRepo) Create(_ context.Context, b *maintenance.Block) error {
	if err := r.write(); err != nil {
		return err
	}
	r.st.blocks[b.ID()] = b.Snapshot()
	return nil
}

func (r maintenanceRepo) Update(_ context.Context, b *maintenance.Block) error {
	if err := r.write(); err != nil {
		return err
	}
	if _, ok := r.st.blocks[b.ID()]; !ok {
		return notFound("maintenance block")
	}
	r.st.blocks[b.ID()] = b.Snapshot()
	return nil
}

func (r maintenanceRepo) FindByID(_ context.Context, id uuid.UUID) (*maintenance.Block, error) {
	snap, ok := r.st.blocks[id]
	if !ok {
		return nil, notFound("maintenance block")
	}
	return maintenance.Reconstruct(snap), nil
}

func (r maintenanceRepo) FindOverlapping(_ context.Context, courtID uuid.UUID, tr timerange.TimeRange, exclude *uuid.UUID) ([]*maintenance.Block, error) {
	var out []*maintenance.Block
	for _, snap := range r.st.blocks {
		if snap.CourtID != courtID || !snap.Status.BlocksTimeline() || !snap.Range.Overlaps(tr) {
			continue
		}
		if exclude != nil && snap.ID == *exclude {
			continue
		}
		out = append(out, maintenance.Reconstruct(snap))
	}
	return out, nil
}

type matchRequestRepo struct{ *tx }

func (r matchRequestRepo) FindByID(_ context.Context, id uuid.UUID) (*matchrequest.Request, error) {
	req, ok := r.st.requests[id]
	if !ok {
		return nil, notFound("match request")
	}
	return &req, nil
}

func (r matchRequestRepo) FindOpenOverlapping(_ context.Context, courtID uuid.UUID, tr timerange.TimeRange) ([]*matchrequest.Request, error) {
	var out []*matchrequest.Request
	for _, req := range r.st.requests {
		if req.CourtID == courtID && req.IsOpen() && req.Desired.Overlaps(tr) {
			req := req
			out = append(out, &req)
		}
	}
	return out, nil
}

func (r matchRequestRepo) Save(_ context.Context, req *matchrequest.Request) error {
	if err := r.write(); err != nil {
		return err
	}
	r.st.requests[req.ID] = *req
	return nil
}

type reads struct{ *tx }

func (r reads) ProfilesFor(_ context.Context, facilityID, sportID uuid.UUID) ([]pricing.Profile, error) {
	var out []pricing.Profile
	for _, p := range r.st.profiles {
		if p.FacilityID == facilityID && p.SportID == sportID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r reads) Member(_ context.Context, id uuid.UUID) (*user.Member, error) {
	m, ok := r.st.members[id]
	if !ok {
		return nil, notFound("user")
	}
	return &m, nil
}
