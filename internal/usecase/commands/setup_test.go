//go:build unit

package commands_test

import (
	"io"
	"log/slog"
	"time"

	"court-booking/internal/domain/booking"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/user"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/shared"
	"court-booking/tests/common/builder"
	"court-booking/tests/common/memstore"

	"github.com/google/uuid"
)

var anchor = builder.At(2025, time.June, 2, 9, 0)

const pendingTimeout = 10 * time.Minute

type fixture struct {
	store    *memstore.Store
	effects  *memstore.Recorder
	clock    *clock.MockClock
	court    *builder.CourtBuilder
	customer user.Member
	staff    user.Member
	admin    user.Member

	bookings    commands.BookingCommands
	maintenance commands.MaintenanceCommands
	courts      commands.CourtCommands
}

func newFixture() *fixture {
	store := memstore.New()
	rec := memstore.NewRecorder()
	clk := clock.NewMockClock(anchor)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cb := builder.NewCourtBuilder()
	store.AddCourt(cb.BuildDomain())
	store.AddFacility(court.Facility{ID: cb.FacilityID, Name: "Riverside", TimeZone: "UTC"})
	store.AddProfile(builder.NewProfileBuilder().ForCourt(cb).BuildDomain())

	facilityID := cb.FacilityID
	f := &fixture{
		store:    store,
		effects:  rec,
		clock:    clk,
		court:    cb,
		customer: user.Member{ID: uuid.New(), Name: "Linh", Role: user.RoleCustomer},
		staff:    user.Member{ID: uuid.New(), Name: "Minh", Role: user.RoleStaff, FacilityID: &facilityID},
		admin:    user.Member{ID: uuid.New(), Name: "Root", Role: user.RoleAdmin},
	}
	store.AddMember(f.customer)
	store.AddMember(f.staff)
	store.AddMember(f.admin)

	effects := shared.NewSideEffects(rec, rec, rec, logger)
	calc := pricing.NewDefaultCalculator()
	resolver := shared.NewPricingResolver(store, clk, "VND", time.UTC)
	factory := booking.NewFactory(clk, calc)

	f.bookings = commands.NewBookingCommands(store, resolver, factory, effects, clk, logger,
		commands.BookingSettings{PendingTimeout: pendingTimeout})
	f.maintenance = commands.NewMaintenanceCommands(store, effects, clk, logger)
	f.courts = commands.NewCourtCommands(store, store, effects, clk, logger)
	return f
}

func (f *fixture) customerActor() shared.Actor {
	return shared.Actor{UserID: f.customer.ID, Role: user.RoleCustomer}
}

func (f *fixture) staffActor() shared.Actor {
	return shared.Actor{UserID: f.staff.ID, Role: user.RoleStaff}
}

func (f *fixture) adminActor() shared.Actor {
	return shared.Actor{UserID: f.admin.ID, Role: user.RoleAdmin}
}

// addCustomer registers another customer and returns their actor.
func (f *fixture) addCustomer() shared.Actor {
	m := user.Member{ID: uuid.New(), Role: user.RoleCustomer}
	f.store.AddMember(m)
	return shared.Actor{UserID: m.ID, Role: user.RoleCustomer}
}

func (f *fixture) input(start time.Time, d time.Duration) commands.CreateBookingInput {
	return commands.CreateBookingInput{
		CourtID: f.court.ID,
		Range:   builder.Range(start, d),
	}
}
