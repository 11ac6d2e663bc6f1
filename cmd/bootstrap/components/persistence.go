package components

import (
	"context"
	"log/slog"

	"court-booking/internal/infra/audit"
	"court-booking/internal/infra/invoice"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/refdata"
	sqlc "court-booking/internal/infra/sqlc/generated"
	"court-booking/internal/infra/uow"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
	sideEffectModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking views
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		// Members
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MemberReadQueries)),
		),
		fx.Annotate(
			readstore.NewMemberReadStore,
			fx.As(new(queries.MemberViewRepo)),
		),
		// Reference data, cached
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReferenceReadQueries)),
		),
		fx.Annotate(
			readstore.NewReferenceReadStore,
			fx.As(new(refdata.Loader)),
		),
		fx.Annotate(
			NewReferenceDataStore,
			fx.As(new(shared.ReferenceDataStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork builds the per-transaction repositories itself.
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var sideEffectModule = fx.Module("persistence/sideeffects",
	fx.Provide(
		fx.Annotate(
			NewAuditDispatcher,
			fx.As(new(shared.AuditSink)),
		),
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(invoice.InvoiceQueries)),
		),
		fx.Annotate(
			invoice.NewService,
			fx.As(new(shared.InvoiceService)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewReferenceDataStore(loader refdata.Loader, cache refdata.Cache, cfg config.Config, logger *slog.Logger) *refdata.Store {
	return refdata.NewStore(loader, cache, cfg.Booking.ReferenceCacheTTL, logger)
}

func NewAuditDispatcher(lc fx.Lifecycle, q *sqlc.Queries, db sqlc.DBTX, logger *slog.Logger) *audit.Dispatcher {
	d := audit.NewDispatcher(q, db, logger, 0)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return d.Close(ctx)
		},
	})
	return d
}
