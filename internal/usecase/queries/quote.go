package queries

import (
	"context"

	"court-booking/internal/domain/pricing"
	"court-booking/internal/domain/timerange"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type QuoteInput struct {
	FacilityID uuid.UUID
	SportID    uuid.UUID
	CourtID    uuid.UUID
	Range      timerange.TimeRange
	Currency   string
	// UserID selects the membership tier; nil quotes without a discount.
	UserID *uuid.UUID
}

type QuoteQueries interface {
	// Preview computes a quote without persisting it.
	Preview(ctx context.Context, in QuoteInput) (*pricing.Quote, error)
}

type quoteQueries struct {
	uow        shared.UnitOfWork
	refs       shared.ReferenceDataStore
	resolver   *shared.PricingResolver
	calculator pricing.Calculator
}

func NewQuoteQueries(uow shared.UnitOfWork, refs shared.ReferenceDataStore, resolver *shared.PricingResolver, calc pricing.Calculator) QuoteQueries {
	return &quoteQueries{uow: uow, refs: refs, resolver: resolver, calculator: calc}
}

func (q *quoteQueries) Preview(ctx context.Context, in QuoteInput) (*pricing.Quote, error) {
	if in.Range.IsZero() {
		return nil, errs.ErrInvalidRange
	}
	c, err := q.refs.Court(ctx, in.CourtID)
	if err != nil {
		return nil, err
	}
	if (in.FacilityID != uuid.Nil && c.FacilityID() != in.FacilityID) || (in.SportID != uuid.Nil && c.SportID() != in.SportID) {
		return nil, errs.Mark(errs.New("court does not belong to facility and sport"), errs.ErrInvalidResource)
	}

	var quote pricing.Quote
	err = q.uow.ReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		pc, err := q.resolver.Resolve(ctx, tx.Reads(), shared.PricingRequest{
			Court:      c,
			CustomerID: in.UserID,
			Currency:   in.Currency,
		})
		if err != nil {
			return err
		}
		quote = q.calculator.Quote(pc.Input(in.Range))
		return nil
	})
	if err != nil {
		return nil, shared.Classify(err)
	}
	return &quote, nil
}
