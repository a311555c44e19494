package commands

import (
	"context"
	"time"

	"rvmarket/internal/domain/booking"
	"rvmarket/internal/infra"
	"rvmarket/internal/pkg/clock"
	"rvmarket/internal/pkg/errs"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrListingNotFound     = errs.New("listing not found")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrOwnBookingForbidden = errs.New("cannot book own listing")
	ErrNotListingOwner     = errs.New("only the listing owner can decide a booking")
)

type CreateBookingRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

type CreateBookingResult struct {
	BookingID uuid.UUID
}

type BookingCommands interface {
	Create(ctx context.Context, listingID, hirerID uuid.UUID, req CreateBookingRequest) (*CreateBookingResult, error)
	Confirm(ctx context.Context, bookingID, actorID uuid.UUID) error
	Reject(ctx context.Context, bookingID, actorID uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

// Create runs the full conflict-resolution path: listing-level lock, snapshot
// read of active ranges, validation against the snapshot, then insert. All of
// it happens inside one transaction so no overlapping booking can commit
// between the read and the write.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, listingID, hirerID uuid.UUID, req CreateBookingRequest) (*CreateBookingResult, error) {
	listing, err := uc.uow.Reads().ListingByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrListingNotFound)
		}
		return nil, err
	}
	if listing.OwnerID == hirerID {
		return nil, ErrOwnBookingForbidden
	}

	candidate := booking.Candidate{Start: req.StartDate, End: req.EndDate}
	today := uc.clock.Now()

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Bookings().LockListingBookings(ctx, tx.DB(), listingID); derr != nil {
			return derr
		}

		ranges, derr := tx.Bookings().ActiveRangesByListing(ctx, tx.DB(), listingID)
		if derr != nil {
			return derr
		}

		if violations := booking.Validate(candidate, ranges, today); len(violations) > 0 {
			return &booking.ValidationError{Violations: violations}
		}

		dates := booking.NewDateRange(req.StartDate, req.EndDate)
		b := booking.NewBooking(listingID, hirerID, dates)

		id, derr := tx.Bookings().Create(ctx, tx.DB(), b)
		if derr != nil {
			// The exclusion constraint is the backstop for anything the
			// lock-then-validate path missed.
			if infra.IsKind(derr, infra.KindConflict) {
				return &booking.ValidationError{Violations: booking.Violations{booking.OverlapViolation()}}
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Confirm(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return uc.decide(ctx, bookingID, actorID, booking.StatusConfirmed)
}

func (uc *bookingUseCaseImpl) Reject(ctx context.Context, bookingID, actorID uuid.UUID) error {
	return uc.decide(ctx, bookingID, actorID, booking.StatusRejected)
}

func (uc *bookingUseCaseImpl) decide(ctx context.Context, bookingID, actorID uuid.UUID, next booking.Status) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Bookings().FindForUpdate(ctx, tx.DB(), bookingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrBookingNotFound)
			}
			return derr
		}
		if snap.ListingOwnerID != actorID {
			return ErrNotListingOwner
		}

		current, derr := booking.NewStatus(snap.Status)
		if derr != nil {
			return derr
		}
		if !current.CanTransitionTo(next) {
			return booking.ErrInvalidTransition
		}

		return tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, next)
	})
}
