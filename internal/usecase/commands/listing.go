package commands

import (
	"context"
	"time"

	"rvmarket/internal/domain/listing"
	"rvmarket/internal/infra"
	"rvmarket/internal/pkg/errs"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotOwner = errs.New("listing not owned by user")

type CreateListingRequest struct {
	Title       string
	Description string
	Location    string
	PriceCents  int64
}

type UpdateListingRequest struct {
	Title       string
	Description string
	Location    string
	PriceCents  int64
}

type CreateListingResult struct {
	ListingID uuid.UUID
}

type ListingCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateListingRequest) (*CreateListingResult, error)
	Update(ctx context.Context, listingID, actorID uuid.UUID, req UpdateListingRequest) error
	Delete(ctx context.Context, listingID, actorID uuid.UUID) error
}

type listingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewListingUseCase(uow shared.UnitOfWork) ListingCommands {
	return &listingUseCaseImpl{uow: uow}
}

func (uc *listingUseCaseImpl) Create(ctx context.Context, ownerID uuid.UUID, req CreateListingRequest) (*CreateListingResult, error) {
	l, err := listing.NewListing(ownerID, req.Title, req.Description, req.Location, req.PriceCents)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Listings().Create(ctx, tx.DB(), l)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &CreateListingResult{ListingID: createdID}, nil
}

func (uc *listingUseCaseImpl) Update(ctx context.Context, listingID, actorID uuid.UUID, req UpdateListingRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrListingNotFound)
			}
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrNotOwner
		}

		l, derr := listing.NewListing(snap.OwnerID, req.Title, req.Description, req.Location, req.PriceCents)
		if derr != nil {
			return derr
		}

		updated := listing.ReconstructListing(
			listingID, snap.OwnerID,
			l.Title(), l.Description(), l.Location(), l.PriceCents(),
			time.Time{}, time.Time{},
		)
		return tx.Listings().Update(ctx, tx.DB(), updated)
	})
}

func (uc *listingUseCaseImpl) Delete(ctx context.Context, listingID, actorID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ListingByID(ctx, listingID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrListingNotFound)
			}
			return derr
		}
		if snap.OwnerID != actorID {
			return ErrNotOwner
		}
		return tx.Listings().Delete(ctx, tx.DB(), listingID)
	})
}
