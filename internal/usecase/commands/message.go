package commands

import (
	"context"

	"rvmarket/internal/domain/message"
	"rvmarket/internal/infra"
	"rvmarket/internal/pkg/errs"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

type PostMessageRequest struct {
	Content string
}

type PostMessageResult struct {
	MessageID uuid.UUID
}

type MessageCommands interface {
	Post(ctx context.Context, listingID, authorID uuid.UUID, req PostMessageRequest) (*PostMessageResult, error)
}

type messageUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewMessageUseCase(uow shared.UnitOfWork) MessageCommands {
	return &messageUseCaseImpl{uow: uow}
}

func (uc *messageUseCaseImpl) Post(ctx context.Context, listingID, authorID uuid.UUID, req PostMessageRequest) (*PostMessageResult, error) {
	m, err := message.NewMessage(listingID, authorID, req.Content)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().ListingByID(ctx, listingID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrListingNotFound)
			}
			return derr
		}

		id, derr := tx.Messages().Create(ctx, tx.DB(), m)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &PostMessageResult{MessageID: createdID}, nil
}
