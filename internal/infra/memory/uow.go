package memory

import (
	"context"
	"sync"
	"time"

	"rvmarket/internal/domain/booking"
	"rvmarket/internal/domain/listing"
	"rvmarket/internal/domain/message"
	"rvmarket/internal/domain/user"
	"rvmarket/internal/infra"
	"rvmarket/internal/infra/db"
	"rvmarket/internal/pkg/errs"
	"rvmarket/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errs.New("no rows in result set")

type UnitOfWork struct {
	store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := &memTx{store: u.store, held: make(map[uuid.UUID]*sync.Mutex)}
	err := fn(ctx, tx)
	if err == nil {
		tx.commit()
	}
	tx.releaseLocks()
	return err
}

func (u *UnitOfWork) WithDB(ctx context.Context, fn func(ctx context.Context, dbx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *UnitOfWork) Reads() shared.CommandReads {
	return &memReads{store: u.store, tx: nil}
}

// memTx stages writes and applies them only on commit, so a failed
// transaction leaves no trace, matching Postgres rollback semantics.
type memTx struct {
	store *Store
	held  map[uuid.UUID]*sync.Mutex

	stagedBookings map[uuid.UUID]bookingRecord
	stagedStatus   map[uuid.UUID]string
	stagedListings map[uuid.UUID]listingRecord
	deletedListing map[uuid.UUID]bool
	stagedMessages map[uuid.UUID]messageRecord
	stagedUsers    map[uuid.UUID]userRecord
}

func (t *memTx) commit() {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for id, rec := range t.stagedUsers {
		t.store.users[id] = rec
	}
	for id, rec := range t.stagedListings {
		t.store.listings[id] = rec
	}
	for id := range t.deletedListing {
		delete(t.store.listings, id)
	}
	for id, rec := range t.stagedBookings {
		t.store.bookings[id] = rec
	}
	for id, status := range t.stagedStatus {
		if rec, ok := t.store.bookings[id]; ok {
			rec.Status = status
			t.store.bookings[id] = rec
		}
	}
	for id, rec := range t.stagedMessages {
		t.store.messages[id] = rec
	}
}

func (t *memTx) releaseLocks() {
	for _, lock := range t.held {
		lock.Unlock()
	}
	t.held = make(map[uuid.UUID]*sync.Mutex)
}

func (t *memTx) DB() db.DBTX { return nil }

func (t *memTx) Bookings() shared.BookingRepository { return &memBookingRepo{tx: t} }
func (t *memTx) Listings() shared.ListingRepository { return &memListingRepo{tx: t} }
func (t *memTx) Messages() shared.MessageRepository { return &memMessageRepo{tx: t} }
func (t *memTx) Users() shared.UserRepository       { return &memUserRepo{tx: t} }
func (t *memTx) Reads() shared.CommandReads         { return &memReads{store: t.store, tx: t} }

type memBookingRepo struct {
	tx *memTx
}

func (r *memBookingRepo) LockListingBookings(ctx context.Context, _ db.DBTX, listingID uuid.UUID) error {
	if _, ok := r.tx.held[listingID]; ok {
		return nil
	}
	lock := r.tx.store.listingLock(listingID)
	lock.Lock()
	r.tx.held[listingID] = lock
	return nil
}

func (r *memBookingRepo) ActiveRangesByListing(ctx context.Context, _ db.DBTX, listingID uuid.UUID) ([]booking.ActiveRange, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()

	var ranges []booking.ActiveRange
	appendActive := func(rec bookingRecord) {
		if rec.ListingID != listingID {
			return
		}
		status := rec.Status
		if s, ok := r.tx.stagedStatus[rec.ID]; ok {
			status = s
		}
		if status == string(booking.StatusPending) || status == string(booking.StatusConfirmed) {
			ranges = append(ranges, booking.ActiveRange{Start: rec.StartDate, End: rec.EndDate})
		}
	}
	for _, rec := range r.tx.store.bookings {
		appendActive(rec)
	}
	for _, rec := range r.tx.stagedBookings {
		appendActive(rec)
	}
	return ranges, nil
}

func (r *memBookingRepo) Create(ctx context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.tx.stagedBookings == nil {
		r.tx.stagedBookings = make(map[uuid.UUID]bookingRecord)
	}
	rec := bookingRecord{
		ID:        b.ID(),
		ListingID: b.ListingID(),
		HirerID:   b.HirerID(),
		StartDate: b.Dates().Start(),
		EndDate:   b.Dates().End(),
		Status:    string(b.Status()),
		CreatedAt: time.Now(),
	}
	r.tx.stagedBookings[rec.ID] = rec
	return rec.ID, nil
}

func (r *memBookingRepo) FindForUpdate(ctx context.Context, _ db.DBTX, id uuid.UUID) (*shared.BookingSnapshot, error) {
	r.tx.store.mu.Lock()
	defer r.tx.store.mu.Unlock()

	rec, ok := r.tx.store.bookings[id]
	if !ok {
		if staged, sok := r.tx.stagedBookings[id]; sok {
			rec = staged
		} else {
			return nil, infra.WrapRepoErr("booking not found", errNoRows, infra.KindNotFound)
		}
	}
	if s, sok := r.tx.stagedStatus[id]; sok {
		rec.Status = s
	}
	snap := &shared.BookingSnapshot{
		ID:        rec.ID,
		ListingID: rec.ListingID,
		HirerID:   rec.HirerID,
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		Status:    rec.Status,
	}
	if l, lok := r.tx.store.listings[rec.ListingID]; lok {
		snap.ListingOwnerID = l.OwnerID
	}
	return snap, nil
}

func (r *memBookingRepo) UpdateStatus(ctx context.Context, _ db.DBTX, id uuid.UUID, status booking.Status) error {
	r.tx.store.mu.Lock()
	_, exists := r.tx.store.bookings[id]
	r.tx.store.mu.Unlock()
	if !exists {
		if _, staged := r.tx.stagedBookings[id]; !staged {
			return infra.WrapRepoErr("booking not found", errNoRows, infra.KindNotFound)
		}
	}
	if r.tx.stagedStatus == nil {
		r.tx.stagedStatus = make(map[uuid.UUID]string)
	}
	r.tx.stagedStatus[id] = string(status)
	return nil
}

type memListingRepo struct {
	tx *memTx
}

func (r *memListingRepo) Create(ctx context.Context, _ db.DBTX, l *listing.Listing) (uuid.UUID, error) {
	if r.tx.stagedListings == nil {
		r.tx.stagedListings = make(map[uuid.UUID]listingRecord)
	}
	rec := listingRecord{
		ID:          l.ID(),
		OwnerID:     l.OwnerID(),
		Title:       l.Title(),
		Description: l.Description(),
		Location:    l.Location(),
		PriceCents:  l.PriceCents(),
	}
	r.tx.stagedListings[rec.ID] = rec
	return rec.ID, nil
}

func (r *memListingRepo) Update(ctx context.Context, _ db.DBTX, l *listing.Listing) error {
	r.tx.store.mu.Lock()
	_, exists := r.tx.store.listings[l.ID()]
	r.tx.store.mu.Unlock()
	if !exists {
		return infra.WrapRepoErr("listing not found", errNoRows, infra.KindNotFound)
	}
	if r.tx.stagedListings == nil {
		r.tx.stagedListings = make(map[uuid.UUID]listingRecord)
	}
	r.tx.stagedListings[l.ID()] = listingRecord{
		ID:          l.ID(),
		OwnerID:     l.OwnerID(),
		Title:       l.Title(),
		Description: l.Description(),
		Location:    l.Location(),
		PriceCents:  l.PriceCents(),
	}
	return nil
}

func (r *memListingRepo) Delete(ctx context.Context, _ db.DBTX, id uuid.UUID) error {
	r.tx.store.mu.Lock()
	_, exists := r.tx.store.listings[id]
	r.tx.store.mu.Unlock()
	if !exists {
		return infra.WrapRepoErr("listing not found", errNoRows, infra.KindNotFound)
	}
	if r.tx.deletedListing == nil {
		r.tx.deletedListing = make(map[uuid.UUID]bool)
	}
	r.tx.deletedListing[id] = true
	return nil
}

type memMessageRepo struct {
	tx *memTx
}

func (r *memMessageRepo) Create(ctx context.Context, _ db.DBTX, m *message.Message) (uuid.UUID, error) {
	if r.tx.stagedMessages == nil {
		r.tx.stagedMessages = make(map[uuid.UUID]messageRecord)
	}
	rec := messageRecord{
		ID:        m.ID(),
		ListingID: m.ListingID(),
		AuthorID:  m.AuthorID(),
		Content:   m.Content(),
		CreatedAt: time.Now(),
	}
	r.tx.stagedMessages[rec.ID] = rec
	return rec.ID, nil
}

type memUserRepo struct {
	tx *memTx
}

func (r *memUserRepo) Create(ctx context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	r.tx.store.mu.Lock()
	for _, rec := range r.tx.store.users {
		if rec.Email == u.Email().Value() {
			r.tx.store.mu.Unlock()
			return uuid.Nil, infra.WrapRepoErr("email already registered", errNoRows, infra.KindDuplicateKey)
		}
	}
	r.tx.store.mu.Unlock()

	if r.tx.stagedUsers == nil {
		r.tx.stagedUsers = make(map[uuid.UUID]userRecord)
	}
	rec := userRecord{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
	}
	r.tx.stagedUsers[rec.ID] = rec
	return rec.ID, nil
}

type memReads struct {
	store *Store
	tx    *memTx
}

func (r *memReads) ListingByID(ctx context.Context, id uuid.UUID) (*shared.ListingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.listings[id]
	if !ok && r.tx != nil {
		rec, ok = r.tx.stagedListings[id]
	}
	if !ok {
		return nil, infra.WrapRepoErr("listing not found", errNoRows, infra.KindNotFound)
	}
	return &shared.ListingSnapshot{
		ID:         rec.ID,
		OwnerID:    rec.OwnerID,
		Title:      rec.Title,
		PriceCents: rec.PriceCents,
	}, nil
}

func (r *memReads) BookingByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	rec, ok := r.store.bookings[id]
	if !ok && r.tx != nil {
		rec, ok = r.tx.stagedBookings[id]
	}
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", errNoRows, infra.KindNotFound)
	}
	snap := &shared.BookingSnapshot{
		ID:        rec.ID,
		ListingID: rec.ListingID,
		HirerID:   rec.HirerID,
		StartDate: rec.StartDate,
		EndDate:   rec.EndDate,
		Status:    rec.Status,
	}
	if l, lok := r.store.listings[rec.ListingID]; lok {
		snap.ListingOwnerID = l.OwnerID
	}
	return snap, nil
}

func (r *memReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, rec := range r.store.users {
		if rec.Email == email {
			return &shared.UserSnapshot{
				ID:           rec.ID,
				Name:         rec.Name,
				Email:        rec.Email,
				PasswordHash: rec.PasswordHash,
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", errNoRows, infra.KindNotFound)
}
