// Package memory provides an in-memory unit of work used by unit tests.
// Writes are staged per transaction and applied on commit; the per-listing
// lock mirrors the row lock the Postgres implementation takes, so concurrent
// booking attempts on one listing serialize the same way.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type bookingRecord struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	HirerID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Status    string
	CreatedAt time.Time
}

type listingRecord struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Location    string
	PriceCents  int64
}

type userRecord struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
}

type messageRecord struct {
	ID        uuid.UUID
	ListingID uuid.UUID
	AuthorID  uuid.UUID
	Content   string
	CreatedAt time.Time
}

type Store struct {
	mu       sync.Mutex
	users    map[uuid.UUID]userRecord
	listings map[uuid.UUID]listingRecord
	bookings map[uuid.UUID]bookingRecord
	messages map[uuid.UUID]messageRecord

	listingLocks map[uuid.UUID]*sync.Mutex
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uuid.UUID]userRecord),
		listings:     make(map[uuid.UUID]listingRecord),
		bookings:     make(map[uuid.UUID]bookingRecord),
		messages:     make(map[uuid.UUID]messageRecord),
		listingLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

func (s *Store) listingLock(id uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.listingLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.listingLocks[id] = lock
	}
	return lock
}

// Seed helpers for tests.

func (s *Store) SeedUser(id uuid.UUID, name, email, passwordHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = userRecord{ID: id, Name: name, Email: email, PasswordHash: passwordHash}
}

func (s *Store) SeedListing(id, ownerID uuid.UUID, title string, priceCents int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[id] = listingRecord{
		ID:          id,
		OwnerID:     ownerID,
		Title:       title,
		Description: "seeded",
		Location:    "seeded",
		PriceCents:  priceCents,
	}
}

func (s *Store) SeedBooking(id, listingID, hirerID uuid.UUID, start, end time.Time, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[id] = bookingRecord{
		ID:        id,
		ListingID: listingID,
		HirerID:   hirerID,
		StartDate: start,
		EndDate:   end,
		Status:    status,
		CreatedAt: time.Now(),
	}
}

// BookingStatus reports the committed status of a booking, for assertions.
func (s *Store) BookingStatus(id uuid.UUID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.bookings[id]
	if !ok {
		return "", false
	}
	return rec.Status, true
}

// BookingCount reports the number of committed bookings for a listing.
func (s *Store) BookingCount(listingID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rec := range s.bookings {
		if rec.ListingID == listingID {
			n++
		}
	}
	return n
}
