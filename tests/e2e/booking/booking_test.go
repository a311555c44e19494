//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"rvmarket/internal/handler/dto/response"
	"rvmarket/tests/common/authtest"
	"rvmarket/tests/common/dbtest"
	"rvmarket/tests/common/httptest"
	"rvmarket/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	createBookingURL = "/api/rv_listings/%s/bookings"
	bookingsURL      = "/api/bookings"
	confirmURL       = "/api/bookings/%s/confirm"
	rejectURL        = "/api/bookings/%s/reject"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func day(offset int) time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour).AddDate(0, 0, offset)
}

func bookingBody(startOffset, endOffset int) map[string]string {
	return map[string]string{
		"start_date": day(startOffset).Format("2006-01-02"),
		"end_date":   day(endOffset).Format("2006-01-02"),
	}
}

// creates a listing owner with one listing plus a logged-in hirer
func (s *BookingSuite) seedListing(t *testing.T) (listingID uuid.UUID, ownerToken, hirerToken string) {
	t.Helper()

	ownerID := dbtest.CreateTestUser(t, s.DB, "Olivia Owner", "owner@example.com")
	listingID = dbtest.CreateTestListing(t, s.DB, ownerID, "Forest River Sunseeker", 12000)
	ownerToken = authtest.LoginUser(t, s.Router, "owner@example.com", "password123")
	hirerToken = authtest.CreateAndLogin(t, s.DB, s.Router, "Harry Hirer", "hirer@example.com")
	return listingID, ownerToken, hirerToken
}

// =============================================================================
// TestCreateBooking - Booking creation API tests
// =============================================================================

func (s *BookingSuite) TestCreateBooking() {
	s.Run("Normal case: Hirer can book free dates", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		expected := &response.BookingResponse{
			ListingID:    listingID,
			ListingTitle: "Forest River Sunseeker",
			HirerName:    "Harry Hirer",
			StartDate:    day(5).Format("2006-01-02"),
			EndDate:      day(7).Format("2006-01-02"),
			Status:       "pending",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.BookingResponse{}, "ID", "UserID", "CreatedAt", "UpdatedAt"),
		}

		if diff := cmp.Diff(expected, &created, opts...); diff != "" {
			t.Errorf("Booking response mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: Overlapping dates are rejected", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Second Hirer", "second@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 10), hirerToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(8, 12), otherToken)
		httptest.AssertValidationResponse(t, w2, []string{"booking dates overlap with existing booking"})
		require.Equal(t, 1, dbtest.BookingCount(t, s.DB, listingID))
	})

	s.Run("Error case: Touching ranges conflict", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Second Hirer", "second@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		// new start equals existing end
		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(7, 9), otherToken)
		httptest.AssertValidationResponse(t, w2, []string{"booking dates overlap with existing booking"})
	})

	s.Run("Normal case: Adjacent ranges do not conflict", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Second Hirer", "second@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(8, 10), otherToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
		require.Equal(t, 2, dbtest.BookingCount(t, s.DB, listingID))
	})

	s.Run("Normal case: Rejected booking frees its dates", func() {
		t := s.T()
		listingID, ownerToken, hirerToken := s.seedListing(t)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Second Hirer", "second@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w1.Body, &created)
		require.NoError(t, err)

		wReject := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(rejectURL, created.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, wReject.Code, wReject.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), otherToken)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("Error case: Confirmed booking still blocks its dates", func() {
		t := s.T()
		listingID, ownerToken, hirerToken := s.seedListing(t)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Second Hirer", "second@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		var created response.BookingResponse
		err := httptest.DecodeResponseBody(t, w1.Body, &created)
		require.NoError(t, err)

		wConfirm := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(confirmURL, created.ID), nil, ownerToken)
		require.Equal(t, http.StatusOK, wConfirm.Code, wConfirm.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(6, 8), otherToken)
		httptest.AssertValidationResponse(t, w2, []string{"booking dates overlap with existing booking"})
	})

	s.Run("Error case: Owner cannot book own listing", func() {
		t := s.T()
		listingID, ownerToken, _ := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), ownerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: Unknown listing returns 404", func() {
		t := s.T()
		_, _, hirerToken := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, uuid.New())
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Error case: Missing dates report both violations", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, map[string]string{}, hirerToken)
		httptest.AssertValidationResponse(t, w, []string{
			"start_date is required",
			"end_date is required",
		})
	})

	s.Run("Error case: Past start date is rejected", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(-3, 2), hirerToken)
		httptest.AssertValidationResponse(t, w, []string{"start_date cannot be in the past"})
	})

	s.Run("Error case: Unparseable dates return 400", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		body := map[string]string{"start_date": "07/05/2026", "end_date": "07/09/2026"}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, body, hirerToken)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()
		listingID, _, _ := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// =============================================================================
// TestDecideBooking - Confirm/reject API tests
// =============================================================================

func (s *BookingSuite) TestDecideBooking() {
	s.Run("Normal case: Owner confirms a pending booking", func() {
		t := s.T()
		_, ownerToken, bookingID := s.seedBooking(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(confirmURL, bookingID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var decided response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &decided)
		require.NoError(t, err)
		require.Equal(t, "confirmed", decided.Status)
	})

	s.Run("Normal case: Owner rejects a pending booking", func() {
		t := s.T()
		_, ownerToken, bookingID := s.seedBooking(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(rejectURL, bookingID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var decided response.BookingResponse
		err := httptest.DecodeResponseBody(t, w.Body, &decided)
		require.NoError(t, err)
		require.Equal(t, "rejected", decided.Status)
	})

	s.Run("Error case: Non-owner cannot decide", func() {
		t := s.T()
		_, _, bookingID := s.seedBooking(t)
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Sam Stranger", "stranger@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(confirmURL, bookingID), nil, strangerToken)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Error case: Decided booking cannot be decided again", func() {
		t := s.T()
		_, ownerToken, bookingID := s.seedBooking(t)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(confirmURL, bookingID), nil, ownerToken)
		require.Equal(t, http.StatusOK, w1.Code, w1.Body.String())

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(rejectURL, bookingID), nil, ownerToken)
		require.Equal(t, http.StatusUnprocessableEntity, w2.Code, w2.Body.String())
	})

	s.Run("Error case: Unknown booking returns 404", func() {
		t := s.T()
		_, ownerToken, _ := s.seedBooking(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(confirmURL, uuid.New()), nil, ownerToken)
		require.Equal(t, http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()
		_, _, bookingID := s.seedBooking(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf(confirmURL, bookingID), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

// creates a listing with one pending booking, returns listing, owner token, booking id
func (s *BookingSuite) seedBooking(t *testing.T) (uuid.UUID, string, uuid.UUID) {
	t.Helper()

	listingID, ownerToken, hirerToken := s.seedListing(t)

	url := fmt.Sprintf(createBookingURL, listingID)
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.BookingResponse
	err := httptest.DecodeResponseBody(t, w.Body, &created)
	require.NoError(t, err)

	return listingID, ownerToken, created.ID
}

// =============================================================================
// TestListBookings - Booking list API tests
// =============================================================================

func (s *BookingSuite) TestListBookings() {
	s.Run("Normal case: Hirer and owner both see the booking", func() {
		t := s.T()
		listingID, ownerToken, hirerToken := s.seedListing(t)

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		for _, token := range []string{hirerToken, ownerToken} {
			lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
			require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

			var items []*response.BookingListItemResponse
			err := httptest.DecodeResponseBody(t, lw.Body, &items)
			require.NoError(t, err)
			require.Len(t, items, 1)
			require.Equal(t, listingID, items[0].ListingID)
		}
	})

	s.Run("Normal case: Uninvolved user sees nothing", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)
		strangerToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Sam Stranger", "stranger@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bookingBody(5, 7), hirerToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, strangerToken)
		require.Equal(t, http.StatusOK, lw.Code, lw.Body.String())

		var items []*response.BookingListItemResponse
		err := httptest.DecodeResponseBody(t, lw.Body, &items)
		require.NoError(t, err)
		require.Empty(t, items)
	})
}

// =============================================================================
// TestConcurrentBookings - Concurrent requests against the real database
// =============================================================================

func (s *BookingSuite) TestConcurrentBookings() {
	s.Run("Concurrency: Exactly one of two simultaneous bookings wins", func() {
		t := s.T()
		listingID, _, hirerToken := s.seedListing(t)
		otherToken := authtest.CreateAndLogin(t, s.DB, s.Router, "Second Hirer", "second@example.com")

		url := fmt.Sprintf(createBookingURL, listingID)
		tokens := []string{hirerToken, otherToken}

		for round := range 100 {
			// each round gets its own date window so rounds never interfere
			base := 5 + round*10
			bodies := []map[string]string{
				bookingBody(base, base+3),
				bookingBody(base+1, base+4),
			}

			codes := make([]int, 2)
			var wg sync.WaitGroup
			for i := range tokens {
				wg.Add(1)
				go func() {
					defer wg.Done()
					w := httptest.PerformRequest(t, s.Router, http.MethodPost, url, bodies[i], tokens[i])
					codes[i] = w.Code
				}()
			}
			wg.Wait()

			created := 0
			for _, code := range codes {
				switch code {
				case http.StatusCreated:
					created++
				case http.StatusUnprocessableEntity:
				default:
					t.Fatalf("round %d: unexpected status %d", round, code)
				}
			}
			require.Equal(t, 1, created, "round %d: exactly one booking must win, got codes %v", round, codes)
		}

		require.Equal(t, 100, dbtest.BookingCount(t, s.DB, listingID))
	})
}
