//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"rvmarket/internal/domain/booking"
	"rvmarket/internal/handler/api"
	resdto "rvmarket/internal/handler/dto/response"
	"rvmarket/internal/usecase/commands"
	"rvmarket/internal/usecase/queries"
	"rvmarket/tests/common/builder"
	commonhttp "rvmarket/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubBookingCommands struct {
	createResult *commands.CreateBookingResult
	createErr    error
	decideErr    error

	gotListingID uuid.UUID
	gotHirerID   uuid.UUID
	gotRequest   commands.CreateBookingRequest
}

func (s *stubBookingCommands) Create(_ context.Context, listingID, hirerID uuid.UUID, req commands.CreateBookingRequest) (*commands.CreateBookingResult, error) {
	s.gotListingID = listingID
	s.gotHirerID = hirerID
	s.gotRequest = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createResult, nil
}

func (s *stubBookingCommands) Confirm(_ context.Context, _, _ uuid.UUID) error {
	return s.decideErr
}

func (s *stubBookingCommands) Reject(_ context.Context, _, _ uuid.UUID) error {
	return s.decideErr
}

type stubBookingQueries struct {
	view  *queries.BookingView
	items []*queries.BookingListItem
	err   error
}

func (s *stubBookingQueries) GetByIDSystem(_ context.Context, _ uuid.UUID) (*queries.BookingView, error) {
	return s.view, s.err
}

func (s *stubBookingQueries) ListForActor(_ context.Context, _ uuid.UUID) ([]*queries.BookingListItem, error) {
	return s.items, s.err
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	cmds   *stubBookingCommands
	q      *stubBookingQueries
	userID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.cmds = &stubBookingCommands{}
	s.q = &stubBookingQueries{}
	s.userID = uuid.New()

	handler := api.NewBookingHandler(s.cmds, s.q)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Next()
	}

	s.router.POST("/rv_listings/:id/bookings", authMiddleware, handler.Create)
	s.router.GET("/bookings", authMiddleware, handler.List)
	s.router.PATCH("/bookings/:id/confirm", authMiddleware, handler.Confirm)
	s.router.PATCH("/bookings/:id/reject", authMiddleware, handler.Reject)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewBookingBuilder()
	url := "/rv_listings/" + b.ListingID.String() + "/bookings"

	s.Run("created", func() {
		s.cmds.createErr = nil
		s.cmds.createResult = &commands.CreateBookingResult{BookingID: b.ID}
		s.q.view = b.BuildView()

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRequestBody(), "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal("pending", resp.Status)
		s.Equal(b.ListingID, s.cmds.gotListingID)
		s.Equal(s.userID, s.cmds.gotHirerID)
	})

	s.Run("validation failure returns 422 with all messages", func() {
		s.cmds.createErr = &booking.ValidationError{Violations: booking.Violations{
			{Field: "start_date", Message: "start_date cannot be in the past"},
			{Field: "base", Message: "booking dates overlap with existing booking"},
		}}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRequestBody(), "token")

		commonhttp.AssertValidationResponse(s.T(), w, []string{
			"start_date cannot be in the past",
			"booking dates overlap with existing booking",
		})
	})

	s.Run("own listing returns 403", func() {
		s.cmds.createErr = commands.ErrOwnBookingForbidden

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRequestBody(), "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Cannot book your own listing")
	})

	s.Run("unknown listing returns 404", func() {
		s.cmds.createErr = commands.ErrListingNotFound

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRequestBody(), "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Listing not found")
	})

	s.Run("bad date format returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"start_date": "08/31/2026", "end_date": "09/02/2026"}, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("missing dates reach the validator", func() {
		s.cmds.createErr = &booking.ValidationError{Violations: booking.Violations{
			{Field: "start_date", Message: "start_date is required"},
			{Field: "end_date", Message: "end_date is required"},
		}}

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "token")
		commonhttp.AssertValidationResponse(s.T(), w, []string{
			"start_date is required",
			"end_date is required",
		})
		s.True(s.cmds.gotRequest.StartDate.IsZero())
		s.True(s.cmds.gotRequest.EndDate.IsZero())
	})

	s.Run("unauthenticated returns 401", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, url, b.BuildRequestBody(), "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("invalid listing id returns 400", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/rv_listings/not-a-uuid/bookings", b.BuildRequestBody(), "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid listing id")
	})
}

func (s *BookingHandlerTestSuite) TestDecide() {
	b := builder.NewBookingBuilder()

	s.Run("confirm ok", func() {
		s.cmds.decideErr = nil
		view := b.BuildView()
		view.Status = "confirmed"
		s.q.view = view

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+b.ID.String()+"/confirm", nil, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("confirmed", resp.Status)
	})

	s.Run("non-owner returns 403", func() {
		s.cmds.decideErr = commands.ErrNotListingOwner

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+b.ID.String()+"/reject", nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Only the listing owner can decide a booking")
	})

	s.Run("unknown booking returns 404", func() {
		s.cmds.decideErr = commands.ErrBookingNotFound

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+b.ID.String()+"/confirm", nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Booking not found")
	})

	s.Run("already decided returns 422", func() {
		s.cmds.decideErr = booking.ErrInvalidTransition

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+b.ID.String()+"/reject", nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Booking already decided")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	s.cmds.decideErr = nil
	s.q.err = nil
	s.q.items = []*queries.BookingListItem{
		{ID: uuid.New(), ListingID: uuid.New(), HirerID: s.userID, Status: "pending"},
	}

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

	var resp []resdto.BookingListItemResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Len(resp, 1)
}
