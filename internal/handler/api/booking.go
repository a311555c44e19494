package api

import (
	"context"
	"errors"
	"net/http"

	"rvmarket/internal/domain/booking"
	reqdto "rvmarket/internal/handler/dto/request"
	resdto "rvmarket/internal/handler/dto/response"
	"rvmarket/internal/handler/httperr"
	"rvmarket/internal/handler/middleware"
	"rvmarket/internal/usecase/commands"
	"rvmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request a booking for a listing. Dates must not overlap any
// @Description non-rejected booking on the same listing.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.CreateBookingRequest true "Booking dates"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rv_listings/{id}/bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	hirerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	start, end, err := req.ParseDates()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), listingID, hirerID, commands.CreateBookingRequest{
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	view, err := h.q.GetByIDSystem(c.Request.Context(), result.BookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed",
			gin.H{"errors": verr.Violations.Messages()})
	case errors.Is(err, commands.ErrListingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
	case errors.Is(err, commands.ErrOwnBookingForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Cannot book your own listing", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create booking failed", nil)
	}
}

// @Summary List bookings
// @Description List bookings the actor made plus bookings on listings the actor owns
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListItemResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	items, err := h.q.ListForActor(c.Request.Context(), actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}

	out := make([]*resdto.BookingListItemResponse, len(items))
	for i, item := range items {
		out[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Confirm booking
// @Description Owner accepts a pending booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/confirm [patch]
func (h *BookingHandler) Confirm(c *gin.Context) {
	h.decide(c, h.cmds.Confirm)
}

// @Summary Reject booking
// @Description Owner declines a pending booking, freeing its dates
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id}/reject [patch]
func (h *BookingHandler) Reject(c *gin.Context) {
	h.decide(c, h.cmds.Reject)
}

func (h *BookingHandler) decide(c *gin.Context, op func(ctx context.Context, bookingID, actorID uuid.UUID) error) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err := op(c.Request.Context(), bookingID, actorID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrNotListingOwner):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only the listing owner can decide a booking", nil)
		case errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking already decided", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update booking failed", nil)
		}
		return
	}

	view, err := h.q.GetByIDSystem(c.Request.Context(), bookingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
