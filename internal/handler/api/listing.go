package api

import (
	"errors"
	"net/http"

	reqdto "rvmarket/internal/handler/dto/request"
	resdto "rvmarket/internal/handler/dto/response"
	"rvmarket/internal/handler/httperr"
	"rvmarket/internal/handler/middleware"
	"rvmarket/internal/usecase/commands"
	"rvmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ListingHandler struct {
	cmds commands.ListingCommands
	q    queries.ListingQueries
}

func NewListingHandler(cmds commands.ListingCommands, q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{cmds: cmds, q: q}
}

// @Summary List listings
// @Description List all vehicle listings
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.ListingResponse
// @Router /rv_listings [get]
func (h *ListingHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list listings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingViews(views))
}

// @Summary Get listing
// @Description Get a listing by ID
// @Tags listings
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rv_listings/{id} [get]
func (h *ListingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Create listing
// @Description Create a new vehicle listing owned by the authenticated user
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateListingRequest true "Create listing request"
// @Success 201 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /rv_listings [post]
func (h *ListingHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), ownerID, commands.CreateListingRequest{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PriceCents:  req.PricePerDay,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Create listing failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.ListingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromListingView(view))
}

// @Summary Update listing
// @Description Update an owned listing
// @Tags listings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.UpdateListingRequest true "Update listing request"
// @Success 200 {object} resdto.ListingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rv_listings/{id} [put]
func (h *ListingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateListingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	err = h.cmds.Update(c.Request.Context(), id, actorID, commands.UpdateListingRequest{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PriceCents:  req.PricePerDay,
	})
	if err != nil {
		h.respondMutationError(c, err, "Update listing failed")
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load listing", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromListingView(view))
}

// @Summary Delete listing
// @Description Delete an owned listing
// @Tags listings
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rv_listings/{id} [delete]
func (h *ListingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), id, actorID); err != nil {
		h.respondMutationError(c, err, "Delete listing failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ListingHandler) respondMutationError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrListingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
	case errors.Is(err, commands.ErrNotOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Listing not owned by user", nil)
	default:
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	}
}
