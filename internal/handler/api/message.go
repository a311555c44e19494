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

type MessageHandler struct {
	cmds commands.MessageCommands
	q    queries.MessageQueries
}

func NewMessageHandler(cmds commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{cmds: cmds, q: q}
}

// @Summary List listing messages
// @Description List messages posted on a listing, oldest first
// @Tags messages
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {array} resdto.MessageResponse
// @Failure 400 {object} map[string]string
// @Router /rv_listings/{id}/messages [get]
func (h *MessageHandler) ListByListing(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	views, err := h.q.ListByListing(c.Request.Context(), listingID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list messages", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMessageViews(views))
}

// @Summary Post message
// @Description Post a message on a listing
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing ID"
// @Param request body reqdto.PostMessageRequest true "Message content"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rv_listings/{id}/messages [post]
func (h *MessageHandler) Post(c *gin.Context) {
	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid listing id", nil)
		return
	}
	authorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.PostMessageRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Post(c.Request.Context(), listingID, authorID, commands.PostMessageRequest{
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, commands.ErrListingNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Listing not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Post message failed", nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": result.MessageID.String()})
}
