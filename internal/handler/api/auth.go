package api

import (
	"errors"
	"net/http"

	reqdto "rvmarket/internal/handler/dto/request"
	resdto "rvmarket/internal/handler/dto/response"
	"rvmarket/internal/handler/httperr"
	"rvmarket/internal/handler/middleware"
	"rvmarket/internal/pkg/config"
	"rvmarket/internal/pkg/cookie"
	"rvmarket/internal/usecase/commands"
	"rvmarket/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errors.New("user not authenticated")

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
	cfg  config.Config
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Register
// @Description Create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), commands.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, commands.ErrEmailTaken) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Registration failed", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.UserID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load user", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), commands.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.cfg.JWT.AccessTokenDuration, h.cfg.JWT.RefreshTokenDuration)

	c.JSON(http.StatusOK, resdto.AuthResponse{
		UserID:       result.UserID,
		AccessToken:  result.TokenPair.AccessToken,
		RefreshToken: result.TokenPair.RefreshToken,
	})
}

// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RefreshRequest true "Refresh request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req reqdto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		token := cookie.GetRefreshToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Refresh token required", nil)
			return
		}
		req.RefreshToken = token
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired refresh token", nil)
		return
	}

	cookie.SetTokenCookies(c, h.cfg.Cookie,
		pair.AccessToken, pair.RefreshToken,
		h.cfg.JWT.AccessTokenDuration, h.cfg.JWT.RefreshTokenDuration)

	c.JSON(http.StatusOK, resdto.AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// @Summary Logout
// @Description Clear session cookies
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Get the authenticated user's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
