package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	identityapp "github.com/stockledger/backend/internal/application/identity"
	"github.com/stockledger/backend/internal/infrastructure/config"
	"github.com/stockledger/backend/internal/interfaces/http/middleware"
)

// UserHandler handles registration, sessions, profiles and user administration
type UserHandler struct {
	BaseHandler
	auth   *identityapp.AuthService
	users  *identityapp.UserService
	cookie config.CookieConfig
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(auth *identityapp.AuthService, users *identityapp.UserService, cookie config.CookieConfig) *UserHandler {
	return &UserHandler{auth: auth, users: users, cookie: cookie}
}

// RegisterRequest creates a user account
// @Description Request body for registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=100" example:"Alice"`
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// LoginRequest authenticates a user
// @Description Request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"alice@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// UpdateProfileRequest carries optional profile changes
// @Description Request body for updating the caller's profile
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100" example:"Alice B."`
	Email    *string `json:"email" binding:"omitempty,email" example:"alice.b@example.com"`
	Password *string `json:"password" example:"newsecret123"`
}

// Register godoc
// @Summary      Register
// @Description  Create a user account with the user role and start a session
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Account"
// @Success      201 {object} APIResponse[identity.LoginResult]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.auth.Register(c.Request.Context(), identityapp.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	h.Created(c, result)
}

// Login godoc
// @Summary      Log in
// @Description  Verify credentials, set the session cookie and return a bearer token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200 {object} APIResponse[identity.LoginResult]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Router       /users/auth [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), identityapp.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	h.Success(c, result)
}

// Logout godoc
// @Summary      Log out
// @Description  Revoke the presented token, if any, and clear the session cookie
// @Tags         users
// @Produce      json
// @Success      200 {object} APIResponse[MessageResponse]
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	if claims := middleware.GetJWTClaims(c); claims != nil {
		p, _ := middleware.GetPrincipal(c)
		err := h.auth.Logout(c.Request.Context(), identityapp.LogoutInput{
			UserID:   p.UserID,
			TokenJTI: claims.ID,
			TokenTTL: claims.RemainingTTL(),
		})
		if err != nil {
			h.HandleError(c, err)
			return
		}
	}
	h.clearSessionCookie(c)
	h.Success(c, MessageResponse{Message: "Logged out successfully"})
}

// GetProfile godoc
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Success      200 {object} APIResponse[identity.UserInfo]
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	info, err := h.users.GetProfile(c.Request.Context(), caller.UserID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Change name, email or password; omitted fields keep their value
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body UpdateProfileRequest true "Changes"
// @Success      200 {object} APIResponse[identity.UserInfo]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	info, err := h.users.UpdateProfile(c.Request.Context(), caller.UserID, identityapp.UpdateProfileInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Success      200 {object} APIResponse[[]identity.UserInfo]
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/admin/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, users)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Description  Remove a user and end their sessions; the caller and the primary admin cannot be deleted
// @Tags         users
// @Produce      json
// @Param        id path string true "User ID" format(uuid)
// @Success      200 {object} APIResponse[MessageResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.users.DeleteUser(c.Request.Context(), caller, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "User removed"})
}

func (h *UserHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, int(time.Until(expiresAt).Seconds()),
		h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func (h *UserHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(sameSiteMode(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, h.cookie.Path, h.cookie.Domain, h.cookie.Secure, true)
}

func sameSiteMode(mode string) http.SameSite {
	switch strings.ToLower(mode) {
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteStrictMode
	}
}
