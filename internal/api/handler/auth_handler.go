package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medlmo/gcpRSM/config"
	"github.com/medlmo/gcpRSM/internal/dto"
	"github.com/medlmo/gcpRSM/internal/service"
	"github.com/medlmo/gcpRSM/pkg/response"
)

// AuthHandler serves the session gateway endpoints. It is the only
// handler that touches the session cookie directly; everything behind
// the protected group relies on the session middleware instead.
type AuthHandler struct {
	sessionCfg *config.SessionConfig
	authSvc    service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(sessionCfg *config.SessionConfig, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{sessionCfg: sessionCfg, authSvc: authSvc}
}

func (h *AuthHandler) sameSite() http.SameSite {
	switch h.sessionCfg.Cookie.SameSite {
	case "Strict", "strict":
		return http.SameSiteStrictMode
	case "None", "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string, maxAge int) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(
		h.sessionCfg.CookieName,
		sessionID,
		maxAge,
		"/",
		h.sessionCfg.Cookie.Domain,
		h.sessionCfg.Cookie.Secure,
		true, // HttpOnly: the session id is never script-readable
	)
}

// Login authenticates with email and password. A fresh session id is
// minted on every success; the one presented with the request, if any,
// is destroyed first.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	previousSessionID, _ := c.Cookie(h.sessionCfg.CookieName)

	user, sessionID, err := h.authSvc.Login(c.Request.Context(), &req, previousSessionID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, 11001, "invalid email or password")
			return
		}
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, sessionID, int(h.sessionCfg.TTL.Seconds()))
	response.OK(c, user)
}

// Logout destroys the current session. Calling it without a session, or
// with a stale one, still succeeds.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(h.sessionCfg.CookieName)

	if err := h.authSvc.Logout(c.Request.Context(), sessionID); err != nil {
		response.InternalError(c)
		return
	}

	h.setSessionCookie(c, "", -1)
	response.NoContent(c)
}

// Me returns the user behind the current session, or 401 when the
// session is absent, expired, or orphaned.
// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	sessionID, _ := c.Cookie(h.sessionCfg.CookieName)

	user, err := h.authSvc.CurrentUser(c.Request.Context(), sessionID)
	if err != nil {
		response.InternalError(c)
		return
	}
	if user == nil {
		response.Unauthorized(c, 10002, "authentication required")
		return
	}

	response.OK(c, user)
}
