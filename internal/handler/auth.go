package handler

import (
	"net/http"
	"regexp"
	"strings"

	"awei/internal/middleware"
	"awei/internal/model"
	"awei/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	maxNameLength  = 100
	maxEmailLength = 254
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// AuthHandler issues and clears the session cookie
type AuthHandler struct {
	tokens     *service.TokenService
	production bool
}

func NewAuthHandler(tokens *service.TokenService, production bool) *AuthHandler {
	return &AuthHandler{tokens: tokens, production: production}
}

// IssueToken signs the posted identity and sets it as an HTTP-only
// cookie. In production the cookie is Secure with SameSite=None so the
// cross-site frontend can send it over TLS; in development it stays
// Strict and insecure for localhost.
// @Router /jwt [post]
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var identity model.Identity
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error()))
		return
	}

	identity.Email = strings.TrimSpace(strings.ToLower(identity.Email))
	if identity.Email == "" {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Email is required"))
		return
	}
	if len(identity.Email) > maxEmailLength || !emailRegex.MatchString(identity.Email) {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Invalid email format"))
		return
	}
	if len(identity.Name) > maxNameLength {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse("Name exceeds maximum length"))
		return
	}

	token, err := h.tokens.Issue(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.NewErrorResponse(err.Error()))
		return
	}

	h.setSameSite(c)
	c.SetCookie(middleware.TokenCookie, token, int(service.TokenTTL.Seconds()), "/", "", h.production, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout expires the cookie. The token itself stays verifiable until its
// natural expiry; there is no server-side revocation list.
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSameSite(c)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.production, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) setSameSite(c *gin.Context) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
}
