package middleware

import (
	"net/http"

	"awei/internal/model"
	"awei/internal/service"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the cookie carrying the session token
const TokenCookie = "token"

const identityKey = "identity"

// RequireSession verifies the cookie-borne session token and stashes the
// decoded identity in the request context. Requests with a missing,
// malformed, or expired token never reach the handler.
func RequireSession(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := verifySession(c, tokens)
		if !ok {
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireRole verifies the session and additionally requires one of the
// given roles. Admin passes every role check.
func RequireRole(tokens *service.TokenService, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := verifySession(c, tokens)
		if !ok {
			return
		}
		if identity.Role != model.RoleAdmin && !contains(roles, identity.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, model.NewErrorResponse("forbidden"))
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// Identity returns the verified identity attached by RequireSession or
// RequireRole, if any.
func Identity(c *gin.Context) (*model.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := v.(*model.Identity)
	return identity, ok
}

func verifySession(c *gin.Context, tokens *service.TokenService) (*model.Identity, bool) {
	cookie, err := c.Cookie(TokenCookie)
	if err != nil || cookie == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("unauthorized access"))
		return nil, false
	}
	identity, err := tokens.Verify(cookie)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, model.NewErrorResponse("unauthorized access"))
		return nil, false
	}
	return identity, true
}

func contains(roles []string, role string) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
