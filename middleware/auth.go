package middleware

import (
	"net/http"
	"strings"

	"jasit-store/libs"
	"jasit-store/models"
	"jasit-store/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

// Authenticator verifies bearer tokens and checks them against the signout
// denylist.
type Authenticator struct {
	tokens   *utils.TokenIssuer
	denylist *libs.TokenDenylist
	log      *zap.Logger
}

func NewAuthenticator(tokens *utils.TokenIssuer, denylist *libs.TokenDenylist, log *zap.Logger) *Authenticator {
	return &Authenticator{tokens: tokens, denylist: denylist, log: log}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Success:  false,
		Message:  message,
		Redirect: "/signin",
	})
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" || tokenParts[1] == "" {
		return "", false
	}
	return tokenParts[1], true
}

func (a *Authenticator) principal(c *gin.Context, token string) (*models.Principal, bool) {
	principal, err := a.tokens.Validate(token)
	if err != nil {
		return nil, false
	}

	revoked, err := a.denylist.IsRevoked(c.Request.Context(), principal.TokenID)
	if err != nil {
		a.log.Warn("denylist lookup failed", zap.Error(err))
	}
	if revoked {
		return nil, false
	}
	return principal, true
}

func (a *Authenticator) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			unauthorized(c, "Silakan masuk terlebih dahulu")
			return
		}

		principal, ok := a.principal(c, token)
		if !ok {
			unauthorized(c, "Sesi Anda telah berakhir, silakan masuk kembali")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present and
// never rejects the request.
func (a *Authenticator) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if principal, ok := a.principal(c, token); ok {
				c.Set(principalKey, principal)
			}
		}
		c.Next()
	}
}

func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := CurrentPrincipal(c)
		if principal == nil {
			unauthorized(c, "Silakan masuk terlebih dahulu")
			return
		}

		if !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Success: false,
				Message: "Akses ditolak. Hanya untuk admin",
			})
			return
		}

		c.Next()
	}
}

// CurrentPrincipal returns the authenticated caller, or nil.
func CurrentPrincipal(c *gin.Context) *models.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	principal, _ := v.(*models.Principal)
	return principal
}
