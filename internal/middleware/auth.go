package middleware

import (
	"net/http"
	"strings"

	"easyshop_service/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const principalKey = "principal"

// TokenParser turns a bearer token into the caller's identity.
type TokenParser interface {
	Parse(token string) (*auth.Principal, error)
}

func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"Status": "Fail", "Message": message})
}

// Authenticate rejects requests without a valid bearer token and stores the
// principal on the context.
func Authenticate(tokens TokenParser, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			log.Warn("Middleware: Authorization header is missing")
			abortWithMessage(c, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
			log.Warn("Middleware: Invalid Authorization header format")
			abortWithMessage(c, http.StatusUnauthorized, "Invalid Authorization header format")
			return
		}

		principal, err := tokens.Parse(parts[1])
		if err != nil {
			log.Warnf("Middleware: Rejected token: %v", err)
			abortWithMessage(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role string, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			abortWithMessage(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		if principal.Role != role {
			log.Warnf("Middleware: User %s with role %s denied access to %s %s", principal.Username, principal.Role, c.Request.Method, c.Request.URL.Path)
			abortWithMessage(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func CurrentPrincipal(c *gin.Context) (*auth.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	principal, ok := value.(*auth.Principal)
	return principal, ok && principal != nil
}
