package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prelandr/prelandr-go/internal/domain/entities/user"
	"github.com/prelandr/prelandr-go/internal/infrastructure/security"
	"github.com/prelandr/prelandr-go/pkg/config"
)

const identityKey = "identity"

// AuthRequired parses the Bearer token and stores the caller identity
// in the Gin context. Requests without a valid token get a 401.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		claims, err := security.ValidateJWT(strings.TrimPrefix(authHeader, "Bearer "), config.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		identity := security.GetIdentityFromClaims(claims)
		if identity == nil || identity.AccountID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the authenticated identity stored by AuthRequired.
func GetIdentity(c *gin.Context) (*user.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*user.Identity)
	return identity, ok
}
