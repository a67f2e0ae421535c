package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	mem "travelguide/pkg/memcache"
	"travelguide/pkg/utils"
)

const (
	ctxUserID      = "user_id"
	ctxUserName    = "user_name"
	ctxTokenID     = "token_id"
	ctxTokenExpiry = "token_expiry"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer, revoked mem.RevokedTokenStore) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if revoked != nil && revoked.IsRevoked(claims.ID) {
			utils.RespondError(c, http.StatusUnauthorized, "Token is logged out")
			c.Abort()
			return
		}

		userID, _ := uuid.Parse(claims.UserID)
		c.Set(ctxUserID, userID)
		c.Set(ctxUserName, claims.Name)
		c.Set(ctxTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ctxTokenExpiry, claims.ExpiresAt.Time)
		}
		c.Next()
	}
}

// CurrentUserID returns the caller resolved by JWTAuthMiddleware.
func CurrentUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func CurrentUserName(c *gin.Context) string {
	return c.GetString(ctxUserName)
}

func CurrentTokenID(c *gin.Context) string {
	return c.GetString(ctxTokenID)
}

func CurrentTokenExpiry(c *gin.Context) time.Time {
	return c.GetTime(ctxTokenExpiry)
}
