package api_keys

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Admin key attempts are throttled in-process to slow down brute force
var adminAttemptLimiter = rate.NewLimiter(rate.Limit(3), 3) // 3 RPS with burst of 3

// AdminKeyMiddleware protects key-management routes. When no admin key is
// configured the routes are unusable on purpose.
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if adminKey == "" {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "API key management is disabled: no admin key configured",
			})
			return
		}

		if !adminAttemptLimiter.Allow() {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many attempts, try again later",
			})
			return
		}

		provided := ctx.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid admin key",
			})
			return
		}

		ctx.Next()
	}
}
