// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantry-bot/backend/internal/integration/entrypoint/dto"
)

// userIDContextKey is the gin context key for the resolved user ID.
const userIDContextKey = "user_id"

// userIDHeader carries the chat user ID on REST requests.
const userIDHeader = "X-User-ID"

// AccessGate enforces the bot's user allow-list. An empty allow-list
// leaves the gate open to everyone.
type AccessGate struct {
	allowed map[string]struct{}
}

// NewAccessGate creates a new access gate from the configured allow-list.
func NewAccessGate(allowedUsers []string) *AccessGate {
	allowed := make(map[string]struct{}, len(allowedUsers))
	for _, userID := range allowedUsers {
		allowed[userID] = struct{}{}
	}
	return &AccessGate{
		allowed: allowed,
	}
}

// Allows reports whether the user may use the bot.
func (g *AccessGate) Allows(userID string) bool {
	if len(g.allowed) == 0 {
		return true
	}
	_, ok := g.allowed[userID]
	return ok
}

// Handler gates REST requests on the user ID header and stores the
// resolved user ID in the request context.
func (g *AccessGate) Handler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetHeader(userIDHeader)
		if userID == "" {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Missing " + userIDHeader + " header",
			})
			ctx.Abort()
			return
		}
		if !g.Allows(userID) {
			ctx.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error: "User is not allowed",
			})
			ctx.Abort()
			return
		}

		ctx.Set(userIDContextKey, userID)
		ctx.Next()
	}
}

// GetUserIDFromContext retrieves the resolved user ID from the gin context.
func GetUserIDFromContext(ctx *gin.Context) (string, bool) {
	value, exists := ctx.Get(userIDContextKey)
	if !exists {
		return "", false
	}
	userID, ok := value.(string)
	return userID, ok
}
