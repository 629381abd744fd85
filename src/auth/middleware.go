package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "authIdentity"

// Middleware rejects requests before any store access: a missing bearer
// credential yields 401, an invalid or expired one 403. requireAdmin gates
// writes on the admin claim; it is wired to an env flag and off by default.
func Middleware(verifier Verifier, requireAdmin bool) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		identity, err := verifier.Verify(ctx.Request.Context(), token)
		if err != nil {
			slog.Warn("rejected credential", "error", err)
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid authorization token"})
			return
		}

		if requireAdmin && !identity.Admin {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// IdentityFrom returns the verified identity attached by Middleware.
func IdentityFrom(ctx *gin.Context) (*Identity, bool) {
	val, ok := ctx.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := val.(*Identity)
	return identity, ok
}
