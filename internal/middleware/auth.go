package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/flowmanager-dev/flowmanager/internal/appcontext"
	"github.com/flowmanager-dev/flowmanager/internal/models"
)

type AuthenticatedUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

const ContextUserKey = "user"

// AuthMiddleware accepts the session JWT from the "token" cookie or an
// Authorization Bearer header, verifies it, and loads the user into the
// request context. Authorization beyond "session exists" is not enforced
// here; role gating stays client-side.
func AuthMiddleware(appCtx *appcontext.Context) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := tokenFromRequest(ctx)

		if tokenString == "" {
			abortUnauthorized(ctx, "Authorization token is required")
			return
		}

		token, err := appCtx.JWT.Verify(tokenString)

		if err != nil || !token.Valid {
			abortUnauthorized(ctx, "Invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			abortUnauthorized(ctx, "Invalid token claims")
			return
		}

		userIDFloat, ok := claims["user_id"].(float64)

		if !ok {
			abortUnauthorized(ctx, "Invalid user ID in token claims")
			return
		}

		userID := uint(userIDFloat)

		var user models.User

		if err := appCtx.DB.Preload("Role").Where("id = ?", userID).First(&user).Error; err != nil {
			abortUnauthorized(ctx, "User not found")
			return
		}

		ctx.Set(ContextUserKey, AuthenticatedUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role.Name,
		})
		ctx.Next()
	}
}

func tokenFromRequest(ctx *gin.Context) string {
	if cookie, err := ctx.Cookie("token"); err == nil && cookie != "" {
		return cookie
	}

	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": message})
}
