package middleware

import (
	"context"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"eventmanager/pkg/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	ContextUserID   = "user_id"
	ContextUserType = "user_type"
	ContextRoleID   = "role_id"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {
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

		// Pass user information to the next handler
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserType, claims.UserType)
		c.Set(ContextRoleID, claims.RoleID)
		c.Next()
	}
}

// RequireUserType lets the request through only for the given account kinds.
func RequireUserType(userTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !slices.Contains(userTypes, c.GetString(ContextUserType)) {
			utils.RespondError(c, http.StatusForbidden, utils.ErrInsufficientRights.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}

// PermissionChecker resolves the role an account holds now.
type PermissionChecker interface {
	AccountHasPermission(ctx context.Context, accountKind, accountID, permissionName string) (bool, error)
}

// RequirePermission checks the caller's current role, not the role_id claim,
// which goes stale when the account changes role or the role is deleted.
func RequirePermission(checker PermissionChecker, permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := checker.AccountHasPermission(c.Request.Context(), c.GetString(ContextUserType), c.GetString(ContextUserID), permission)
		if err != nil {
			utils.HandleServiceError(c, err)
			c.Abort()
			return
		}
		if !ok {
			utils.RespondError(c, http.StatusForbidden, utils.ErrInsufficientRights.Error())
			c.Abort()
			return
		}
		c.Next()
	}
}
