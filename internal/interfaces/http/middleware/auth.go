package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eathub.backend/pkg/jwt"
	"eathub.backend/pkg/redis"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// AuthCookieName is the session cookie carrying "<user uuid>:<token>"
	AuthCookieName = "auth_token"
	// UserIDKey is the context key for user ID
	UserIDKey = "userId"
	// UserEmailKey is the context key for user email
	UserEmailKey = "userEmail"
	// UserRoleKey is the context key for user role
	UserRoleKey = "userRole"
)

// AuthMiddleware authenticates a request by JWT bearer token or by the
// opaque session cookie. Either path resolves to a user id in the context.
func AuthMiddleware(jwtService *jwt.Service, tokens *redis.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if strings.HasPrefix(authHeader, BearerPrefix) {
			tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				if err == jwt.ErrExpiredToken {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token 已過期"})
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無效的 Token"})
				return
			}
			c.Set(UserIDKey, claims.UserID)
			c.Set(UserEmailKey, claims.Email)
			c.Set(UserRoleKey, claims.Role)
			c.Next()
			return
		}

		cookie, err := c.Cookie(AuthCookieName)
		if err != nil || cookie == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "未提供 Token"})
			return
		}
		userPart, tokenPart, ok := strings.Cut(cookie, ":")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無效的 Token"})
			return
		}
		userID, err := uuid.Parse(userPart)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無效的 Token"})
			return
		}
		if err := tokens.Validate(c.Request.Context(), userPart, tokenPart); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "無效的 Token"})
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// GetUserID gets the user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return userID.(uuid.UUID), true
}
