package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/barrovivo/backend/internal/infrastructure/auth"
	"github.com/barrovivo/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	JWTUserIDKey  = "jwt_user_id"
	JWTEmailKey   = "jwt_email"
	JWTIsStaffKey = "jwt_is_staff"

	authHeaderKey = "Authorization"
	bearerPrefix  = "Bearer "
)

// Auth validates the bearer token and stores the claims in the context.
// Requests without a valid token get a 401.
func Auth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(authHeaderKey)
		if authHeader == "" || !strings.HasPrefix(authHeader, bearerPrefix) {
			abortUnauthorized(c, dto.ErrCodeUnauthorized, "Authentication required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, bearerPrefix)
		claims, err := jwtService.Validate(tokenString)
		if err != nil {
			code := dto.ErrCodeTokenInvalid
			message := "Invalid token"
			if errors.Is(err, auth.ErrExpiredToken) {
				code = dto.ErrCodeTokenExpired
				message = "Token has expired"
			}
			abortUnauthorized(c, code, message)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTUserIDKey, claims.UserID)
		c.Set(JWTEmailKey, claims.Email)
		c.Set(JWTIsStaffKey, claims.IsStaff)
		c.Next()
	}
}

// RequireStaff rejects non-staff users with a 403. It must run after Auth.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsStaff(c) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Staff access required"))
			return
		}
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(code, message))
}

// GetClaims retrieves the validated claims from the context
func GetClaims(c *gin.Context) *auth.Claims {
	if value, exists := c.Get(JWTClaimsKey); exists {
		if claims, ok := value.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID retrieves the authenticated user's ID from the context
func GetUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := c.GetString(JWTUserIDKey)
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userIDStr)
}

// IsStaff reports whether the authenticated user is staff
func IsStaff(c *gin.Context) bool {
	return c.GetBool(JWTIsStaffKey)
}
