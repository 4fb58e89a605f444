package middleware

import (
	"net/http"
	"strings"

	"boardinghouse-backend/services"
	"boardinghouse-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

// Auth validates the bearer credential and puts the caller's user id in
// the context. The token is read from the Authorization header or the
// x-auth-token header, which older clients still send.
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.GetHeader("x-auth-token")
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
		}
		if tokenStr == "" {
			utils.JSONError(c, http.StatusUnauthorized, "No token, authorization denied")
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenStr, &services.Claims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "Token is not valid")
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user id set by Auth.
func CurrentUserID(c *gin.Context) uint {
	return c.GetUint(userIDKey)
}
