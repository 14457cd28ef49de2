package middleware

import (
	"net/http"

	"github.com/ungaaaabungaaa/yumyard-sub000/helpers"

	"github.com/gin-gonic/gin"
)

// Authentication gates a route behind a valid session token carrying one of
// the allowed roles. The token lives in an httpOnly cookie; the token header
// is honoured as a fallback for non-browser clients.
func Authentication(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken, err := c.Cookie("token")
		if err != nil || clientToken == "" {
			clientToken = c.Request.Header.Get("token")
		}
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session token provided"})
			c.Abort()
			return
		}
		claims, msg := helpers.ValidateToken(clientToken)
		if msg != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}
		if len(allowedRoles) > 0 {
			allowed := false
			for _, role := range allowedRoles {
				if claims.User_role == role {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
				c.Abort()
				return
			}
		}
		c.Set("uid", claims.Uid)
		c.Set("name", claims.Name)
		c.Set("user_role", claims.User_role)
		c.Next()
	}
}
