package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/tablemap/floorplan-app/utils"
)

// WebSocketAuthMiddleware reads the staff token from the query string,
// karena browser WebSocket API tidak bisa mengirim Authorization header.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			c.AbortWithStatus(401)
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(401)
			return
		}

		c.Set("role", claims.Role)
		c.Set("user_id", claims.UserID)

		c.Next()
	}
}
