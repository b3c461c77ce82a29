package middlewares

import (
	"strings"

	"github.com/Zzzzzsaz/ecommifyy/utils"

	"github.com/gin-gonic/gin"
)

// Identity dekoduje token, gdy jest w naglowku, i wstawia nazwe usera
// do kontekstu. Brak albo zly token niczego nie blokuje, endpointy nie
// sa bramkowane.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			if claims, err := utils.VerifyToken(strings.TrimPrefix(auth, "Bearer ")); err == nil {
				if name, ok := claims["name"].(string); ok {
					c.Set("user_name", name)
				}
				if username, ok := claims["username"].(string); ok {
					c.Set("username", username)
				}
			}
		}
		c.Next()
	}
}
