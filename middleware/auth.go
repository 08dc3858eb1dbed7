package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates the admin routes behind a static bearer token. The
// comparison is constant-time and exact; a prefix or superset of the
// configured token must fail.
func AdminAuth(adminToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// A service with no token configured has no admin surface.
		if adminToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Acceso de administrador no configurado"})
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token de autorización requerido"})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Formato de autorización inválido"})
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
			c.Abort()
			return
		}

		c.Next()
	}
}
