package middleware

import (
	"laboratorio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// InjectUser carga el Usuario de la sesión en el contexto de gin, para los
// templates y para atribuir las órdenes creadas.
func InjectUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get("user_id"); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var usuario models.Usuario
				if err := db.First(&usuario, uid).Error; err == nil {
					c.Set("CurrentUser", usuario)
				}
			}
		}

		c.Next()
	}
}
