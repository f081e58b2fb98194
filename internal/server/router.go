package server

import (
	"html/template"
	"net/http"
	"time"

	"laboratorio/internal/config"
	"laboratorio/internal/handlers"
	"laboratorio/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Static("/static", "./web/static")

	r.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"fecha": func(t time.Time) string {
			return t.Format("02/01/2006 15:04")
		},
		"fechaPtr": func(t *time.Time) string {
			if t == nil {
				return "-"
			}
			return t.Format("02/01/2006 15:04")
		},
	})
	r.LoadHTMLGlob("web/templates/*.html")

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("lab_session", store))

	r.Use(middleware.InjectUser(db))

	h := handlers.New(db)

	r.GET("/", h.Index)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())

	// DASHBOARD
	auth.GET("/dashboard", h.Dashboard)

	// ESTUDIOS
	auth.GET("/estudios", h.ListarEstudios)
	auth.GET("/estudios/nuevo", h.NuevoEstudio)
	auth.POST("/estudios/nuevo", h.CrearEstudio)
	auth.GET("/estudios/:id", h.VerEstudio)
	auth.POST("/estudios/:id/actualizar", h.ActualizarEstudio)

	// PACIENTES
	auth.GET("/pacientes", h.ListarPacientes)
	auth.GET("/pacientes/nuevo", h.NuevoPaciente)
	auth.POST("/pacientes/nuevo", h.CrearPaciente)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
