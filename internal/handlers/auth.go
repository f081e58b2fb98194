package handlers

import (
	"net/http"
	"strings"

	"laboratorio/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	render(c, http.StatusOK, "login.html", gin.H{
		"error": "",
		"next":  c.Query("next"),
	})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Next     string `form:"next"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Datos inválidos", "next": ""})
		return
	}

	usuario, err := h.credenciales.Verificar(strings.TrimSpace(form.Username), form.Password)
	if err != nil {
		// mismo mensaje exista o no el usuario
		render(c, http.StatusUnauthorized, "login.html", gin.H{
			"error": "Usuario o contraseña incorrectos",
			"next":  form.Next,
		})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", usuario.ID)
	sess.Set("rol", string(usuario.Rol))
	_ = sess.Save()

	flash(c, "Inicio de sesión exitoso")

	// solo rutas internas como destino post-login
	if form.Next != "" && strings.HasPrefix(form.Next, "/") && !strings.HasPrefix(form.Next, "//") {
		c.Redirect(http.StatusFound, form.Next)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	sess.AddFlash("Sesión cerrada exitosamente")
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}

// Index redirige según haya sesión o no.
func (h *Handler) Index(c *gin.Context) {
	sess := sessions.Default(c)
	if sess.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// currentUser devuelve el usuario cargado por middleware.InjectUser.
func currentUser(c *gin.Context) (models.Usuario, bool) {
	uVal, ok := c.Get("CurrentUser")
	if !ok {
		return models.Usuario{}, false
	}
	u, ok := uVal.(models.Usuario)
	return u, ok
}
