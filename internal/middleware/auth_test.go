package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"laboratorio/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(ejecutado *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	store := cookie.NewStore([]byte("secreto-de-test"))
	r.Use(sessions.Sessions("lab_session", store))

	// login de prueba que solo establece la sesión
	r.POST("/login", func(c *gin.Context) {
		sess := sessions.Default(c)
		sess.Set("user_id", uint(1))
		_ = sess.Save()
		c.Status(http.StatusOK)
	})

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.GET("/dashboard", func(c *gin.Context) {
		*ejecutado = true
		c.Status(http.StatusOK)
	})

	return r
}

func TestRequireAuthSinSesion(t *testing.T) {
	ejecutado := false
	r := newTestEngine(&ejecutado)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard?page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login?next=%2Fdashboard%3Fpage%3D2", w.Header().Get("Location"))
	// el handler protegido nunca llegó a ejecutarse
	assert.False(t, ejecutado)
}

func TestRequireAuthConSesion(t *testing.T) {
	ejecutado := false
	r := newTestEngine(&ejecutado)

	// primero login para obtener la cookie de sesión
	login := httptest.NewRecorder()
	r.ServeHTTP(login, httptest.NewRequest(http.MethodPost, "/login", nil))
	require.Equal(t, http.StatusOK, login.Code)
	cookies := login.Result().Cookies()
	require.NotEmpty(t, cookies)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ejecutado)
}
