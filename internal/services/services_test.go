package services_test

import (
	"fmt"
	"strings"
	"testing"

	"laboratorio/internal/database"
	"laboratorio/internal/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB abre una base sqlite en memoria propia del test, con el mismo
// esquema y la misma traducción de errores que la base real.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// una base con nombre por test: varias conexiones del pool ven la
	// misma memoria, y tests distintos no se pisan
	nombre := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", nombre)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func crearUsuario(t *testing.T, db *gorm.DB, username, password string, activo bool) *models.Usuario {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	u := &models.Usuario{
		Username:     username,
		Email:        username + "@laboratorio.com",
		PasswordHash: string(hash),
		Nombre:       "Usuario " + username,
		Rol:          models.RolTecnico,
		Activo:       true,
	}
	require.NoError(t, db.Create(u).Error)
	if !activo {
		// gorm omite los bool en cero cuando la columna tiene default,
		// así que la baja se hace con un update explícito
		require.NoError(t, db.Model(u).Update("activo", false).Error)
		u.Activo = false
	}
	return u
}

func crearPaciente(t *testing.T, db *gorm.DB, nombre, apellido, documento string) *models.Paciente {
	t.Helper()

	p := &models.Paciente{Nombre: nombre, Apellido: apellido, Documento: documento}
	require.NoError(t, db.Create(p).Error)
	return p
}

func crearTipoEstudio(t *testing.T, db *gorm.DB, codigo, nombre string) *models.TipoEstudio {
	t.Helper()

	tipo := &models.TipoEstudio{
		Codigo:          codigo,
		Nombre:          nombre,
		Precio:          1000,
		TiempoResultado: 24,
		Activo:          true,
	}
	require.NoError(t, db.Create(tipo).Error)
	return tipo
}
