package database_test

import (
	"fmt"
	"strings"
	"testing"

	"laboratorio/internal/config"
	"laboratorio/internal/database"
	"laboratorio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

func TestSeedExigeAdminPassword(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{AdminUsername: "admin", AdminEmail: "admin@laboratorio.com"}
	err := database.Seed(db, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")

	var count int64
	require.NoError(t, db.Model(&models.Usuario{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestSeedCreaAdminYCatalogo(t *testing.T) {
	db := newTestDB(t)

	cfg := &config.Config{
		AdminUsername: "admin",
		AdminEmail:    "admin@laboratorio.com",
		AdminPassword: "cambiar-ya",
	}
	require.NoError(t, database.Seed(db, cfg))

	var admin models.Usuario
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	assert.Equal(t, models.RolAdmin, admin.Rol)
	assert.True(t, admin.Activo)
	assert.NotEqual(t, "cambiar-ya", admin.PasswordHash)

	var tipos int64
	require.NoError(t, db.Model(&models.TipoEstudio{}).Count(&tipos).Error)
	assert.EqualValues(t, 8, tipos)

	// el seed es idempotente
	require.NoError(t, database.Seed(db, cfg))

	var usuarios int64
	require.NoError(t, db.Model(&models.Usuario{}).Count(&usuarios).Error)
	assert.EqualValues(t, 1, usuarios)
	require.NoError(t, db.Model(&models.TipoEstudio{}).Count(&tipos).Error)
	assert.EqualValues(t, 8, tipos)
}
