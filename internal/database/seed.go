package database

import (
	"errors"
	"log"

	"laboratorio/internal/config"
	"laboratorio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed deja la base en condiciones de uso: asegura un usuario admin y
// carga el catálogo de tipos de estudio si está vacío.
func Seed(db *gorm.DB, cfg *config.Config) error {
	if err := ensureAdmin(db, cfg); err != nil {
		return err
	}
	return seedTiposEstudio(db)
}

// ensureAdmin crea el admin inicial. No hay contraseña por defecto: si
// todavía no existe ningún admin, ADMIN_PASSWORD es obligatoria.
func ensureAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	if err := db.Model(&models.Usuario{}).
		Where("rol = ?", models.RolAdmin).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		return errors.New("no admin user exists and ADMIN_PASSWORD is not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Usuario{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		Nombre:       "Administrador del Sistema",
		Rol:          models.RolAdmin,
		Activo:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("created default admin user: %s", admin.Username)
	return nil
}

func seedTiposEstudio(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.TipoEstudio{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tipos := []models.TipoEstudio{
		{Codigo: "HMG", Nombre: "Hemograma Completo", Descripcion: "Análisis completo de células sanguíneas", Precio: 1500, TiempoResultado: 24, Activo: true},
		{Codigo: "GLU", Nombre: "Glucemia", Descripcion: "Medición de glucosa en sangre", Precio: 800, TiempoResultado: 12, Activo: true},
		{Codigo: "COL", Nombre: "Colesterol Total", Descripcion: "Medición de colesterol en sangre", Precio: 900, TiempoResultado: 24, Activo: true},
		{Codigo: "ORI", Nombre: "Orina Completa", Descripcion: "Análisis completo de orina", Precio: 700, TiempoResultado: 24, Activo: true},
		{Codigo: "TSH", Nombre: "Hormona Tiroidea (TSH)", Descripcion: "Medición de hormona estimulante de tiroides", Precio: 1200, TiempoResultado: 48, Activo: true},
		{Codigo: "CRE", Nombre: "Creatinina", Descripcion: "Función renal - Creatinina sérica", Precio: 850, TiempoResultado: 24, Activo: true},
		{Codigo: "TGO", Nombre: "Transaminasas (TGO/TGP)", Descripcion: "Función hepática", Precio: 1100, TiempoResultado: 24, Activo: true},
		{Codigo: "PCR", Nombre: "Proteína C Reactiva", Descripcion: "Marcador de inflamación", Precio: 950, TiempoResultado: 24, Activo: true},
	}

	if err := db.Create(&tipos).Error; err != nil {
		return err
	}

	log.Printf("seeded %d tipos de estudio", len(tipos))
	return nil
}
