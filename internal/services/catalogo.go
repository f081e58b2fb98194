package services

import (
	"laboratorio/internal/models"

	"gorm.io/gorm"
)

// Catalogo expone los tipos de estudio. Solo lectura: el catálogo se
// siembra al arranque (database.Seed) y no se edita desde la aplicación.
type Catalogo struct {
	db *gorm.DB
}

func NewCatalogo(db *gorm.DB) *Catalogo {
	return &Catalogo{db: db}
}

// ListarActivos devuelve los tipos activos ordenados por nombre.
func (s *Catalogo) ListarActivos() ([]models.TipoEstudio, error) {
	var tipos []models.TipoEstudio
	err := s.db.Where("activo = ?", true).Order("nombre asc").Find(&tipos).Error
	return tipos, err
}
