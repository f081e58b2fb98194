package services

import (
	"laboratorio/internal/models"

	"gorm.io/gorm"
)

// Dashboard calcula los agregados de la pantalla principal. Es una vista
// derivada de los estudios: se recalcula en cada request, sin caché.
type Dashboard struct {
	db *gorm.DB
}

func NewDashboard(db *gorm.DB) *Dashboard {
	return &Dashboard{db: db}
}

type Resumen struct {
	Total       int64
	Pendientes  int64
	EnProceso   int64
	Completados int64
	Recientes   []models.Estudio
}

// Resumen devuelve los contadores por estado y los 10 estudios más
// recientes por fecha de solicitud.
func (s *Dashboard) Resumen() (*Resumen, error) {
	r := &Resumen{}

	if err := s.db.Model(&models.Estudio{}).Count(&r.Total).Error; err != nil {
		return nil, err
	}

	porEstado := []struct {
		estado  models.Estado
		destino *int64
	}{
		{models.EstadoPendiente, &r.Pendientes},
		{models.EstadoEnProceso, &r.EnProceso},
		{models.EstadoCompletado, &r.Completados},
	}
	for _, pe := range porEstado {
		err := s.db.Model(&models.Estudio{}).
			Where("estado = ?", pe.estado).
			Count(pe.destino).Error
		if err != nil {
			return nil, err
		}
	}

	err := s.db.
		Preload("Paciente").
		Preload("TipoEstudio").
		Order("fecha_solicitud desc").
		Limit(10).
		Find(&r.Recientes).Error
	if err != nil {
		return nil, err
	}

	return r, nil
}
