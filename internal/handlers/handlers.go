package handlers

import (
	"laboratorio/internal/services"

	"gorm.io/gorm"
)

// Handler agrupa los servicios que usan las rutas. Se construye una sola
// vez en el router; los handlers son métodos sobre esta struct.
type Handler struct {
	credenciales *services.Credenciales
	pacientes    *services.Pacientes
	catalogo     *services.Catalogo
	estudios     *services.Estudios
	dashboard    *services.Dashboard
}

func New(db *gorm.DB) *Handler {
	return &Handler{
		credenciales: services.NewCredenciales(db),
		pacientes:    services.NewPacientes(db),
		catalogo:     services.NewCatalogo(db),
		estudios:     services.NewEstudios(db),
		dashboard:    services.NewDashboard(db),
	}
}
