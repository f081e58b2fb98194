package models

import "time"

type Estado string
type Prioridad string

const (
	EstadoPendiente  Estado = "pendiente"
	EstadoEnProceso  Estado = "en_proceso"
	EstadoCompletado Estado = "completado"
	EstadoCancelado  Estado = "cancelado"

	PrioridadUrgente Prioridad = "urgente"
	PrioridadNormal  Prioridad = "normal"
	PrioridadBaja    Prioridad = "baja"
)

// Estudio es una orden de laboratorio sobre un paciente.
type Estudio struct {
	ID          uint   `gorm:"primaryKey"`
	NumeroOrden string `gorm:"uniqueIndex;size:50;not null"`

	PacienteID uint `gorm:"not null"`
	Paciente   Paciente

	TipoEstudioID uint `gorm:"not null"`
	TipoEstudio   TipoEstudio

	UsuarioID uint `gorm:"not null"`
	Usuario   Usuario

	FechaSolicitud time.Time
	FechaMuestra   *time.Time
	FechaResultado *time.Time

	Estado    Estado    `gorm:"type:varchar(20);not null;default:pendiente"`
	Prioridad Prioridad `gorm:"type:varchar(20);not null;default:normal"`

	Observaciones string `gorm:"type:text"`
	Resultados    string `gorm:"type:text"`
}

func (Estudio) TableName() string { return "estudios" }

// EstadoValido reconoce los cuatro estados del ciclo de vida.
func EstadoValido(e Estado) bool {
	switch e {
	case EstadoPendiente, EstadoEnProceso, EstadoCompletado, EstadoCancelado:
		return true
	}
	return false
}

// PrioridadValida reconoce las tres prioridades admitidas.
func PrioridadValida(p Prioridad) bool {
	switch p {
	case PrioridadUrgente, PrioridadNormal, PrioridadBaja:
		return true
	}
	return false
}

// TransicionPermitida implementa la tabla de transiciones del ciclo de vida.
// completado y cancelado son terminales.
func TransicionPermitida(actual, siguiente Estado) bool {
	switch actual {
	case EstadoPendiente:
		return siguiente == EstadoEnProceso ||
			siguiente == EstadoCompletado ||
			siguiente == EstadoCancelado
	case EstadoEnProceso:
		return siguiente == EstadoCompletado || siguiente == EstadoCancelado
	default:
		return false
	}
}
