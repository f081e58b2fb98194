package models

import "time"

type Rol string

const (
	RolAdmin   Rol = "admin"
	RolTecnico Rol = "tecnico"
	RolUsuario Rol = "usuario"
)

// Usuario es un operador del sistema (no un paciente).
type Usuario struct {
	ID            uint      `gorm:"primaryKey"`
	Username      string    `gorm:"uniqueIndex;size:80;not null"`
	Email         string    `gorm:"uniqueIndex;size:120;not null"`
	PasswordHash  string    `gorm:"size:255;not null"`
	Nombre        string    `gorm:"size:100;not null"`
	Rol           Rol       `gorm:"type:varchar(20);not null;default:usuario"`
	Activo        bool      `gorm:"not null;default:true"`
	FechaCreacion time.Time `gorm:"autoCreateTime"`

	Estudios []Estudio `gorm:"foreignKey:UsuarioID"`
}

func (Usuario) TableName() string { return "usuarios" }
