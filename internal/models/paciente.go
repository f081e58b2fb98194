package models

import "time"

type Paciente struct {
	ID              uint       `gorm:"primaryKey"`
	Nombre          string     `gorm:"size:100;not null"`
	Apellido        string     `gorm:"size:100;not null"`
	Documento       string     `gorm:"uniqueIndex;size:20;not null"`
	FechaNacimiento *time.Time
	Telefono        string     `gorm:"size:20"`
	Email           string     `gorm:"size:120"`
	Direccion       string     `gorm:"size:200"`
	FechaRegistro   time.Time  `gorm:"autoCreateTime"`

	Estudios []Estudio `gorm:"foreignKey:PacienteID"`
}

func (Paciente) TableName() string { return "pacientes" }
