package services

import (
	"errors"
	"strings"
	"time"

	"laboratorio/internal/models"

	"gorm.io/gorm"
)

// Pacientes administra el padrón de pacientes.
type Pacientes struct {
	db *gorm.DB
}

func NewPacientes(db *gorm.DB) *Pacientes {
	return &Pacientes{db: db}
}

// Listar devuelve todos los pacientes ordenados por apellido.
func (s *Pacientes) Listar() ([]models.Paciente, error) {
	var pacientes []models.Paciente
	err := s.db.Order("apellido asc").Find(&pacientes).Error
	return pacientes, err
}

// RegistroPaciente son los campos del alta de paciente.
type RegistroPaciente struct {
	Nombre          string
	Apellido        string
	Documento       string
	FechaNacimiento *time.Time
	Telefono        string
	Email           string
	Direccion       string
}

// Registrar da de alta un paciente. Nombre, apellido y documento son
// obligatorios; el documento es único en todo el padrón.
func (s *Pacientes) Registrar(reg RegistroPaciente) (*models.Paciente, error) {
	reg.Nombre = strings.TrimSpace(reg.Nombre)
	reg.Apellido = strings.TrimSpace(reg.Apellido)
	reg.Documento = strings.TrimSpace(reg.Documento)

	if reg.Nombre == "" || reg.Apellido == "" || reg.Documento == "" {
		return nil, ErrCampoRequerido
	}

	paciente := models.Paciente{
		Nombre:          reg.Nombre,
		Apellido:        reg.Apellido,
		Documento:       reg.Documento,
		FechaNacimiento: reg.FechaNacimiento,
		Telefono:        strings.TrimSpace(reg.Telefono),
		Email:           strings.TrimSpace(reg.Email),
		Direccion:       strings.TrimSpace(reg.Direccion),
		FechaRegistro:   time.Now(),
	}

	if err := s.db.Create(&paciente).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDocumentoDuplicado
		}
		return nil, err
	}
	return &paciente, nil
}
