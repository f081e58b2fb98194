// Package services contiene la lógica de negocio del laboratorio.
// Cada servicio recibe su *gorm.DB por constructor; acá no hay estado global.
package services

import "errors"

var (
	ErrCredencialesInvalidas  = errors.New("usuario o contraseña incorrectos")
	ErrNoEncontrado           = errors.New("registro no encontrado")
	ErrCampoRequerido         = errors.New("falta un campo obligatorio")
	ErrDocumentoDuplicado     = errors.New("ya existe un paciente con ese documento")
	ErrPacienteInexistente    = errors.New("el paciente indicado no existe")
	ErrTipoEstudioInexistente = errors.New("el tipo de estudio indicado no existe")
	ErrTransicionInvalida     = errors.New("transición de estado no permitida")
)
