package services_test

import (
	"testing"

	"laboratorio/internal/models"
	"laboratorio/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacientesRegistrar(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPacientes(db)

	paciente, err := svc.Registrar(services.RegistroPaciente{
		Nombre:    "  Juan ",
		Apellido:  "Pérez",
		Documento: "12345678",
		Telefono:  "1123456789",
	})
	require.NoError(t, err)
	assert.NotZero(t, paciente.ID)
	assert.Equal(t, "Juan", paciente.Nombre)
	assert.False(t, paciente.FechaRegistro.IsZero())
}

func TestPacientesCamposObligatorios(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPacientes(db)

	tests := []struct {
		name string
		reg  services.RegistroPaciente
	}{
		{"sin nombre", services.RegistroPaciente{Apellido: "Pérez", Documento: "1"}},
		{"sin apellido", services.RegistroPaciente{Nombre: "Juan", Documento: "1"}},
		{"sin documento", services.RegistroPaciente{Nombre: "Juan", Apellido: "Pérez"}},
		{"documento en blanco", services.RegistroPaciente{Nombre: "Juan", Apellido: "Pérez", Documento: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Registrar(tt.reg)
			assert.ErrorIs(t, err, services.ErrCampoRequerido)
		})
	}
}

func TestPacientesDocumentoDuplicado(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPacientes(db)

	original, err := svc.Registrar(services.RegistroPaciente{
		Nombre: "Juan", Apellido: "Pérez", Documento: "12345678",
	})
	require.NoError(t, err)

	_, err = svc.Registrar(services.RegistroPaciente{
		Nombre: "Otro", Apellido: "Paciente", Documento: "12345678",
	})
	assert.ErrorIs(t, err, services.ErrDocumentoDuplicado)

	// la fila existente queda intacta
	var guardado models.Paciente
	require.NoError(t, db.First(&guardado, original.ID).Error)
	assert.Equal(t, "Juan", guardado.Nombre)
	assert.Equal(t, "Pérez", guardado.Apellido)

	var count int64
	require.NoError(t, db.Model(&models.Paciente{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestPacientesListarPorApellido(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewPacientes(db)

	crearPaciente(t, db, "Carlos", "Rodríguez", "34567890")
	crearPaciente(t, db, "María", "González", "23456789")
	crearPaciente(t, db, "Luis", "Fernández", "56789012")

	pacientes, err := svc.Listar()
	require.NoError(t, err)
	require.Len(t, pacientes, 3)
	assert.Equal(t, "Fernández", pacientes[0].Apellido)
	assert.Equal(t, "González", pacientes[1].Apellido)
	assert.Equal(t, "Rodríguez", pacientes[2].Apellido)
}
