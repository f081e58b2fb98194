package handlers

import (
	"errors"
	"net/http"
	"time"

	"laboratorio/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListarPacientes(c *gin.Context) {
	pacientes, err := h.pacientes.Listar()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al listar pacientes")
		return
	}

	render(c, http.StatusOK, "pacientes_list.html", gin.H{
		"Pacientes": pacientes,
	})
}

func (h *Handler) NuevoPaciente(c *gin.Context) {
	render(c, http.StatusOK, "pacientes_new.html", gin.H{"error": ""})
}

func (h *Handler) CrearPaciente(c *gin.Context) {
	reg := services.RegistroPaciente{
		Nombre:    c.PostForm("nombre"),
		Apellido:  c.PostForm("apellido"),
		Documento: c.PostForm("documento"),
		Telefono:  c.PostForm("telefono"),
		Email:     c.PostForm("email"),
		Direccion: c.PostForm("direccion"),
	}

	if fn := c.PostForm("fecha_nacimiento"); fn != "" {
		if t, err := time.Parse("2006-01-02", fn); err == nil {
			reg.FechaNacimiento = &t
		}
	}

	_, err := h.pacientes.Registrar(reg)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCampoRequerido):
			render(c, http.StatusBadRequest, "pacientes_new.html",
				gin.H{"error": "Nombre, apellido y documento son obligatorios"})
		case errors.Is(err, services.ErrDocumentoDuplicado):
			render(c, http.StatusBadRequest, "pacientes_new.html",
				gin.H{"error": "Ya existe un paciente con ese documento"})
		default:
			c.String(http.StatusInternalServerError, "Error al registrar el paciente")
		}
		return
	}

	flash(c, "Paciente registrado exitosamente")
	c.Redirect(http.StatusFound, "/pacientes")
}
