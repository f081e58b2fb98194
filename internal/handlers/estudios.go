package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"laboratorio/internal/models"
	"laboratorio/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListarEstudios(c *gin.Context) {
	estado := c.Query("estado")
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	pagina, err := h.estudios.Listar(estado, page)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al listar estudios")
		return
	}

	render(c, http.StatusOK, "estudios_list.html", gin.H{
		"Estudios":     pagina.Estudios,
		"Total":        pagina.Total,
		"Pagina":       pagina.Numero,
		"Paginas":      pagina.Paginas,
		"TieneAnt":     pagina.Numero > 1,
		"TieneSig":     pagina.Numero < pagina.Paginas,
		"EstadoFiltro": estado,
	})
}

func (h *Handler) NuevoEstudio(c *gin.Context) {
	h.renderNuevoEstudio(c, http.StatusOK, "")
}

func (h *Handler) CrearEstudio(c *gin.Context) {
	pacienteID, err := strconv.Atoi(c.PostForm("paciente_id"))
	if err != nil || pacienteID <= 0 {
		h.renderNuevoEstudio(c, http.StatusBadRequest, "Seleccione un paciente")
		return
	}
	tipoID, err := strconv.Atoi(c.PostForm("tipo_estudio_id"))
	if err != nil || tipoID <= 0 {
		h.renderNuevoEstudio(c, http.StatusBadRequest, "Seleccione un tipo de estudio")
		return
	}

	prioridad := models.Prioridad(c.PostForm("prioridad"))
	observaciones := c.PostForm("observaciones")

	usuario, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	estudio, err := h.estudios.Crear(uint(pacienteID), uint(tipoID), prioridad, observaciones, usuario.ID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPacienteInexistente):
			h.renderNuevoEstudio(c, http.StatusBadRequest, "El paciente seleccionado no existe")
		case errors.Is(err, services.ErrTipoEstudioInexistente):
			h.renderNuevoEstudio(c, http.StatusBadRequest, "El tipo de estudio seleccionado no existe")
		default:
			c.String(http.StatusInternalServerError, "Error al crear el estudio")
		}
		return
	}

	flash(c, "Estudio "+estudio.NumeroOrden+" creado exitosamente")
	c.Redirect(http.StatusFound, "/estudios/"+strconv.FormatUint(uint64(estudio.ID), 10))
}

func (h *Handler) renderNuevoEstudio(c *gin.Context, status int, msg string) {
	pacientes, err := h.pacientes.Listar()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar pacientes")
		return
	}
	tipos, err := h.catalogo.ListarActivos()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al cargar el catálogo")
		return
	}

	render(c, status, "estudios_new.html", gin.H{
		"Pacientes":    pacientes,
		"TiposEstudio": tipos,
		"error":        msg,
	})
}

func (h *Handler) VerEstudio(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID de estudio inválido")
		return
	}

	estudio, err := h.estudios.Obtener(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNoEncontrado) {
			c.String(http.StatusNotFound, "Estudio no encontrado")
			return
		}
		c.String(http.StatusInternalServerError, "Error al cargar el estudio")
		return
	}

	render(c, http.StatusOK, "estudios_detail.html", gin.H{
		"Estudio": estudio,
	})
}

func (h *Handler) ActualizarEstudio(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		c.String(http.StatusBadRequest, "ID de estudio inválido")
		return
	}

	estado := c.PostForm("estado")
	resultados := c.PostForm("resultados")

	_, err = h.estudios.ActualizarEstado(uint(id), estado, resultados)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoEncontrado):
			c.String(http.StatusNotFound, "Estudio no encontrado")
		case errors.Is(err, services.ErrTransicionInvalida):
			flash(c, "Cambio de estado no permitido")
			c.Redirect(http.StatusFound, "/estudios/"+idStr)
		default:
			c.String(http.StatusInternalServerError, "Error al actualizar el estudio")
		}
		return
	}

	flash(c, "Estudio actualizado exitosamente")
	c.Redirect(http.StatusFound, "/estudios/"+idStr)
}
