package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	resumen, err := h.dashboard.Resumen()
	if err != nil {
		c.String(http.StatusInternalServerError, "Error al calcular el resumen")
		return
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"TotalEstudios":       resumen.Total,
		"EstudiosPendientes":  resumen.Pendientes,
		"EstudiosProceso":     resumen.EnProceso,
		"EstudiosCompletados": resumen.Completados,
		"UltimosEstudios":     resumen.Recientes,
	})
}
