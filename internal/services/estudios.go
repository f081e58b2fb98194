package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"laboratorio/internal/models"

	"gorm.io/gorm"
)

// PorPagina es el tamaño de página del listado de estudios.
const PorPagina = 20

// Estudios administra el ciclo de vida de las órdenes de laboratorio.
type Estudios struct {
	db *gorm.DB
}

func NewEstudios(db *gorm.DB) *Estudios {
	return &Estudios{db: db}
}

// Crear da de alta un estudio en estado pendiente con número de orden
// LAB-YYYYMMDD-NNNN, donde NNNN es (id del último estudio creado)+1.
//
// Las referencias a paciente y tipo se validan dentro de la misma
// transacción que crea la fila. La unicidad del número de orden la
// garantiza el índice único: si dos creadores concurrentes calculan la
// misma secuencia, uno falla con ErrDuplicatedKey y se reintenta.
func (s *Estudios) Crear(pacienteID, tipoEstudioID uint, prioridad models.Prioridad, observaciones string, usuarioID uint) (*models.Estudio, error) {
	if !models.PrioridadValida(prioridad) {
		prioridad = models.PrioridadNormal
	}

	const maxIntentos = 3
	var estudio *models.Estudio
	var err error
	for intento := 0; intento < maxIntentos; intento++ {
		estudio, err = s.crear(pacienteID, tipoEstudioID, prioridad, observaciones, usuarioID)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		return estudio, err
	}
	return nil, fmt.Errorf("asignación de número de orden: %w", err)
}

func (s *Estudios) crear(pacienteID, tipoEstudioID uint, prioridad models.Prioridad, observaciones string, usuarioID uint) (*models.Estudio, error) {
	var estudio models.Estudio

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var paciente models.Paciente
		if err := tx.First(&paciente, pacienteID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPacienteInexistente
			}
			return err
		}

		var tipo models.TipoEstudio
		if err := tx.First(&tipo, tipoEstudioID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrTipoEstudioInexistente
			}
			return err
		}

		ahora := time.Now()

		var secuencia uint = 1
		var ultimo models.Estudio
		err := tx.Order("id desc").First(&ultimo).Error
		switch {
		case err == nil:
			secuencia = ultimo.ID + 1
		case errors.Is(err, gorm.ErrRecordNotFound):
			// primera orden
		default:
			return err
		}

		estudio = models.Estudio{
			NumeroOrden:    fmt.Sprintf("LAB-%s-%04d", ahora.Format("20060102"), secuencia),
			PacienteID:     paciente.ID,
			TipoEstudioID:  tipo.ID,
			UsuarioID:      usuarioID,
			FechaSolicitud: ahora,
			Estado:         models.EstadoPendiente,
			Prioridad:      prioridad,
			Observaciones:  strings.TrimSpace(observaciones),
		}
		return tx.Create(&estudio).Error
	})
	if err != nil {
		return nil, err
	}
	return &estudio, nil
}

// ActualizarEstado aplica un cambio de estado y/o una carga de resultados.
// Ambos campos son opcionales: vacío significa "no tocar". Reglas:
//
//   - el estado nuevo debe ser una transición permitida; repetir el estado
//     actual es un no-op para ese campo
//   - pasar a completado sella fecha_resultado en ese momento, haya o no
//     resultados cargados
//   - pasar a en_proceso sella fecha_muestra si todavía no estaba
//   - resultados no vacío pisa el texto anterior (sin merge)
//
// Las fechas ya selladas nunca se borran.
func (s *Estudios) ActualizarEstado(id uint, estado, resultados string) (*models.Estudio, error) {
	var estudio models.Estudio

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&estudio, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoEncontrado
			}
			return err
		}

		if estado != "" {
			nuevo := models.Estado(estado)
			if !models.EstadoValido(nuevo) {
				return ErrTransicionInvalida
			}
			if nuevo != estudio.Estado {
				if !models.TransicionPermitida(estudio.Estado, nuevo) {
					return ErrTransicionInvalida
				}
				ahora := time.Now()
				if nuevo == models.EstadoCompletado {
					estudio.FechaResultado = &ahora
				}
				if nuevo == models.EstadoEnProceso && estudio.FechaMuestra == nil {
					estudio.FechaMuestra = &ahora
				}
				estudio.Estado = nuevo
			}
		}

		if resultados != "" {
			estudio.Resultados = resultados
		}

		return tx.Save(&estudio).Error
	})
	if err != nil {
		return nil, err
	}
	return &estudio, nil
}

// Obtener devuelve un estudio con sus referencias cargadas.
func (s *Estudios) Obtener(id uint) (*models.Estudio, error) {
	var estudio models.Estudio
	err := s.db.
		Preload("Paciente").
		Preload("TipoEstudio").
		Preload("Usuario").
		First(&estudio, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoEncontrado
		}
		return nil, err
	}
	return &estudio, nil
}

// Pagina es una página del listado de estudios.
type Pagina struct {
	Estudios []models.Estudio
	Total    int64
	Numero   int
	Paginas  int
}

// Listar devuelve los estudios por fecha de solicitud descendente, de a
// PorPagina. estado vacío lista todos; si no, filtra por coincidencia
// exacta. page es 1-based y se ajusta al rango válido.
func (s *Estudios) Listar(estado string, page int) (*Pagina, error) {
	filtro := func(q *gorm.DB) *gorm.DB {
		if estado != "" {
			q = q.Where("estado = ?", estado)
		}
		return q
	}

	var total int64
	if err := filtro(s.db.Model(&models.Estudio{})).Count(&total).Error; err != nil {
		return nil, err
	}

	paginas := int((total + PorPagina - 1) / PorPagina)
	if paginas < 1 {
		paginas = 1
	}
	if page < 1 {
		page = 1
	}
	if page > paginas {
		page = paginas
	}

	var estudios []models.Estudio
	err := filtro(s.db).
		Preload("Paciente").
		Preload("TipoEstudio").
		Order("fecha_solicitud desc").
		Limit(PorPagina).
		Offset((page - 1) * PorPagina).
		Find(&estudios).Error
	if err != nil {
		return nil, err
	}

	return &Pagina{
		Estudios: estudios,
		Total:    total,
		Numero:   page,
		Paginas:  paginas,
	}, nil
}
