package models

// TipoEstudio es una entrada del catálogo de análisis disponibles.
// Datos de referencia: se siembran al arranque y no se editan desde la app.
type TipoEstudio struct {
	ID              uint    `gorm:"primaryKey"`
	Codigo          string  `gorm:"uniqueIndex;size:20;not null"`
	Nombre          string  `gorm:"size:100;not null"`
	Descripcion     string  `gorm:"type:text"`
	Precio          float64 `gorm:"not null;default:0"`
	TiempoResultado int     `gorm:"not null;default:24"` // horas
	Activo          bool    `gorm:"not null;default:true"`

	Estudios []Estudio `gorm:"foreignKey:TipoEstudioID"`
}

func (TipoEstudio) TableName() string { return "tipos_estudio" }
