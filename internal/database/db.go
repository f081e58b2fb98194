package database

import (
	"fmt"
	"log"
	"time"

	"laboratorio/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open conecta contra Postgres con reintentos y ejecuta las migraciones.
// TranslateError hace que las violaciones de índice único lleguen como
// gorm.ErrDuplicatedKey (lo usan el registro de pacientes y la asignación
// de números de orden).
func Open(dsn string) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Usuario{},
		&models.Paciente{},
		&models.TipoEstudio{},
		&models.Estudio{},
	)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
