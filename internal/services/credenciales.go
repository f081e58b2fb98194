package services

import (
	"errors"

	"laboratorio/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Credenciales verifica y administra contraseñas de usuarios.
type Credenciales struct {
	db *gorm.DB
}

func NewCredenciales(db *gorm.DB) *Credenciales {
	return &Credenciales{db: db}
}

// Verificar devuelve el usuario si username/password corresponden a una
// cuenta activa. Usuario inexistente, cuenta inactiva y contraseña errónea
// producen el mismo ErrCredencialesInvalidas: el resultado no revela si el
// username existe.
func (s *Credenciales) Verificar(username, password string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := s.db.Where("username = ?", username).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCredencialesInvalidas
		}
		return nil, err
	}

	if !usuario.Activo {
		return nil, ErrCredencialesInvalidas
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(password)) != nil {
		return nil, ErrCredencialesInvalidas
	}

	return &usuario, nil
}

// EstablecerPassword reemplaza el hash almacenado. La contraseña en claro
// nunca se persiste ni se loguea.
func (s *Credenciales) EstablecerPassword(usuario *models.Usuario, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	usuario.PasswordHash = string(hash)
	return s.db.Model(usuario).Update("password_hash", usuario.PasswordHash).Error
}
