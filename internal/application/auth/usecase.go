// Package auth implementa el login del único usuario de la aplicación.
// No hay registro ni tabla de usuarios: las credenciales del admin vienen de
// la configuración (usuario + hash bcrypt) y el login emite un JWT.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stock-lite/internal/application/dto"
	"github.com/tu-usuario/stock-lite/pkg/jwt"
)

// ErrBadCredentials usuario o contraseña incorrectos.
var ErrBadCredentials = errors.New("credenciales inválidas")

// Config credenciales del admin y parámetros del token.
type Config struct {
	Username     string
	PasswordHash string // bcrypt
	JWTSecret    string
	ExpMinutes   int
	Issuer       string
}

// UseCase caso de uso de autenticación mono-usuario.
type UseCase struct {
	cfg Config
}

// NewUseCase construye el caso de uso.
func NewUseCase(cfg Config) *UseCase {
	return &UseCase{cfg: cfg}
}

// Login verifica las credenciales configuradas y genera el JWT.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username != uc.cfg.Username {
		return nil, ErrBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrBadCredentials
	}
	token, err := jwt.Generate(uc.cfg.JWTSecret, in.Username, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: uc.cfg.ExpMinutes * 60,
	}, nil
}
