package usecase

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/pkg/config"
	"github.com/comexa/stock-control-api/pkg/jwt"
)

// AuthUseCase login del operador del almacén. La aplicación es mono-usuario:
// las credenciales vienen de la configuración, no de una tabla de usuarios.
type AuthUseCase struct {
	auth config.AuthConfig
	jwt  config.JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(auth config.AuthConfig, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{auth: auth, jwt: jwtCfg}
}

// Login valida las credenciales del operador y emite un token de sesión. Se
// prefiere AUTH_PASSWORD_HASH (bcrypt); AUTH_PASSWORD en claro solo existe
// para entornos de desarrollo.
func (uc *AuthUseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.User == "" || req.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if subtle.ConstantTimeCompare([]byte(req.User), []byte(uc.auth.User)) != 1 {
		return nil, domain.ErrUnauthorized
	}

	switch {
	case uc.auth.PasswordHash != "":
		if bcrypt.CompareHashAndPassword([]byte(uc.auth.PasswordHash), []byte(req.Password)) != nil {
			return nil, domain.ErrUnauthorized
		}
	case uc.auth.Password != "":
		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(uc.auth.Password)) != 1 {
			return nil, domain.ErrUnauthorized
		}
	default:
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.jwt.Secret, uc.auth.User, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token}, nil
}
