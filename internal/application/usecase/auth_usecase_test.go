package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/pkg/config"
	"github.com/comexa/stock-control-api/pkg/jwt"
)

var testJWT = config.JWTConfig{Secret: "secreto-de-prueba", Expiration: 60, Issuer: "comexa-test"}

func TestLoginConHashBcrypt(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("clave-correcta"), bcrypt.MinCost)
	require.NoError(t, err)
	uc := NewAuthUseCase(config.AuthConfig{User: "almacen", PasswordHash: string(hash)}, testJWT)

	resp, err := uc.Login(dto.LoginRequest{User: "almacen", Password: "clave-correcta"})
	require.NoError(t, err)

	operator, err := jwt.Parse(testJWT.Secret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "almacen", operator)

	_, err = uc.Login(dto.LoginRequest{User: "almacen", Password: "clave-incorrecta"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLoginRechazos(t *testing.T) {
	uc := NewAuthUseCase(config.AuthConfig{User: "almacen", Password: "dev"}, testJWT)

	_, err := uc.Login(dto.LoginRequest{User: "otro", Password: "dev"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{User: "almacen"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// sin credencial configurada nadie entra
	sinClave := NewAuthUseCase(config.AuthConfig{User: "almacen"}, testJWT)
	_, err = sinClave.Login(dto.LoginRequest{User: "almacen", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
