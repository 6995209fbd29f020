package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
	"github.com/comexa/stock-control-api/internal/infrastructure/blobstore"
)

func newTestState(t *testing.T) *appstate.AppState {
	t.Helper()
	state := appstate.New(blobstore.NewMemoryStore())
	require.NoError(t, state.Load(context.Background()))
	return state
}

func TestAddTechnicianNormalizaYRechazaDuplicados(t *testing.T) {
	uc := NewTechnicianUseCase(newTestState(t))
	ctx := context.Background()

	tech, err := uc.Add(ctx, dto.AddTechnicianRequest{Name: "  Juan Perez "})
	require.NoError(t, err)
	assert.Equal(t, "JUAN PEREZ", tech.Name)
	assert.Equal(t, entity.TecnicoNomina, tech.Type)

	// duplicado con otra capitalización
	_, err = uc.Add(ctx, dto.AddTechnicianRequest{Name: "juan perez"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Len(t, uc.List(), 1)
}

func TestAddTechnicianValidaciones(t *testing.T) {
	uc := NewTechnicianUseCase(newTestState(t))
	ctx := context.Background()

	_, err := uc.Add(ctx, dto.AddTechnicianRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Add(ctx, dto.AddTechnicianRequest{Name: "JUAN", Type: "GERENTE"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tech, err := uc.Add(ctx, dto.AddTechnicianRequest{Name: "CUADRILLA", Type: "ejecutor"})
	require.NoError(t, err)
	assert.Equal(t, entity.TecnicoEjecutor, tech.Type)
}
