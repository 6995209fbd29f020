package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

func csvFile(name, content string) dto.UploadedFile {
	return dto.UploadedFile{Name: name, Data: []byte(content)}
}

func TestImportTechniciansReemplazaPlantel(t *testing.T) {
	state := newTestState(t)
	uc := NewImportUseCase(state)
	ctx := context.Background()

	summary, err := uc.ImportTechnicians(ctx, csvFile("plantel.csv",
		"IDC NOMBRE,TIPO\nJUAN PEREZ,SUPERVISOR\nCUADRILLA,EJECUTOR\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)

	// un segundo archivo reemplaza, no acumula
	summary, err = uc.ImportTechnicians(ctx, csvFile("plantel2.csv",
		"IDC NOMBRE,TIPO\nPEDRO CANCHE,\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)

	state.View(func(d appstate.Data) {
		require.Len(t, d.Technicians, 1)
		assert.Equal(t, "PEDRO CANCHE", d.Technicians[0].Name)
	})
}

func TestImportTechniciansFormatoNoReconocido(t *testing.T) {
	uc := NewImportUseCase(newTestState(t))
	_, err := uc.ImportTechnicians(context.Background(), csvFile("otro.csv", "FOLIO,FECHA\n1,2\n"))
	assert.ErrorIs(t, err, domain.ErrFormatoArchivo)
}

func TestImportBranchesUnificaIDsEntreArchivos(t *testing.T) {
	state := newTestState(t)
	uc := NewImportUseCase(state)

	// ambos archivos producen "branch-1" derivado de fila
	fileA := csvFile("norte.csv", "CLIENTE,SIRH,TIPO,NOMBRE,REGION\nBANAMEX,111,SUCURSAL,MONTERREY SUR,NORTE\n")
	fileB := csvFile("sur.csv", "CLIENTE,SIRH,TIPO,NOMBRE,REGION\nSANTANDER,222,ATM,MÉRIDA NORTE,SURESTE\n")

	summary, err := uc.ImportBranches(context.Background(), []dto.UploadedFile{fileA, fileB})
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Imported)

	state.View(func(d appstate.Data) {
		require.Len(t, d.Branches, 2)
		assert.NotEqual(t, d.Branches[0].ID, d.Branches[1].ID)
	})
}

func TestImportHistoryAcumulaYAdvierte(t *testing.T) {
	state := newTestState(t)
	require.NoError(t, state.Update(context.Background(), func(d *appstate.Data) error {
		d.Logs = []entity.InstallationLog{{ID: "previo"}}
		return nil
	}))
	uc := NewImportUseCase(state)

	good := csvFile("concentrado.csv",
		"FOLIO,SUCURSAL,FECHA REGISTRO\nF-1,MÉRIDA CENTRO,01/02/2024\n")
	bad := csvFile("otro.csv", "COLUMNA,AJENA\nx,y\n")

	summary, err := uc.ImportHistory(context.Background(), []dto.UploadedFile{good, bad})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Imported)
	require.Len(t, summary.Warnings, 1)
	assert.Contains(t, summary.Warnings[0], "otro.csv")

	state.View(func(d appstate.Data) {
		// el historial es solo-añadir: el registro previo sigue ahí
		require.Len(t, d.Logs, 2)
		assert.Equal(t, "previo", d.Logs[0].ID)
		assert.Equal(t, "2024-02-01", d.Logs[1].ReportDate)
	})
}

func catalogFile(t *testing.T) dto.UploadedFile {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "BANREGIO"))
	require.NoError(t, f.SetSheetRow("BANREGIO", "A1", &[]string{"CCTV", "DOMO", "X-1"}))
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return dto.UploadedFile{Name: "catalogo.xlsx", Data: buf.Bytes()}
}

func TestImportCatalogFusionaPorCliente(t *testing.T) {
	state := newTestState(t)
	uc := NewImportUseCase(state)

	summary, err := uc.ImportCatalog(context.Background(), catalogFile(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"BANREGIO"}, summary.Clients)
	assert.Equal(t, 1, summary.Imported)

	state.View(func(d appstate.Data) {
		// el cliente importado se reemplaza; los del catálogo de fábrica siguen
		require.Len(t, d.Catalog[entity.ClienteBanregio], 1)
		assert.NotEmpty(t, d.Catalog[entity.ClienteBanamex])
	})
}

func TestImportCatalogRechazaNoExcel(t *testing.T) {
	uc := NewImportUseCase(newTestState(t))
	_, err := uc.ImportCatalog(context.Background(), csvFile("catalogo.csv", "a,b,c\n"))
	assert.ErrorIs(t, err, domain.ErrFormatoArchivo)
}
