package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
)

func TestExtractTechnicians(t *testing.T) {
	rows := [][]string{
		{"NO", "IDC NOMBRE COMPLETO", "TIPO"},
		{"1", "JULIO FERNANDO BARROSO CHAN", "SUPERVISOR"},
		{"2", `"ALEX ROBERTO HOIL PUCH"`, ""},
		{"3", "", "EJECUTOR"}, // sin nombre: se ignora
		{"4", "CUADRILLA EJECUTORES", "ejecutor externo"},
	}

	techs := ExtractTechnicians(rows)
	require.Len(t, techs, 3)

	assert.Equal(t, "tech-1", techs[0].ID)
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", techs[0].Name)
	assert.Equal(t, entity.TecnicoNomina, techs[0].Type)

	// comillas del texto fuente removidas
	assert.Equal(t, "ALEX ROBERTO HOIL PUCH", techs[1].Name)

	// "ejecutor" detectado sin importar mayúsculas
	assert.Equal(t, entity.TecnicoEjecutor, techs[2].Type)
}

func TestExtractTechniciansSinColumnaNombre(t *testing.T) {
	rows := [][]string{
		{"FOLIO", "FECHA"},
		{"001", "01/01/2024"},
	}
	assert.Nil(t, ExtractTechnicians(rows))
}

func TestExtractBranches(t *testing.T) {
	rows := [][]string{
		{"CLIENTE", "SIRH", "TIPO", "NOMBRE", "REGION"},
		{"BANAMEX", "123", "SUCURSAL", "MÉRIDA CENTRO", "SURESTE"},
		{"SANTANDER", "987", "ATM", "CAMPECHE PLAZA", ""},
		{"BANREGIO", "555"}, // menos de 4 columnas: se ignora
	}

	branches := ExtractBranches(rows)
	require.Len(t, branches, 2)

	assert.Equal(t, "branch-1", branches[0].ID)
	assert.Equal(t, "BANAMEX", branches[0].Client)
	assert.Equal(t, "MÉRIDA CENTRO", branches[0].Name)
	assert.Equal(t, "SURESTE", branches[0].Region)

	// región vacía -> valor centinela
	assert.Equal(t, entity.RegionSinAsignar, branches[1].Region)
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"15/03/2024", "2024-03-15"},
		{"5/3/2024", "2024-03-05"},
		{"15-03-2024", "2024-03-15"},
		{"2024-03-15", "2024-03-15"}, // ya normalizada
		{"sin fecha", "sin fecha"},   // no reconocida: se deja tal cual
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeDate(c.in), "entrada %q", c.in)
	}
}

func TestExtractHistory(t *testing.T) {
	rows := [][]string{
		{"SCTASK", "FOLIO COMEXA", "SIRH", "SUCURSAL", "REGION", "FECHA REGISTRO", "FECHA ATENCION", "RESPONSABLE"},
		{"SCTASK001", "F-100", "123", "MÉRIDA CENTRO", "SURESTE", "01/02/2024", "03/02/2024", "JULIO FERNANDO BARROSO CHAN"},
		{"", "", "", "", "", "", "", ""}, // fila vacía: se salta
		{"", "F-101", "987", "CAMPECHE PLAZA", "", "10-02-2024", "", ""},
	}

	logs, err := ExtractHistory(rows)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	first := logs[0]
	assert.Equal(t, "SCTASK001", first.Sctask)
	assert.Equal(t, "F-100", first.FolioComexa)
	assert.Equal(t, "2024-02-01", first.ReportDate)
	assert.Equal(t, "2024-02-03", first.InstallationDate)
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", first.TechnicianName)
	assert.False(t, first.WarrantyApplied)
	assert.Equal(t, "No aplica / Importación masiva", first.WarrantyReason)
	assert.Empty(t, first.ItemsUsed)

	assert.Equal(t, "2024-02-10", logs[1].ReportDate)
}

func TestExtractHistoryColumnasObligatorias(t *testing.T) {
	// sin columna de folio
	_, err := ExtractHistory([][]string{
		{"SCTASK", "SUCURSAL"},
		{"X", "Y"},
	})
	assert.ErrorIs(t, err, domain.ErrFormatoArchivo)

	// sin columna de sucursal
	_, err = ExtractHistory([][]string{
		{"FOLIO", "SCTASK"},
		{"F-1", "X"},
	})
	assert.ErrorIs(t, err, domain.ErrFormatoArchivo)

	_, err = ExtractHistory(nil)
	assert.ErrorIs(t, err, domain.ErrFormatoArchivo)
}
