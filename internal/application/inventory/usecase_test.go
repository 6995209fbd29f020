package inventory

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
	"github.com/comexa/stock-control-api/internal/domain/ownership"
	"github.com/comexa/stock-control-api/internal/infrastructure/blobstore"
)

func newTestState(t *testing.T, seed func(d *appstate.Data)) *appstate.AppState {
	t.Helper()
	state := appstate.New(blobstore.NewMemoryStore())
	require.NoError(t, state.Load(context.Background()))
	if seed != nil {
		require.NoError(t, state.Update(context.Background(), func(d *appstate.Data) error {
			seed(d)
			return nil
		}))
	}
	return state
}

func newTestUseCase(t *testing.T, seed func(d *appstate.Data)) *StockUseCase {
	t.Helper()
	return NewStockUseCase(newTestState(t, seed), ownership.NewResolver(nil))
}

func line(id, owner, device, model, category string, qty int) entity.StockLine {
	return entity.StockLine{ID: id, Owner: owner, Device: device, Model: model, Category: category, Quantity: qty}
}

// stockFile arma un CSV sintético con un solo dispositivo en la fila 10,
// columnas 1..3 (bloque ALARMAS).
func stockFile(device, model string, qty int) dto.UploadedFile {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("\n")
	}
	b.WriteString(fmt.Sprintf(",%s,%s,%d\n", device, model, qty))
	return dto.UploadedFile{Name: "stock.csv", Data: []byte(b.String())}
}

func TestImportStockSinPlantel(t *testing.T) {
	uc := newTestUseCase(t, nil)

	_, err := uc.ImportStock(context.Background(), "EJECUTOR", []dto.UploadedFile{stockFile("SIRENA", "VARIOS", 2)})
	assert.ErrorIs(t, err, domain.ErrSinTecnicos)
	assert.Empty(t, uc.ListStock())
}

func TestImportStockReemplazaPorDueno(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Technicians = []entity.Technician{{ID: "tech-1", Name: "JULIO FERNANDO BARROSO CHAN", Type: entity.TecnicoNomina}}
		d.Stock = []entity.StockLine{
			line("s1", "JULIO FERNANDO BARROSO CHAN", "VIEJO", "N/A", entity.CategoriaAlarmas, 9),
			line("s2", "OTRO TECNICO", "AJENO", "N/A", entity.CategoriaCCTV, 4),
		}
	})

	result, err := uc.ImportStock(context.Background(), "JULIO FERNANDO BARROSO CHAN",
		[]dto.UploadedFile{stockFile("SIRENA", "VARIOS", 2)})
	require.NoError(t, err)
	assert.Equal(t, 1, result.LinesImported)
	assert.False(t, result.Redirected)

	stock := uc.ListStock()
	require.Len(t, stock, 2)
	byOwner := map[string]entity.StockLine{}
	for _, l := range stock {
		byOwner[l.Owner] = l
	}
	// las líneas previas del dueño se reemplazaron; las ajenas quedaron intactas
	assert.Equal(t, "SIRENA", byOwner["JULIO FERNANDO BARROSO CHAN"].Device)
	assert.Equal(t, "AJENO", byOwner["OTRO TECNICO"].Device)
	assert.Equal(t, 4, byOwner["OTRO TECNICO"].Quantity)
}

func TestImportStockRedirigeDueno(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Technicians = []entity.Technician{{ID: "tech-1", Name: "ALEX ROBERTO HOIL PUCH", Type: entity.TecnicoNomina}}
	})

	result, err := uc.ImportStock(context.Background(), "ALEX ROBERTO HOIL PUCH",
		[]dto.UploadedFile{stockFile("SIRENA", "VARIOS", 2)})
	require.NoError(t, err)
	assert.True(t, result.Redirected)
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", result.EffectiveOwner)

	stock := uc.ListStock()
	require.Len(t, stock, 1)
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", stock[0].Owner)
}

func TestTransferConservaTotales(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Stock = []entity.StockLine{
			line("s1", "EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 10),
		}
	})

	result, err := uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "EJECUTOR",
		DestOwner:   "PEDRO CANCHE",
		Items:       []dto.TransferItemRequest{{LineID: "s1", Quantity: 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsMoved)
	assert.Zero(t, result.ItemsSkipped)
	assert.NotEmpty(t, result.LogID)

	total := 0
	var source, dest int
	for _, l := range uc.ListStock() {
		total += l.Quantity
		switch l.Owner {
		case "EJECUTOR":
			source = l.Quantity
		case "PEDRO CANCHE":
			dest = l.Quantity
		}
	}
	assert.Equal(t, 10, total) // conservación: nada se crea ni se pierde
	assert.Equal(t, 6, source)
	assert.Equal(t, 4, dest)
}

func TestTransferRegistroUnico(t *testing.T) {
	state := newTestState(t, func(d *appstate.Data) {
		d.Stock = []entity.StockLine{
			line("s1", "EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 5),
			line("s2", "EJECUTOR", "LECTORA", "R10", entity.CategoriaAcceso, 3),
		}
	})
	uc := NewStockUseCase(state, ownership.NewResolver(nil))

	_, err := uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "EJECUTOR",
		DestOwner:   "PEDRO CANCHE",
		Items: []dto.TransferItemRequest{
			{LineID: "s1", Quantity: 2},
			{LineID: "s2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	state.View(func(d appstate.Data) {
		require.Len(t, d.Logs, 1) // un registro por transferencia, no por item
		log := d.Logs[0]
		assert.Equal(t, "TRANSFERENCIA", log.Sctask)
		assert.Equal(t, "INTERNA", log.Reqo)
		assert.Equal(t, "EJECUTOR -> PEDRO CANCHE", log.TechnicianName)
		assert.Equal(t, "MOVIMIENTO STOCK", log.BranchName)
		assert.Equal(t, "Transferencia de Stock", log.WarrantyReason)
		require.Len(t, log.ItemsUsed, 2)
		assert.Equal(t, entity.UsoSuministro, log.ItemsUsed[0].UsageType)
	})
}

func TestTransferRedirigidaRegistraNombresNominales(t *testing.T) {
	state := newTestState(t, func(d *appstate.Data) {
		d.Stock = []entity.StockLine{
			line("s1", "EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 5),
		}
	})
	uc := NewStockUseCase(state, ownership.NewResolver(nil))

	result, err := uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "EJECUTOR",
		DestOwner:   "ALEX ROBERTO HOIL PUCH",
		Items:       []dto.TransferItemRequest{{LineID: "s1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.True(t, result.Redirected)
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", result.EffectiveDestOwner)

	state.View(func(d appstate.Data) {
		// el stock aterriza con el supervisor, el registro conserva el nombre pedido
		assert.Equal(t, "EJECUTOR -> ALEX ROBERTO HOIL PUCH", d.Logs[0].TechnicianName)
		found := false
		for _, l := range d.Stock {
			if l.Owner == "JULIO FERNANDO BARROSO CHAN" {
				found = true
				assert.Equal(t, 2, l.Quantity)
			}
		}
		assert.True(t, found)
	})
}

func TestTransferRechazaAutoTransferencia(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Stock = []entity.StockLine{
			line("s1", "JULIO FERNANDO BARROSO CHAN", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 5),
		}
	})
	items := []dto.TransferItemRequest{{LineID: "s1", Quantity: 1}}

	_, err := uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "JULIO FERNANDO BARROSO CHAN",
		DestOwner:   "JULIO FERNANDO BARROSO CHAN",
		Items:       items,
	})
	assert.ErrorIs(t, err, domain.ErrTransferInvalida)

	// colisión por redirección: el destino nominal difiere pero resuelve al origen
	_, err = uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "JULIO FERNANDO BARROSO CHAN",
		DestOwner:   "ALEX ROBERTO HOIL PUCH",
		Items:       items,
	})
	assert.ErrorIs(t, err, domain.ErrTransferInvalida)
}

func TestTransferSaltaItemsAjenos(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Stock = []entity.StockLine{
			line("s1", "EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 5),
			line("s2", "OTRO TECNICO", "LECTORA", "R10", entity.CategoriaAcceso, 3),
		}
	})

	result, err := uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "EJECUTOR",
		DestOwner:   "PEDRO CANCHE",
		Items: []dto.TransferItemRequest{
			{LineID: "s1", Quantity: 2},
			{LineID: "s2", Quantity: 1},       // dueño distinto al declarado
			{LineID: "no-existe", Quantity: 1}, // línea inexistente
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsMoved)
	assert.Equal(t, 2, result.ItemsSkipped)

	for _, l := range uc.ListStock() {
		if l.ID == "s2" {
			assert.Equal(t, 3, l.Quantity) // intacta
		}
	}
}

func TestTransferRecortaALaExistencia(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Stock = []entity.StockLine{
			line("s1", "EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 3),
		}
	})

	_, err := uc.Transfer(context.Background(), dto.TransferRequest{
		SourceOwner: "EJECUTOR",
		DestOwner:   "PEDRO CANCHE",
		Items:       []dto.TransferItemRequest{{LineID: "s1", Quantity: 10}},
	})
	require.NoError(t, err)

	var source, dest int
	for _, l := range uc.ListStock() {
		switch l.Owner {
		case "EJECUTOR":
			source = l.Quantity
		case "PEDRO CANCHE":
			dest = l.Quantity
		}
	}
	assert.Zero(t, source) // agotada, nunca negativa
	assert.Equal(t, 3, dest)
}

func TestDirectAddConRedireccion(t *testing.T) {
	state := newTestState(t, func(d *appstate.Data) {
		d.Technicians = []entity.Technician{
			{ID: "tech-1", Name: "MAURO ISRAEL GUTIÉRREZ HEREDIA", Type: entity.TecnicoNomina},
		}
	})
	uc := NewStockUseCase(state, ownership.NewResolver(nil))

	result, err := uc.DirectAdd(context.Background(), dto.DirectAddRequest{
		TechnicianID: "tech-1",
		Category:     entity.CategoriaMiscelaneos,
		Device:       "X",
		Model:        "Y",
		Quantity:     5,
	})
	require.NoError(t, err)
	assert.True(t, result.Redirected)
	assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", result.TargetOwner)

	state.View(func(d appstate.Data) {
		require.Len(t, d.Stock, 1)
		assert.Equal(t, "JULIO FERNANDO BARROSO CHAN", d.Stock[0].Owner)
		assert.Equal(t, 5, d.Stock[0].Quantity)

		// el registro conserva el nombre original, no el resuelto
		require.Len(t, d.Logs, 1)
		log := d.Logs[0]
		assert.Equal(t, "MAURO ISRAEL GUTIÉRREZ HEREDIA", log.TechnicianName)
		assert.Equal(t, "COMPRA/SOLICITUD", log.Sctask)
		assert.Equal(t, "INGRESO DIRECTO", log.BranchName)
		assert.Equal(t, "Ingreso Directo / Compra", log.WarrantyReason)
	})
}

func TestDirectAddFusionaConLineaExistente(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Technicians = []entity.Technician{{ID: "tech-1", Name: "PEDRO CANCHE", Type: entity.TecnicoNomina}}
		d.Stock = []entity.StockLine{
			line("s1", "PEDRO CANCHE", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 2),
		}
	})

	_, err := uc.DirectAdd(context.Background(), dto.DirectAddRequest{
		TechnicianID: "tech-1",
		Category:     entity.CategoriaAlarmas,
		Device:       "SIRENA",
		Model:        "VARIOS",
		Quantity:     3,
	})
	require.NoError(t, err)

	stock := uc.ListStock()
	require.Len(t, stock, 1)
	assert.Equal(t, 5, stock[0].Quantity)
}

func TestDirectAddTecnicoInexistente(t *testing.T) {
	uc := newTestUseCase(t, nil)
	_, err := uc.DirectAdd(context.Background(), dto.DirectAddRequest{
		TechnicianID: "no-existe", Device: "X", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func boolPtr(b bool) *bool { return &b }

func installationSeed(d *appstate.Data) {
	d.Technicians = []entity.Technician{{ID: "tech-1", Name: "PEDRO CANCHE", Type: entity.TecnicoNomina}}
	d.Branches = []entity.Branch{{
		ID: "branch-1", Client: entity.ClienteBanamex, Sirh: "123",
		Type: "SUCURSAL", Name: "MÉRIDA CENTRO", Region: "SURESTE",
	}}
	d.Stock = []entity.StockLine{
		line("s1", "PEDRO CANCHE", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 10),
	}
}

func TestRegisterInstallationDebitaYRegistra(t *testing.T) {
	state := newTestState(t, installationSeed)
	uc := NewStockUseCase(state, ownership.NewResolver(nil))

	result, err := uc.RegisterInstallation(context.Background(), dto.InstallationRequest{
		TechnicianID:     "tech-1",
		BranchID:         "branch-1",
		Sctask:           "SCTASK0001",
		Reqo:             "REQ0001",
		FolioComexa:      "F-100",
		ReportDate:       "2024-03-01",
		InstallationDate: "2024-03-02",
		WarrantyApplied:  boolPtr(false),
		WarrantyReason:   "No aplica",
		Items: []dto.ConsumeItemRequest{
			{LineID: "s1", Quantity: 3, UsageType: entity.UsoInstalacion},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ItemsUsed)

	state.View(func(d appstate.Data) {
		assert.Equal(t, 7, d.Stock[0].Quantity)

		require.Len(t, d.Logs, 1)
		log := d.Logs[0]
		assert.Equal(t, "PEDRO CANCHE", log.TechnicianName)
		assert.Equal(t, "MÉRIDA CENTRO", log.BranchName)
		assert.Equal(t, "123", log.BranchSirh)
		assert.Equal(t, "SCTASK0001", log.Sctask)
		assert.Equal(t, "REQ0001", log.Reqo)
		require.Len(t, log.ItemsUsed, 1)
		// foto del item: cadenas copiadas, cantidad realmente debitada
		assert.Equal(t, entity.UsedItem{
			Device: "SIRENA", Model: "VARIOS", Quantity: 3, UsageType: entity.UsoInstalacion,
		}, log.ItemsUsed[0])
	})
}

func TestRegisterInstallationIdentificadoresPorCliente(t *testing.T) {
	state := newTestState(t, func(d *appstate.Data) {
		installationSeed(d)
		d.Branches = append(d.Branches, entity.Branch{
			ID: "branch-2", Client: entity.ClienteSantander, Sirh: "987",
			Type: "SUCURSAL", Name: "CAMPECHE PLAZA", Region: entity.RegionSinAsignar,
		})
	})
	uc := NewStockUseCase(state, ownership.NewResolver(nil))

	_, err := uc.RegisterInstallation(context.Background(), dto.InstallationRequest{
		TechnicianID:    "tech-1",
		BranchID:        "branch-2",
		Sctask:          "SCTASK0001", // no aplica a Santander: debe descartarse
		Sbo:             "SBO-55",
		WarrantyApplied: boolPtr(true),
		WarrantyReason:  "Falla de fábrica",
		Items:           []dto.ConsumeItemRequest{{LineID: "s1", Quantity: 1}},
	})
	require.NoError(t, err)

	state.View(func(d appstate.Data) {
		log := d.Logs[0]
		assert.Equal(t, "SBO-55", log.Sbo)
		assert.Empty(t, log.Sctask)
		assert.Empty(t, log.Reqo)
		assert.True(t, log.WarrantyApplied)
	})
}

func TestRegisterInstallationGarantiaObligatoria(t *testing.T) {
	uc := newTestUseCase(t, installationSeed)
	base := dto.InstallationRequest{
		TechnicianID: "tech-1",
		BranchID:     "branch-1",
		Items:        []dto.ConsumeItemRequest{{LineID: "s1", Quantity: 1}},
	}

	// decisión ausente
	_, err := uc.RegisterInstallation(context.Background(), base)
	assert.ErrorIs(t, err, domain.ErrGarantiaSinDefinir)

	// decisión presente pero sin motivo
	conDecision := base
	conDecision.WarrantyApplied = boolPtr(true)
	_, err = uc.RegisterInstallation(context.Background(), conDecision)
	assert.ErrorIs(t, err, domain.ErrGarantiaSinDefinir)

	// nada se debitó en los intentos fallidos
	assert.Equal(t, 10, uc.ListStock()[0].Quantity)
}

func TestRegisterInstallationItemInvalidoNoDebitaNada(t *testing.T) {
	uc := newTestUseCase(t, installationSeed)

	_, err := uc.RegisterInstallation(context.Background(), dto.InstallationRequest{
		TechnicianID:    "tech-1",
		BranchID:        "branch-1",
		WarrantyApplied: boolPtr(false),
		WarrantyReason:  "No aplica",
		Items: []dto.ConsumeItemRequest{
			{LineID: "s1", Quantity: 2},
			{LineID: "no-existe", Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, uc.ListStock()[0].Quantity)
}

func TestAvailableForIncluyePoolYDuenoEfectivo(t *testing.T) {
	uc := newTestUseCase(t, func(d *appstate.Data) {
		d.Technicians = []entity.Technician{
			{ID: "tech-1", Name: "ALEX ROBERTO HOIL PUCH", Type: entity.TecnicoNomina},
		}
		d.Stock = []entity.StockLine{
			line("s1", "EJECUTOR", "SIRENA", "VARIOS", entity.CategoriaAlarmas, 5),
			line("s2", "JULIO FERNANDO BARROSO CHAN", "LECTORA", "R10", entity.CategoriaAcceso, 2),
			line("s3", "OTRO TECNICO", "AJENO", "N/A", entity.CategoriaCCTV, 1),
			line("s4", "JULIO FERNANDO BARROSO CHAN", "AGOTADA", "N/A", entity.CategoriaCCTV, 0),
		}
	})

	lines, err := uc.AvailableFor("tech-1")
	require.NoError(t, err)
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	assert.ElementsMatch(t, []string{"s1", "s2"}, ids)
}
