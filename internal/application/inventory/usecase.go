// Package inventory contiene los casos de uso que mutan el libro de stock:
// importación masiva, transferencias, altas directas y consumo por
// instalación. Cada operación es una transacción única sobre el estado en
// memoria (validar → mutar → persistir completo); nunca hay commits parciales.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/importer"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
	"github.com/comexa/stock-control-api/internal/domain/inventory"
	"github.com/comexa/stock-control-api/internal/domain/ownership"
)

// Valores centinela de los registros internos (transferencias y altas
// directas). Son texto visible en el historial; cambiarlos rompe filtros
// guardados por el operador.
const (
	sctaskTransferencia = "TRANSFERENCIA"
	reqoInterna         = "INTERNA"
	branchTransferencia = "MOVIMIENTO STOCK"
	sirhAlmacen         = "ALMACEN"
	regionAlmacen       = "ALMACEN CENTRAL"
	razonTransferencia  = "Transferencia de Stock"

	sctaskIngresoDirecto = "COMPRA/SOLICITUD"
	reqoExterna          = "EXTERNA"
	branchIngresoDirecto = "INGRESO DIRECTO"
	sirhCompra           = "COMPRA"
	regionAdministracion = "ADMINISTRACIÓN"
	razonIngresoDirecto  = "Ingreso Directo / Compra"
)

// StockUseCase casos de uso de mutación del inventario.
type StockUseCase struct {
	state    *appstate.AppState
	resolver *ownership.Resolver
}

// NewStockUseCase construye el caso de uso sobre el estado y el resolver dados.
func NewStockUseCase(state *appstate.AppState, resolver *ownership.Resolver) *StockUseCase {
	return &StockUseCase{state: state, resolver: resolver}
}

// ListStock devuelve todas las líneas del libro en orden estable.
func (uc *StockUseCase) ListStock() []entity.StockLine {
	var lines []entity.StockLine
	uc.state.View(func(d appstate.Data) {
		lines = inventory.NewLedger(d.Stock).Lines()
	})
	return lines
}

// AvailableFor devuelve las líneas con existencia que un técnico puede
// consumir en una instalación: las del pool EJECUTOR más las de su dueño
// efectivo (su propio nombre, o el de su supervisor si tiene redirección).
func (uc *StockUseCase) AvailableFor(technicianID string) ([]entity.StockLine, error) {
	var (
		tech  *entity.Technician
		lines []entity.StockLine
	)
	uc.state.View(func(d appstate.Data) {
		tech = findTechnician(d.Technicians, technicianID)
		if tech == nil {
			return
		}
		owner := uc.resolver.Resolve(tech.Name)
		for _, line := range d.Stock {
			if line.Quantity <= 0 {
				continue
			}
			if line.Owner == entity.OwnerEjecutor || line.Owner == owner {
				lines = append(lines, line)
			}
		}
	})
	if tech == nil {
		return nil, fmt.Errorf("técnico %s: %w", technicianID, domain.ErrNotFound)
	}
	return lines, nil
}

// ImportStock importa uno o más archivos de stock para el dueño nominal
// elegido por el operador. El archivo recién subido es autoritativo: todas
// las líneas previas del dueño efectivo se reemplazan por las extraídas.
//
// Precondición: el plantel de técnicos debe estar cargado; sin plantel no
// hay dueño válido que elegir y la operación se rechaza sin tocar el libro.
func (uc *StockUseCase) ImportStock(ctx context.Context, nominalOwner string, files []dto.UploadedFile) (*dto.StockImportResult, error) {
	nominalOwner = strings.TrimSpace(nominalOwner)
	if nominalOwner == "" || len(files) == 0 {
		return nil, domain.ErrInvalidInput
	}

	effectiveOwner := uc.resolver.Resolve(nominalOwner)

	// Parsear y extraer ANTES de mutar: un archivo ilegible aborta la
	// operación completa con el libro intacto.
	var extracted []entity.StockLine
	for _, file := range files {
		rows, err := importer.FileToRows(file.Name, file.Data)
		if err != nil {
			return nil, fmt.Errorf("archivo %s: %w", file.Name, domain.ErrFormatoArchivo)
		}
		extracted = append(extracted, importer.ExtractStock(rows, effectiveOwner)...)
	}

	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		if len(d.Technicians) == 0 {
			return domain.ErrSinTecnicos
		}
		ledger := inventory.NewLedger(d.Stock)
		ledger.ReplaceForOwner(effectiveOwner, extracted)
		d.Stock = ledger.Lines()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.StockImportResult{
		NominalOwner:   nominalOwner,
		EffectiveOwner: effectiveOwner,
		Redirected:     uc.resolver.Redirected(nominalOwner),
		Files:          len(files),
		LinesImported:  len(extracted),
	}, nil
}

// Transfer mueve líneas de stock de un dueño nominal a otro. El destino se
// resuelve vía la tabla de redirecciones; el origen se usa tal cual (la UI
// solo ofrece dueños con líneas reales). Los items cuya línea no pertenece
// al origen declarado se saltan sin abortar el resto; la cantidad movida por
// item es min(solicitada, existencia).
//
// Produce exactamente un registro por transferencia (no por item), con los
// nombres nominales en el campo de técnico para que el historial refleje lo
// que el operador pidió aun cuando hubo redirección.
func (uc *StockUseCase) Transfer(ctx context.Context, req dto.TransferRequest) (*dto.TransferResult, error) {
	source := strings.TrimSpace(req.SourceOwner)
	dest := strings.TrimSpace(req.DestOwner)
	if source == "" || dest == "" || len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	finalDest := uc.resolver.Resolve(dest)
	if source == dest || source == finalDest {
		return nil, domain.ErrTransferInvalida
	}

	result := &dto.TransferResult{
		EffectiveDestOwner: finalDest,
		Redirected:         uc.resolver.Redirected(dest),
	}

	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		ledger := inventory.NewLedger(d.Stock)

		var moved []entity.UsedItem
		for _, item := range req.Items {
			line := ledger.FindByID(item.LineID)
			if line == nil || line.Owner != source || item.Quantity <= 0 {
				result.ItemsSkipped++
				continue
			}
			device, model, category := line.Device, line.Model, line.Category
			qty := ledger.Debit(item.LineID, item.Quantity)
			if qty == 0 {
				result.ItemsSkipped++
				continue
			}
			ledger.Credit(finalDest, device, model, category, qty)
			moved = append(moved, entity.UsedItem{
				Device:    device,
				Model:     model,
				Quantity:  qty,
				UsageType: entity.UsoSuministro,
			})
		}
		result.ItemsMoved = len(moved)
		if len(moved) == 0 {
			return domain.ErrTransferInvalida
		}

		today := time.Now().Format("2006-01-02")
		log := entity.InstallationLog{
			ID:               uuid.New().String(),
			Sctask:           sctaskTransferencia,
			Reqo:             reqoInterna,
			FolioComexa:      "-",
			TechnicianName:   fmt.Sprintf("%s -> %s", source, dest),
			ReportDate:       today,
			InstallationDate: today,
			BranchName:       branchTransferencia,
			BranchSirh:       sirhAlmacen,
			BranchRegion:     regionAlmacen,
			WarrantyApplied:  false,
			WarrantyReason:   razonTransferencia,
			ItemsUsed:        moved,
		}
		result.LogID = log.ID

		d.Stock = ledger.Lines()
		d.Logs = append(d.Logs, log)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// DirectAdd abona material comprado o solicitado al stock de un técnico.
// El abono cae en el dueño efectivo (redirecciones aplicadas), pero el
// registro conserva el nombre ORIGINAL del técnico: el historial muestra
// quién lo pidió aunque el stock haya aterrizado con su supervisor.
func (uc *StockUseCase) DirectAdd(ctx context.Context, req dto.DirectAddRequest) (*dto.DirectAddResult, error) {
	device := strings.TrimSpace(req.Device)
	if req.TechnicianID == "" || device == "" || req.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	model := strings.TrimSpace(req.Model)
	if model == "" {
		model = "N/A"
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = entity.CategoriaMiscelaneos
	}

	result := &dto.DirectAddResult{}
	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		tech := findTechnician(d.Technicians, req.TechnicianID)
		if tech == nil {
			return fmt.Errorf("técnico %s: %w", req.TechnicianID, domain.ErrNotFound)
		}
		targetOwner := uc.resolver.Resolve(tech.Name)
		result.TargetOwner = targetOwner
		result.Redirected = uc.resolver.Redirected(tech.Name)

		ledger := inventory.NewLedger(d.Stock)
		ledger.Credit(targetOwner, device, model, category, req.Quantity)

		today := time.Now().Format("2006-01-02")
		log := entity.InstallationLog{
			ID:               uuid.New().String(),
			Sctask:           sctaskIngresoDirecto,
			Reqo:             reqoExterna,
			FolioComexa:      "-",
			TechnicianName:   tech.Name,
			ReportDate:       today,
			InstallationDate: today,
			BranchName:       branchIngresoDirecto,
			BranchSirh:       sirhCompra,
			BranchRegion:     regionAdministracion,
			WarrantyApplied:  false,
			WarrantyReason:   razonIngresoDirecto,
			ItemsUsed: []entity.UsedItem{{
				Device:    device,
				Model:     model,
				Quantity:  req.Quantity,
				UsageType: entity.UsoSuministro,
			}},
		}
		result.LogID = log.ID

		d.Stock = ledger.Lines()
		d.Logs = append(d.Logs, log)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegisterInstallation registra una instalación que consume stock. La
// decisión de garantía debe venir explícita (true o false) y con motivo; su
// ausencia es error de validación, no un valor por defecto.
//
// Los identificadores de ticket se filtran por cliente de la sucursal:
// SCTASK/REQO para Banamex, SBO para Santander, folio de cliente para
// Banregio. El folio interno aplica siempre.
func (uc *StockUseCase) RegisterInstallation(ctx context.Context, req dto.InstallationRequest) (*dto.InstallationResult, error) {
	if req.TechnicianID == "" || req.BranchID == "" || len(req.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if req.WarrantyApplied == nil || strings.TrimSpace(req.WarrantyReason) == "" {
		return nil, domain.ErrGarantiaSinDefinir
	}

	result := &dto.InstallationResult{}
	err := uc.state.Update(ctx, func(d *appstate.Data) error {
		tech := findTechnician(d.Technicians, req.TechnicianID)
		if tech == nil {
			return fmt.Errorf("técnico %s: %w", req.TechnicianID, domain.ErrNotFound)
		}
		branch := findBranch(d.Branches, req.BranchID)
		if branch == nil {
			return fmt.Errorf("sucursal %s: %w", req.BranchID, domain.ErrNotFound)
		}

		ledger := inventory.NewLedger(d.Stock)

		// Validación completa antes de debitar: ninguna línea se toca si
		// cualquier item es inválido.
		for _, item := range req.Items {
			if item.Quantity <= 0 || ledger.FindByID(item.LineID) == nil {
				return domain.ErrInvalidInput
			}
		}

		used := make([]entity.UsedItem, 0, len(req.Items))
		for _, item := range req.Items {
			line := ledger.FindByID(item.LineID)
			device, model := line.Device, line.Model
			// La UI limita al máximo disponible; el clamp de Debit cubre
			// solicitudes que la rebasen de todos modos.
			qty := ledger.Debit(item.LineID, item.Quantity)
			usage := item.UsageType
			if usage == "" {
				usage = entity.UsoInstalacion
			}
			used = append(used, entity.UsedItem{
				Device:    device,
				Model:     model,
				Quantity:  qty,
				UsageType: usage,
			})
		}

		log := entity.InstallationLog{
			ID:               uuid.New().String(),
			FolioComexa:      strings.TrimSpace(req.FolioComexa),
			TechnicianName:   tech.Name,
			ReportDate:       req.ReportDate,
			InstallationDate: req.InstallationDate,
			BranchName:       branch.Name,
			BranchSirh:       branch.Sirh,
			BranchRegion:     branch.Region,
			WarrantyApplied:  *req.WarrantyApplied,
			WarrantyReason:   strings.TrimSpace(req.WarrantyReason),
			ItemsUsed:        used,
		}
		switch branch.Client {
		case entity.ClienteSantander:
			log.Sbo = strings.TrimSpace(req.Sbo)
		case entity.ClienteBanregio:
			log.Ticket = strings.TrimSpace(req.Ticket)
		default:
			log.Sctask = strings.TrimSpace(req.Sctask)
			log.Reqo = strings.TrimSpace(req.Reqo)
		}
		result.LogID = log.ID
		result.ItemsUsed = len(used)

		d.Stock = ledger.Lines()
		d.Logs = append(d.Logs, log)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func findTechnician(techs []entity.Technician, id string) *entity.Technician {
	for i := range techs {
		if techs[i].ID == id {
			return &techs[i]
		}
	}
	return nil
}

func findBranch(branches []entity.Branch, id string) *entity.Branch {
	for i := range branches {
		if branches[i].ID == id {
			return &branches[i]
		}
	}
	return nil
}
