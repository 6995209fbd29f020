package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/comexa/stock-control-api/internal/application/appstate"
	"github.com/comexa/stock-control-api/internal/application/dto"
	"github.com/comexa/stock-control-api/internal/application/importer"
	"github.com/comexa/stock-control-api/internal/application/ports"
	"github.com/comexa/stock-control-api/internal/domain"
	"github.com/comexa/stock-control-api/internal/domain/entity"
	"github.com/comexa/stock-control-api/internal/domain/ownership"
)

// ExtractionUseCase orquesta la extracción asistida de reportes de servicio.
// Aplica un timeout de 10 segundos en cada llamada al oráculo para evitar
// que las latencias externas bloqueen los goroutines del servidor.
type ExtractionUseCase struct {
	state     *appstate.AppState
	extractor ports.ReportExtractor
	resolver  *ownership.Resolver
}

// NewExtractionUseCase construye el caso de uso inyectando el puerto del oráculo.
func NewExtractionUseCase(state *appstate.AppState, extractor ports.ReportExtractor, resolver *ownership.Resolver) *ExtractionUseCase {
	return &ExtractionUseCase{state: state, extractor: extractor, resolver: resolver}
}

// ExtractAndPrefill manda el documento al oráculo y cruza la respuesta
// contra el plantel, el directorio y el stock cargados. La sugerencia nunca
// se aplica sola: el operador la revisa y confirma en el formulario.
func (uc *ExtractionUseCase) ExtractAndPrefill(ctx context.Context, fileBase64, mimeType string) (*dto.InstallationPrefill, error) {
	if fileBase64 == "" || mimeType == "" {
		return nil, domain.ErrInvalidInput
	}

	// Timeout de 10 s: las llamadas al oráculo pueden demorar varios segundos.
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	report, err := uc.extractor.ExtractServiceReport(ctx, fileBase64, mimeType)
	if err != nil {
		return nil, fmt.Errorf("extracción de reporte: %w", err)
	}
	return uc.Prefill(report), nil
}

// Prefill construye la sugerencia de pre-llenado a partir de un reporte ya
// extraído. Es función del estado actual: un mismo reporte sugiere cosas
// distintas según qué técnicos, sucursales y stock estén cargados.
func (uc *ExtractionUseCase) Prefill(report *dto.ExtractedReport) *dto.InstallationPrefill {
	prefill := &dto.InstallationPrefill{
		Sctask:           report.Sctask,
		Reqo:             report.Reqo,
		FolioComexa:      report.FolioComexa,
		ReportDate:       importer.NormalizeDate(report.ReportDate),
		InstallationDate: importer.NormalizeDate(report.InstallationDate),
	}

	uc.state.View(func(d appstate.Data) {
		var matchedTech *entity.Technician
		if name := normalizeForMatch(report.TechnicianName); name != "" {
			for i := range d.Technicians {
				if matchPersonName(normalizeForMatch(d.Technicians[i].Name), name) {
					matchedTech = &d.Technicians[i]
					break
				}
			}
		}
		if matchedTech != nil {
			prefill.TechnicianID = matchedTech.ID
		}

		if ident := normalizeForMatch(report.BranchIdentifier); ident != "" {
			prefill.BranchSearch = report.BranchIdentifier
			for _, branch := range d.Branches {
				if containsEitherWay(normalizeForMatch(branch.Sirh), ident) ||
					containsEitherWay(normalizeForMatch(branch.Name), ident) {
					prefill.BranchID = branch.ID
					break
				}
			}
		}

		if matchedTech == nil || len(report.Items) == 0 {
			return
		}

		// Solo se sugieren líneas que el técnico realmente puede consumir:
		// el pool EJECUTOR y las de su dueño efectivo.
		owner := uc.resolver.Resolve(matchedTech.Name)
		var relevant []entity.StockLine
		for _, line := range d.Stock {
			if line.Quantity > 0 && (line.Owner == entity.OwnerEjecutor || line.Owner == owner) {
				relevant = append(relevant, line)
			}
		}

		used := map[string]bool{}
		for _, item := range report.Items {
			for _, line := range relevant {
				if used[line.ID] || !matchTokens(item.DeviceName, line.Device) {
					continue
				}
				qty := item.Quantity
				if qty <= 0 || qty > line.Quantity {
					qty = line.Quantity
				}
				usage := entity.UsoSuministro
				if item.ItemCategory == dto.ExtraccionEquipo {
					usage = entity.UsoInstalacion
				}
				prefill.Items = append(prefill.Items, dto.PrefillItem{
					LineID:    line.ID,
					Device:    line.Device,
					Model:     line.Model,
					Quantity:  qty,
					UsageType: usage,
				})
				used[line.ID] = true
				break
			}
		}
	})
	return prefill
}
