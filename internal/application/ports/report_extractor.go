package ports

import (
	"context"

	"github.com/comexa/stock-control-api/internal/application/dto"
)

// ReportExtractor define el puerto de salida hacia el oráculo de extracción
// de reportes de servicio (imagen/PDF -> datos estructurados best-effort).
// Cualquier adaptador (Gemini, mock) debe implementar esta interfaz.
//
// El resultado nunca es autoritativo: solo se usa para pre-llenar el
// formulario de registro de instalación y el operador confirma antes de
// cualquier mutación del libro. El contexto debe llevar timeout: es una
// llamada externa.
type ReportExtractor interface {
	ExtractServiceReport(ctx context.Context, fileBase64, mimeType string) (*dto.ExtractedReport, error)
}
