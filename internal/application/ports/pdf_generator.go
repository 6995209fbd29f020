package ports

import (
	"context"

	"github.com/comexa/stock-control-api/internal/domain/entity"
)

// ServiceReportPDFGenerator genera la versión imprimible de un registro de
// instalación (para entrega al cliente o archivo físico del almacén).
type ServiceReportPDFGenerator interface {
	GenerateServiceReport(ctx context.Context, log *entity.InstallationLog) ([]byte, error)
}
