package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase motor de reportes: vistas derivadas de solo lectura sobre el
// registro de movimientos y el catálogo. No participa en ninguna escritura.
type UseCase struct {
	reportRepo repository.ReportRepository
}

// NewUseCase construye el motor de reportes.
func NewUseCase(reportRepo repository.ReportRepository) *UseCase {
	return &UseCase{reportRepo: reportRepo}
}

// Generate despacha por tipo de reporte y devuelve el resultado tabular.
// Los tipos que no usan rango de fechas (inventory-valuation) ignoran from/to.
func (uc *UseCase) Generate(ctx context.Context, kind string, from, to time.Time) (any, error) {
	switch kind {
	case dto.ReportKindSales:
		return uc.Sales(ctx, from, to)
	case dto.ReportKindInventoryValuation:
		return uc.InventoryValuation(ctx)
	case dto.ReportKindSupplierPerformance:
		return uc.SupplierPerformance(ctx, from, to)
	case dto.ReportKindCustomerPerformance:
		return uc.CustomerPerformance(ctx, from, to)
	case dto.ReportKindMovementSummary:
		return uc.MovementSummary(ctx, from, to)
	case dto.ReportKindAcceptance:
		return uc.Acceptance(ctx, from, to)
	}
	return nil, domain.ErrInvalidInput
}

// Sales despachos del período con cliente, producto y estado de factura.
func (uc *UseCase) Sales(ctx context.Context, from, to time.Time) ([]dto.SalesRowDTO, error) {
	rows, err := uc.reportRepo.SalesReport(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SalesRowDTO{
			Date:          r.Date,
			CustomerName:  r.CustomerName,
			ProductName:   r.ProductName,
			Quantity:      r.Quantity,
			UnitPrice:     r.UnitPrice,
			TotalPrice:    r.TotalPrice,
			InvoiceStatus: r.InvoiceStatus,
		})
	}
	return out, nil
}

// InventoryValuation Σ cantidad × precio unitario por producto y total.
func (uc *UseCase) InventoryValuation(ctx context.Context) (*dto.InventoryValuationDTO, error) {
	rows, err := uc.reportRepo.InventoryReport(ctx)
	if err != nil {
		return nil, err
	}
	result := &dto.InventoryValuationDTO{
		TotalValue: decimal.Zero,
		Rows:       make([]dto.InventoryRowDTO, 0, len(rows)),
	}
	for _, r := range rows {
		result.TotalValue = result.TotalValue.Add(r.TotalValue)
		result.Rows = append(result.Rows, dto.InventoryRowDTO{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Category:    r.Category,
			Quantity:    r.Quantity,
			UnitPrice:   r.UnitPrice,
			TotalValue:  r.TotalValue,
			Location:    r.LocationName,
			StockStatus: r.StockStatus,
		})
	}
	return result, nil
}

// SupplierPerformance desempeño de proveedores en el período.
func (uc *UseCase) SupplierPerformance(ctx context.Context, from, to time.Time) ([]dto.PerformanceRowDTO, error) {
	rows, err := uc.reportRepo.SupplierPerformance(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toPerformanceDTOs(rows), nil
}

// CustomerPerformance desempeño de clientes en el período.
func (uc *UseCase) CustomerPerformance(ctx context.Context, from, to time.Time) ([]dto.PerformanceRowDTO, error) {
	rows, err := uc.reportRepo.CustomerPerformance(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return toPerformanceDTOs(rows), nil
}

// MovementSummary entradas/salidas/neto por producto en el período.
func (uc *UseCase) MovementSummary(ctx context.Context, from, to time.Time) ([]dto.MovementSummaryRowDTO, error) {
	rows, err := uc.reportRepo.MovementSummary(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementSummaryRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.MovementSummaryRowDTO{
			ProductID:    r.ProductID,
			ProductName:  r.ProductName,
			Inbound:      r.Inbound,
			Outbound:     r.Outbound,
			Net:          r.Net,
			CurrentStock: r.CurrentStock,
		})
	}
	return out, nil
}

// Acceptance aceptado vs pedido por entrada en el período.
func (uc *UseCase) Acceptance(ctx context.Context, from, to time.Time) ([]dto.AcceptanceRowDTO, error) {
	rows, err := uc.reportRepo.AcceptanceReport(ctx, from, to)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AcceptanceRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.AcceptanceRowDTO{
			SupplyID:         r.SupplyID,
			SupplierName:     r.SupplierName,
			ProductName:      r.ProductName,
			SupplyDate:       r.SupplyDate,
			OrderedQuantity:  r.OrderedQuantity,
			AcceptedQuantity: r.AcceptedQuantity,
			CertificateCount: r.CertificateCount,
		})
	}
	return out, nil
}

func toPerformanceDTOs(rows []repository.CounterpartyPerformanceRow) []dto.PerformanceRowDTO {
	out := make([]dto.PerformanceRowDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.PerformanceRowDTO{
			CounterpartyID: r.CounterpartyID,
			Name:           r.Name,
			MovementCount:  r.MovementCount,
			TotalQuantity:  r.TotalQuantity,
			TotalAmount:    r.TotalAmount,
			AvgUnitPrice:   r.AvgUnitPrice,
		})
	}
	return out
}
