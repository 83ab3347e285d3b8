package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Umbrales de stock para el reporte de inventario (unidades).
const (
	StockCriticalThreshold = 10
	StockLowThreshold      = 50
)

// Bandas de stock del reporte de inventario.
const (
	StockStatusOut      = "out_of_stock"
	StockStatusCritical = "critical"
	StockStatusLow      = "low"
	StockStatusNormal   = "normal"
)

// SalesReportRow fila cruda del reporte de ventas (despachos + estado de factura).
type SalesReportRow struct {
	Date          time.Time
	CustomerName  string
	ProductName   string
	Quantity      int64
	UnitPrice     decimal.Decimal
	TotalPrice    decimal.Decimal
	InvoiceStatus string // estado de la factura del cliente ese día, o "not_invoiced"
}

// InventoryReportRow fila cruda de la valoración de inventario.
type InventoryReportRow struct {
	ProductID    string
	ProductName  string
	Category     string
	Quantity     int64
	UnitPrice    decimal.Decimal
	TotalValue   decimal.Decimal // Quantity × UnitPrice
	LocationName string
	StockStatus  string
}

// CounterpartyPerformanceRow desempeño agregado de un proveedor o cliente.
type CounterpartyPerformanceRow struct {
	CounterpartyID string
	Name           string
	MovementCount  int64
	TotalQuantity  int64
	TotalAmount    decimal.Decimal
	AvgUnitPrice   decimal.Decimal
}

// MovementSummaryRow entradas/salidas/neto por producto en un rango de fechas.
type MovementSummaryRow struct {
	ProductID    string
	ProductName  string
	Inbound      int64
	Outbound     int64
	Net          int64 // Inbound - Outbound dentro del rango
	CurrentStock int64 // stock actual del producto (fuera del rango)
}

// AcceptanceReportRow aceptado vs pedido por entrada (auditoría de recepción).
type AcceptanceReportRow struct {
	SupplyID         string
	SupplierName     string
	ProductName      string
	SupplyDate       time.Time
	OrderedQuantity  int64
	AcceptedQuantity int64
	CertificateCount int64
}

// ReportRepository define las consultas de solo lectura del motor de reportes.
// Todas son funciones puras de los datos almacenados: sin efectos, cancelables
// vía ctx, sin locks incompatibles con escritores concurrentes.
type ReportRepository interface {
	SalesReport(ctx context.Context, from, to time.Time) ([]SalesReportRow, error)
	InventoryReport(ctx context.Context) ([]InventoryReportRow, error)
	// InventoryValuation devuelve Σ quantity × unit_price sobre todo el catálogo.
	InventoryValuation(ctx context.Context) (decimal.Decimal, error)
	SupplierPerformance(ctx context.Context, from, to time.Time) ([]CounterpartyPerformanceRow, error)
	CustomerPerformance(ctx context.Context, from, to time.Time) ([]CounterpartyPerformanceRow, error)
	MovementSummary(ctx context.Context, from, to time.Time) ([]MovementSummaryRow, error)
	AcceptanceReport(ctx context.Context, from, to time.Time) ([]AcceptanceReportRow, error)
}
