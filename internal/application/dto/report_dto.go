package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de reporte soportados por GET /api/reports/:kind.
const (
	ReportKindSales               = "sales"
	ReportKindInventoryValuation  = "inventory-valuation"
	ReportKindSupplierPerformance = "supplier-performance"
	ReportKindCustomerPerformance = "customer-performance"
	ReportKindMovementSummary     = "movement-summary"
	ReportKindAcceptance          = "acceptance"
)

// ReportQuery rango de fechas para reportes (query params, YYYY-MM-DD).
type ReportQuery struct {
	From string `query:"from"`
	To   string `query:"to"`
}

// SalesRowDTO fila del reporte de ventas.
type SalesRowDTO struct {
	Date          time.Time       `json:"date"`
	CustomerName  string          `json:"customer_name"`
	ProductName   string          `json:"product_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	InvoiceStatus string          `json:"invoice_status"`
}

// InventoryRowDTO fila de la valoración de inventario.
type InventoryRowDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category,omitempty"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalValue  decimal.Decimal `json:"total_value"`
	Location    string          `json:"location,omitempty"`
	StockStatus string          `json:"stock_status"`
}

// InventoryValuationDTO valoración total del inventario.
type InventoryValuationDTO struct {
	TotalValue decimal.Decimal   `json:"total_value"`
	Rows       []InventoryRowDTO `json:"rows"`
}

// PerformanceRowDTO desempeño de un proveedor o cliente en el período.
type PerformanceRowDTO struct {
	CounterpartyID string          `json:"counterparty_id"`
	Name           string          `json:"name"`
	MovementCount  int64           `json:"movement_count"`
	TotalQuantity  int64           `json:"total_quantity"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	AvgUnitPrice   decimal.Decimal `json:"avg_unit_price"`
}

// MovementSummaryRowDTO entradas/salidas/neto por producto.
type MovementSummaryRowDTO struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	Inbound      int64  `json:"inbound"`
	Outbound     int64  `json:"outbound"`
	Net          int64  `json:"net"`
	CurrentStock int64  `json:"current_stock"`
}

// AcceptanceRowDTO aceptado vs pedido por entrada.
type AcceptanceRowDTO struct {
	SupplyID         string    `json:"supply_id"`
	SupplierName     string    `json:"supplier_name"`
	ProductName      string    `json:"product_name"`
	SupplyDate       time.Time `json:"supply_date"`
	OrderedQuantity  int64     `json:"ordered_quantity"`
	AcceptedQuantity int64     `json:"accepted_quantity"`
	CertificateCount int64     `json:"certificate_count"`
}
