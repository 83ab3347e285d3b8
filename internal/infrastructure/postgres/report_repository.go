package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura del motor de reportes. Agrega en SQL
// sobre movements/products/counterparties; no toma locks incompatibles con
// los escritores.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// SalesReport despachos del período con cliente, producto y estado de la
// factura del cliente emitida el mismo día (o "not_invoiced").
func (r *ReportRepo) SalesReport(ctx context.Context, from, to time.Time) ([]repository.SalesReportRow, error) {
	const query = `
	SELECT
	    m.movement_date,
	    c.name                               AS customer_name,
	    p.name                               AS product_name,
	    m.quantity,
	    m.unit_price,
	    m.total_price,
	    COALESCE(i.status, 'not_invoiced')   AS invoice_status
	FROM movements m
	JOIN customers c ON c.id = m.counterparty_id
	JOIN products  p ON p.id = m.product_id
	LEFT JOIN invoices i
	       ON i.customer_id = m.counterparty_id
	      AND i.invoice_date::date = m.movement_date::date
	WHERE m.kind = 'SHIPMENT'
	  AND m.movement_date BETWEEN $1 AND $2
	ORDER BY m.movement_date DESC, c.name`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.SalesReport: %w", err)
	}
	defer rows.Close()

	var results []repository.SalesReportRow
	for rows.Next() {
		var row repository.SalesReportRow
		if err := rows.Scan(&row.Date, &row.CustomerName, &row.ProductName,
			&row.Quantity, &row.UnitPrice, &row.TotalPrice, &row.InvoiceStatus); err != nil {
			return nil, fmt.Errorf("report.SalesReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InventoryReport valoración por producto con banda de stock.
func (r *ReportRepo) InventoryReport(ctx context.Context) ([]repository.InventoryReportRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    COALESCE(p.category, '')                  AS category,
	    p.quantity_in_stock,
	    p.unit_price,
	    (p.quantity_in_stock * p.unit_price)      AS total_value,
	    COALESCE(sl.name, '')                     AS location_name,
	    CASE
	        WHEN p.quantity_in_stock = 0  THEN $1
	        WHEN p.quantity_in_stock < $3 THEN $2
	        WHEN p.quantity_in_stock < $5 THEN $4
	        ELSE $6
	    END                                       AS stock_status
	FROM products p
	LEFT JOIN storage_locations sl ON sl.id = p.location_id
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query,
		repository.StockStatusOut,
		repository.StockStatusCritical, repository.StockCriticalThreshold,
		repository.StockStatusLow, repository.StockLowThreshold,
		repository.StockStatusNormal,
	)
	if err != nil {
		return nil, fmt.Errorf("report.InventoryReport: %w", err)
	}
	defer rows.Close()

	var results []repository.InventoryReportRow
	for rows.Next() {
		var row repository.InventoryReportRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Category,
			&row.Quantity, &row.UnitPrice, &row.TotalValue, &row.LocationName, &row.StockStatus); err != nil {
			return nil, fmt.Errorf("report.InventoryReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// InventoryValuation Σ cantidad × precio unitario de todo el catálogo.
func (r *ReportRepo) InventoryValuation(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity_in_stock * unit_price), 0) FROM products`,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("report.InventoryValuation: %w", err)
	}
	return total, nil
}

// SupplierPerformance conteos, sumas y promedios de entradas por proveedor.
func (r *ReportRepo) SupplierPerformance(ctx context.Context, from, to time.Time) ([]repository.CounterpartyPerformanceRow, error) {
	const query = `
	SELECT
	    s.id,
	    s.name,
	    COUNT(m.id)                        AS movement_count,
	    COALESCE(SUM(m.quantity), 0)       AS total_quantity,
	    COALESCE(SUM(m.total_price), 0)    AS total_amount,
	    COALESCE(AVG(m.unit_price), 0)     AS avg_unit_price
	FROM movements m
	JOIN suppliers s ON s.id = m.counterparty_id
	WHERE m.kind = 'SUPPLY'
	  AND m.movement_date BETWEEN $1 AND $2
	GROUP BY s.id, s.name
	ORDER BY total_amount DESC`
	return r.performance(ctx, query, from, to)
}

// CustomerPerformance conteos, sumas y promedios de despachos por cliente.
func (r *ReportRepo) CustomerPerformance(ctx context.Context, from, to time.Time) ([]repository.CounterpartyPerformanceRow, error) {
	const query = `
	SELECT
	    c.id,
	    c.name,
	    COUNT(m.id)                        AS movement_count,
	    COALESCE(SUM(m.quantity), 0)       AS total_quantity,
	    COALESCE(SUM(m.total_price), 0)    AS total_amount,
	    COALESCE(AVG(m.unit_price), 0)     AS avg_unit_price
	FROM movements m
	JOIN customers c ON c.id = m.counterparty_id
	WHERE m.kind = 'SHIPMENT'
	  AND m.movement_date BETWEEN $1 AND $2
	GROUP BY c.id, c.name
	ORDER BY total_amount DESC`
	return r.performance(ctx, query, from, to)
}

func (r *ReportRepo) performance(ctx context.Context, query string, from, to time.Time) ([]repository.CounterpartyPerformanceRow, error) {
	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.performance: %w", err)
	}
	defer rows.Close()

	var results []repository.CounterpartyPerformanceRow
	for rows.Next() {
		var row repository.CounterpartyPerformanceRow
		if err := rows.Scan(&row.CounterpartyID, &row.Name, &row.MovementCount,
			&row.TotalQuantity, &row.TotalAmount, &row.AvgUnitPrice); err != nil {
			return nil, fmt.Errorf("report.performance scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MovementSummary entradas/salidas dentro del rango y stock actual por producto.
func (r *ReportRepo) MovementSummary(ctx context.Context, from, to time.Time) ([]repository.MovementSummaryRow, error) {
	const query = `
	SELECT
	    p.id,
	    p.name,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.kind = 'SUPPLY'), 0)   AS inbound,
	    COALESCE(SUM(m.quantity) FILTER (WHERE m.kind = 'SHIPMENT'), 0) AS outbound,
	    p.quantity_in_stock
	FROM products p
	LEFT JOIN movements m
	       ON m.product_id = p.id
	      AND m.movement_date BETWEEN $1 AND $2
	GROUP BY p.id, p.name, p.quantity_in_stock
	ORDER BY p.name`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.MovementSummary: %w", err)
	}
	defer rows.Close()

	var results []repository.MovementSummaryRow
	for rows.Next() {
		var row repository.MovementSummaryRow
		if err := rows.Scan(&row.ProductID, &row.ProductName, &row.Inbound, &row.Outbound, &row.CurrentStock); err != nil {
			return nil, fmt.Errorf("report.MovementSummary scan: %w", err)
		}
		row.Net = row.Inbound - row.Outbound
		results = append(results, row)
	}
	return results, rows.Err()
}

// AcceptanceReport aceptado acumulado vs pedido por entrada del período.
func (r *ReportRepo) AcceptanceReport(ctx context.Context, from, to time.Time) ([]repository.AcceptanceReportRow, error) {
	const query = `
	SELECT
	    m.id,
	    s.name                                    AS supplier_name,
	    p.name                                    AS product_name,
	    m.movement_date,
	    m.quantity                                AS ordered_quantity,
	    COALESCE(SUM(ac.accepted_quantity), 0)    AS accepted_quantity,
	    COUNT(ac.id)                              AS certificate_count
	FROM movements m
	JOIN suppliers s ON s.id = m.counterparty_id
	JOIN products  p ON p.id = m.product_id
	LEFT JOIN acceptance_certificates ac ON ac.supply_id = m.id
	WHERE m.kind = 'SUPPLY'
	  AND m.movement_date BETWEEN $1 AND $2
	GROUP BY m.id, s.name, p.name, m.movement_date, m.quantity
	ORDER BY m.movement_date DESC`

	rows, err := r.pool.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("report.AcceptanceReport: %w", err)
	}
	defer rows.Close()

	var results []repository.AcceptanceReportRow
	for rows.Next() {
		var row repository.AcceptanceReportRow
		if err := rows.Scan(&row.SupplyID, &row.SupplierName, &row.ProductName,
			&row.SupplyDate, &row.OrderedQuantity, &row.AcceptedQuantity, &row.CertificateCount); err != nil {
			return nil, fmt.Errorf("report.AcceptanceReport scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
