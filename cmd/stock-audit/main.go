package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/Almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Almacen-api/pkg/config"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// stock-audit recalcula el stock de cada producto desde el registro de
// movimientos y lo compara con la columna quantity_in_stock. Cualquier
// discrepancia indica una escritura por fuera del ledger. Sale con código 1
// si encuentra alguna.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reportRepo := postgres.NewReportRepository(pool)

	// Rango completo: el neto de todos los movimientos debe igualar el stock.
	from := time.Unix(0, 0)
	to := time.Now().Add(24 * time.Hour)
	rows, err := reportRepo.MovementSummary(ctx, from, to)
	if err != nil {
		log.Fatal().Err(err).Msg("resumen de movimientos")
	}

	discrepancies := 0
	for _, row := range rows {
		if row.Net == row.CurrentStock {
			continue
		}
		discrepancies++
		log.Error().
			Str("product_id", row.ProductID).
			Str("product", row.ProductName).
			Int64("stock_column", row.CurrentStock).
			Int64("recomputed", row.Net).
			Int64("drift", row.CurrentStock-row.Net).
			Msg("stock fuera de cuadre")
	}

	if discrepancies > 0 {
		log.Error().Int("products", discrepancies).Msg("auditoría con discrepancias")
		os.Exit(1)
	}
	log.Info().Int("products", len(rows)).Msg("auditoría sin discrepancias")
}
