package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate crea el esquema si no existe. Idempotente; se ejecuta en el arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS storage_locations (
	    id          TEXT PRIMARY KEY,
	    name        TEXT NOT NULL,
	    description TEXT,
	    capacity    BIGINT,
	    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS suppliers (
	    id             TEXT PRIMARY KEY,
	    name           TEXT NOT NULL,
	    contact_person TEXT,
	    phone          TEXT,
	    email          TEXT,
	    address        TEXT,
	    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS customers (
	    id             TEXT PRIMARY KEY,
	    name           TEXT NOT NULL,
	    contact_person TEXT,
	    phone          TEXT,
	    email          TEXT,
	    address        TEXT,
	    created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS products (
	    id                TEXT PRIMARY KEY,
	    name              TEXT NOT NULL,
	    description       TEXT,
	    category          TEXT,
	    unit_price        NUMERIC(14,2) NOT NULL DEFAULT 0,
	    quantity_in_stock BIGINT NOT NULL DEFAULT 0 CHECK (quantity_in_stock >= 0),
	    location_id       TEXT REFERENCES storage_locations(id),
	    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	    updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS movements (
	    id              TEXT PRIMARY KEY,
	    kind            TEXT NOT NULL CHECK (kind IN ('SUPPLY', 'SHIPMENT')),
	    product_id      TEXT NOT NULL REFERENCES products(id),
	    counterparty_id TEXT NOT NULL,
	    quantity        BIGINT NOT NULL CHECK (quantity > 0),
	    unit_price      NUMERIC(14,2) NOT NULL DEFAULT 0,
	    total_price     NUMERIC(14,2) NOT NULL DEFAULT 0,
	    movement_date   TIMESTAMPTZ NOT NULL,
	    created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_movements_product_id      ON movements (product_id);
	CREATE INDEX IF NOT EXISTS idx_movements_counterparty_id ON movements (counterparty_id);
	CREATE INDEX IF NOT EXISTS idx_movements_movement_date   ON movements (movement_date);

	CREATE TABLE IF NOT EXISTS acceptance_certificates (
	    id                TEXT PRIMARY KEY,
	    supply_id         TEXT NOT NULL REFERENCES movements(id) ON DELETE CASCADE,
	    accepted_quantity BIGINT NOT NULL CHECK (accepted_quantity >= 0),
	    accepted_date     TIMESTAMPTZ NOT NULL,
	    inspector_name    TEXT,
	    notes             TEXT,
	    created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_acceptance_supply_id ON acceptance_certificates (supply_id);

	CREATE TABLE IF NOT EXISTS invoices (
	    id           TEXT PRIMARY KEY,
	    customer_id  TEXT NOT NULL REFERENCES customers(id),
	    total_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
	    invoice_date TIMESTAMPTZ NOT NULL,
	    due_date     TIMESTAMPTZ,
	    status       TEXT NOT NULL DEFAULT 'pending',
	    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS users (
	    id            TEXT PRIMARY KEY,
	    email         TEXT NOT NULL UNIQUE,
	    password_hash TEXT NOT NULL,
	    name          TEXT NOT NULL DEFAULT '',
	    role          TEXT NOT NULL DEFAULT 'bodeguero',
	    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`

	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres.Migrate: %w", err)
	}
	return nil
}
