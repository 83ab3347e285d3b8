package entity

import "time"

// Supplier representa un proveedor (contraparte de las entradas).
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
}

// Customer representa un cliente (contraparte de los despachos y de las facturas).
type Customer struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	CreatedAt     time.Time
}
