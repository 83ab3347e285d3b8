package entity

import "time"

// AcceptanceCertificate registra cuánto de una entrada (SUPPLY) fue aceptado
// físicamente en bodega. Una entrada puede tener varios certificados (entregas
// parciales). El certificado nunca ajusta el stock: es solo auditoría.
type AcceptanceCertificate struct {
	ID               string
	SupplyID         string
	AcceptedQuantity int64
	AcceptedDate     time.Time
	InspectorName    string
	Notes            string
	CreatedAt        time.Time
}
