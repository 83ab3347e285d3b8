package dto

import "time"

// RecordAcceptanceRequest alta de un acta de aceptación sobre una entrada.
type RecordAcceptanceRequest struct {
	SupplyID         string    `json:"supply_id"`
	AcceptedQuantity int64     `json:"accepted_quantity"`
	AcceptedDate     time.Time `json:"accepted_date"`
	InspectorName    string    `json:"inspector_name,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

// UpdateAcceptanceRequest edición de un acta existente.
type UpdateAcceptanceRequest struct {
	AcceptedQuantity int64     `json:"accepted_quantity"`
	AcceptedDate     time.Time `json:"accepted_date"`
	InspectorName    string    `json:"inspector_name,omitempty"`
	Notes            string    `json:"notes,omitempty"`
}

// CertificateDTO vista de un acta para la API.
type CertificateDTO struct {
	ID               string    `json:"id"`
	SupplyID         string    `json:"supply_id"`
	AcceptedQuantity int64     `json:"accepted_quantity"`
	AcceptedDate     time.Time `json:"accepted_date"`
	InspectorName    string    `json:"inspector_name,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// TotalAcceptedResponse total aceptado acumulado de una entrada.
type TotalAcceptedResponse struct {
	SupplyID      string `json:"supply_id"`
	OrderedQty    int64  `json:"ordered_quantity"`
	TotalAccepted int64  `json:"total_accepted"`
}
