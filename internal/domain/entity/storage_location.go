package entity

import "time"

// StorageLocation representa un lugar físico de almacenamiento.
type StorageLocation struct {
	ID          string
	Name        string
	Description string
	Capacity    *int64
	CreatedAt   time.Time
}
