package service

import "github.com/google/uuid"

// QRCodeGenerator renders machine-scannable order references for packing
// slips and delivery handoff scans.
type QRCodeGenerator interface {
	// GenerateOrderQR encodes an order reference as a PNG image.
	GenerateOrderQR(orderID uuid.UUID) ([]byte, error)
}
