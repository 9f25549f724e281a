// Package qrcode renders scannable order references for fulfillment.
package qrcode

import (
	"encoding/json"

	"storefront/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// OrderQRData is the payload encoded into an order QR code. Scanners at the
// warehouse and the courier handoff read it back as JSON.
type OrderQRData struct {
	OrderID string `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService is the constructor for qrcodeService. size is the output
// image width in pixels; errorCorrectionLevel is one of L, M, Q, H and
// defaults to M when unrecognized.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeGenerator {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateOrderQR encodes an order reference as a PNG image.
func (s *qrcodeService) GenerateOrderQR(orderID uuid.UUID) ([]byte, error) {
	data := OrderQRData{
		OrderID: orderID.String(),
		Type:    "order_tracking",
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	png, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}
