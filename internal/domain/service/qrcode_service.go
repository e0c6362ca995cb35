package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that point at products
type QRCodeService interface {
	// GenerateProductQR returns a PNG QR code referencing the product
	GenerateProductQR(productID uuid.UUID) ([]byte, error)
}
