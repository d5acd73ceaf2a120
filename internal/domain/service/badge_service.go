package service

import (
	"github.com/google/uuid"
)

// BadgeService defines the interface for visitor badge QR generation and parsing
type BadgeService interface {
	// GenerateVisitQR generates a QR code image identifying a visit record
	GenerateVisitQR(visitID uuid.UUID) ([]byte, error)

	// ParseVisitQR parses scanned QR data and returns the visit ID
	ParseVisitQR(qrData string) (uuid.UUID, error)
}
