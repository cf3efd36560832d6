package service

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateTrackingQR renders a PNG QR code pointing at the tracking
	// page for the given order.
	GenerateTrackingQR(orderID string) ([]byte, error)
}
