package service

import (
	"context"
	"io"
)

// StorageService uploads merchant assets (logos, ABN verification
// documents) to the blob bucket and returns the public download URL that is
// written back into the merchant document.
type StorageService interface {
	// UploadMerchantAsset stores the object under a per-merchant key derived
	// from a freshly generated id and returns its public URL.
	UploadMerchantAsset(ctx context.Context, merchantID, kind, filename, contentType string, body io.Reader) (string, error)

	// Close releases the bucket handle.
	Close() error
}

// QRCodeService generates merchant join QR codes.
type QRCodeService interface {
	// GenerateJoinQR renders the merchant's join URL as a PNG.
	GenerateJoinQR(merchantID string) ([]byte, error)
}
