package usecase

import (
	"context"
	"io"

	"tapadmin/internal/domain/entity"
)

// Asset kinds accepted by merchant uploads.
const (
	AssetKindLogo        = "logo"
	AssetKindABNDocument = "abn"
)

// MerchantUsecase defines merchant administration operations.
type MerchantUsecase interface {
	// ListMerchants returns the filtered, sorted merchant list.
	ListMerchants(ctx context.Context, query ListQuery) ([]*entity.Merchant, error)

	// GetMerchant retrieves one merchant document.
	GetMerchant(ctx context.Context, id string) (*entity.Merchant, error)

	// CreateMerchant persists a new merchant and returns its id.
	CreateMerchant(ctx context.Context, merchant *entity.Merchant) (string, error)

	// UpdateMerchantField applies one targeted (possibly dotted) field edit.
	UpdateMerchantField(ctx context.Context, id, path string, value any) error

	// DeleteMerchant removes one merchant document.
	DeleteMerchant(ctx context.Context, id string) error

	// DeleteMerchants deletes the given merchants concurrently and reports
	// per-item failures. Completed deletes are not rolled back.
	DeleteMerchants(ctx context.Context, ids []string) (*BulkDeleteReport, error)

	// DeleteAllMerchants deletes every merchant document.
	DeleteAllMerchants(ctx context.Context) (*BulkDeleteReport, error)

	// UploadAsset stores a logo or ABN document and writes the resulting URL
	// back onto the merchant document. Returns the public URL.
	UploadAsset(ctx context.Context, merchantID, kind, filename, contentType string, body io.Reader) (string, error)

	// JoinQR renders the merchant's join QR code as a PNG.
	JoinQR(ctx context.Context, merchantID string) ([]byte, error)
}
