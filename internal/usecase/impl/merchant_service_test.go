package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	mockRepo "tapadmin/internal/mocks/repository"
	mockSvc "tapadmin/internal/mocks/service"
	"tapadmin/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// merchantServiceFixtures holds all test dependencies for merchant service tests.
type merchantServiceFixtures struct {
	service      usecase.MerchantUsecase
	merchantRepo *mockRepo.MockMerchantRepository
	storage      *mockSvc.MockStorageService
	qr           *mockSvc.MockQRCodeService
	publisher    *mockSvc.MockEventPublisher
	cache        *mockSvc.MockAggregateCache
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	storage := mockSvc.NewMockStorageService(t)
	qr := mockSvc.NewMockQRCodeService(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cache := mockSvc.NewMockAggregateCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMerchantService(merchantRepo, storage, qr, publisher, cache, logger)

	return merchantServiceFixtures{
		service:      service,
		merchantRepo: merchantRepo,
		storage:      storage,
		qr:           qr,
		publisher:    publisher,
		cache:        cache,
	}
}

func TestMerchantService_ListMerchants_DefaultSort(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchants := []*entity.Merchant{
		{ID: "m1", MerchantName: "Zesty Bowls"},
		{ID: "m2", TradingName: "Aroma Lane"},
		{ID: "m3", MerchantName: "Beanstalk Espresso"},
	}

	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return(merchants, nil)

	got, err := fx.service.ListMerchants(ctx, usecase.ListQuery{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	// Trading name stands in for a missing merchant name when sorting.
	assert.Equal(t, "m2", got[0].ID)
	assert.Equal(t, "m3", got[1].ID)
	assert.Equal(t, "m1", got[2].ID)
}

func TestMerchantService_ListMerchants_SearchByRepresentative(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchants := []*entity.Merchant{
		{ID: "m1", MerchantName: "Corner Cafe", Representative: entity.Representative{Name: "Alice Wong"}},
		{ID: "m2", MerchantName: "Harbour Deli", Representative: entity.Representative{Name: "Bob Tran"}},
	}

	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return(merchants, nil)

	got, err := fx.service.ListMerchants(ctx, usecase.ListQuery{Search: "alice"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "m1", got[0].ID)
}

func TestMerchantService_ListMerchants_NearbyOrder(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	locate := func(lat, lng float64) *entity.Location {
		return &entity.Location{Coordinates: entity.Coordinates{Latitude: lat, Longitude: lng}}
	}
	merchants := []*entity.Merchant{
		{ID: "parra", MerchantName: "Parramatta Grind", Location: locate(-33.8150, 151.0011)},
		{ID: "nowhere", MerchantName: "Unlisted"},
		{ID: "cbd", MerchantName: "CBD Beans", Location: locate(-33.8688, 151.2093)},
	}

	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return(merchants, nil)

	// Opera House as the origin: nearest first, unlocated merchants last.
	lat, lng := -33.8568, 151.2153
	got, err := fx.service.ListMerchants(ctx, usecase.ListQuery{NearLat: &lat, NearLng: &lng})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "cbd", got[0].ID)
	assert.Equal(t, "parra", got[1].ID)
	assert.Equal(t, "nowhere", got[2].ID)
}

func TestMerchantService_GetMerchant_NotFound(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		FindMerchantByID(ctx, "missing").
		Return(nil, repository.ErrMerchantNotFound)

	merchant, err := fx.service.GetMerchant(ctx, "missing")
	assert.Error(t, err)
	assert.Nil(t, merchant)
	assert.Equal(t, domainerrors.ErrMerchantNotFound, err)
}

func TestMerchantService_CreateMerchant_AppliesDefaults(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{MerchantName: "Corner Cafe"}

	fx.merchantRepo.EXPECT().
		CreateMerchant(ctx, mock.AnythingOfType("*entity.Merchant")).
		Return("m1", nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	id, err := fx.service.CreateMerchant(ctx, merchant)
	require.NoError(t, err)
	assert.Equal(t, "m1", id)
	assert.Equal(t, entity.MerchantStatusPending, merchant.Status)
	assert.Equal(t, float64(1), merchant.DefaultMultiplier)
}

func TestMerchantService_CreateMerchant_KeepsExplicitStatus(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	merchant := &entity.Merchant{
		MerchantName:      "Corner Cafe",
		Status:            entity.MerchantStatusActive,
		DefaultMultiplier: 2.5,
	}

	fx.merchantRepo.EXPECT().
		CreateMerchant(ctx, merchant).
		Return("m1", nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	_, err := fx.service.CreateMerchant(ctx, merchant)
	require.NoError(t, err)
	assert.Equal(t, entity.MerchantStatusActive, merchant.Status)
	assert.Equal(t, 2.5, merchant.DefaultMultiplier)
}

func TestMerchantService_UpdateMerchantField_EmptyPath(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	err := fx.service.UpdateMerchantField(ctx, "m1", "", "value")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "field path is required")
}

func TestMerchantService_UpdateMerchantField_Success(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		UpdateMerchant(ctx, "m1", []repository.FieldUpdate{{Path: "address.suburb", Value: "Newtown"}}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	err := fx.service.UpdateMerchantField(ctx, "m1", "address.suburb", "Newtown")
	require.NoError(t, err)
}

func TestMerchantService_DeleteMerchants_PartialFailure(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		DeleteMerchant(mock.Anything, "m1").
		Return(nil)
	fx.merchantRepo.EXPECT().
		DeleteMerchant(mock.Anything, "m2").
		Return(errors.New("firestore unavailable"))
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	report, err := fx.service.DeleteMerchants(ctx, []string{"m1", "m2"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Requested)
	assert.Equal(t, 1, report.Deleted)
	assert.False(t, report.Ok())
	assert.Contains(t, report.Failed["m2"], "firestore unavailable")
}

func TestMerchantService_DeleteMerchants_AllFailed(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		DeleteMerchant(mock.Anything, "m1").
		Return(errors.New("firestore unavailable"))

	report, err := fx.service.DeleteMerchants(ctx, []string{"m1"})
	require.NoError(t, err)
	assert.Equal(t, 0, report.Deleted)
	assert.Len(t, report.Failed, 1)
}

func TestMerchantService_DeleteAllMerchants(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{{ID: "m1"}, {ID: "m2"}}, nil)
	fx.merchantRepo.EXPECT().
		DeleteMerchant(mock.Anything, "m1").
		Return(nil)
	fx.merchantRepo.EXPECT().
		DeleteMerchant(mock.Anything, "m2").
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	report, err := fx.service.DeleteAllMerchants(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Requested)
	assert.Equal(t, 2, report.Deleted)
	assert.True(t, report.Ok())
}

func TestMerchantService_UploadAsset_UnknownKind(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	url, err := fx.service.UploadAsset(ctx, "m1", "banner", "banner.png", "image/png", strings.NewReader("png"))
	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "unknown asset kind: banner")
}

func TestMerchantService_UploadAsset_StorageFailure(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	body := strings.NewReader("png")
	fx.storage.EXPECT().
		UploadMerchantAsset(ctx, "m1", usecase.AssetKindLogo, "logo.png", "image/png", body).
		Return("", errors.New("bucket unavailable"))

	// The merchant document is not touched when the upload itself fails.
	url, err := fx.service.UploadAsset(ctx, "m1", usecase.AssetKindLogo, "logo.png", "image/png", body)
	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "failed to upload merchant asset")
}

func TestMerchantService_UploadAsset_Logo(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	body := strings.NewReader("png")
	fx.storage.EXPECT().
		UploadMerchantAsset(ctx, "m1", usecase.AssetKindLogo, "logo.png", "image/png", body).
		Return("https://cdn.example.com/m1/logo.png", nil)
	fx.merchantRepo.EXPECT().
		UpdateMerchant(ctx, "m1", []repository.FieldUpdate{{Path: "logoUrl", Value: "https://cdn.example.com/m1/logo.png"}}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	url, err := fx.service.UploadAsset(ctx, "m1", usecase.AssetKindLogo, "logo.png", "image/png", body)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/m1/logo.png", url)
}

func TestMerchantService_UploadAsset_ABNDocument(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	body := strings.NewReader("pdf")
	fx.storage.EXPECT().
		UploadMerchantAsset(ctx, "m1", usecase.AssetKindABNDocument, "abn.pdf", "application/pdf", body).
		Return("https://cdn.example.com/m1/abn.pdf", nil)
	fx.merchantRepo.EXPECT().
		UpdateMerchant(ctx, "m1", []repository.FieldUpdate{{Path: "abnVerification.documentUrl", Value: "https://cdn.example.com/m1/abn.pdf"}}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	url, err := fx.service.UploadAsset(ctx, "m1", usecase.AssetKindABNDocument, "abn.pdf", "application/pdf", body)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/m1/abn.pdf", url)
}

func TestMerchantService_JoinQR_NotFound(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		FindMerchantByID(ctx, "missing").
		Return(nil, repository.ErrMerchantNotFound)

	png, err := fx.service.JoinQR(ctx, "missing")
	assert.Error(t, err)
	assert.Nil(t, png)
	assert.Equal(t, domainerrors.ErrMerchantNotFound, err)
}

func TestMerchantService_JoinQR_Success(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.merchantRepo.EXPECT().
		FindMerchantByID(ctx, "m1").
		Return(&entity.Merchant{ID: "m1"}, nil)
	fx.qr.EXPECT().
		GenerateJoinQR("m1").
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.JoinQR(ctx, "m1")
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}
