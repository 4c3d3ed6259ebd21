// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"tapadmin/internal/domain/constants"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/domain/view"
	"tapadmin/internal/errors"
	"tapadmin/internal/usecase"
)

// bulkDeleteConcurrency caps the fan-out of bulk deletes so a "delete all"
// does not open one connection per document.
const bulkDeleteConcurrency = 8

type merchantService struct {
	merchantRepo repository.MerchantRepository
	storage      service.StorageService
	qr           service.QRCodeService
	publisher    service.EventPublisher
	cache        service.AggregateCache
	logger       *slog.Logger
}

// NewMerchantService is the constructor for merchantService.
func NewMerchantService(
	merchantRepo repository.MerchantRepository,
	storage service.StorageService,
	qr service.QRCodeService,
	publisher service.EventPublisher,
	cache service.AggregateCache,
	logger *slog.Logger,
) usecase.MerchantUsecase {
	return &merchantService{
		merchantRepo: merchantRepo,
		storage:      storage,
		qr:           qr,
		publisher:    publisher,
		cache:        cache,
		logger:       logger,
	}
}

func (srv *merchantService) ListMerchants(ctx context.Context, query usecase.ListQuery) ([]*entity.Merchant, error) {
	merchants, err := srv.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	if query.Search != "" {
		filtered := merchants[:0]
		for _, m := range merchants {
			if view.Matches(query.Search, view.MerchantSearchFields(m)...) {
				filtered = append(filtered, m)
			}
		}
		merchants = filtered
	}

	// A proximity origin overrides column sorting: nearest first, merchants
	// without a geocoded location last.
	if origin, ok := query.NearPoint(); ok {
		view.SortMerchantsByDistance(merchants, origin, query.Direction())

		return merchants, nil
	}

	sortKey := query.SortKey
	if sortKey == "" {
		sortKey = "merchantName"
	}
	view.Sort(merchants, sortKey, query.Direction(), func(m *entity.Merchant, key string) any {
		return view.MerchantSortValue(m, key)
	})

	return merchants, nil
}

func (srv *merchantService) GetMerchant(ctx context.Context, id string) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to get merchant")
	}

	return merchant, nil
}

func (srv *merchantService) CreateMerchant(ctx context.Context, merchant *entity.Merchant) (string, error) {
	if merchant.Status == "" {
		merchant.Status = entity.MerchantStatusPending
	}
	if merchant.DefaultMultiplier == 0 {
		merchant.DefaultMultiplier = 1
	}

	id, err := srv.merchantRepo.CreateMerchant(ctx, merchant)
	if err != nil {
		return "", errors.Wrap(err, "failed to create merchant")
	}

	srv.publish(ctx, constants.EventMerchantCreated, id)
	srv.invalidateAggregates(ctx)

	return id, nil
}

func (srv *merchantService) UpdateMerchantField(ctx context.Context, id, path string, value any) error {
	if path == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("field path is required")
	}

	err := srv.merchantRepo.UpdateMerchant(ctx, id, []repository.FieldUpdate{{Path: path, Value: value}})
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrMerchantNotFound
		}

		return errors.Wrap(err, "failed to update merchant field")
	}

	srv.publish(ctx, constants.EventMerchantUpdated, id)
	srv.invalidateAggregates(ctx)

	return nil
}

func (srv *merchantService) DeleteMerchant(ctx context.Context, id string) error {
	if err := srv.merchantRepo.DeleteMerchant(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrMerchantNotFound
		}

		return errors.Wrap(err, "failed to delete merchant")
	}

	srv.publish(ctx, constants.EventMerchantDeleted, id)
	srv.invalidateAggregates(ctx)

	return nil
}

func (srv *merchantService) DeleteMerchants(ctx context.Context, ids []string) (*usecase.BulkDeleteReport, error) {
	report := &usecase.BulkDeleteReport{
		Requested: len(ids),
		Failed:    make(map[string]string),
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(bulkDeleteConcurrency)

	for _, id := range ids {
		group.Go(func() error {
			err := srv.merchantRepo.DeleteMerchant(groupCtx, id)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed[id] = err.Error()
			} else {
				report.Deleted++
			}

			// Deletes that already succeeded stay deleted; collect every
			// failure instead of aborting the group.
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "bulk delete merchants")
	}

	if report.Deleted > 0 {
		srv.publish(ctx, constants.EventMerchantDeleted, "")
		srv.invalidateAggregates(ctx)
	}

	return report, nil
}

func (srv *merchantService) DeleteAllMerchants(ctx context.Context) (*usecase.BulkDeleteReport, error) {
	merchants, err := srv.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants for delete all")
	}

	ids := make([]string, 0, len(merchants))
	for _, m := range merchants {
		ids = append(ids, m.ID)
	}

	return srv.DeleteMerchants(ctx, ids)
}

func (srv *merchantService) UploadAsset(ctx context.Context, merchantID, kind, filename, contentType string, body io.Reader) (string, error) {
	var urlField string
	switch kind {
	case usecase.AssetKindLogo:
		urlField = "logoUrl"
	case usecase.AssetKindABNDocument:
		urlField = "abnVerification.documentUrl"
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown asset kind: " + kind)
	}

	// Upload first so a storage failure never leaves a dangling URL on the
	// merchant document.
	url, err := srv.storage.UploadMerchantAsset(ctx, merchantID, kind, filename, contentType, body)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload merchant asset")
	}

	err = srv.merchantRepo.UpdateMerchant(ctx, merchantID, []repository.FieldUpdate{{Path: urlField, Value: url}})
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return "", domainerrors.ErrMerchantNotFound
		}

		return "", errors.Wrap(err, "failed to record asset URL")
	}

	srv.publish(ctx, constants.EventMerchantUpdated, merchantID)

	return url, nil
}

func (srv *merchantService) JoinQR(ctx context.Context, merchantID string) ([]byte, error) {
	if _, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to load merchant for QR")
	}

	png, err := srv.qr.GenerateJoinQR(merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate join QR")
	}

	return png, nil
}

func (srv *merchantService) publish(ctx context.Context, eventType, merchantID string) {
	event := &service.AdminEvent{
		EventType:  eventType,
		MerchantID: merchantID,
		OccurredAt: timeNow(),
	}
	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish admin event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

func (srv *merchantService) invalidateAggregates(ctx context.Context) {
	if err := srv.cache.InvalidateCustomerRows(ctx); err != nil {
		srv.logger.Warn("failed to invalidate aggregate cache", slog.Any("error", err))
	}
}
