package impl

import (
	"context"
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

// aggregationConcurrency caps the per-merchant subcollection fan-out of the
// customer aggregation read path.
const aggregationConcurrency = 8

// recentActivityLimit bounds the transactions and redemptions loaded on the
// customer detail view.
const recentActivityLimit = 20

type customerService struct {
	customerRepo repository.CustomerRepository
	merchantRepo repository.MerchantRepository
	cache        service.AggregateCache
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	merchantRepo repository.MerchantRepository,
	cache service.AggregateCache,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.CustomerUsecase {
	return &customerService{
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
		cache:        cache,
		publisher:    publisher,
		logger:       logger,
	}
}

func (srv *customerService) ListCustomers(ctx context.Context, query usecase.ListQuery, forceRefresh bool) ([]*entity.CustomerRow, error) {
	var rows []*entity.CustomerRow

	if !forceRefresh {
		cached, ok, err := srv.cache.GetCustomerRows(ctx)
		if err != nil {
			srv.logger.Warn("aggregate cache read failed, recomputing", slog.Any("error", err))
		}
		if ok {
			rows = cached
		}
	}

	if rows == nil {
		computed, err := srv.aggregate(ctx)
		if err != nil {
			return nil, err
		}
		rows = computed

		if err := srv.cache.SetCustomerRows(ctx, rows); err != nil {
			srv.logger.Warn("aggregate cache write failed", slog.Any("error", err))
		}
	}

	if query.Search != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if view.Matches(query.Search, view.CustomerSearchFields(*row)...) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	sortKey := query.SortKey
	if sortKey == "" {
		sortKey = "fullName"
	}
	view.Sort(rows, sortKey, query.Direction(), func(row *entity.CustomerRow, key string) any {
		return view.CustomerSortValue(*row, key)
	})

	return rows, nil
}

// aggregate builds one row per global customer profile by summing the
// merchant-scoped subdocuments. Each merchant's subcollection is read once
// and scanned concurrently; a failing merchant contributes nothing but does
// not abort the other merchants.
func (srv *customerService) aggregate(ctx context.Context) ([]*entity.CustomerRow, error) {
	customers, err := srv.customerRepo.ListCustomers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	merchants, err := srv.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	type merchantScan struct {
		merchant  *entity.Merchant
		customers []*entity.MerchantCustomer
	}

	scans := make([]*merchantScan, 0, len(merchants))
	var mu sync.Mutex

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(aggregationConcurrency)
	for _, merchant := range merchants {
		group.Go(func() error {
			merchantCustomers, scanErr := srv.merchantRepo.ListMerchantCustomers(groupCtx, merchant.ID)
			if scanErr != nil {
				srv.logger.Warn("skipping merchant in customer aggregation",
					slog.String("merchant_id", merchant.ID),
					slog.Any("error", scanErr),
				)

				return nil
			}

			mu.Lock()
			scans = append(scans, &merchantScan{merchant: merchant, customers: merchantCustomers})
			mu.Unlock()

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, errors.Wrap(err, "customer aggregation fan-out")
	}

	rows := make([]*entity.CustomerRow, 0, len(customers))
	byID := make(map[string]*entity.CustomerRow, len(customers))
	for _, customer := range customers {
		row := &entity.CustomerRow{
			CustomerID:        customer.ID,
			FullName:          customer.DisplayName(),
			Email:             customer.Email,
			MembershipTier:    customer.MembershipTier,
			ProfilePictureURL: customer.ProfilePictureURL,
			Merchants:         []entity.MerchantAffiliation{},
		}
		rows = append(rows, row)
		byID[customer.ID] = row
	}

	for _, scan := range scans {
		for _, mc := range scan.customers {
			row, ok := byID[mc.CustomerID]
			if !ok {
				// Subdocument without a global profile; nothing to sum onto.
				continue
			}
			row.TotalLifetimeSpend += mc.TotalLifetimeSpend
			row.TotalTransactions += mc.LifetimeTransactionCount
			row.TotalRedemptions += mc.RedemptionCount
			row.Merchants = append(row.Merchants, entity.MerchantAffiliation{
				MerchantID:   scan.merchant.ID,
				MerchantName: scan.merchant.DisplayName(),
			})
		}
	}

	return rows, nil
}

func (srv *customerService) GetCustomerDetail(ctx context.Context, id string) (*usecase.CustomerDetail, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	transactions, err := srv.customerRepo.ListTransactions(ctx, id, recentActivityLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	redemptions, err := srv.customerRepo.ListRedemptions(ctx, id, recentActivityLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list redemptions")
	}

	merchants, err := srv.merchantRepo.ListMerchants(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list merchants")
	}

	var affiliations []entity.MerchantAffiliation
	for _, merchant := range merchants {
		if _, err := srv.merchantRepo.FindMerchantCustomer(ctx, merchant.ID, id); err != nil {
			if errors.Is(err, repository.ErrMerchantCustomerNotFound) {
				continue
			}
			srv.logger.Warn("skipping merchant in affiliation lookup",
				slog.String("merchant_id", merchant.ID),
				slog.Any("error", err),
			)

			continue
		}
		affiliations = append(affiliations, entity.MerchantAffiliation{
			MerchantID:   merchant.ID,
			MerchantName: merchant.DisplayName(),
		})
	}

	return &usecase.CustomerDetail{
		Customer:     customer,
		Merchants:    affiliations,
		Transactions: transactions,
		Redemptions:  redemptions,
	}, nil
}

func (srv *customerService) UpdateCustomerField(ctx context.Context, id, path string, value any) error {
	if path == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("field path is required")
	}

	err := srv.customerRepo.UpdateCustomer(ctx, id, []repository.FieldUpdate{{Path: path, Value: value}})
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to update customer field")
	}

	srv.publishCustomerEvent(ctx, constants.EventCustomerUpdated, id)
	srv.invalidate(ctx)

	return nil
}

func (srv *customerService) DeleteCustomer(ctx context.Context, id string) error {
	if err := srv.customerRepo.DeleteCustomer(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return domainerrors.ErrCustomerNotFound
		}

		return errors.Wrap(err, "failed to delete customer")
	}

	srv.publishCustomerEvent(ctx, constants.EventCustomerDeleted, id)
	srv.invalidate(ctx)

	return nil
}

func (srv *customerService) publishCustomerEvent(ctx context.Context, eventType, customerID string) {
	event := &service.AdminEvent{
		EventType:  eventType,
		CustomerID: customerID,
		OccurredAt: timeNow(),
	}
	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish admin event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}

func (srv *customerService) invalidate(ctx context.Context) {
	if err := srv.cache.InvalidateCustomerRows(ctx); err != nil {
		srv.logger.Warn("failed to invalidate aggregate cache", slog.Any("error", err))
	}
}
