package impl

import (
	"context"
	"io"
	"log/slog"
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

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	merchantRepo *mockRepo.MockMerchantRepository
	cache        *mockSvc.MockAggregateCache
	publisher    *mockSvc.MockEventPublisher
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	cache := mockSvc.NewMockAggregateCache(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewCustomerService(customerRepo, merchantRepo, cache, publisher, logger)

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		merchantRepo: merchantRepo,
		cache:        cache,
		publisher:    publisher,
	}
}

func TestCustomerService_ListCustomers_CacheHit(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	cached := []*entity.CustomerRow{
		{CustomerID: "c1", FullName: "Alice Wong", TotalLifetimeSpend: 120},
	}

	// A warm cache answers the list without touching the store.
	fx.cache.EXPECT().
		GetCustomerRows(ctx).
		Return(cached, true, nil)

	rows, err := fx.service.ListCustomers(ctx, usecase.ListQuery{}, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].CustomerID)
}

func TestCustomerService_ListCustomers_AggregatesAcrossMerchants(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.cache.EXPECT().
		GetCustomerRows(ctx).
		Return(nil, false, nil)
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{
			{ID: "c1", FullName: "Alice Wong", Email: "alice@example.com", MembershipTier: "Gold"},
			{ID: "c2", FirstName: "Bob", LastName: "Tran"},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{
			{ID: "m1", MerchantName: "Corner Cafe"},
			{ID: "m2", TradingName: "Harbour Deli"},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(mock.Anything, "m1").
		Return([]*entity.MerchantCustomer{
			{CustomerID: "c1", TotalLifetimeSpend: 100, LifetimeTransactionCount: 4, RedemptionCount: 1},
			{CustomerID: "ghost", TotalLifetimeSpend: 999},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(mock.Anything, "m2").
		Return([]*entity.MerchantCustomer{
			{CustomerID: "c1", TotalLifetimeSpend: 50.5, LifetimeTransactionCount: 2, RedemptionCount: 3},
		}, nil)
	fx.cache.EXPECT().
		SetCustomerRows(ctx, mock.Anything).
		Return(nil)

	rows, err := fx.service.ListCustomers(ctx, usecase.ListQuery{}, false)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Default sort is fullName ascending.
	alice := rows[0]
	assert.Equal(t, "c1", alice.CustomerID)
	assert.Equal(t, 150.5, alice.TotalLifetimeSpend)
	assert.Equal(t, int64(6), alice.TotalTransactions)
	assert.Equal(t, int64(4), alice.TotalRedemptions)
	require.Len(t, alice.Merchants, 2)

	bob := rows[1]
	assert.Equal(t, "Bob Tran", bob.FullName)
	assert.Empty(t, bob.Merchants)
}

func TestCustomerService_ListCustomers_ForceRefreshSkipsCacheRead(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{{ID: "c1", FullName: "Alice Wong"}}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{}, nil)
	fx.cache.EXPECT().
		SetCustomerRows(ctx, mock.Anything).
		Return(nil)

	rows, err := fx.service.ListCustomers(ctx, usecase.ListQuery{}, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestCustomerService_ListCustomers_CacheErrorRecomputes(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.cache.EXPECT().
		GetCustomerRows(ctx).
		Return(nil, false, errors.New("redis down"))
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{{ID: "c1", FullName: "Alice Wong"}}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{}, nil)
	fx.cache.EXPECT().
		SetCustomerRows(ctx, mock.Anything).
		Return(nil)

	rows, err := fx.service.ListCustomers(ctx, usecase.ListQuery{}, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

func TestCustomerService_ListCustomers_FailingMerchantSkipped(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.cache.EXPECT().
		GetCustomerRows(ctx).
		Return(nil, false, nil)
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{{ID: "c1", FullName: "Alice Wong"}}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{
			{ID: "m1", MerchantName: "Corner Cafe"},
			{ID: "m2", MerchantName: "Harbour Deli"},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(mock.Anything, "m1").
		Return(nil, errors.New("scan failed"))
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(mock.Anything, "m2").
		Return([]*entity.MerchantCustomer{
			{CustomerID: "c1", TotalLifetimeSpend: 40},
		}, nil)
	fx.cache.EXPECT().
		SetCustomerRows(ctx, mock.Anything).
		Return(nil)

	rows, err := fx.service.ListCustomers(ctx, usecase.ListQuery{}, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(40), rows[0].TotalLifetimeSpend)
	require.Len(t, rows[0].Merchants, 1)
	assert.Equal(t, "m2", rows[0].Merchants[0].MerchantID)
}

func TestCustomerService_ListCustomers_SearchByMerchantName(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	cached := []*entity.CustomerRow{
		{CustomerID: "c1", FullName: "Alice Wong", Merchants: []entity.MerchantAffiliation{
			{MerchantID: "m1", MerchantName: "Corner Cafe"},
		}},
		{CustomerID: "c2", FullName: "Bob Tran"},
	}

	fx.cache.EXPECT().
		GetCustomerRows(ctx).
		Return(cached, true, nil)

	rows, err := fx.service.ListCustomers(ctx, usecase.ListQuery{Search: "corner"}, false)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].CustomerID)
}

func TestCustomerService_GetCustomerDetail_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, "missing").
		Return(nil, repository.ErrCustomerNotFound)

	detail, err := fx.service.GetCustomerDetail(ctx, "missing")
	assert.Error(t, err)
	assert.Nil(t, detail)
	assert.Equal(t, domainerrors.ErrCustomerNotFound, err)
}

func TestCustomerService_GetCustomerDetail_CollectsAffiliations(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	customer := &entity.Customer{ID: "c1", FullName: "Alice Wong"}

	fx.customerRepo.EXPECT().
		FindCustomerByID(ctx, "c1").
		Return(customer, nil)
	fx.customerRepo.EXPECT().
		ListTransactions(ctx, "c1", recentActivityLimit).
		Return([]*entity.TransactionRecord{{ID: "t1", Amount: 12.5}}, nil)
	fx.customerRepo.EXPECT().
		ListRedemptions(ctx, "c1", recentActivityLimit).
		Return([]*entity.RedemptionRecord{}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{
			{ID: "m1", MerchantName: "Corner Cafe"},
			{ID: "m2", MerchantName: "Harbour Deli"},
		}, nil)
	fx.merchantRepo.EXPECT().
		FindMerchantCustomer(ctx, "m1", "c1").
		Return(&entity.MerchantCustomer{CustomerID: "c1"}, nil)
	fx.merchantRepo.EXPECT().
		FindMerchantCustomer(ctx, "m2", "c1").
		Return(nil, repository.ErrMerchantCustomerNotFound)

	detail, err := fx.service.GetCustomerDetail(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, customer, detail.Customer)
	require.Len(t, detail.Merchants, 1)
	assert.Equal(t, "Corner Cafe", detail.Merchants[0].MerchantName)
	assert.Len(t, detail.Transactions, 1)
	assert.Empty(t, detail.Redemptions)
}

func TestCustomerService_UpdateCustomerField_EmptyPath(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	err := fx.service.UpdateCustomerField(ctx, "c1", "", "value")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "field path is required")
}

func TestCustomerService_UpdateCustomerField_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		UpdateCustomer(ctx, "c1", []repository.FieldUpdate{{Path: "membershipTier", Value: "Silver"}}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	err := fx.service.UpdateCustomerField(ctx, "c1", "membershipTier", "Silver")
	require.NoError(t, err)
}

func TestCustomerService_DeleteCustomer_NotFound(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		DeleteCustomer(ctx, "missing").
		Return(repository.ErrCustomerNotFound)

	err := fx.service.DeleteCustomer(ctx, "missing")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrCustomerNotFound, err)
}

func TestCustomerService_DeleteCustomer_Success(t *testing.T) {
	fx := createTestCustomerService(t)

	ctx := context.Background()
	fx.customerRepo.EXPECT().
		DeleteCustomer(ctx, "c1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)
	fx.cache.EXPECT().
		InvalidateCustomerRows(ctx).
		Return(nil)

	err := fx.service.DeleteCustomer(ctx, "c1")
	require.NoError(t, err)
}
