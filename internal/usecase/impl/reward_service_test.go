package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

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

// rewardServiceFixtures holds all test dependencies for reward service tests.
type rewardServiceFixtures struct {
	service      usecase.RewardUsecase
	rewardRepo   *mockRepo.MockRewardRepository
	merchantRepo *mockRepo.MockMerchantRepository
	customerRepo *mockRepo.MockCustomerRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestRewardService(t *testing.T) rewardServiceFixtures {
	rewardRepo := mockRepo.NewMockRewardRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewRewardService(rewardRepo, merchantRepo, customerRepo, publisher, logger)

	return rewardServiceFixtures{
		service:      service,
		rewardRepo:   rewardRepo,
		merchantRepo: merchantRepo,
		customerRepo: customerRepo,
		publisher:    publisher,
	}
}

func TestRewardService_ListRewards_MergesThreeLocations(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	createdAt := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	fx.rewardRepo.EXPECT().
		ListGlobalRewards(ctx).
		Return([]*entity.Reward{
			{ID: "r1", RewardName: "Free Muffin", CreatedAt: createdAt},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{
			{ID: "m1", MerchantName: "Corner Cafe"},
		}, nil)
	fx.rewardRepo.EXPECT().
		ListMerchantRewards(mock.Anything, "m1").
		Return([]*entity.Reward{
			{ID: "r2", RewardName: "Loyal Latte"},
		}, nil)
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{
			{ID: "c1", FullName: "Alice Wong"},
		}, nil)
	fx.rewardRepo.EXPECT().
		ListCustomerRewards(mock.Anything, "c1").
		Return([]*entity.Reward{
			{ID: "r3", RewardName: "Birthday Treat"},
		}, nil)

	result, err := fx.service.ListRewards(ctx, usecase.ListQuery{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)
	assert.Empty(t, result.Failures)

	// Default sort is rewardName ascending.
	birthday := result.Rows[0]
	assert.Equal(t, entity.RewardSourceCustomer, birthday.Source)
	assert.Equal(t, "c1-r3", birthday.DisplayID)
	assert.Equal(t, "customers/c1/rewards/r3", birthday.CollectionPath)
	assert.Equal(t, "Alice Wong", birthday.CustomerName)

	muffin := result.Rows[1]
	assert.Equal(t, entity.RewardSourceGlobal, muffin.Source)
	assert.Equal(t, "r1", muffin.DisplayID)
	assert.Equal(t, "rewards/r1", muffin.CollectionPath)
	assert.Equal(t, "2025-03-01T10:00:00Z", muffin.CreatedAtISO)

	latte := result.Rows[2]
	assert.Equal(t, entity.RewardSourceMerchant, latte.Source)
	assert.Equal(t, "m1-r2", latte.DisplayID)
	assert.Equal(t, "merchants/m1/rewards/r2", latte.CollectionPath)
	assert.Equal(t, "Corner Cafe", latte.MerchantName)
}

func TestRewardService_ListRewards_FailingPassReported(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		ListGlobalRewards(ctx).
		Return(nil, errors.New("index missing"))
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{
			{ID: "m1", MerchantName: "Corner Cafe"},
			{ID: "m2", MerchantName: "Harbour Deli"},
		}, nil)
	fx.rewardRepo.EXPECT().
		ListMerchantRewards(mock.Anything, "m1").
		Return(nil, errors.New("scan failed"))
	fx.rewardRepo.EXPECT().
		ListMerchantRewards(mock.Anything, "m2").
		Return([]*entity.Reward{{ID: "r1", RewardName: "Deli Deal"}}, nil)
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{}, nil)

	result, err := fx.service.ListRewards(ctx, usecase.ListQuery{})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "m2-r1", result.Rows[0].DisplayID)
	require.Len(t, result.Failures, 2)
	assert.Contains(t, result.Failures[0], "global: index missing")
	assert.Contains(t, result.Failures[1], "merchant m1: scan failed")
}

func TestRewardService_ListRewards_ConcurrentSubScans(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		ListGlobalRewards(ctx).
		Return([]*entity.Reward{}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{}, nil)
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{
			{ID: "c1", FullName: "Alice Wong"},
			{ID: "c2", FullName: "Ben Ito"},
			{ID: "c3", FullName: "Cara Diaz"},
		}, nil)
	fx.rewardRepo.EXPECT().
		ListCustomerRewards(mock.Anything, "c1").
		Return([]*entity.Reward{{ID: "r1", RewardName: "Alpha"}}, nil)
	fx.rewardRepo.EXPECT().
		ListCustomerRewards(mock.Anything, "c2").
		Return(nil, errors.New("deadline exceeded"))
	fx.rewardRepo.EXPECT().
		ListCustomerRewards(mock.Anything, "c3").
		Return([]*entity.Reward{{ID: "r2", RewardName: "Beta"}}, nil)

	result, err := fx.service.ListRewards(ctx, usecase.ListQuery{})
	require.NoError(t, err)

	// One parent failing mid-pass drops only that parent's rewards; the
	// surviving scans still merge, whatever order they complete in.
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "c1-r1", result.Rows[0].DisplayID)
	assert.Equal(t, "c3-r2", result.Rows[1].DisplayID)
	require.Len(t, result.Failures, 1)
	assert.Contains(t, result.Failures[0], "customer c2: deadline exceeded")
}

func TestRewardService_ListRewards_SearchByDisplayID(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		ListGlobalRewards(ctx).
		Return([]*entity.Reward{{ID: "abc123", RewardName: "Free Muffin"}}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchants(ctx).
		Return([]*entity.Merchant{}, nil)
	fx.customerRepo.EXPECT().
		ListCustomers(ctx).
		Return([]*entity.Customer{}, nil)

	result, err := fx.service.ListRewards(ctx, usecase.ListQuery{Search: "abc123"})
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	result, err = fx.service.ListRewards(ctx, usecase.ListQuery{Search: "nomatch"})
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
}

func TestRewardService_UpdateRewardField_EmptyPath(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	err := fx.service.UpdateRewardField(ctx, "rewards/r1", "", "value")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "field path is required")
}

func TestRewardService_UpdateRewardField_InvalidPath(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		UpdateAtPath(ctx, "bogus/path/extra", []repository.FieldUpdate{{Path: "pointsCost", Value: 50}}).
		Return(repository.ErrInvalidRewardPath)

	err := fx.service.UpdateRewardField(ctx, "bogus/path/extra", "pointsCost", 50)
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrInvalidCollectionPath, err)
}

func TestRewardService_UpdateRewardField_Success(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		UpdateAtPath(ctx, "merchants/m1/rewards/r1", []repository.FieldUpdate{{Path: "isActive", Value: false}}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	err := fx.service.UpdateRewardField(ctx, "merchants/m1/rewards/r1", "isActive", false)
	require.NoError(t, err)
}

func TestRewardService_DeleteReward_NotFound(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		DeleteAtPath(ctx, "rewards/missing").
		Return(repository.ErrRewardNotFound)

	err := fx.service.DeleteReward(ctx, "rewards/missing")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrRewardNotFound, err)
}

func TestRewardService_DeleteReward_Success(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		DeleteAtPath(ctx, "customers/c1/rewards/r1").
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	err := fx.service.DeleteReward(ctx, "customers/c1/rewards/r1")
	require.NoError(t, err)
}

func TestRewardService_DeleteRewards_PartialFailure(t *testing.T) {
	fx := createTestRewardService(t)

	ctx := context.Background()
	fx.rewardRepo.EXPECT().
		DeleteAtPath(mock.Anything, "rewards/r1").
		Return(nil)
	fx.rewardRepo.EXPECT().
		DeleteAtPath(mock.Anything, "merchants/m1/rewards/r2").
		Return(errors.New("firestore unavailable"))
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	report, err := fx.service.DeleteRewards(ctx, []string{"rewards/r1", "merchants/m1/rewards/r2"})
	require.NoError(t, err)
	assert.Equal(t, 2, report.Requested)
	assert.Equal(t, 1, report.Deleted)
	assert.Contains(t, report.Failed["merchants/m1/rewards/r2"], "firestore unavailable")
}
