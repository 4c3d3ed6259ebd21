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

// membershipServiceFixtures holds all test dependencies for membership service tests.
type membershipServiceFixtures struct {
	service        usecase.MembershipUsecase
	membershipRepo *mockRepo.MockMembershipRepository
	merchantRepo   *mockRepo.MockMerchantRepository
	publisher      *mockSvc.MockEventPublisher
}

func createTestMembershipService(t *testing.T) membershipServiceFixtures {
	membershipRepo := mockRepo.NewMockMembershipRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewMembershipService(membershipRepo, merchantRepo, publisher, logger)

	return membershipServiceFixtures{
		service:        service,
		membershipRepo: membershipRepo,
		merchantRepo:   merchantRepo,
		publisher:      publisher,
	}
}

func TestMembershipService_ListTiers_CountsCaseInsensitive(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		ListTiers(ctx, "m1").
		Return([]*entity.MembershipTier{
			{ID: "t1", Name: entity.TierBronze},
			{ID: "t2", Name: entity.TierGold},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(ctx, "m1").
		Return([]*entity.MerchantCustomer{
			{CustomerID: "c1", MembershipTier: "bronze"},
			{CustomerID: "c2", MembershipTier: "BRONZE"},
			{CustomerID: "c3", MembershipTier: "Gold"},
			{CustomerID: "c4", MembershipTier: ""},
		}, nil)

	tiers, err := fx.service.ListTiers(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, tiers, 2)
	assert.Equal(t, 2, tiers[0].CustomerCount)
	assert.Equal(t, 1, tiers[1].CustomerCount)
}

func TestMembershipService_SaveTier_UnknownName(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	tier, err := fx.service.SaveTier(ctx, "m1", &usecase.TierInput{Name: "Platinum"})
	assert.Error(t, err)
	assert.Nil(t, tier)
	assert.Contains(t, err.Error(), "Tier name must be Bronze, Silver or Gold")
}

func TestMembershipService_SaveTier_BronzeCannotHaveConditions(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	tier, err := fx.service.SaveTier(ctx, "m1", &usecase.TierInput{
		Name: entity.TierBronze,
		Conditions: entity.TierConditions{
			LifetimeSpend: entity.TierCondition{Enabled: true, Value: 100},
		},
	})
	assert.Error(t, err)
	assert.Nil(t, tier)
	assert.Equal(t, domainerrors.ErrTierImmutable, err)
}

func TestMembershipService_SaveTier_BronzeCannotBeRenamed(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		FindTierByID(ctx, "m1", "t1").
		Return(&entity.MembershipTier{ID: "t1", Name: entity.TierBronze}, nil)

	tier, err := fx.service.SaveTier(ctx, "m1", &usecase.TierInput{
		ID:   "t1",
		Name: entity.TierSilver,
	})
	assert.Error(t, err)
	assert.Nil(t, tier)
	assert.Equal(t, domainerrors.ErrTierImmutable, err)
}

func TestMembershipService_SaveTier_CreatesSilver(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	input := &usecase.TierInput{
		Name:     entity.TierSilver,
		Order:    1,
		IsActive: true,
		Conditions: entity.TierConditions{
			LifetimeSpend: entity.TierCondition{Enabled: true, Value: 250},
		},
	}

	fx.membershipRepo.EXPECT().
		UpsertTier(ctx, "m1", mock.AnythingOfType("*entity.MembershipTier")).
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	tier, err := fx.service.SaveTier(ctx, "m1", input)
	require.NoError(t, err)
	require.NotNil(t, tier)
	assert.Equal(t, entity.TierSilver, tier.Name)
	assert.True(t, tier.Conditions.LifetimeSpend.Enabled)
}

func TestMembershipService_SaveTier_ExistingNotFound(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		FindTierByID(ctx, "m1", "missing").
		Return(nil, repository.ErrTierNotFound)

	tier, err := fx.service.SaveTier(ctx, "m1", &usecase.TierInput{ID: "missing", Name: entity.TierGold})
	assert.Error(t, err)
	assert.Nil(t, tier)
	assert.Equal(t, domainerrors.ErrTierNotFound, err)
}

func TestMembershipService_DeleteTier_BronzeImmutable(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		FindTierByID(ctx, "m1", "t1").
		Return(&entity.MembershipTier{ID: "t1", Name: entity.TierBronze}, nil)

	err := fx.service.DeleteTier(ctx, "m1", "t1")
	assert.Error(t, err)
	assert.Equal(t, domainerrors.ErrTierImmutable, err)
}

func TestMembershipService_DeleteTier_Success(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		FindTierByID(ctx, "m1", "t2").
		Return(&entity.MembershipTier{ID: "t2", Name: entity.TierGold}, nil)
	fx.membershipRepo.EXPECT().
		DeleteTier(ctx, "m1", "t2").
		Return(nil)
	fx.publisher.EXPECT().
		PublishAdminEvent(ctx, mock.AnythingOfType("*service.AdminEvent")).
		Return(nil)

	err := fx.service.DeleteTier(ctx, "m1", "t2")
	require.NoError(t, err)
}

func TestMembershipService_RecalculateTiers_HighestTierWins(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		ListTiers(ctx, "m1").
		Return([]*entity.MembershipTier{
			{ID: "t1", Name: entity.TierBronze, Order: 0, IsActive: true},
			{ID: "t2", Name: entity.TierSilver, Order: 1, IsActive: true, Conditions: entity.TierConditions{
				LifetimeSpend: entity.TierCondition{Enabled: true, Value: 100},
			}},
			{ID: "t3", Name: entity.TierGold, Order: 2, IsActive: true, Conditions: entity.TierConditions{
				LifetimeSpend:        entity.TierCondition{Enabled: true, Value: 500},
				LifetimeTransactions: entity.TierCondition{Enabled: true, Value: 20},
			}},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(ctx, "m1").
		Return([]*entity.MerchantCustomer{
			// Meets both Gold thresholds.
			{CustomerID: "c1", MembershipTier: "Silver", TotalLifetimeSpend: 800, LifetimeTransactionCount: 25},
			// Meets Silver spend but not Gold transactions.
			{CustomerID: "c2", MembershipTier: "Bronze", TotalLifetimeSpend: 600, LifetimeTransactionCount: 3},
			// Already where they qualify; no write issued.
			{CustomerID: "c3", MembershipTier: "silver", TotalLifetimeSpend: 150},
			// Qualifies for nothing above the baseline.
			{CustomerID: "c4", MembershipTier: "Gold", TotalLifetimeSpend: 10},
		}, nil)
	fx.merchantRepo.EXPECT().
		SetMerchantCustomerTier(ctx, "m1", "c1", entity.TierGold).
		Return(nil)
	fx.merchantRepo.EXPECT().
		SetMerchantCustomerTier(ctx, "m1", "c2", entity.TierSilver).
		Return(nil)
	fx.merchantRepo.EXPECT().
		SetMerchantCustomerTier(ctx, "m1", "c4", entity.TierBronze).
		Return(nil)

	changes, err := fx.service.RecalculateTiers(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, changes, 3)
	assert.Equal(t, usecase.TierChange{CustomerID: "c1", From: "Silver", To: entity.TierGold}, changes[0])
	assert.Equal(t, usecase.TierChange{CustomerID: "c2", From: "Bronze", To: entity.TierSilver}, changes[1])
	assert.Equal(t, usecase.TierChange{CustomerID: "c4", From: "Gold", To: entity.TierBronze}, changes[2])
}

func TestMembershipService_RecalculateTiers_InactiveTierSkipped(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		ListTiers(ctx, "m1").
		Return([]*entity.MembershipTier{
			{ID: "t2", Name: entity.TierGold, Order: 2, IsActive: false, Conditions: entity.TierConditions{
				LifetimeSpend: entity.TierCondition{Enabled: true, Value: 100},
			}},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(ctx, "m1").
		Return([]*entity.MerchantCustomer{
			{CustomerID: "c1", MembershipTier: "Gold", TotalLifetimeSpend: 900},
		}, nil)
	fx.merchantRepo.EXPECT().
		SetMerchantCustomerTier(ctx, "m1", "c1", entity.TierBronze).
		Return(nil)

	changes, err := fx.service.RecalculateTiers(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, entity.TierBronze, changes[0].To)
}

func TestMembershipService_RecalculateTiers_FailedMoveSkipped(t *testing.T) {
	fx := createTestMembershipService(t)

	ctx := context.Background()
	fx.membershipRepo.EXPECT().
		ListTiers(ctx, "m1").
		Return([]*entity.MembershipTier{
			{ID: "t2", Name: entity.TierSilver, Order: 1, IsActive: true, Conditions: entity.TierConditions{
				LifetimeSpend: entity.TierCondition{Enabled: true, Value: 100},
			}},
		}, nil)
	fx.merchantRepo.EXPECT().
		ListMerchantCustomers(ctx, "m1").
		Return([]*entity.MerchantCustomer{
			{CustomerID: "c1", MembershipTier: "Bronze", TotalLifetimeSpend: 200},
			{CustomerID: "c2", MembershipTier: "Bronze", TotalLifetimeSpend: 300},
		}, nil)
	fx.merchantRepo.EXPECT().
		SetMerchantCustomerTier(ctx, "m1", "c1", entity.TierSilver).
		Return(errors.New("write failed"))
	fx.merchantRepo.EXPECT().
		SetMerchantCustomerTier(ctx, "m1", "c2", entity.TierSilver).
		Return(nil)

	changes, err := fx.service.RecalculateTiers(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, "c2", changes[0].CustomerID)
}
