package impl

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"tapadmin/internal/domain/constants"
	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
	"tapadmin/internal/usecase"
)

// pinPattern is the redemption PIN format shared by every builder.
var pinPattern = regexp.MustCompile(`^\d{4}$`)

// introductoryRewardCap is the per-merchant limit on Tap-funded
// introductory rewards.
const introductoryRewardCap = 3

// maxIntroductoryValue caps the dollar value Tap funds per introductory
// reward.
const maxIntroductoryValue = 5.00

type programService struct {
	writer    repository.AtomicRewardWriter
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewProgramService is the constructor for programService.
func NewProgramService(
	writer repository.AtomicRewardWriter,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.ProgramUsecase {
	return &programService{
		writer:    writer,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateCoffeeProgram embeds a stamp-card program on the merchant. The
// one-program rule is checked against the fresh merchant document inside the
// write transaction.
func (srv *programService) CreateCoffeeProgram(ctx context.Context, merchantID string, input *usecase.CoffeeProgramInput) error {
	if !pinPattern.MatchString(input.PIN) {
		return domainerrors.ErrInvalidPIN
	}
	if input.Frequency <= 0 {
		return domainerrors.NewValidationError("Frequency must be a positive number")
	}

	program := entity.CoffeeProgram{
		PIN:       input.PIN,
		Frequency: input.Frequency,
		MinSpend:  input.MinSpend,
		MinTime:   input.MinTime,
		Active:    true,
		CreatedAt: timeNow(),
	}

	write := &repository.RewardWrite{MerchantID: merchantID}
	write.Precondition = func(m *entity.Merchant) error {
		if m.HasCoffeeProgram {
			return domainerrors.ErrCoffeeProgramExists
		}
		write.MerchantFields = []repository.FieldUpdate{
			{Path: "coffeeprogram", Value: true},
			{Path: "coffeePrograms", Value: append(m.CoffeePrograms, program)},
		}

		return nil
	}

	if err := srv.create(ctx, write); err != nil {
		return err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, "")

	return nil
}

// CreateVoucherProgram embeds a recurring voucher program and writes its
// reward document to the merchant and global locations.
func (srv *programService) CreateVoucherProgram(ctx context.Context, merchantID string, input *usecase.VoucherProgramInput) (string, error) {
	if input.RewardName == "" {
		return "", domainerrors.NewValidationError("Reward name is required")
	}
	if !pinPattern.MatchString(input.PIN) {
		return "", domainerrors.ErrInvalidPIN
	}
	if input.SpendRequired <= 0 {
		return "", domainerrors.NewValidationError("Spend required must be a positive amount")
	}
	if input.DiscountAmount <= 0 {
		return "", domainerrors.NewValidationError("Discount amount must be a positive amount")
	}

	program := entity.VoucherProgram{
		RewardName:     input.RewardName,
		Description:    input.Description,
		PIN:            input.PIN,
		SpendRequired:  input.SpendRequired,
		DiscountAmount: input.DiscountAmount,
		Type:           "recurring_voucher",
		IsActive:       true,
		CreatedAt:      timeNow(),
	}

	rewardID := srv.writer.NewRewardID()
	write := &repository.RewardWrite{
		RewardID:    rewardID,
		MerchantID:  merchantID,
		WriteGlobal: true,
		Reward: srv.baseReward(rewardID, merchantID, input.RewardName, input.Description, "voucher", input.PIN, func(r *entity.Reward) {
			r.ProgramType = "voucher"
			r.DiscountValue = input.DiscountAmount
			r.MinSpend = input.SpendRequired
		}),
	}
	write.Precondition = func(m *entity.Merchant) error {
		write.MerchantFields = []repository.FieldUpdate{
			{Path: "voucherPrograms", Value: append(m.VoucherPrograms, program)},
		}

		return nil
	}

	if err := srv.create(ctx, write); err != nil {
		return "", err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, rewardID)

	return rewardID, nil
}

// CreateTransactionReward embeds a transaction-threshold program and writes
// its reward document.
func (srv *programService) CreateTransactionReward(ctx context.Context, merchantID string, input *usecase.TransactionRewardInput) (string, error) {
	if input.RewardName == "" {
		return "", domainerrors.NewValidationError("Reward name is required")
	}
	if !pinPattern.MatchString(input.PIN) {
		return "", domainerrors.ErrInvalidPIN
	}
	if input.Threshold <= 0 {
		return "", domainerrors.NewValidationError("Transaction threshold must be a positive number")
	}
	if input.Reward == "" {
		return "", domainerrors.NewValidationError("Reward description is required")
	}

	program := entity.TransactionProgram{
		RewardName:  input.RewardName,
		Description: input.Description,
		PIN:         input.PIN,
		Threshold:   input.Threshold,
		Reward:      input.Reward,
		IsActive:    true,
		CreatedAt:   timeNow(),
	}

	rewardID := srv.writer.NewRewardID()
	write := &repository.RewardWrite{
		RewardID:    rewardID,
		MerchantID:  merchantID,
		WriteGlobal: true,
		Reward: srv.baseReward(rewardID, merchantID, input.RewardName, input.Description, "transactionThreshold", input.PIN, func(r *entity.Reward) {
			r.ProgramType = "transaction"
			r.Conditions = []entity.Condition{{Type: "minimumTransactions", Value: input.Threshold}}
		}),
	}
	write.Precondition = func(m *entity.Merchant) error {
		write.MerchantFields = []repository.FieldUpdate{
			{Path: "transactionRewards", Value: append(m.TransactionRewards, program)},
		}

		return nil
	}

	if err := srv.create(ctx, write); err != nil {
		return "", err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, rewardID)

	return rewardID, nil
}

// CreateCashbackProgram sets the merchant's single cashback program. The
// one-program rule is checked inside the write transaction.
func (srv *programService) CreateCashbackProgram(ctx context.Context, merchantID string, input *usecase.CashbackProgramInput) error {
	if input.ProgramName == "" {
		return domainerrors.NewValidationError("Program name is required")
	}
	if !pinPattern.MatchString(input.PIN) {
		return domainerrors.ErrInvalidPIN
	}
	if input.Rate <= 0 || input.Rate > 100 {
		return domainerrors.NewValidationError("Cashback rate must be greater than 0 and at most 100")
	}

	program := &entity.CashbackProgram{
		ProgramName: input.ProgramName,
		Description: input.Description,
		PIN:         input.PIN,
		Rate:        input.Rate,
		IsActive:    true,
		CreatedAt:   timeNow(),
	}

	write := &repository.RewardWrite{MerchantID: merchantID}
	write.Precondition = func(m *entity.Merchant) error {
		if m.CashbackProgram != nil {
			return domainerrors.ErrCashbackProgramExists
		}
		write.MerchantFields = []repository.FieldUpdate{
			{Path: "cashbackProgram", Value: program},
		}

		return nil
	}

	if err := srv.create(ctx, write); err != nil {
		return err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, "")

	return nil
}

// CreateIntroductoryReward writes a Tap-funded introductory reward. The cap
// of three per merchant is enforced against the fresh merchant document
// inside the transaction, so no copy is written once the cap is reached.
func (srv *programService) CreateIntroductoryReward(ctx context.Context, merchantID string, input *usecase.IntroductoryRewardInput) (string, error) {
	if input.RewardName == "" {
		return "", domainerrors.NewValidationError("Reward name is required")
	}
	if input.Description == "" {
		return "", domainerrors.NewValidationError("Description is required")
	}
	if !pinPattern.MatchString(input.PIN) {
		return "", domainerrors.ErrInvalidPIN
	}

	switch input.Type {
	case "voucher":
		if input.VoucherAmount <= 0 || input.VoucherAmount > maxIntroductoryValue {
			return "", domainerrors.NewValidationError(fmt.Sprintf("Voucher amount must be between $0 and $%.2f", maxIntroductoryValue))
		}
	case "freeItem":
		if input.ItemName == "" {
			return "", domainerrors.NewValidationError("Item name is required for a free item reward")
		}
		if input.ItemValue <= 0 || input.ItemValue > maxIntroductoryValue {
			return "", domainerrors.NewValidationError(fmt.Sprintf("Item value must be between $0 and $%.2f", maxIntroductoryValue))
		}
	default:
		return "", domainerrors.NewValidationError("Introductory reward type must be voucher or freeItem")
	}

	rewardID := srv.writer.NewRewardID()
	reward := srv.baseReward(rewardID, merchantID, input.RewardName, input.Description, input.Type, input.PIN, func(r *entity.Reward) {
		r.IsIntroductoryReward = true
		r.FundedByTapLoyalty = true
		r.MaxValue = maxIntroductoryValue
		r.PointsCost = 0
		r.RewardVisibility = entity.RewardVisibilityNew
		r.ItemName = input.ItemName
		r.VoucherAmount = input.VoucherAmount
		r.ItemValue = input.ItemValue
	})

	write := &repository.RewardWrite{
		RewardID:    rewardID,
		MerchantID:  merchantID,
		WriteGlobal: true,
		Reward:      reward,
	}
	write.Precondition = func(m *entity.Merchant) error {
		if len(m.IntroductoryRewardIDs) >= introductoryRewardCap {
			return domainerrors.ErrIntroductoryRewardLimit
		}
		ids := append(m.IntroductoryRewardIDs, rewardID)
		write.MerchantFields = []repository.FieldUpdate{
			{Path: "introductoryRewardIds", Value: ids},
			{Path: "hasIntroductoryReward", Value: true},
			{Path: "introductoryRewardCount", Value: len(ids)},
		}

		return nil
	}

	if err := srv.create(ctx, write); err != nil {
		return "", err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, rewardID)

	return rewardID, nil
}

// CreateCustomReward writes a fully custom reward. Specific visibility fans
// the copy out to the selected customers in the same transaction.
func (srv *programService) CreateCustomReward(ctx context.Context, merchantID string, input *usecase.CustomRewardInput) (string, error) {
	if input.RewardName == "" {
		return "", domainerrors.NewValidationError("Reward name is required")
	}
	if input.Type == "" {
		return "", domainerrors.NewValidationError("Reward type is required")
	}
	if !pinPattern.MatchString(input.PIN) {
		return "", domainerrors.ErrInvalidPIN
	}
	if input.PointsCost < 0 {
		return "", domainerrors.NewValidationError("Points cost cannot be negative")
	}
	if input.RewardVisibility == entity.RewardVisibilitySpecific && len(input.CustomerIDs) == 0 {
		return "", domainerrors.NewValidationError("Specific visibility requires at least one customer")
	}

	rewardID := srv.writer.NewRewardID()
	reward := srv.baseReward(rewardID, merchantID, input.RewardName, input.Description, input.Type, input.PIN, func(r *entity.Reward) {
		r.PointsCost = input.PointsCost
		r.RewardVisibility = input.RewardVisibility
		for _, c := range input.Conditions {
			r.Conditions = append(r.Conditions, entity.Condition{Type: c.Type, Value: c.Value})
		}
		for _, l := range input.Limitations {
			r.Limitations = append(r.Limitations, entity.Limitation{Type: l.Type, Value: l.Value})
		}
	})

	write := &repository.RewardWrite{
		RewardID:    rewardID,
		MerchantID:  merchantID,
		WriteGlobal: true,
		Reward:      reward,
	}
	if input.RewardVisibility == entity.RewardVisibilitySpecific {
		write.CustomerIDs = input.CustomerIDs
	}

	if err := srv.create(ctx, write); err != nil {
		return "", err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, rewardID)

	return rewardID, nil
}

// CreateNetworkReward writes a network reward. Each field is validated
// independently so the console can surface the exact missing field.
func (srv *programService) CreateNetworkReward(ctx context.Context, merchantID string, input *usecase.NetworkRewardInput) (string, error) {
	if input.RewardName == "" {
		return "", domainerrors.NewValidationError("Network reward name is required")
	}
	if input.Description == "" {
		return "", domainerrors.NewValidationError("Network reward description is required")
	}
	if input.DiscountValue <= 0 {
		return "", domainerrors.NewValidationError("Discount value must be greater than zero")
	}
	if input.MinimumSpend <= 0 {
		return "", domainerrors.NewValidationError("Minimum spend must be greater than zero")
	}
	if input.NetworkPointsCost <= 0 {
		return "", domainerrors.NewValidationError("Network points cost must be greater than zero")
	}
	if !pinPattern.MatchString(input.PIN) {
		return "", domainerrors.ErrInvalidPIN
	}

	rewardID := srv.writer.NewRewardID()
	reward := srv.baseReward(rewardID, merchantID, input.RewardName, input.Description, "networkReward", input.PIN, func(r *entity.Reward) {
		r.IsNetworkReward = true
		r.DiscountValue = input.DiscountValue
		r.MinimumSpend = input.MinimumSpend
		r.NetworkPointsCost = input.NetworkPointsCost
		r.RewardVisibility = entity.RewardVisibilityGlobal
	})

	write := &repository.RewardWrite{
		RewardID:    rewardID,
		MerchantID:  merchantID,
		WriteGlobal: true,
		Reward:      reward,
	}

	if err := srv.create(ctx, write); err != nil {
		return "", err
	}

	srv.publishProgramEvent(ctx, constants.EventRewardCreated, merchantID, rewardID)

	return rewardID, nil
}

// baseReward assembles the bookkeeping fields every builder writes.
func (srv *programService) baseReward(rewardID, merchantID, name, description, rewardType, pin string, customize func(*entity.Reward)) *entity.Reward {
	now := timeNow()
	reward := &entity.Reward{
		ID:               rewardID,
		RewardName:       name,
		Description:      description,
		Type:             rewardType,
		PIN:              pin,
		RewardVisibility: entity.RewardVisibilityGlobal,
		IsActive:         true,
		Status:           "active",
		MerchantID:       merchantID,
		RedemptionCount:  0,
		Conditions:       []entity.Condition{},
		Limitations:      []entity.Limitation{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if customize != nil {
		customize(reward)
	}

	return reward
}

func (srv *programService) create(ctx context.Context, write *repository.RewardWrite) error {
	if err := srv.writer.CreateReward(ctx, write); err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return err
		}
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return domainerrors.ErrMerchantNotFound
		}

		return errors.Wrap(err, "failed to commit reward write")
	}

	return nil
}

func (srv *programService) publishProgramEvent(ctx context.Context, eventType, merchantID, rewardID string) {
	event := &service.AdminEvent{
		EventType:  eventType,
		MerchantID: merchantID,
		EntityID:   rewardID,
		OccurredAt: timeNow(),
	}
	if err := srv.publisher.PublishAdminEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish admin event",
			slog.String("event_type", eventType),
			slog.Any("error", err),
		)
	}
}
