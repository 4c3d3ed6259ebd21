package impl

import (
	"context"
	"log/slog"
	"time"

	"tapadmin/internal/domain/entity"
	domainerrors "tapadmin/internal/domain/errors"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/domain/service"
	"tapadmin/internal/errors"
	"tapadmin/internal/infra/schedule"
	"tapadmin/internal/usecase"
)

// defaultJobTimeout bounds a job execution when the spec does not set one.
const defaultJobTimeout = 5 * time.Minute

// agentRewardPIN is the redemption PIN stamped on agent-drafted rewards
// when the job spec does not provide one.
const agentRewardPIN = "0000"

type jobService struct {
	jobRepo      repository.JobRepository
	merchantRepo repository.MerchantRepository
	agent        service.RewardAgent
	programs     usecase.ProgramUsecase
	memberships  usecase.MembershipUsecase
	customers    usecase.CustomerUsecase
	logger       *slog.Logger
}

// NewJobService is the constructor for jobService.
func NewJobService(
	jobRepo repository.JobRepository,
	merchantRepo repository.MerchantRepository,
	agent service.RewardAgent,
	programs usecase.ProgramUsecase,
	memberships usecase.MembershipUsecase,
	customers usecase.CustomerUsecase,
	logger *slog.Logger,
) usecase.JobUsecase {
	return &jobService{
		jobRepo:      jobRepo,
		merchantRepo: merchantRepo,
		agent:        agent,
		programs:     programs,
		memberships:  memberships,
		customers:    customers,
		logger:       logger,
	}
}

func (srv *jobService) ListJobs(ctx context.Context) ([]*entity.JobSpec, error) {
	jobs, err := srv.jobRepo.ListJobs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs")
	}

	return jobs, nil
}

func (srv *jobService) GetJob(ctx context.Context, id string) (*entity.JobSpec, error) {
	job, err := srv.jobRepo.FindJobByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, domainerrors.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job")
	}

	return job, nil
}

func (srv *jobService) CreateJob(ctx context.Context, input *usecase.JobInput) (string, error) {
	if err := validateJobInput(input); err != nil {
		return "", err
	}

	job := specFromInput(input)
	id, err := srv.jobRepo.CreateJob(ctx, job)
	if err != nil {
		return "", errors.Wrap(err, "failed to create job")
	}

	return id, nil
}

func (srv *jobService) UpdateJob(ctx context.Context, id string, input *usecase.JobInput) error {
	if err := validateJobInput(input); err != nil {
		return err
	}

	updates := []repository.FieldUpdate{
		{Path: "name", Value: input.Name},
		{Path: "description", Value: input.Description},
		{Path: "kind", Value: string(input.Kind)},
		{Path: "schedule", Value: input.Schedule},
		{Path: "timezone", Value: input.Timezone},
		{Path: "memoryMb", Value: input.MemoryMB},
		{Path: "timeoutSeconds", Value: input.TimeoutSeconds},
		{Path: "secretNames", Value: input.SecretNames},
		{Path: "enabled", Value: input.Enabled},
		{Path: "params", Value: input.Params},
	}
	if err := srv.jobRepo.UpdateJob(ctx, id, updates); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to update job")
	}

	return nil
}

func (srv *jobService) DeleteJob(ctx context.Context, id string) error {
	if err := srv.jobRepo.DeleteJob(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return domainerrors.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to delete job")
	}

	return nil
}

func (srv *jobService) RunJob(ctx context.Context, id string) (*entity.JobRun, error) {
	job, err := srv.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	return srv.execute(ctx, job), nil
}

func (srv *jobService) RunDueJobs(ctx context.Context, now time.Time) ([]*entity.JobRun, error) {
	jobs, err := srv.jobRepo.ListJobs(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list jobs for scheduling")
	}

	var runs []*entity.JobRun
	for _, job := range jobs {
		if !job.Enabled {
			continue
		}

		expr, parseErr := schedule.Parse(job.Schedule)
		if parseErr != nil {
			srv.logger.Warn("skipping job with invalid schedule",
				slog.String("job_id", job.ID),
				slog.Any("error", parseErr),
			)

			continue
		}

		loc := time.UTC
		if job.Timezone != "" {
			parsed, locErr := time.LoadLocation(job.Timezone)
			if locErr != nil {
				srv.logger.Warn("skipping job with invalid timezone",
					slog.String("job_id", job.ID),
					slog.String("timezone", job.Timezone),
				)

				continue
			}
			loc = parsed
		}

		if !expr.Matches(now.In(loc)) {
			continue
		}

		runs = append(runs, srv.execute(ctx, job))
	}

	return runs, nil
}

// execute dispatches a job by kind, bounds it with the spec's timeout and
// records the outcome on the spec document.
func (srv *jobService) execute(ctx context.Context, job *entity.JobSpec) *entity.JobRun {
	timeout := defaultJobTimeout
	if job.TimeoutSeconds > 0 {
		timeout = time.Duration(job.TimeoutSeconds) * time.Second
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	run := &entity.JobRun{
		JobID:     job.ID,
		Kind:      job.Kind,
		StartedAt: timeNow(),
	}

	var err error
	switch job.Kind {
	case entity.JobKindRewardGeneration:
		run.ItemsTotal, run.ItemsDone, err = srv.runRewardGeneration(runCtx, job)
	case entity.JobKindTierRecalculation:
		run.ItemsDone, err = srv.runTierRecalculation(runCtx, job)
	case entity.JobKindAggregateRefresh:
		err = srv.runAggregateRefresh(runCtx)
	default:
		err = errors.Errorf("unknown job kind: %s", job.Kind)
	}

	run.Duration = timeNow().Sub(run.StartedAt)
	run.Succeeded = err == nil
	status := "succeeded"
	runErr := ""
	if err != nil {
		status = "failed"
		runErr = err.Error()
		run.Error = runErr
		srv.logger.Error("job execution failed",
			slog.String("job_id", job.ID),
			slog.String("kind", string(job.Kind)),
			slog.Any("error", err),
		)
	}

	if recordErr := srv.jobRepo.RecordRun(ctx, job.ID, run.StartedAt, status, runErr); recordErr != nil {
		srv.logger.Warn("failed to record job run",
			slog.String("job_id", job.ID),
			slog.Any("error", recordErr),
		)
	}

	return run
}

// runRewardGeneration asks the agent for a personalized reward draft per
// customer of the target merchant and writes each accepted draft as a
// customer-specific reward.
func (srv *jobService) runRewardGeneration(ctx context.Context, job *entity.JobSpec) (total, done int, err error) {
	merchantID := job.Params["merchantId"]
	if merchantID == "" {
		return 0, 0, errors.New("rewardGeneration job requires a merchantId param")
	}

	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to load merchant for reward generation")
	}

	customers, err := srv.merchantRepo.ListMerchantCustomers(ctx, merchantID)
	if err != nil {
		return 0, 0, errors.Wrap(err, "failed to list customers for reward generation")
	}

	pin := job.Params["pin"]
	if !pinPattern.MatchString(pin) {
		pin = agentRewardPIN
	}

	total = len(customers)
	for _, customer := range customers {
		draft, draftErr := srv.agent.DraftReward(ctx, merchant, customer)
		if draftErr != nil {
			srv.logger.Warn("agent draft failed for customer",
				slog.String("customer_id", customer.CustomerID),
				slog.Any("error", draftErr),
			)

			continue
		}

		input := &usecase.CustomRewardInput{
			RewardName:       draft.RewardName,
			Description:      draft.Description,
			Type:             draft.Type,
			PIN:              pin,
			PointsCost:       draft.PointsCost,
			RewardVisibility: entity.RewardVisibilitySpecific,
			CustomerIDs:      []string{customer.CustomerID},
		}
		if _, createErr := srv.programs.CreateCustomReward(ctx, merchantID, input); createErr != nil {
			srv.logger.Warn("failed to write agent-drafted reward",
				slog.String("customer_id", customer.CustomerID),
				slog.Any("error", createErr),
			)

			continue
		}
		done++
	}

	return total, done, nil
}

// runTierRecalculation recalculates tiers for the target merchant, or every
// merchant when the spec names none.
func (srv *jobService) runTierRecalculation(ctx context.Context, job *entity.JobSpec) (int, error) {
	merchantIDs := []string{job.Params["merchantId"]}
	if merchantIDs[0] == "" {
		merchants, err := srv.merchantRepo.ListMerchants(ctx)
		if err != nil {
			return 0, errors.Wrap(err, "failed to list merchants for tier recalculation")
		}
		merchantIDs = merchantIDs[:0]
		for _, m := range merchants {
			merchantIDs = append(merchantIDs, m.ID)
		}
	}

	moved := 0
	for _, merchantID := range merchantIDs {
		changes, err := srv.memberships.RecalculateTiers(ctx, merchantID)
		if err != nil {
			srv.logger.Warn("tier recalculation failed for merchant",
				slog.String("merchant_id", merchantID),
				slog.Any("error", err),
			)

			continue
		}
		moved += len(changes)
	}

	return moved, nil
}

// runAggregateRefresh rebuilds the cached customer rows.
func (srv *jobService) runAggregateRefresh(ctx context.Context) error {
	_, err := srv.customers.ListCustomers(ctx, usecase.ListQuery{}, true)

	return errors.Wrap(err, "failed to refresh customer aggregates")
}

func validateJobInput(input *usecase.JobInput) error {
	if input.Name == "" {
		return domainerrors.NewValidationError("Job name is required")
	}
	switch input.Kind {
	case entity.JobKindRewardGeneration, entity.JobKindTierRecalculation, entity.JobKindAggregateRefresh:
	default:
		return domainerrors.NewValidationError("Unknown job kind: " + string(input.Kind))
	}
	if _, err := schedule.Parse(input.Schedule); err != nil {
		return domainerrors.ErrInvalidSchedule.WrapMessage(err.Error())
	}
	if input.Timezone != "" {
		if _, err := time.LoadLocation(input.Timezone); err != nil {
			return domainerrors.NewValidationError("Unknown timezone: " + input.Timezone)
		}
	}

	return nil
}

func specFromInput(input *usecase.JobInput) *entity.JobSpec {
	return &entity.JobSpec{
		Name:           input.Name,
		Description:    input.Description,
		Kind:           input.Kind,
		Schedule:       input.Schedule,
		Timezone:       input.Timezone,
		MemoryMB:       input.MemoryMB,
		TimeoutSeconds: input.TimeoutSeconds,
		SecretNames:    input.SecretNames,
		Enabled:        input.Enabled,
		Params:         input.Params,
	}
}
