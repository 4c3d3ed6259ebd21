package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/repository"
	"tapadmin/internal/errors"
)

// jobRepository implements repository.JobRepository.
type jobRepository struct {
	client *firestore.Client
}

// NewJobRepository is the constructor for jobRepository.
func NewJobRepository(client *firestore.Client) repository.JobRepository {
	return &jobRepository{client: client}
}

func (repo *jobRepository) ListJobs(ctx context.Context) ([]*entity.JobSpec, error) {
	iter := repo.client.Collection(collectionJobs).Documents(ctx)
	defer iter.Stop()

	var jobs []*entity.JobSpec
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list jobs")
		}

		var job entity.JobSpec
		if err := doc.DataTo(&job); err != nil {
			return nil, errors.Wrapf(err, "failed to decode job %s", doc.Ref.ID)
		}
		job.ID = doc.Ref.ID
		jobs = append(jobs, &job)
	}

	return jobs, nil
}

func (repo *jobRepository) FindJobByID(ctx context.Context, id string) (*entity.JobSpec, error) {
	doc, err := repo.client.Collection(collectionJobs).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrJobNotFound
		}

		return nil, errors.Wrap(err, "failed to find job by ID")
	}

	var job entity.JobSpec
	if err := doc.DataTo(&job); err != nil {
		return nil, errors.Wrap(err, "failed to decode job")
	}
	job.ID = doc.Ref.ID

	return &job, nil
}

func (repo *jobRepository) CreateJob(ctx context.Context, job *entity.JobSpec) (string, error) {
	now := time.Now().UTC()
	job.CreatedAt = now
	job.UpdatedAt = now

	ref := repo.client.Collection(collectionJobs).NewDoc()
	if _, err := ref.Set(ctx, job); err != nil {
		return "", errors.Wrap(err, "failed to create job")
	}
	job.ID = ref.ID

	return ref.ID, nil
}

func (repo *jobRepository) UpdateJob(ctx context.Context, id string, updates []repository.FieldUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	fsUpdates := toFirestoreUpdates(updates)
	fsUpdates = append(fsUpdates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	if _, err := repo.client.Collection(collectionJobs).Doc(id).Update(ctx, fsUpdates); err != nil {
		if isNotFound(err) {
			return repository.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to update job")
	}

	return nil
}

func (repo *jobRepository) DeleteJob(ctx context.Context, id string) error {
	ref := repo.client.Collection(collectionJobs).Doc(id)
	if _, err := ref.Get(ctx); err != nil {
		if isNotFound(err) {
			return repository.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to load job before delete")
	}

	if _, err := ref.Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete job")
	}

	return nil
}

func (repo *jobRepository) RecordRun(ctx context.Context, id string, at time.Time, status, runErr string) error {
	updates := []firestore.Update{
		{Path: "lastRunAt", Value: at.UTC()},
		{Path: "lastRunStatus", Value: status},
		{Path: "lastRunError", Value: runErr},
	}

	if _, err := repo.client.Collection(collectionJobs).Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrJobNotFound
		}

		return errors.Wrap(err, "failed to record job run")
	}

	return nil
}
