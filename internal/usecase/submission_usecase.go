package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"biquote/internal/domain/entities"
	"biquote/internal/intake"
	"biquote/internal/usecase/interfaces"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrInvalidSubmissionID = errors.New("invalid submission id")
)

const (
	defaultPageSize int32 = 20
	maxPageSize     int32 = 100
)

// ISubmissionUseCase exposes pricing form intake operations.
//
// Create persists a validated submission and creates its pipeline item in the
// initial stage; the two writes either both land or the submission is removed
// again.
type ISubmissionUseCase interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, entities.PipelineItem, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	Update(ctx context.Context, id string, s entities.Submission) (entities.Submission, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int32, cursor string) (interfaces.SubmissionPage, error)
	Search(ctx context.Context, query string, limit int32, cursor string) (interfaces.SubmissionPage, error)
}

type SubmissionUseCase struct {
	repo         interfaces.ISubmissionRepository
	pipelineRepo interfaces.IPipelineRepository
}

var _ ISubmissionUseCase = (*SubmissionUseCase)(nil)

func NewSubmissionUseCase(repo interfaces.ISubmissionRepository, pipelineRepo interfaces.IPipelineRepository) *SubmissionUseCase {
	return &SubmissionUseCase{repo: repo, pipelineRepo: pipelineRepo}
}

func (u *SubmissionUseCase) Create(ctx context.Context, s entities.Submission) (entities.Submission, entities.PipelineItem, error) {
	if fe := intake.ValidateSubmission(s); !fe.Empty() {
		return entities.Submission{}, entities.PipelineItem{}, fe
	}

	if s.Client.Currency == "" {
		s.Client.Currency = intake.CurrencyFor(s.Client.Country)
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Submission{}, entities.PipelineItem{}, err
	}

	item, err := u.ensurePipelineItem(ctx, created.ID, now)
	if err != nil {
		// Keep the store consistent: a submission without a pipeline item
		// would be invisible to the sales board.
		if delErr := u.repo.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[submission][usecase] rollback delete failed id=%s err=%v", created.ID, delErr)
		}
		return entities.Submission{}, entities.PipelineItem{}, err
	}

	return created, item, nil
}

// ensurePipelineItem creates the tracking record for a submission, returning
// the existing one unchanged when it was already created.
func (u *SubmissionUseCase) ensurePipelineItem(ctx context.Context, submissionID string, now time.Time) (entities.PipelineItem, error) {
	if existing, err := u.pipelineRepo.GetByID(ctx, submissionID); err != nil {
		return entities.PipelineItem{}, err
	} else if existing.ID != "" {
		return existing, nil
	}

	item := entities.PipelineItem{
		ID:           submissionID,
		SubmissionID: submissionID,
		Stage:        entities.StagePricingSubmissions,
		ChangeLog: []entities.StageChange{
			{Stage: entities.StagePricingSubmissions, ChangedAt: now, ChangedBy: "system"},
		},
		Revision:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.pipelineRepo.Create(ctx, item)
}

func (u *SubmissionUseCase) GetByID(ctx context.Context, id string) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if s.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}
	return s, nil
}

func (u *SubmissionUseCase) Update(ctx context.Context, id string, s entities.Submission) (entities.Submission, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Submission{}, ErrInvalidSubmissionID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Submission{}, err
	}
	if existing.ID == "" {
		return entities.Submission{}, ErrSubmissionNotFound
	}

	if fe := intake.ValidateSubmission(s); !fe.Empty() {
		return entities.Submission{}, fe
	}

	if s.Client.Currency == "" {
		s.Client.Currency = intake.CurrencyFor(s.Client.Country)
	}

	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, s)
}

func (u *SubmissionUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSubmissionID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrSubmissionNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *SubmissionUseCase) List(ctx context.Context, limit int32, cursor string) (interfaces.SubmissionPage, error) {
	return u.repo.List(ctx, clampPageSize(limit), cursor)
}

func (u *SubmissionUseCase) Search(ctx context.Context, query string, limit int32, cursor string) (interfaces.SubmissionPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return u.repo.List(ctx, clampPageSize(limit), cursor)
	}
	return u.repo.Search(ctx, query, clampPageSize(limit), cursor)
}

func clampPageSize(limit int32) int32 {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}
