package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase/interfaces"
)

var (
	ErrPipelineItemNotFound = errors.New("pipeline item not found")
	ErrUnknownStage         = errors.New("unknown pipeline stage")
)

// PipelineEntry pairs a pipeline item with its submission for board listings.
type PipelineEntry struct {
	Item       entities.PipelineItem
	Submission entities.Submission
}

// IPipelineUseCase exposes the sales pipeline operations.
//
// SetStage appends to the change log and, on the first transition into the
// "Quote Generated" stage, synchronously issues a quote. A calculation
// failure still records the transition but is surfaced to the caller; a
// storage failure while committing stage-plus-quote commits neither.
//
// SetStage may return a valid item together with ErrRenderFailed: the stage
// and quote are committed, only the rendered document is missing.
type IPipelineUseCase interface {
	List(ctx context.Context) ([]PipelineEntry, error)
	GetByID(ctx context.Context, id string) (entities.PipelineItem, error)
	SetStage(ctx context.Context, id string, stage entities.Stage, actor string, revision int64) (entities.PipelineItem, error)
}

type PipelineUseCase struct {
	repo           interfaces.IPipelineRepository
	submissionRepo interfaces.ISubmissionRepository
	renderer       interfaces.IQuoteRenderer
	documents      interfaces.IDocumentStore
	policy         pricing.Policy
}

var _ IPipelineUseCase = (*PipelineUseCase)(nil)

func NewPipelineUseCase(
	repo interfaces.IPipelineRepository,
	submissionRepo interfaces.ISubmissionRepository,
	renderer interfaces.IQuoteRenderer,
	documents interfaces.IDocumentStore,
	policy pricing.Policy,
) *PipelineUseCase {
	return &PipelineUseCase{
		repo:           repo,
		submissionRepo: submissionRepo,
		renderer:       renderer,
		documents:      documents,
		policy:         policy,
	}
}

func (u *PipelineUseCase) List(ctx context.Context) ([]PipelineEntry, error) {
	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]PipelineEntry, 0, len(items))
	for _, item := range items {
		entry := PipelineEntry{Item: item}
		sub, err := u.submissionRepo.GetByID(ctx, item.SubmissionID)
		if err != nil {
			return nil, err
		}
		entry.Submission = sub
		entries = append(entries, entry)
	}
	return entries, nil
}

func (u *PipelineUseCase) GetByID(ctx context.Context, id string) (entities.PipelineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PipelineItem{}, ErrPipelineItemNotFound
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if item.ID == "" {
		return entities.PipelineItem{}, ErrPipelineItemNotFound
	}
	return item, nil
}

func (u *PipelineUseCase) SetStage(ctx context.Context, id string, stage entities.Stage, actor string, revision int64) (entities.PipelineItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PipelineItem{}, ErrPipelineItemNotFound
	}
	if !entities.KnownStage(stage) {
		return entities.PipelineItem{}, ErrUnknownStage
	}
	actor = strings.TrimSpace(actor)
	if actor == "" {
		actor = "system"
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if item.ID == "" {
		return entities.PipelineItem{}, ErrPipelineItemNotFound
	}
	if revision == 0 {
		revision = item.Revision
	}

	now := time.Now().UTC()
	change := entities.StageChange{Stage: stage, ChangedAt: now, ChangedBy: actor}

	if stage != entities.StageQuoteGenerated || item.HasQuote() {
		return u.repo.UpdateStage(ctx, id, change, revision)
	}

	sub, err := u.submissionRepo.GetByID(ctx, item.SubmissionID)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if sub.ID == "" {
		return entities.PipelineItem{}, ErrSubmissionNotFound
	}

	result, calcErr := pricing.Calculate(sub.Scope(), u.policy)
	if calcErr != nil {
		// The move onto the board still happened; record it, then surface
		// the calculation failure.
		log.Printf("[pipeline][usecase] quote calculation failed id=%s err=%v", id, calcErr)
		updated, err := u.repo.UpdateStage(ctx, id, change, revision)
		if err != nil {
			return entities.PipelineItem{}, err
		}
		return updated, calcErr
	}

	quote := entities.NewQuote(result, now)
	updated, err := u.repo.UpdateStageWithQuote(ctx, id, change, quote, revision)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	return attachDocument(ctx, u.repo, u.renderer, u.documents, updated, labelFor(sub))
}
