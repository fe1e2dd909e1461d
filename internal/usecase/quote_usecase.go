package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase/interfaces"
)

var (
	ErrQuoteNotIssued = errors.New("no quote issued for this project")

	// ErrRenderFailed marks a document pipeline failure after the quote itself
	// was committed. The breakdown and total stay authoritative; only the
	// artifact is missing and rendering can be retried independently.
	ErrRenderFailed = errors.New("quote document rendering failed")
)

// IQuoteUseCase encapsulates quote issuance and document handling.
//
// GenerateForSubmission supersedes any existing quote with a freshly issued
// one; there is at most one current quote per project. Preview computes and
// renders without persisting anything.
type IQuoteUseCase interface {
	GenerateForSubmission(ctx context.Context, submissionID string) (entities.PipelineItem, error)
	Preview(ctx context.Context, scope pricing.ProjectScope, label interfaces.DocumentLabel) (entities.Quote, error)
	RetryRender(ctx context.Context, submissionID string) (entities.PipelineItem, error)
	GetDocument(ctx context.Context, ref string) ([]byte, error)
}

type QuoteUseCase struct {
	submissionRepo interfaces.ISubmissionRepository
	pipelineRepo   interfaces.IPipelineRepository
	renderer       interfaces.IQuoteRenderer
	documents      interfaces.IDocumentStore
	policy         pricing.Policy
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(
	submissionRepo interfaces.ISubmissionRepository,
	pipelineRepo interfaces.IPipelineRepository,
	renderer interfaces.IQuoteRenderer,
	documents interfaces.IDocumentStore,
	policy pricing.Policy,
) *QuoteUseCase {
	return &QuoteUseCase{
		submissionRepo: submissionRepo,
		pipelineRepo:   pipelineRepo,
		renderer:       renderer,
		documents:      documents,
		policy:         policy,
	}
}

func (u *QuoteUseCase) GenerateForSubmission(ctx context.Context, submissionID string) (entities.PipelineItem, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.PipelineItem{}, ErrInvalidSubmissionID
	}

	sub, err := u.submissionRepo.GetByID(ctx, submissionID)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if sub.ID == "" {
		return entities.PipelineItem{}, ErrSubmissionNotFound
	}

	item, err := u.pipelineRepo.GetByID(ctx, submissionID)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if item.ID == "" {
		return entities.PipelineItem{}, ErrPipelineItemNotFound
	}

	result, err := pricing.Calculate(sub.Scope(), u.policy)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	quote := entities.NewQuote(result, time.Now().UTC())
	updated, err := u.pipelineRepo.SaveQuote(ctx, item.ID, quote, item.Revision)
	if err != nil {
		return entities.PipelineItem{}, err
	}

	return attachDocument(ctx, u.pipelineRepo, u.renderer, u.documents, updated, labelFor(sub))
}

func (u *QuoteUseCase) Preview(ctx context.Context, scope pricing.ProjectScope, label interfaces.DocumentLabel) (entities.Quote, error) {
	result, err := pricing.Calculate(scope, u.policy)
	if err != nil {
		return entities.Quote{}, err
	}

	quote := entities.NewQuote(result, time.Now().UTC())

	data, err := u.renderer.Render(quote, label)
	if err != nil {
		return quote, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	ref, err := u.documents.Put(ctx, documentName(), data)
	if err != nil {
		return quote, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	quote.DocumentRef = ref
	return quote, nil
}

func (u *QuoteUseCase) RetryRender(ctx context.Context, submissionID string) (entities.PipelineItem, error) {
	submissionID = strings.TrimSpace(submissionID)
	if submissionID == "" {
		return entities.PipelineItem{}, ErrInvalidSubmissionID
	}

	item, err := u.pipelineRepo.GetByID(ctx, submissionID)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if item.ID == "" {
		return entities.PipelineItem{}, ErrPipelineItemNotFound
	}
	if !item.HasQuote() {
		return entities.PipelineItem{}, ErrQuoteNotIssued
	}

	sub, err := u.submissionRepo.GetByID(ctx, item.SubmissionID)
	if err != nil {
		return entities.PipelineItem{}, err
	}
	if sub.ID == "" {
		return entities.PipelineItem{}, ErrSubmissionNotFound
	}

	return attachDocument(ctx, u.pipelineRepo, u.renderer, u.documents, item, labelFor(sub))
}

func (u *QuoteUseCase) GetDocument(ctx context.Context, ref string) ([]byte, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, interfaces.ErrDocumentNotFound
	}
	return u.documents.Get(ctx, ref)
}

func labelFor(sub entities.Submission) interfaces.DocumentLabel {
	return interfaces.DocumentLabel{ClientName: sub.Client.Name, ProjectTitle: sub.ProjectTitle}
}

func documentName() string {
	return "quote_" + uuid.NewString() + ".pdf"
}

// attachDocument renders the item's quote and persists the resulting document
// reference. The quote is already committed when this runs: any failure here
// is reported as ErrRenderFailed alongside the still-valid item, and the
// caller may retry rendering without recomputing.
func attachDocument(
	ctx context.Context,
	pipelineRepo interfaces.IPipelineRepository,
	renderer interfaces.IQuoteRenderer,
	documents interfaces.IDocumentStore,
	item entities.PipelineItem,
	label interfaces.DocumentLabel,
) (entities.PipelineItem, error) {
	if item.Quote == nil {
		return item, nil
	}

	data, err := renderer.Render(*item.Quote, label)
	if err != nil {
		return item, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	ref, err := documents.Put(ctx, documentName(), data)
	if err != nil {
		return item, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}

	updated, err := pipelineRepo.SetDocumentRef(ctx, item.ID, ref, item.Revision)
	if err != nil {
		return item, fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return updated, nil
}
