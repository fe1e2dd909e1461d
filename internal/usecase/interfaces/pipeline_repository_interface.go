package interfaces

import (
	"context"
	"errors"

	"biquote/internal/domain/entities"
)

// ErrRevisionConflict rejects a pipeline item write whose expected revision no
// longer matches the stored one. Callers re-read and retry with fresh state.
var ErrRevisionConflict = errors.New("pipeline item revision conflict")

// IPipelineRepository abstracts DynamoDB persistence for PipelineItem.
//
// Every update is conditional on the expected revision and bumps it by one.
// UpdateStageWithQuote commits the stage change, the change-log entry and the
// quote in a single atomic write: either all three land or none do.

type IPipelineRepository interface {
	Create(ctx context.Context, item entities.PipelineItem) (entities.PipelineItem, error)
	GetByID(ctx context.Context, id string) (entities.PipelineItem, error)
	List(ctx context.Context) ([]entities.PipelineItem, error)
	UpdateStage(ctx context.Context, id string, change entities.StageChange, expectedRevision int64) (entities.PipelineItem, error)
	UpdateStageWithQuote(ctx context.Context, id string, change entities.StageChange, quote entities.Quote, expectedRevision int64) (entities.PipelineItem, error)
	SaveQuote(ctx context.Context, id string, quote entities.Quote, expectedRevision int64) (entities.PipelineItem, error)
	SetDocumentRef(ctx context.Context, id string, ref string, expectedRevision int64) (entities.PipelineItem, error)
}
