package interfaces

import (
	"context"
	"errors"

	"biquote/internal/domain/entities"
)

// ErrInvalidCursor rejects a page token that did not come from a previous
// listing response.
var ErrInvalidCursor = errors.New("invalid page cursor")

// ISubmissionRepository abstracts DynamoDB persistence for Submission.
//
// Listing is cursor-based: Cursor is an opaque token from a previous page and
// an empty NextCursor means the scan is exhausted. Returned pages are capped
// by Limit.

type SubmissionPage struct {
	Items      []entities.Submission
	NextCursor string
}

type ISubmissionRepository interface {
	Create(ctx context.Context, s entities.Submission) (entities.Submission, error)
	GetByID(ctx context.Context, id string) (entities.Submission, error)
	Update(ctx context.Context, s entities.Submission) (entities.Submission, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, limit int32, cursor string) (SubmissionPage, error)
	Search(ctx context.Context, query string, limit int32, cursor string) (SubmissionPage, error)
}
