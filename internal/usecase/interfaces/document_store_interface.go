package interfaces

import (
	"context"
	"errors"
)

// ErrDocumentNotFound reports a document reference that resolves to nothing.
var ErrDocumentNotFound = errors.New("document not found")

// IDocumentStore abstracts the durable blob store for rendered quote
// documents. Put writes exactly one artifact and returns a stable reference
// that Get resolves for the lifetime of the store.
type IDocumentStore interface {
	Put(ctx context.Context, name string, data []byte) (ref string, err error)
	Get(ctx context.Context, ref string) ([]byte, error)
}
