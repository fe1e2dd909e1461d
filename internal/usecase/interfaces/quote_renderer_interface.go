package interfaces

import "biquote/internal/domain/entities"

// DocumentLabel carries the client-facing header fields of a quote document.
type DocumentLabel struct {
	ClientName   string
	ProjectTitle string
}

// IQuoteRenderer turns an issued quote into document bytes. Rendering has no
// side effects; persisting the artifact is the document store's job, so a
// failed render never disturbs an already-committed quote.
type IQuoteRenderer interface {
	Render(quote entities.Quote, label DocumentLabel) ([]byte, error)
}
