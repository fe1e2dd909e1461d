package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"biquote/internal/domain/pricing"
)

// QuoteValidityDays is how long an issued quote stays honored.
const QuoteValidityDays = 30

// QuoteNote is the advisory line attached to every issued quote.
const QuoteNote = "Server and DB hosting costs not included in this estimate"

// Quote is an issued, itemized price quote. It is immutable once issued; a
// recalculation supersedes the whole quote rather than editing it. DocumentRef
// stays empty when rendering failed and is filled in by a render retry.
type Quote struct {
	Breakdown   pricing.Breakdown `json:"breakdown"`
	Total       decimal.Decimal   `json:"total"`
	Currency    string            `json:"currency"`
	IssuedAt    time.Time         `json:"issued_at"`
	ValidUntil  time.Time         `json:"valid_until"`
	DocumentRef string            `json:"document_ref"`
	Note        string            `json:"note"`
}

// NewQuote issues a quote from a calculation result. Validity is anchored to
// the issuance instant, not the calculation instant.
func NewQuote(result pricing.Result, issuedAt time.Time) Quote {
	issuedAt = issuedAt.UTC()
	return Quote{
		Breakdown:  result.Breakdown,
		Total:      result.Total,
		Currency:   "USD",
		IssuedAt:   issuedAt,
		ValidUntil: issuedAt.AddDate(0, 0, QuoteValidityDays),
		Note:       QuoteNote,
	}
}

// IsZero reports whether the quote has never been issued.
func (q Quote) IsZero() bool {
	return q.IssuedAt.IsZero()
}
