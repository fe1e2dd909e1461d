package response

import (
	"time"

	"biquote/internal/domain/entities"
)

// QuoteResponse serializes an issued quote. Amounts are decimal strings to
// keep them exact on the wire; DocumentURL is empty while rendering is
// pending or failed.
type QuoteResponse struct {
	Breakdown   map[string]string `json:"breakdown"`
	Total       string            `json:"total"`
	Currency    string            `json:"currency"`
	IssuedAt    time.Time         `json:"issued_at"`
	ValidUntil  time.Time         `json:"valid_until"`
	DocumentURL string            `json:"document_url,omitempty"`
	Note        string            `json:"note"`
	Warning     string            `json:"warning,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	breakdown := make(map[string]string, 8)
	for category, amount := range q.Breakdown.ToMap() {
		breakdown[string(category)] = amount.String()
	}
	return QuoteResponse{
		Breakdown:   breakdown,
		Total:       q.Total.String(),
		Currency:    q.Currency,
		IssuedAt:    q.IssuedAt,
		ValidUntil:  q.ValidUntil,
		DocumentURL: documentURL(q.DocumentRef),
		Note:        q.Note,
	}
}

func documentURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "/v1/quotes/documents/" + ref
}
