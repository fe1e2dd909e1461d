package entities

import "time"

// Stage names a point in the sales process a submitted project occupies.
//
// Stages form a named set, not an enforced sequence: the sales team moves
// items freely, including backwards after a rejected contract.
type Stage string

const (
	StagePricingSubmissions       Stage = "Pricing Submissions"
	StageQuoteGenerated           Stage = "Quote Generated"
	StageContractSigned           Stage = "Contract Signed"
	StageContractRejected         Stage = "Contract Rejected"
	StageProjectStarted           Stage = "Project Started"
	StageProjectDelivered         Stage = "Project Delivered"
	StageChangeLogAfterDelivery   Stage = "Project Change Log After Delivery"
	StageChangeLogPricingAccepted Stage = "Change Log Pricing Accepted"
	StageChangeLogPricingRejected Stage = "Change Log Pricing Rejected"
)

// Stages lists every known pipeline stage in board order.
func Stages() []Stage {
	return []Stage{
		StagePricingSubmissions,
		StageQuoteGenerated,
		StageContractSigned,
		StageContractRejected,
		StageProjectStarted,
		StageProjectDelivered,
		StageChangeLogAfterDelivery,
		StageChangeLogPricingAccepted,
		StageChangeLogPricingRejected,
	}
}

// KnownStage reports whether s is a member of the stage set.
func KnownStage(s Stage) bool {
	for _, stage := range Stages() {
		if stage == s {
			return true
		}
	}
	return false
}

// StageChange is one append-only entry of a pipeline item's change log.
type StageChange struct {
	Stage     Stage     `json:"stage"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

// PipelineItem tracks one submission through the sales pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The item id equals the submission id, which guarantees exactly one pipeline
// item per submission and makes creation idempotent.
//
// Revision is a monotonic counter bumped on every update; writers must present
// the revision they read, and the repository rejects stale writes.
type PipelineItem struct {
	ID           string        `json:"id"`
	SubmissionID string        `json:"submission_id"`
	Stage        Stage         `json:"stage"`
	ChangeLog    []StageChange `json:"change_log"`
	Quote        *Quote        `json:"quote,omitempty"`
	Notes        string        `json:"notes"`
	Revision     int64         `json:"revision"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// HasQuote reports whether a quote has already been issued for this item.
func (p PipelineItem) HasQuote() bool {
	return p.Quote != nil && !p.Quote.IsZero()
}
