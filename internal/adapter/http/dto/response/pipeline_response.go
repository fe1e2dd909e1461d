package response

import (
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/usecase"
)

type StageChangeResponse struct {
	Stage     string    `json:"stage"`
	ChangedAt time.Time `json:"changed_at"`
	ChangedBy string    `json:"changed_by"`
}

// PipelineItemResponse serializes a pipeline board item. Warning carries a
// non-fatal follow-up (today only a failed document render) on an otherwise
// successful response.
type PipelineItemResponse struct {
	ID           string                `json:"id"`
	SubmissionID string                `json:"submission_id"`
	Stage        string                `json:"stage"`
	ChangeLog    []StageChangeResponse `json:"change_log"`
	Quote        *QuoteResponse        `json:"quote,omitempty"`
	Notes        string                `json:"notes,omitempty"`
	Revision     int64                 `json:"revision"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
	Warning      string                `json:"warning,omitempty"`
}

func FromPipelineItem(item entities.PipelineItem) PipelineItemResponse {
	resp := PipelineItemResponse{
		ID:           item.ID,
		SubmissionID: item.SubmissionID,
		Stage:        string(item.Stage),
		ChangeLog:    make([]StageChangeResponse, 0, len(item.ChangeLog)),
		Notes:        item.Notes,
		Revision:     item.Revision,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
	for _, c := range item.ChangeLog {
		resp.ChangeLog = append(resp.ChangeLog, StageChangeResponse{
			Stage:     string(c.Stage),
			ChangedAt: c.ChangedAt,
			ChangedBy: c.ChangedBy,
		})
	}
	if item.Quote != nil {
		quote := FromQuote(*item.Quote)
		resp.Quote = &quote
	}
	return resp
}

// PipelineEntryResponse pairs a board item with its submission for listings.
type PipelineEntryResponse struct {
	Item       PipelineItemResponse `json:"item"`
	Submission SubmissionResponse   `json:"submission"`
}

func FromPipelineEntries(entries []usecase.PipelineEntry) []PipelineEntryResponse {
	out := make([]PipelineEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, PipelineEntryResponse{
			Item:       FromPipelineItem(e.Item),
			Submission: FromSubmission(e.Submission),
		})
	}
	return out
}
