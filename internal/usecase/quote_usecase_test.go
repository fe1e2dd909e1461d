package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase/interfaces"
	mock_interfaces "biquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_GenerateForSubmission(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, pricing.DefaultPolicy())
		_, err := uc.GenerateForSubmission(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("submission not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewQuoteUseCase(subRepo, nil, nil, nil, pricing.DefaultPolicy())

		subRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		_, err := uc.GenerateForSubmission(context.Background(), "sub-1")
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("pipeline item not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		uc := NewQuoteUseCase(subRepo, pipelineRepo, nil, nil, pricing.DefaultPolicy())

		subRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1"}, nil)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.PipelineItem{}, nil)

		_, err := uc.GenerateForSubmission(context.Background(), "sub-1")
		if !errors.Is(err, ErrPipelineItemNotFound) {
			t.Fatalf("expected ErrPipelineItemNotFound, got %v", err)
		}
	})

	t.Run("oversized data is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		uc := NewQuoteUseCase(subRepo, pipelineRepo, nil, nil, pricing.DefaultPolicy())

		sub := testSubmission()
		sub.ID = "sub-1"
		sub.DataSources = []entities.DataFileSpec{{FileType: pricing.FileTypeCSV, SizeMB: 31}}
		subRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(testPipelineItem(entities.StagePricingSubmissions), nil)

		_, err := uc.GenerateForSubmission(context.Background(), "sub-1")
		if !errors.Is(err, pricing.ErrSizeLimitExceeded) {
			t.Fatalf("expected ErrSizeLimitExceeded, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		docs := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewQuoteUseCase(subRepo, pipelineRepo, renderer, docs, pricing.DefaultPolicy())

		sub := testSubmission()
		sub.ID = "sub-1"
		item := testPipelineItem(entities.StagePricingSubmissions)

		subRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(item, nil)
		pipelineRepo.EXPECT().SaveQuote(gomock.Any(), "sub-1", gomock.Any(), item.Revision).DoAndReturn(
			func(_ context.Context, _ string, quote entities.Quote, _ int64) (entities.PipelineItem, error) {
				if quote.Currency != "USD" || quote.Note == "" {
					t.Fatalf("unexpected quote: %+v", quote)
				}
				if !quote.ValidUntil.Equal(quote.IssuedAt.AddDate(0, 0, entities.QuoteValidityDays)) {
					t.Fatalf("unexpected validity window: %+v", quote)
				}
				item.Quote = &quote
				item.Revision++
				return item, nil
			},
		)
		renderer.EXPECT().Render(gomock.Any(), interfaces.DocumentLabel{ClientName: "Acme Corp", ProjectTitle: "Sales Dashboards"}).
			Return([]byte("%PDF"), nil)
		docs.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("%PDF")).Return("documents/q.pdf", nil)
		pipelineRepo.EXPECT().SetDocumentRef(gomock.Any(), "sub-1", "documents/q.pdf", item.Revision+1).DoAndReturn(
			func(_ context.Context, _ string, ref string, _ int64) (entities.PipelineItem, error) {
				item.Quote.DocumentRef = ref
				return item, nil
			},
		)

		got, err := uc.GenerateForSubmission(context.Background(), " sub-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.HasQuote() || got.Quote.DocumentRef != "documents/q.pdf" {
			t.Fatalf("expected quote with document, got %+v", got)
		}
	})

	t.Run("supersedes an existing quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		docs := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewQuoteUseCase(subRepo, pipelineRepo, renderer, docs, pricing.DefaultPolicy())

		sub := testSubmission()
		sub.ID = "sub-1"
		item := testPipelineItem(entities.StageQuoteGenerated)
		old := entities.NewQuote(pricing.Result{}, time.Now().AddDate(0, 0, -10))
		item.Quote = &old

		subRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(item, nil)
		pipelineRepo.EXPECT().SaveQuote(gomock.Any(), "sub-1", gomock.Any(), item.Revision).DoAndReturn(
			func(_ context.Context, _ string, quote entities.Quote, _ int64) (entities.PipelineItem, error) {
				if !quote.IssuedAt.After(old.IssuedAt) {
					t.Fatalf("expected a freshly issued quote")
				}
				item.Quote = &quote
				return item, nil
			},
		)
		renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		docs.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("documents/q2.pdf", nil)
		pipelineRepo.EXPECT().SetDocumentRef(gomock.Any(), "sub-1", "documents/q2.pdf", gomock.Any()).Return(item, nil)

		if _, err := uc.GenerateForSubmission(context.Background(), "sub-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_Preview(t *testing.T) {
	scope := pricing.ProjectScope{WidgetCount: 5}
	label := interfaces.DocumentLabel{ClientName: "Acme Corp", ProjectTitle: "Sales Dashboards"}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		docs := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewQuoteUseCase(nil, nil, renderer, docs, pricing.DefaultPolicy())

		renderer.EXPECT().Render(gomock.Any(), label).Return([]byte("%PDF"), nil)
		docs.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("%PDF")).Return("documents/preview.pdf", nil)

		quote, err := uc.Preview(context.Background(), scope, label)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if quote.DocumentRef != "documents/preview.pdf" {
			t.Fatalf("expected document ref, got %q", quote.DocumentRef)
		}
		if quote.Total.String() != "100" {
			t.Fatalf("expected total 100, got %s", quote.Total)
		}
	})

	t.Run("render failure still returns the quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewQuoteUseCase(nil, nil, renderer, nil, pricing.DefaultPolicy())

		renderer.EXPECT().Render(gomock.Any(), label).Return(nil, errors.New("font missing"))

		quote, err := uc.Preview(context.Background(), scope, label)
		if !errors.Is(err, ErrRenderFailed) {
			t.Fatalf("expected ErrRenderFailed, got %v", err)
		}
		if quote.IsZero() {
			t.Fatalf("expected a computed quote alongside the error")
		}
	})

	t.Run("calculation error", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, pricing.DefaultPolicy())

		bad := pricing.ProjectScope{SupportPlan: "platinum"}
		_, err := uc.Preview(context.Background(), bad, label)
		if !errors.Is(err, pricing.ErrInvalidConfiguration) {
			t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
		}
	})
}

func TestQuoteUseCase_RetryRender(t *testing.T) {
	t.Run("no quote issued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		uc := NewQuoteUseCase(nil, pipelineRepo, nil, nil, pricing.DefaultPolicy())

		pipelineRepo.EXPECT().GetByID(gomock.Any(), "sub-1").
			Return(testPipelineItem(entities.StagePricingSubmissions), nil)

		_, err := uc.RetryRender(context.Background(), "sub-1")
		if !errors.Is(err, ErrQuoteNotIssued) {
			t.Fatalf("expected ErrQuoteNotIssued, got %v", err)
		}
	})

	t.Run("renders without recomputing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		subRepo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		docs := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewQuoteUseCase(subRepo, pipelineRepo, renderer, docs, pricing.DefaultPolicy())

		item := testPipelineItem(entities.StageQuoteGenerated)
		quote := entities.NewQuote(pricing.Result{}, time.Now())
		item.Quote = &quote
		sub := testSubmission()
		sub.ID = "sub-1"

		pipelineRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(item, nil)
		subRepo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(sub, nil)
		renderer.EXPECT().Render(quote, gomock.Any()).Return([]byte("%PDF"), nil)
		docs.EXPECT().Put(gomock.Any(), gomock.Any(), []byte("%PDF")).Return("documents/q.pdf", nil)
		pipelineRepo.EXPECT().SetDocumentRef(gomock.Any(), "sub-1", "documents/q.pdf", item.Revision).Return(item, nil)

		if _, err := uc.RetryRender(context.Background(), "sub-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuoteUseCase_GetDocument(t *testing.T) {
	t.Run("blank ref", func(t *testing.T) {
		uc := NewQuoteUseCase(nil, nil, nil, nil, pricing.DefaultPolicy())
		_, err := uc.GetDocument(context.Background(), "  ")
		if !errors.Is(err, interfaces.ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("delegates to the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		docs := mock_interfaces.NewMockIDocumentStore(ctrl)
		uc := NewQuoteUseCase(nil, nil, nil, docs, pricing.DefaultPolicy())

		docs.EXPECT().Get(gomock.Any(), "documents/q.pdf").Return([]byte("%PDF"), nil)

		data, err := uc.GetDocument(context.Background(), " documents/q.pdf ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(data, []byte("%PDF")) {
			t.Fatalf("unexpected data: %q", data)
		}
	})
}
