package usecase

import (
	"context"
	"errors"
	"testing"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
	"biquote/internal/intake"
	"biquote/internal/usecase/interfaces"
	mock_interfaces "biquote/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func testSubmission() entities.Submission {
	return entities.Submission{
		AnalystName: "pricing-ana",
		Client: entities.ClientInfo{
			Name:           "Acme Corp",
			Type:           "B2B",
			IndustrySector: "Retail",
			Country:        "Germany",
		},
		ProjectTitle:     "Sales Dashboards",
		SubscriptionPlan: "Starter Lite (Monthly)",
		ExpectedDeliverables: []entities.Deliverable{
			{Type: "Dashboard", Quantity: 2, Widgets: 6},
		},
		DataSources: []entities.DataFileSpec{{FileType: pricing.FileTypeCSV, SizeMB: 5}},
		Databases:   []entities.DatabaseSpec{{Engine: "PostgreSQL", Tables: []entities.TableSpec{{RecordCount: 100}}}},
		SupportPlan: pricing.SupportPlanBasic,
	}
}

func TestSubmissionUseCase_Create(t *testing.T) {
	t.Run("invalid form", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil)
		s := testSubmission()
		s.AnalystName = "bob"

		_, _, err := uc.Create(context.Background(), s)
		var fe intake.FieldErrors
		if !errors.As(err, &fe) || len(fe["analyst_name"]) == 0 {
			t.Fatalf("expected analyst_name field error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		uc := NewSubmissionUseCase(repo, pipelineRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Submission{})).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				if s.ID == "" {
					t.Fatalf("expected generated id")
				}
				if s.Client.Currency != "EUR" {
					t.Fatalf("expected currency derived from country, got %q", s.Client.Currency)
				}
				if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return s, nil
			},
		)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.PipelineItem{}, nil)
		pipelineRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.PipelineItem{})).DoAndReturn(
			func(_ context.Context, item entities.PipelineItem) (entities.PipelineItem, error) {
				if item.Stage != entities.StagePricingSubmissions {
					t.Fatalf("expected initial stage, got %s", item.Stage)
				}
				if item.ID != item.SubmissionID {
					t.Fatalf("pipeline item id must equal submission id")
				}
				if item.Revision != 1 || len(item.ChangeLog) != 1 {
					t.Fatalf("unexpected item: %+v", item)
				}
				return item, nil
			},
		)

		created, item, err := uc.Create(context.Background(), testSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || item.ID != created.ID {
			t.Fatalf("expected matching ids, got %q and %q", created.ID, item.ID)
		}
	})

	t.Run("pipeline item already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		uc := NewSubmissionUseCase(repo, pipelineRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) { return s, nil },
		)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.PipelineItem, error) {
				return entities.PipelineItem{ID: id, SubmissionID: id, Revision: 3}, nil
			},
		)

		_, item, err := uc.Create(context.Background(), testSubmission())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Revision != 3 {
			t.Fatalf("expected existing item returned, got %+v", item)
		}
	})

	t.Run("pipeline create failure rolls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		pipelineRepo := mock_interfaces.NewMockIPipelineRepository(ctrl)
		uc := NewSubmissionUseCase(repo, pipelineRepo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) { return s, nil },
		)
		pipelineRepo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.PipelineItem{}, nil)
		pipelineRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PipelineItem{}, errors.New("db"))
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		_, _, err := uc.Create(context.Background(), testSubmission())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestSubmissionUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		_, err := uc.GetByID(context.Background(), "sub-1")
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1"}, nil)

		s, err := uc.GetByID(context.Background(), " sub-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID != "sub-1" {
			t.Fatalf("expected sub-1, got %q", s.ID)
		}
	})
}

func TestSubmissionUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		_, err := uc.Update(context.Background(), "sub-1", testSubmission())
		if !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("keeps identity and creation time", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		existing := testSubmission()
		existing.ID = "sub-1"
		existing.CreatedAt = existing.CreatedAt.AddDate(0, 0, -7)
		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(existing, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Submission) (entities.Submission, error) {
				if s.ID != "sub-1" || !s.CreatedAt.Equal(existing.CreatedAt) {
					t.Fatalf("identity not preserved: %+v", s)
				}
				if !s.UpdatedAt.After(s.CreatedAt) {
					t.Fatalf("expected refreshed UpdatedAt")
				}
				return s, nil
			},
		)

		if _, err := uc.Update(context.Background(), "sub-1", testSubmission()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubmissionUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewSubmissionUseCase(nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidSubmissionID) {
			t.Fatalf("expected ErrInvalidSubmissionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{}, nil)

		if err := uc.Delete(context.Background(), "sub-1"); !errors.Is(err, ErrSubmissionNotFound) {
			t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "sub-1").Return(entities.Submission{ID: "sub-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "sub-1").Return(nil)

		if err := uc.Delete(context.Background(), "sub-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSubmissionUseCase_ListAndSearch(t *testing.T) {
	t.Run("clamps page size", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), defaultPageSize, "").Return(interfaces.SubmissionPage{}, nil)
		repo.EXPECT().List(gomock.Any(), maxPageSize, "").Return(interfaces.SubmissionPage{}, nil)

		if _, err := uc.List(context.Background(), 0, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := uc.List(context.Background(), 500, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("blank query falls back to list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		repo.EXPECT().List(gomock.Any(), defaultPageSize, "").Return(interfaces.SubmissionPage{}, nil)

		if _, err := uc.Search(context.Background(), "   ", 0, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("search delegates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockISubmissionRepository(ctrl)
		uc := NewSubmissionUseCase(repo, nil)

		page := interfaces.SubmissionPage{Items: []entities.Submission{{ID: "sub-1"}}, NextCursor: "c2"}
		repo.EXPECT().Search(gomock.Any(), "acme", int32(10), "c1").Return(page, nil)

		got, err := uc.Search(context.Background(), " acme ", 10, "c1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Items) != 1 || got.NextCursor != "c2" {
			t.Fatalf("unexpected page: %+v", got)
		}
	})
}
