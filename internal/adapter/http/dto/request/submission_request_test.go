package request

import (
	"errors"
	"testing"

	"biquote/internal/domain/pricing"
)

func TestSubmissionRequest_ToSubmission(t *testing.T) {
	r := SubmissionRequest{
		AnalystName: "pricing-ana",
		Client: ClientRequest{
			Name:     "Acme Corp",
			Type:     "B2B",
			Country:  "Germany",
			Currency: "EUR",
		},
		ProjectTitle:     "Sales Dashboards",
		SubscriptionPlan: "Starter Lite (Monthly)",
		ExpectedDeliverables: []DeliverableRequest{
			{Type: "Dashboard", Quantity: 2, Widgets: 6},
		},
		WidgetCount: 12,
		DataSources: []DataFileRequest{
			{FileType: "csv", SizeMB: 5},
		},
		Databases: []DatabaseRequest{
			{Engine: "PostgreSQL", Tables: []TableRequest{{RecordCount: 100}}},
		},
		Integrations: []IntegrationRequest{
			{Type: "CRM", DBTables: []TableRequest{{RecordCount: 50}}},
		},
		Branding:     BrandingRequest{IncludeLogo: true, LocalizeWidgets: true},
		StartDate:    "2026-06-01",
		SupportPlan:  "priority",
		SupportHours: 4,
	}

	s, err := r.ToSubmission()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.AnalystName != "pricing-ana" {
		t.Fatalf("expected analyst pricing-ana, got %q", s.AnalystName)
	}
	if s.Client.Name != "Acme Corp" || s.Client.Currency != "EUR" {
		t.Fatalf("client not mapped: %+v", s.Client)
	}
	if len(s.ExpectedDeliverables) != 1 || s.ExpectedDeliverables[0].Widgets != 6 {
		t.Fatalf("deliverables not mapped: %+v", s.ExpectedDeliverables)
	}
	if len(s.DataSources) != 1 || s.DataSources[0].FileType != pricing.FileType("csv") {
		t.Fatalf("data sources not mapped: %+v", s.DataSources)
	}
	if len(s.Databases) != 1 || s.Databases[0].Tables[0].RecordCount != 100 {
		t.Fatalf("databases not mapped: %+v", s.Databases)
	}
	if len(s.Integrations) != 1 || s.Integrations[0].DBTables[0].RecordCount != 50 {
		t.Fatalf("integrations not mapped: %+v", s.Integrations)
	}
	if !s.Branding.IncludeLogo || !s.Branding.LocalizeWidgets {
		t.Fatalf("branding not mapped: %+v", s.Branding)
	}
	if s.SupportPlan != pricing.SupportPlanPriority || s.SupportHours != 4 {
		t.Fatalf("support not mapped: %v %d", s.SupportPlan, s.SupportHours)
	}
	if s.StartDate == nil || s.StartDate.Format(dateLayout) != "2026-06-01" {
		t.Fatalf("start date not parsed: %v", s.StartDate)
	}
	if s.EndDate != nil {
		t.Fatalf("expected nil end date, got %v", s.EndDate)
	}
}

func TestSubmissionRequest_ToSubmissionInvalidDate(t *testing.T) {
	r := SubmissionRequest{
		AnalystName:      "pricing-ana",
		Client:           ClientRequest{Name: "Acme Corp", Type: "B2B"},
		ProjectTitle:     "Sales Dashboards",
		SubscriptionPlan: "Starter Lite (Monthly)",
		ExpectedDeliverables: []DeliverableRequest{
			{Type: "Dashboard", Quantity: 1},
		},
		EndDate: "01/06/2026",
	}
	if _, err := r.ToSubmission(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestPreviewRequest_ToScope(t *testing.T) {
	r := PreviewRequest{
		ClientName:   "Acme Corp",
		ProjectTitle: "Sales Dashboards",
		WidgetCount:  5,
		DataSources: []DataFileRequest{
			{FileType: "json", SizeMB: 2},
		},
		Databases: []DatabaseRequest{
			{Engine: "MySQL", Tables: []TableRequest{{RecordCount: 10}}},
		},
	}

	scope := r.ToScope()
	if scope.WidgetCount != 5 {
		t.Fatalf("expected 5 widgets, got %d", scope.WidgetCount)
	}
	if len(scope.DataSources) != 1 || scope.DataSources[0].SizeMB != 2 {
		t.Fatalf("data sources not mapped: %+v", scope.DataSources)
	}
	if len(scope.DatabaseSources) != 1 || scope.DatabaseSources[0].Tables[0].RecordCount != 10 {
		t.Fatalf("database sources not mapped: %+v", scope.DatabaseSources)
	}

	label := r.Label()
	if label.ClientName != "Acme Corp" || label.ProjectTitle != "Sales Dashboards" {
		t.Fatalf("label not mapped: %+v", label)
	}
}
