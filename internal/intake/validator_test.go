package intake

import (
	"testing"
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
)

func validSubmission() entities.Submission {
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

func TestValidateSubmission_Valid(t *testing.T) {
	fe := ValidateSubmission(validSubmission())
	if !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
}

func TestValidateSubmission_AnalystNamePrefix(t *testing.T) {
	s := validSubmission()
	s.AnalystName = "bob"
	fe := ValidateSubmission(s)
	if len(fe["analyst_name"]) == 0 {
		t.Fatalf("expected analyst_name error, got %v", fe)
	}

	s.AnalystName = "Pricing Bob"
	if fe := ValidateSubmission(s); !fe.Empty() {
		t.Fatalf("prefix check must be case-insensitive, got %v", fe)
	}
}

func TestValidateSubmission_EnumMembership(t *testing.T) {
	s := validSubmission()
	s.Client.Type = "B2C"
	s.SubscriptionPlan = "Free Tier"
	s.Databases[0].Engine = "OracleDB"
	s.SupportPlan = "platinum"

	fe := ValidateSubmission(s)

	for _, field := range []string{"client_type", "subscription_plan", "databases", "support_plan"} {
		if len(fe[field]) == 0 {
			t.Fatalf("expected error for %s, got %v", field, fe)
		}
	}
}

func TestValidateSubmission_CollectsAllErrors(t *testing.T) {
	s := validSubmission()
	s.AnalystName = "bob"
	s.Client.Type = "B2C"

	fe := ValidateSubmission(s)
	if len(fe) != 2 {
		t.Fatalf("expected two failing fields, got %v", fe)
	}
}

func TestValidateSubmission_DateOrdering(t *testing.T) {
	s := validSubmission()
	start := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	s.StartDate = &start
	s.EndDate = &end

	fe := ValidateSubmission(s)
	if len(fe["end_date"]) == 0 {
		t.Fatalf("expected end_date error, got %v", fe)
	}

	end = start.AddDate(0, 2, 0)
	s.EndDate = &end
	if fe := ValidateSubmission(s); !fe.Empty() {
		t.Fatalf("expected no errors, got %v", fe)
	}
}

func TestValidateSubmission_NegativeRecordCounts(t *testing.T) {
	s := validSubmission()
	s.Databases[0].Tables[0].RecordCount = -1

	fe := ValidateSubmission(s)
	if len(fe["databases"]) == 0 {
		t.Fatalf("expected databases error, got %v", fe)
	}
}

func TestCurrencyFor(t *testing.T) {
	cases := map[string]string{
		"Germany":       "EUR",
		"Japan":         "JPY",
		"United States": "USD",
		"Atlantis":      "USD",
		"":              "USD",
	}
	for country, want := range cases {
		if got := CurrencyFor(country); got != want {
			t.Fatalf("CurrencyFor(%q) = %s, want %s", country, got, want)
		}
	}
}
