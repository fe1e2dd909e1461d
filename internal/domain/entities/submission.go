package entities

import (
	"time"

	"biquote/internal/domain/pricing"
)

// Deliverable is one expected project deliverable with its widget budget.
type Deliverable struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Widgets  int    `json:"widgets"`
}

// DataFileSpec describes one uploaded data file in the technical scope.
type DataFileSpec struct {
	FileType pricing.FileType `json:"file_type"`
	SizeMB   float64          `json:"size_mb"`
}

// TableSpec is a single table of a client database or hosted integration.
type TableSpec struct {
	RecordCount int64 `json:"record_count"`
}

// DatabaseSpec describes one client database the project reads from.
type DatabaseSpec struct {
	Engine string      `json:"engine"`
	Tables []TableSpec `json:"tables"`
}

// IntegrationSpec describes one external system the project connects to.
// DBTables lists tables hosted on our side for that integration, if any.
type IntegrationSpec struct {
	Type     string      `json:"type"`
	DBTables []TableSpec `json:"db_tables"`
}

// ClientInfo groups client identity fields of a submission.
type ClientInfo struct {
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	IndustrySector string  `json:"industry_sector"`
	CompanySize    int     `json:"company_size"`
	AnnualRevenue  float64 `json:"annual_revenue"`
	Country        string  `json:"country"`
	City           string  `json:"city"`
	Currency       string  `json:"currency"`
	ContactName    string  `json:"contact_name"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
}

// Submission is a validated pricing form persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The Scope method projects the policy-relevant fields into the pure
// calculation input; the calculator never reads the submission directly.
type Submission struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AnalystName string     `json:"analyst_name"`
	Client      ClientInfo `json:"client"`

	ProjectTitle         string        `json:"project_title"`
	ProjectDescription   string        `json:"project_description"`
	BusinessObjective    string        `json:"business_objective"`
	SubscriptionPlan     string        `json:"subscription_plan"`
	ExpectedDeliverables []Deliverable `json:"expected_deliverables"`
	TargetAudience       []string      `json:"target_audience"`
	WidgetCount          int           `json:"widget_count"`

	DataSources      []DataFileSpec    `json:"data_sources"`
	VolumeOfData     string            `json:"volume_of_data"`
	Databases        []DatabaseSpec    `json:"databases"`
	Integrations     []IntegrationSpec `json:"integrations"`
	CloudStorageName string            `json:"cloud_storage_name"`

	Interactivity       []string         `json:"interactivity"`
	UserAccessLevels    []string         `json:"user_access_levels"`
	DrilldownsPerWidget int              `json:"drilldowns_per_widget"`
	Branding            pricing.Branding `json:"branding"`

	EngagementType string     `json:"engagement_type"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	DeliveryModel  []string   `json:"delivery_model"`

	SupportPlan  pricing.SupportPlan `json:"support_plan"`
	SupportHours int                 `json:"support_hours"`

	BIDeveloperLevel pricing.BIDeveloperLevel `json:"bi_developer_level"`
	BIDevMonths      int                      `json:"bi_dev_months"`

	AnalystNotes string `json:"analyst_notes"`
}

// DashboardCount derives the dashboard total from the deliverables list.
// Entries without an explicit quantity count as one dashboard.
func (s Submission) DashboardCount() int {
	count := 0
	for _, d := range s.ExpectedDeliverables {
		if d.Quantity > 0 {
			count += d.Quantity
			continue
		}
		count++
	}
	return count
}

// Scope projects the submission into the calculator's typed input.
func (s Submission) Scope() pricing.ProjectScope {
	dataSources := make([]pricing.DataSource, 0, len(s.DataSources))
	for _, ds := range s.DataSources {
		dataSources = append(dataSources, pricing.DataSource{FileType: ds.FileType, SizeMB: ds.SizeMB})
	}

	databases := make([]pricing.DatabaseSource, 0, len(s.Databases))
	for _, db := range s.Databases {
		databases = append(databases, pricing.DatabaseSource{Type: db.Engine, Tables: toPricingTables(db.Tables)})
	}

	integrations := make([]pricing.Integration, 0, len(s.Integrations))
	for _, in := range s.Integrations {
		integrations = append(integrations, pricing.Integration{Name: in.Type, DBTables: toPricingTables(in.DBTables)})
	}

	return pricing.ProjectScope{
		DashboardCount:      s.DashboardCount(),
		WidgetCount:         s.WidgetCount,
		DataSources:         dataSources,
		DatabaseSources:     databases,
		Integrations:        integrations,
		DrilldownsPerWidget: s.DrilldownsPerWidget,
		Branding:            s.Branding,
		SupportPlan:         s.SupportPlan,
		SupportHours:        s.SupportHours,
		BIDeveloperLevel:    s.BIDeveloperLevel,
		BIDevMonths:         s.BIDevMonths,
	}
}

func toPricingTables(tables []TableSpec) []pricing.DBTable {
	out := make([]pricing.DBTable, 0, len(tables))
	for _, t := range tables {
		out = append(out, pricing.DBTable{RecordCount: t.RecordCount})
	}
	return out
}
