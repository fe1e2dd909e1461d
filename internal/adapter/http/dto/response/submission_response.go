package response

import (
	"time"

	"biquote/internal/domain/entities"
)

type ClientResponse struct {
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

type SubmissionResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AnalystName string         `json:"analyst_name"`
	Client      ClientResponse `json:"client"`

	ProjectTitle         string                 `json:"project_title"`
	ProjectDescription   string                 `json:"project_description"`
	BusinessObjective    string                 `json:"business_objective"`
	SubscriptionPlan     string                 `json:"subscription_plan"`
	ExpectedDeliverables []entities.Deliverable `json:"expected_deliverables"`
	TargetAudience       []string               `json:"target_audience"`
	DashboardCount       int                    `json:"dashboard_count"`
	WidgetCount          int                    `json:"widget_count"`

	DataSources      []entities.DataFileSpec    `json:"data_sources"`
	VolumeOfData     string                     `json:"volume_of_data"`
	Databases        []entities.DatabaseSpec    `json:"databases"`
	Integrations     []entities.IntegrationSpec `json:"integrations"`
	CloudStorageName string                     `json:"cloud_storage_name"`

	Interactivity       []string `json:"interactivity"`
	UserAccessLevels    []string `json:"user_access_levels"`
	DrilldownsPerWidget int      `json:"drilldowns_per_widget"`

	EngagementType string     `json:"engagement_type"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	DeliveryModel  []string   `json:"delivery_model"`

	SupportPlan  string `json:"support_plan"`
	SupportHours int    `json:"support_hours"`

	BIDeveloperLevel string `json:"bi_developer_level"`
	BIDevMonths      int    `json:"bi_dev_months"`

	AnalystNotes string `json:"analyst_notes"`
}

func FromSubmission(s entities.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:        s.ID,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,

		AnalystName: s.AnalystName,
		Client: ClientResponse{
			Name:           s.Client.Name,
			Type:           s.Client.Type,
			IndustrySector: s.Client.IndustrySector,
			CompanySize:    s.Client.CompanySize,
			AnnualRevenue:  s.Client.AnnualRevenue,
			Country:        s.Client.Country,
			City:           s.Client.City,
			Currency:       s.Client.Currency,
			ContactName:    s.Client.ContactName,
			Email:          s.Client.Email,
			PhoneNumber:    s.Client.PhoneNumber,
		},

		ProjectTitle:         s.ProjectTitle,
		ProjectDescription:   s.ProjectDescription,
		BusinessObjective:    s.BusinessObjective,
		SubscriptionPlan:     s.SubscriptionPlan,
		ExpectedDeliverables: s.ExpectedDeliverables,
		TargetAudience:       s.TargetAudience,
		DashboardCount:       s.DashboardCount(),
		WidgetCount:          s.WidgetCount,

		DataSources:      s.DataSources,
		VolumeOfData:     s.VolumeOfData,
		Databases:        s.Databases,
		Integrations:     s.Integrations,
		CloudStorageName: s.CloudStorageName,

		Interactivity:       s.Interactivity,
		UserAccessLevels:    s.UserAccessLevels,
		DrilldownsPerWidget: s.DrilldownsPerWidget,

		EngagementType: s.EngagementType,
		StartDate:      s.StartDate,
		EndDate:        s.EndDate,
		DeliveryModel:  s.DeliveryModel,

		SupportPlan:  string(s.SupportPlan),
		SupportHours: s.SupportHours,

		BIDeveloperLevel: string(s.BIDeveloperLevel),
		BIDevMonths:      s.BIDevMonths,

		AnalystNotes: s.AnalystNotes,
	}
}

// CreatedSubmissionResponse returns the stored form together with the
// pipeline item opened for it.
type CreatedSubmissionResponse struct {
	Submission   SubmissionResponse   `json:"submission"`
	PipelineItem PipelineItemResponse `json:"pipeline_item"`
}

// SubmissionPageResponse is one page of a listing, with the opaque cursor of
// the next page when there is more.
type SubmissionPageResponse struct {
	Items      []SubmissionResponse `json:"items"`
	NextCursor string               `json:"next_cursor,omitempty"`
}

func FromSubmissionPage(items []entities.Submission, nextCursor string) SubmissionPageResponse {
	page := SubmissionPageResponse{Items: make([]SubmissionResponse, 0, len(items)), NextCursor: nextCursor}
	for _, s := range items {
		page.Items = append(page.Items, FromSubmission(s))
	}
	return page
}
