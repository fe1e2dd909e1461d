package request

import (
	"errors"
	"time"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
)

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

const dateLayout = "2006-01-02"

type ClientRequest struct {
	Name           string  `json:"name" binding:"required"`
	Type           string  `json:"type" binding:"required"`
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

type DeliverableRequest struct {
	Type     string `json:"type" binding:"required"`
	Quantity int    `json:"quantity"`
	Widgets  int    `json:"widgets"`
}

type DataFileRequest struct {
	FileType string  `json:"file_type" binding:"required"`
	SizeMB   float64 `json:"size_mb"`
}

type TableRequest struct {
	RecordCount int64 `json:"record_count"`
}

type DatabaseRequest struct {
	Engine string         `json:"engine" binding:"required"`
	Tables []TableRequest `json:"tables"`
}

type IntegrationRequest struct {
	Type     string         `json:"type" binding:"required"`
	DBTables []TableRequest `json:"db_tables"`
}

type BrandingRequest struct {
	IncludeLogo         bool `json:"include_logo"`
	WidgetBrandColor    bool `json:"widget_brand_color"`
	DashboardBrandColor bool `json:"dashboard_brand_color"`
	WidgetFontStyle     bool `json:"widget_font_style"`
	DashboardNameStyle  bool `json:"dashboard_name_style"`
	LocalizeWidgets     bool `json:"localize_widgets"`
	LocalizeHeadings    bool `json:"localize_headings"`
}

// SubmissionRequest is the full pricing intake form payload.
type SubmissionRequest struct {
	AnalystName string        `json:"analyst_name" binding:"required"`
	Client      ClientRequest `json:"client" binding:"required"`

	ProjectTitle         string               `json:"project_title" binding:"required"`
	ProjectDescription   string               `json:"project_description"`
	BusinessObjective    string               `json:"business_objective"`
	SubscriptionPlan     string               `json:"subscription_plan" binding:"required"`
	ExpectedDeliverables []DeliverableRequest `json:"expected_deliverables" binding:"required,min=1"`
	TargetAudience       []string             `json:"target_audience"`
	WidgetCount          int                  `json:"widget_count"`

	DataSources      []DataFileRequest    `json:"data_sources"`
	VolumeOfData     string               `json:"volume_of_data"`
	Databases        []DatabaseRequest    `json:"databases"`
	Integrations     []IntegrationRequest `json:"integrations"`
	CloudStorageName string               `json:"cloud_storage_name"`

	Interactivity       []string        `json:"interactivity"`
	UserAccessLevels    []string        `json:"user_access_levels"`
	DrilldownsPerWidget int             `json:"drilldowns_per_widget"`
	Branding            BrandingRequest `json:"branding"`

	EngagementType string   `json:"engagement_type"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	DeliveryModel  []string `json:"delivery_model"`

	SupportPlan  string `json:"support_plan"`
	SupportHours int    `json:"support_hours"`

	BIDeveloperLevel string `json:"bi_developer_level"`
	BIDevMonths      int    `json:"bi_dev_months"`

	AnalystNotes string `json:"analyst_notes"`
}

// ToSubmission maps the payload onto the domain entity. Dates must be
// YYYY-MM-DD; all further field validation happens in the intake package.
func (r SubmissionRequest) ToSubmission() (entities.Submission, error) {
	s := entities.Submission{
		AnalystName: r.AnalystName,
		Client: entities.ClientInfo{
			Name:           r.Client.Name,
			Type:           r.Client.Type,
			IndustrySector: r.Client.IndustrySector,
			CompanySize:    r.Client.CompanySize,
			AnnualRevenue:  r.Client.AnnualRevenue,
			Country:        r.Client.Country,
			City:           r.Client.City,
			Currency:       r.Client.Currency,
			ContactName:    r.Client.ContactName,
			Email:          r.Client.Email,
			PhoneNumber:    r.Client.PhoneNumber,
		},
		ProjectTitle:        r.ProjectTitle,
		ProjectDescription:  r.ProjectDescription,
		BusinessObjective:   r.BusinessObjective,
		SubscriptionPlan:    r.SubscriptionPlan,
		TargetAudience:      r.TargetAudience,
		WidgetCount:         r.WidgetCount,
		VolumeOfData:        r.VolumeOfData,
		CloudStorageName:    r.CloudStorageName,
		Interactivity:       r.Interactivity,
		UserAccessLevels:    r.UserAccessLevels,
		DrilldownsPerWidget: r.DrilldownsPerWidget,
		Branding: pricing.Branding{
			IncludeLogo:         r.Branding.IncludeLogo,
			WidgetBrandColor:    r.Branding.WidgetBrandColor,
			DashboardBrandColor: r.Branding.DashboardBrandColor,
			WidgetFontStyle:     r.Branding.WidgetFontStyle,
			DashboardNameStyle:  r.Branding.DashboardNameStyle,
			LocalizeWidgets:     r.Branding.LocalizeWidgets,
			LocalizeHeadings:    r.Branding.LocalizeHeadings,
		},
		EngagementType:   r.EngagementType,
		DeliveryModel:    r.DeliveryModel,
		SupportPlan:      pricing.SupportPlan(r.SupportPlan),
		SupportHours:     r.SupportHours,
		BIDeveloperLevel: pricing.BIDeveloperLevel(r.BIDeveloperLevel),
		BIDevMonths:      r.BIDevMonths,
		AnalystNotes:     r.AnalystNotes,
	}

	for _, d := range r.ExpectedDeliverables {
		s.ExpectedDeliverables = append(s.ExpectedDeliverables, entities.Deliverable{
			Type:     d.Type,
			Quantity: d.Quantity,
			Widgets:  d.Widgets,
		})
	}
	for _, ds := range r.DataSources {
		s.DataSources = append(s.DataSources, entities.DataFileSpec{
			FileType: pricing.FileType(ds.FileType),
			SizeMB:   ds.SizeMB,
		})
	}
	for _, db := range r.Databases {
		s.Databases = append(s.Databases, entities.DatabaseSpec{
			Engine: db.Engine,
			Tables: toTableSpecs(db.Tables),
		})
	}
	for _, in := range r.Integrations {
		s.Integrations = append(s.Integrations, entities.IntegrationSpec{
			Type:     in.Type,
			DBTables: toTableSpecs(in.DBTables),
		})
	}

	var err error
	if s.StartDate, err = parseDate(r.StartDate); err != nil {
		return entities.Submission{}, err
	}
	if s.EndDate, err = parseDate(r.EndDate); err != nil {
		return entities.Submission{}, err
	}
	return s, nil
}

func toTableSpecs(tables []TableRequest) []entities.TableSpec {
	out := make([]entities.TableSpec, 0, len(tables))
	for _, t := range tables {
		out = append(out, entities.TableSpec{RecordCount: t.RecordCount})
	}
	return out
}

func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &t, nil
}
