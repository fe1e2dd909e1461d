package request

import (
	"biquote/internal/domain/pricing"
	"biquote/internal/usecase/interfaces"
)

// PreviewRequest asks for a quote computed from a raw scope, without any
// stored submission behind it.
type PreviewRequest struct {
	ClientName   string `json:"client_name"`
	ProjectTitle string `json:"project_title"`

	DashboardCount      int                  `json:"dashboard_count"`
	WidgetCount         int                  `json:"widget_count"`
	DataSources         []DataFileRequest    `json:"data_sources"`
	Databases           []DatabaseRequest    `json:"databases"`
	Integrations        []IntegrationRequest `json:"integrations"`
	DrilldownsPerWidget int                  `json:"drilldowns_per_widget"`
	Branding            BrandingRequest      `json:"branding"`
	SupportPlan         string               `json:"support_plan"`
	SupportHours        int                  `json:"support_hours"`
	BIDeveloperLevel    string               `json:"bi_developer_level"`
	BIDevMonths         int                  `json:"bi_dev_months"`
}

func (r PreviewRequest) ToScope() pricing.ProjectScope {
	scope := pricing.ProjectScope{
		DashboardCount:      r.DashboardCount,
		WidgetCount:         r.WidgetCount,
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
		SupportPlan:      pricing.SupportPlan(r.SupportPlan),
		SupportHours:     r.SupportHours,
		BIDeveloperLevel: pricing.BIDeveloperLevel(r.BIDeveloperLevel),
		BIDevMonths:      r.BIDevMonths,
	}

	for _, ds := range r.DataSources {
		scope.DataSources = append(scope.DataSources, pricing.DataSource{
			FileType: pricing.FileType(ds.FileType),
			SizeMB:   ds.SizeMB,
		})
	}
	for _, db := range r.Databases {
		scope.DatabaseSources = append(scope.DatabaseSources, pricing.DatabaseSource{
			Type:   db.Engine,
			Tables: toScopeTables(db.Tables),
		})
	}
	for _, in := range r.Integrations {
		scope.Integrations = append(scope.Integrations, pricing.Integration{
			Name:     in.Type,
			DBTables: toScopeTables(in.DBTables),
		})
	}
	return scope
}

func (r PreviewRequest) Label() interfaces.DocumentLabel {
	return interfaces.DocumentLabel{ClientName: r.ClientName, ProjectTitle: r.ProjectTitle}
}

func toScopeTables(tables []TableRequest) []pricing.DBTable {
	out := make([]pricing.DBTable, 0, len(tables))
	for _, t := range tables {
		out = append(out, pricing.DBTable{RecordCount: t.RecordCount})
	}
	return out
}
