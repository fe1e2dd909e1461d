package intake

import "biquote/internal/domain/pricing"

// Enumerated form options. These mirror what the intake form offers; the
// calculator itself never re-checks membership.

var ClientTypes = []string{"B2B", "B2B2B", "Private Individual"}

var SubscriptionPlans = []string{
	"Starter Lite (Monthly)",
	"Starter Growth (Monthly)",
	"Starter Scale (Monthly)",
	"Enterprise Lite (Monthly)",
	"Enterprise Growth (Monthly)",
	"Enterprise Scale (Monthly)",
	"Starter Lite (Annual)",
	"Starter Growth (Annual)",
	"Starter Scale (Annual)",
	"Enterprise Lite (Annual)",
	"Enterprise Growth (Annual)",
	"Enterprise Scale (Annual)",
	"Generative BI Developer",
}

var VolumeOptions = []string{"Small (<1M)", "Medium (1M–10M)", "Large (10M+)"}

var EngagementTypes = []string{"One-time Project", "Monthly Retainer", "Subscription"}

var DatabaseEngines = []string{"MongoDB", "MySQL", "Microsoft SQL", "Snowflake", "PostgreSQL", "Airtable"}

var DeliverableTypes = []string{
	"Dashboard",
	"Charts/Graphs",
	"KPI Reporting",
	"Interactive Reports",
	"Embedded Analytics",
	"Infographics",
	"White-labeled Portals",
}

var TargetAudiences = []string{"Internal Teams", "External Clients", "Partners/Vendors"}

var IntegrationTypes = []string{"CRM (Salesforce)", "ERP (SAP)", "BI Tools (Power BI, Tableau)", "Custom APIs"}

var InteractivityOptions = []string{"Filtering", "Drill-down", "Real-time Updates", "Mobile Responsive"}

var AccessLevels = []string{"Admin", "Editor", "Viewer"}

var DeliveryModels = []string{"Cloud-hosted", "On-premise", "Hybrid"}

var FileTypes = []pricing.FileType{
	pricing.FileTypeCSV,
	pricing.FileTypeXML,
	pricing.FileTypeXLS,
	pricing.FileTypeXLSX,
	pricing.FileTypeJSON,
}

var SupportPlans = []pricing.SupportPlan{
	pricing.SupportPlanBasic,
	pricing.SupportPlanPriority,
	pricing.SupportPlanManager20Hr,
	pricing.SupportPlanManager40Hr,
	pricing.SupportPlanManagerContract,
}

var BIDeveloperLevels = []pricing.BIDeveloperLevel{
	pricing.BIDeveloperLevelEntry,
	pricing.BIDeveloperLevelMid,
	pricing.BIDeveloperLevelSenior,
	pricing.BIDeveloperLevelAdvanced,
}

func containsString(options []string, v string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}
