package pricing

// FileType identifies the format of an uploaded data source file.
type FileType string

const (
	FileTypeCSV  FileType = "csv"
	FileTypeXML  FileType = "xml"
	FileTypeXLS  FileType = "xls"
	FileTypeXLSX FileType = "xlsx"
	FileTypeJSON FileType = "json"
)

// SupportPlan identifies the post-delivery support tier a client selected.
type SupportPlan string

const (
	SupportPlanBasic           SupportPlan = "basic"
	SupportPlanPriority        SupportPlan = "priority"
	SupportPlanManager20Hr     SupportPlan = "manager_20hr"
	SupportPlanManager40Hr     SupportPlan = "manager_40hr"
	SupportPlanManagerContract SupportPlan = "manager_contract"
)

// BIDeveloperLevel identifies the seniority of an embedded BI developer.
// The empty value means no developer was requested.
type BIDeveloperLevel string

const (
	BIDeveloperLevelNone     BIDeveloperLevel = ""
	BIDeveloperLevelEntry    BIDeveloperLevel = "entry"
	BIDeveloperLevelMid      BIDeveloperLevel = "mid"
	BIDeveloperLevelSenior   BIDeveloperLevel = "senior"
	BIDeveloperLevelAdvanced BIDeveloperLevel = "advanced"
)

// DataSource is one uploaded data file in the project scope.
type DataSource struct {
	FileType FileType
	SizeMB   float64
}

// DBTable is a single table inside a client database or integration.
type DBTable struct {
	RecordCount int64
}

// DatabaseSource is one client database the project reads from.
type DatabaseSource struct {
	Type   string
	Tables []DBTable
}

// Integration is one external system the project connects to. DBTables is the
// optional set of tables hosted on our side for that integration.
type Integration struct {
	Name     string
	DBTables []DBTable
}

// Branding holds the white-labeling toggles of the project scope.
type Branding struct {
	IncludeLogo         bool
	WidgetBrandColor    bool
	DashboardBrandColor bool
	WidgetFontStyle     bool
	DashboardNameStyle  bool
	LocalizeWidgets     bool
	LocalizeHeadings    bool
}

// ProjectScope is the calculation input: the policy-relevant slice of a stored
// submission, fully typed and pre-validated. The calculator never inspects raw
// form fields.
type ProjectScope struct {
	DashboardCount      int
	WidgetCount         int
	DataSources         []DataSource
	DatabaseSources     []DatabaseSource
	Integrations        []Integration
	DrilldownsPerWidget int
	Branding            Branding
	SupportPlan         SupportPlan
	SupportHours        int
	BIDeveloperLevel    BIDeveloperLevel
	BIDevMonths         int
}

// TotalDataSizeMB sums the declared size of every data source file.
func (s ProjectScope) TotalDataSizeMB() float64 {
	var total float64
	for _, ds := range s.DataSources {
		total += ds.SizeMB
	}
	return total
}
