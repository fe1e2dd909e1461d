package pricing

import "github.com/shopspring/decimal"

// TableCostBand prices a database table whose record count is below UpTo.
// Bands are evaluated in order; a zero UpTo marks the open-ended last band.
type TableCostBand struct {
	UpTo int64
	Cost decimal.Decimal
}

// Policy is the versioned table of unit rates and thresholds governing quote
// calculation. It is an explicit immutable value handed to the calculator so
// historical quotes can be recomputed against the policy that issued them.
type Policy struct {
	WidgetRate decimal.Decimal

	DataFileRate    decimal.Decimal
	PricedFileTypes []FileType
	DataSizeLimitMB float64

	TableBands []TableCostBand

	IntegrationAPICost        decimal.Decimal
	IntegrationDBCost         decimal.Decimal
	IntegrationDeploymentCost decimal.Decimal

	DrilldownRate decimal.Decimal

	LogoCost           decimal.Decimal
	WidgetStyleRate    decimal.Decimal
	DashboardStyleRate decimal.Decimal

	PrioritySupportHourlyRate decimal.Decimal
	Manager20HrCost           decimal.Decimal
	Manager40HrCost           decimal.Decimal
	ManagerContractMonthly    decimal.Decimal
	ManagerContractMonths     int

	BIDeveloperMonthlyRates map[BIDeveloperLevel]decimal.Decimal
}

func usd(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// DefaultPolicy returns the current pricing policy. Changing a rate means
// shipping a new policy, not mutating this one at runtime.
func DefaultPolicy() Policy {
	return Policy{
		WidgetRate: usd(20),

		DataFileRate:    usd(40),
		PricedFileTypes: []FileType{FileTypeCSV, FileTypeXML, FileTypeXLS, FileTypeXLSX, FileTypeJSON},
		DataSizeLimitMB: 30,

		TableBands: []TableCostBand{
			{UpTo: 1_000, Cost: usd(40)},
			{UpTo: 10_000, Cost: usd(100)},
			{UpTo: 100_000, Cost: usd(200)},
			{UpTo: 1_000_000, Cost: usd(300)},
			{UpTo: 10_000_000, Cost: usd(300)},
			{UpTo: 0, Cost: usd(700)},
		},

		IntegrationAPICost:        usd(400),
		IntegrationDBCost:         usd(400),
		IntegrationDeploymentCost: usd(400),

		DrilldownRate: usd(20),

		LogoCost:           usd(40),
		WidgetStyleRate:    usd(20),
		DashboardStyleRate: usd(20),

		PrioritySupportHourlyRate: usd(40),
		Manager20HrCost:           usd(400),
		Manager40HrCost:           usd(800),
		ManagerContractMonthly:    usd(1200),
		ManagerContractMonths:     6,

		BIDeveloperMonthlyRates: map[BIDeveloperLevel]decimal.Decimal{
			BIDeveloperLevelEntry:    usd(800),
			BIDeveloperLevelMid:      usd(1200),
			BIDeveloperLevelSenior:   usd(2000),
			BIDeveloperLevelAdvanced: usd(3000),
		},
	}
}

// TableCost returns the cost band for a table with the given record count.
func (p Policy) TableCost(recordCount int64) decimal.Decimal {
	for _, band := range p.TableBands {
		if band.UpTo == 0 {
			return band.Cost
		}
		if recordCount < band.UpTo {
			return band.Cost
		}
	}
	return decimal.Zero
}

// PricesFileType reports whether files of the given type carry the flat
// per-file rate. Unpriced types (APIs, live databases, cloud storage) are
// costed through their own categories instead.
func (p Policy) PricesFileType(ft FileType) bool {
	for _, priced := range p.PricedFileTypes {
		if priced == ft {
			return true
		}
	}
	return false
}
