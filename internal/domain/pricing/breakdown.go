package pricing

import "github.com/shopspring/decimal"

// Category names one of the fixed cost buckets of a quote breakdown.
type Category string

const (
	CategoryWidgets        Category = "widgets"
	CategoryDataFiles      Category = "data_files"
	CategoryDatabaseTables Category = "database_tables"
	CategoryIntegrations   Category = "integrations"
	CategoryFeatures       Category = "features"
	CategoryBranding       Category = "branding"
	CategorySupport        Category = "support"
	CategoryBIDeveloper    Category = "bi_developer"
)

// Categories lists every breakdown bucket in presentation order.
func Categories() []Category {
	return []Category{
		CategoryWidgets,
		CategoryDataFiles,
		CategoryDatabaseTables,
		CategoryIntegrations,
		CategoryFeatures,
		CategoryBranding,
		CategorySupport,
		CategoryBIDeveloper,
	}
}

// Breakdown maps each cost category to its non-negative USD amount. The eight
// buckets are additive and non-interacting.
type Breakdown struct {
	Widgets        decimal.Decimal
	DataFiles      decimal.Decimal
	DatabaseTables decimal.Decimal
	Integrations   decimal.Decimal
	Features       decimal.Decimal
	Branding       decimal.Decimal
	Support        decimal.Decimal
	BIDeveloper    decimal.Decimal
}

// Amount returns the bucket value for a category name.
func (b Breakdown) Amount(c Category) decimal.Decimal {
	switch c {
	case CategoryWidgets:
		return b.Widgets
	case CategoryDataFiles:
		return b.DataFiles
	case CategoryDatabaseTables:
		return b.DatabaseTables
	case CategoryIntegrations:
		return b.Integrations
	case CategoryFeatures:
		return b.Features
	case CategoryBranding:
		return b.Branding
	case CategorySupport:
		return b.Support
	case CategoryBIDeveloper:
		return b.BIDeveloper
	}
	return decimal.Zero
}

// Total is the exact decimal sum of all eight buckets.
func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range Categories() {
		total = total.Add(b.Amount(c))
	}
	return total
}

// ToMap flattens the breakdown into a category-to-amount map for serialization.
func (b Breakdown) ToMap() map[Category]decimal.Decimal {
	m := make(map[Category]decimal.Decimal, 8)
	for _, c := range Categories() {
		m[c] = b.Amount(c)
	}
	return m
}
