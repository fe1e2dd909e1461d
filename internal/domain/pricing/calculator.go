package pricing

import "github.com/shopspring/decimal"

// Result is the outcome of one quote calculation.
type Result struct {
	Breakdown Breakdown
	Total     decimal.Decimal
}

// Calculate prices a project scope under a policy. It is pure and
// deterministic: identical inputs always produce the identical breakdown and
// total, and each category is computed independently before the additive sum.
//
// The only rejected input is a scope whose combined data file size exceeds the
// policy limit. Everything else is permissive: missing or zero fields simply
// contribute nothing. Enum values outside the known sets mean the upstream
// validator was bypassed and fail the whole calculation.
func Calculate(scope ProjectScope, policy Policy) (Result, error) {
	if total := scope.TotalDataSizeMB(); total > policy.DataSizeLimitMB {
		return Result{}, &SizeLimitError{TotalMB: total, LimitMB: policy.DataSizeLimitMB}
	}

	support, err := supportCost(scope, policy)
	if err != nil {
		return Result{}, err
	}
	biDeveloper, err := biDeveloperCost(scope, policy)
	if err != nil {
		return Result{}, err
	}

	breakdown := Breakdown{
		Widgets:        widgetCost(scope, policy),
		DataFiles:      dataFileCost(scope, policy),
		DatabaseTables: databaseCost(scope, policy),
		Integrations:   integrationCost(scope, policy),
		Features:       featureCost(scope, policy),
		Branding:       brandingCost(scope, policy),
		Support:        support,
		BIDeveloper:    biDeveloper,
	}
	return Result{Breakdown: breakdown, Total: breakdown.Total()}, nil
}

func widgetCost(scope ProjectScope, policy Policy) decimal.Decimal {
	return policy.WidgetRate.Mul(decimal.NewFromInt(int64(scope.WidgetCount)))
}

func dataFileCost(scope ProjectScope, policy Policy) decimal.Decimal {
	cost := decimal.Zero
	for _, ds := range scope.DataSources {
		if policy.PricesFileType(ds.FileType) {
			cost = cost.Add(policy.DataFileRate)
		}
	}
	return cost
}

func databaseCost(scope ProjectScope, policy Policy) decimal.Decimal {
	cost := decimal.Zero
	for _, db := range scope.DatabaseSources {
		for _, table := range db.Tables {
			cost = cost.Add(policy.TableCost(table.RecordCount))
		}
	}
	return cost
}

func integrationCost(scope ProjectScope, policy Policy) decimal.Decimal {
	perIntegration := policy.IntegrationAPICost.
		Add(policy.IntegrationDBCost).
		Add(policy.IntegrationDeploymentCost)

	cost := decimal.Zero
	for _, integration := range scope.Integrations {
		cost = cost.Add(perIntegration)
		for _, table := range integration.DBTables {
			cost = cost.Add(policy.TableCost(table.RecordCount))
		}
	}
	return cost
}

func featureCost(scope ProjectScope, policy Policy) decimal.Decimal {
	drilldowns := int64(scope.DrilldownsPerWidget) * int64(scope.WidgetCount)
	return policy.DrilldownRate.Mul(decimal.NewFromInt(drilldowns))
}

func brandingCost(scope ProjectScope, policy Policy) decimal.Decimal {
	widgets := decimal.NewFromInt(int64(scope.WidgetCount))
	dashboards := decimal.NewFromInt(int64(scope.DashboardCount))
	perWidget := policy.WidgetStyleRate.Mul(widgets)
	perDashboard := policy.DashboardStyleRate.Mul(dashboards)

	cost := decimal.Zero
	b := scope.Branding
	if b.IncludeLogo {
		cost = cost.Add(policy.LogoCost)
	}
	if b.WidgetBrandColor {
		cost = cost.Add(perWidget)
	}
	if b.WidgetFontStyle {
		cost = cost.Add(perWidget)
	}
	if b.LocalizeWidgets {
		cost = cost.Add(perWidget)
	}
	if b.DashboardBrandColor {
		cost = cost.Add(perDashboard)
	}
	if b.DashboardNameStyle {
		cost = cost.Add(perDashboard)
	}
	if b.LocalizeHeadings {
		cost = cost.Add(perDashboard)
	}
	return cost
}

func supportCost(scope ProjectScope, policy Policy) (decimal.Decimal, error) {
	switch scope.SupportPlan {
	case "", SupportPlanBasic:
		return decimal.Zero, nil
	case SupportPlanPriority:
		return policy.PrioritySupportHourlyRate.Mul(decimal.NewFromInt(int64(scope.SupportHours))), nil
	case SupportPlanManager20Hr:
		return policy.Manager20HrCost, nil
	case SupportPlanManager40Hr:
		return policy.Manager40HrCost, nil
	case SupportPlanManagerContract:
		return policy.ManagerContractMonthly.Mul(decimal.NewFromInt(int64(policy.ManagerContractMonths))), nil
	}
	return decimal.Zero, &ConfigError{Field: "support_plan", Value: string(scope.SupportPlan)}
}

func biDeveloperCost(scope ProjectScope, policy Policy) (decimal.Decimal, error) {
	if scope.BIDeveloperLevel == BIDeveloperLevelNone {
		return decimal.Zero, nil
	}
	rate, ok := policy.BIDeveloperMonthlyRates[scope.BIDeveloperLevel]
	if !ok {
		return decimal.Zero, &ConfigError{Field: "bi_developer_level", Value: string(scope.BIDeveloperLevel)}
	}
	months := scope.BIDevMonths
	if months < 1 {
		months = 1
	}
	return rate.Mul(decimal.NewFromInt(int64(months))), nil
}
