package intake

import (
	"fmt"
	"strings"

	"biquote/internal/domain/entities"
	"biquote/internal/domain/pricing"
)

// FieldErrors collects validation failures keyed by form field.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Empty reports whether validation passed.
func (fe FieldErrors) Empty() bool { return len(fe) == 0 }

func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for field, msgs := range fe {
		parts = append(parts, field+": "+strings.Join(msgs, "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// ValidateSubmission checks field-level constraints, enum membership and
// cross-field rules on a typed submission. It returns every failure at once
// so the client can fix the whole form in one pass.
//
// Structural concerns (required strings, email shape, non-negative numbers)
// are enforced earlier by request binding; this layer owns the business rules.
func ValidateSubmission(s entities.Submission) FieldErrors {
	fe := FieldErrors{}

	if !strings.HasPrefix(strings.ToLower(s.AnalystName), "pricing") {
		fe.add("analyst_name", `must start with "pricing"`)
	}
	if !containsString(ClientTypes, s.Client.Type) {
		fe.add("client_type", optionError(s.Client.Type, ClientTypes))
	}
	if !containsString(SubscriptionPlans, s.SubscriptionPlan) {
		fe.add("subscription_plan", optionError(s.SubscriptionPlan, SubscriptionPlans))
	}
	if s.VolumeOfData != "" && !containsString(VolumeOptions, s.VolumeOfData) {
		fe.add("volume_of_data", optionError(s.VolumeOfData, VolumeOptions))
	}
	if s.EngagementType != "" && !containsString(EngagementTypes, s.EngagementType) {
		fe.add("engagement_type", optionError(s.EngagementType, EngagementTypes))
	}

	for i, d := range s.ExpectedDeliverables {
		if d.Type == "" {
			fe.add("expected_deliverables", fmt.Sprintf("entry %d is missing a type", i))
			continue
		}
		if !containsString(DeliverableTypes, d.Type) {
			fe.add("expected_deliverables", optionError(d.Type, DeliverableTypes))
		}
	}
	for _, a := range s.TargetAudience {
		if !containsString(TargetAudiences, a) {
			fe.add("target_audience", optionError(a, TargetAudiences))
		}
	}
	for _, ds := range s.DataSources {
		if !knownFileType(ds.FileType) {
			fe.add("data_sources", fmt.Sprintf("unsupported file type %q", ds.FileType))
		}
		if ds.SizeMB < 0 {
			fe.add("data_sources", "file size must not be negative")
		}
	}
	for _, db := range s.Databases {
		if !containsString(DatabaseEngines, db.Engine) {
			fe.add("databases", optionError(db.Engine, DatabaseEngines))
		}
		for _, tbl := range db.Tables {
			if tbl.RecordCount < 0 {
				fe.add("databases", "record count must not be negative")
			}
		}
	}
	for _, in := range s.Integrations {
		if !containsString(IntegrationTypes, in.Type) {
			fe.add("integrations", optionError(in.Type, IntegrationTypes))
		}
		for _, tbl := range in.DBTables {
			if tbl.RecordCount < 0 {
				fe.add("integrations", "record count must not be negative")
			}
		}
	}
	for _, opt := range s.Interactivity {
		if !containsString(InteractivityOptions, opt) {
			fe.add("interactivity", optionError(opt, InteractivityOptions))
		}
	}
	for _, lvl := range s.UserAccessLevels {
		if !containsString(AccessLevels, lvl) {
			fe.add("user_access_levels", optionError(lvl, AccessLevels))
		}
	}
	for _, m := range s.DeliveryModel {
		if !containsString(DeliveryModels, m) {
			fe.add("delivery_model", optionError(m, DeliveryModels))
		}
	}

	if s.SupportPlan != "" && !knownSupportPlan(s.SupportPlan) {
		fe.add("support_plan", fmt.Sprintf("unknown support plan %q", s.SupportPlan))
	}
	if s.BIDeveloperLevel != pricing.BIDeveloperLevelNone && !knownBIDeveloperLevel(s.BIDeveloperLevel) {
		fe.add("bi_developer_level", fmt.Sprintf("unknown developer level %q", s.BIDeveloperLevel))
	}

	if s.StartDate != nil && s.EndDate != nil && s.EndDate.Before(*s.StartDate) {
		fe.add("end_date", "end date must be after start date")
	}

	return fe
}

func optionError(got string, options []string) string {
	return fmt.Sprintf("invalid option %q, valid options are: %s", got, strings.Join(options, ", "))
}

func knownFileType(ft pricing.FileType) bool {
	for _, known := range FileTypes {
		if known == ft {
			return true
		}
	}
	return false
}

func knownSupportPlan(p pricing.SupportPlan) bool {
	for _, known := range SupportPlans {
		if known == p {
			return true
		}
	}
	return false
}

func knownBIDeveloperLevel(l pricing.BIDeveloperLevel) bool {
	for _, known := range BIDeveloperLevels {
		if known == l {
			return true
		}
	}
	return false
}
