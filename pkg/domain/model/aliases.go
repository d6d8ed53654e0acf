package model

import (
	"strings"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// FieldAliases maps each logical field to its candidate raw key names, most
// preferred first
type FieldAliases struct {
	Type      []string `yaml:"type"`
	Severity  []string `yaml:"severity"`
	State     []string `yaml:"state"`
	Assignee  []string `yaml:"assignee"`
	Module    []string `yaml:"module"`
	FoundDate []string `yaml:"found_date"`
	FixedDate []string `yaml:"fixed_date"`
}

// DefaultFieldAliases returns the built-in alias lists. Display names from
// spreadsheet exports come first, snake_case export keys after them.
func DefaultFieldAliases() *FieldAliases {
	return &FieldAliases{
		Type:     []string{"Bug Type", "Type", "Issue Type", "bug_type", "issue_type"},
		Severity: []string{"Severity", "Priority"},
		State:    []string{"State", "Status"},
		Assignee: []string{"Assigned To", "Developer", "Assignee", "Dev Name", "assigned_to"},
		Module:   []string{"Module", "Component", "Feature", "Area", "module_name"},
		FoundDate: []string{
			"Bug Found Date", "Found Date", "Created Date", "Date Created", "Creation Date",
			"Raised Date", "Detected Date", "Date", "Reported Date", "Issue Date", "bug_found",
		},
		FixedDate: []string{
			"Bug Fixed Date and Timestamp", "Bug Fixed Date", "Fixed Date", "Resolution Date",
			"Fixed On", "Closed Date", "Date Fixed", "bug_fixed",
		},
	}
}

// For returns the alias list of a logical field
func (a *FieldAliases) For(field types.FieldName) []string {
	switch field {
	case types.FieldType:
		return a.Type
	case types.FieldSeverity:
		return a.Severity
	case types.FieldState:
		return a.State
	case types.FieldAssignee:
		return a.Assignee
	case types.FieldModule:
		return a.Module
	case types.FieldFoundDate:
		return a.FoundDate
	case types.FieldFixedDate:
		return a.FixedDate
	default:
		return nil
	}
}

// WithDefaults fills every empty alias list from DefaultFieldAliases
func (a *FieldAliases) WithDefaults() *FieldAliases {
	defaults := DefaultFieldAliases()
	merged := *a
	fill := func(dst *[]string, src []string) {
		if len(*dst) == 0 {
			*dst = src
		}
	}
	fill(&merged.Type, defaults.Type)
	fill(&merged.Severity, defaults.Severity)
	fill(&merged.State, defaults.State)
	fill(&merged.Assignee, defaults.Assignee)
	fill(&merged.Module, defaults.Module)
	fill(&merged.FoundDate, defaults.FoundDate)
	fill(&merged.FixedDate, defaults.FixedDate)
	return &merged
}

// Validate validates the alias configuration
func (a *FieldAliases) Validate() error {
	for _, field := range types.FieldNames {
		aliases := a.For(field)
		if len(aliases) == 0 {
			return goerr.New("at least one alias is required",
				goerr.V("field", field))
		}

		seen := make(map[string]bool)
		for i, alias := range aliases {
			key := strings.ToLower(strings.TrimSpace(alias))
			if key == "" {
				return goerr.New("alias must not be blank",
					goerr.V("field", field),
					goerr.V("index", i))
			}
			if seen[key] {
				return goerr.New("duplicate alias",
					goerr.V("field", field),
					goerr.V("alias", alias))
			}
			seen[key] = true
		}
	}
	return nil
}
