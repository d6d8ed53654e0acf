package engine

import (
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
)

// Normalizer turns raw records into normalized issues using a fixed set of
// field aliases
type Normalizer struct {
	aliases *model.FieldAliases
}

// NewNormalizer creates a Normalizer. A nil aliases uses the defaults.
func NewNormalizer(aliases *model.FieldAliases) *Normalizer {
	if aliases == nil {
		aliases = model.DefaultFieldAliases()
	}
	return &Normalizer{aliases: aliases}
}

// Normalize converts one raw record. It never fails: unresolved fields
// become "Unknown" and dates are kept raw for the consumers that need them.
func (n *Normalizer) Normalize(rec model.RawRecord) model.NormalizedIssue {
	field := func(name types.FieldName) model.FieldValue {
		return ResolveField(rec, n.aliases.For(name))
	}

	return model.NormalizedIssue{
		Type:      field(types.FieldType).String(),
		Severity:  ClassifySeverity(field(types.FieldSeverity).String()),
		State:     field(types.FieldState).String(),
		Assignee:  field(types.FieldAssignee).String(),
		Module:    field(types.FieldModule).String(),
		FoundDate: field(types.FieldFoundDate),
		FixedDate: field(types.FieldFixedDate),
	}
}

// NormalizeAll converts records in input order
func (n *Normalizer) NormalizeAll(records []model.RawRecord) []model.NormalizedIssue {
	issues := make([]model.NormalizedIssue, len(records))
	for i, rec := range records {
		issues[i] = n.Normalize(rec)
	}
	return issues
}
