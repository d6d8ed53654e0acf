package model

import (
	"encoding/json"
	"strconv"
)

// UnknownValue is the display value of a field that could not be resolved
const UnknownValue = "Unknown"

// RawRecord is one issue as received from the ingestion collaborator. Keys
// have unknown casing, spacing and synonyms; values are scalars (string,
// json.Number, float64, bool) or nil.
type RawRecord map[string]any

// FieldValue is the result of resolving a logical field on a RawRecord. It
// is either a resolved raw value or Unknown.
type FieldValue struct {
	raw   any
	found bool
}

// Resolved creates a FieldValue holding raw
func Resolved(raw any) FieldValue {
	return FieldValue{raw: raw, found: true}
}

// Unknown returns the unresolved FieldValue
func Unknown() FieldValue {
	return FieldValue{}
}

// Found reports whether an alias matched
func (v FieldValue) Found() bool {
	return v.found
}

// Raw returns the resolved raw value, or nil when not found
func (v FieldValue) Raw() any {
	return v.raw
}

// String renders the value for display. Unresolved values render as "Unknown".
func (v FieldValue) String() string {
	if !v.found {
		return UnknownValue
	}
	return stringify(v.raw)
}

// MarshalJSON keeps the raw representation so numeric date serials stay numbers
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if !v.found {
		return json.Marshal(UnknownValue)
	}
	return json.Marshal(v.raw)
}

func stringify(raw any) string {
	switch x := raw.(type) {
	case nil:
		return UnknownValue
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return UnknownValue
		}
		return string(b)
	}
}

// NormalizedIssue is the canonical form of one raw record. It is created once
// by the issue normalizer and never mutated afterwards.
type NormalizedIssue struct {
	Type      string        `json:"type"`
	Severity  SeverityLevel `json:"severity"`
	State     string        `json:"state"`
	Assignee  string        `json:"assignee"`
	Module    string        `json:"module"`
	FoundDate FieldValue    `json:"foundDate"`
	FixedDate FieldValue    `json:"fixedDate"`
}
