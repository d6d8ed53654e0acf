package types

import (
	"github.com/google/uuid"
)

// SnapshotID identifies one refresh of the dashboard data
type SnapshotID string

// String returns the string representation
func (id SnapshotID) String() string {
	return string(id)
}

// NewSnapshotID creates a new SnapshotID using UUID v7 so that IDs sort by
// creation time
func NewSnapshotID() (SnapshotID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return SnapshotID(id.String()), nil
}

// FieldName is a logical field of an issue that is resolved through aliases
type FieldName string

const (
	FieldType      FieldName = "type"
	FieldSeverity  FieldName = "severity"
	FieldState     FieldName = "state"
	FieldAssignee  FieldName = "assignee"
	FieldModule    FieldName = "module"
	FieldFoundDate FieldName = "found_date"
	FieldFixedDate FieldName = "fixed_date"
)

// FieldNames lists every logical field
var FieldNames = []FieldName{
	FieldType,
	FieldSeverity,
	FieldState,
	FieldAssignee,
	FieldModule,
	FieldFoundDate,
	FieldFixedDate,
}

// String returns the string representation
func (f FieldName) String() string {
	return string(f)
}

// IsValid checks if the field name is a known logical field
func (f FieldName) IsValid() bool {
	for _, name := range FieldNames {
		if name == f {
			return true
		}
	}
	return false
}

// Dimension is the row dimension of a pivot matrix
type Dimension string

const (
	DimensionState    Dimension = "state"
	DimensionBugType  Dimension = "bug_type"
	DimensionAssignee Dimension = "assignee"
)

// String returns the string representation
func (d Dimension) String() string {
	return string(d)
}

// Header returns the column header used when rendering the dimension
func (d Dimension) Header() string {
	switch d {
	case DimensionState:
		return "State"
	case DimensionBugType:
		return "Bug Type"
	case DimensionAssignee:
		return "Developer"
	default:
		return string(d)
	}
}
