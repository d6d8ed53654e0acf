package types_test

import (
	"strings"
	"testing"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/types"
)

func TestStateBucketValidation(t *testing.T) {
	tests := []struct {
		name     string
		bucket   types.StateBucket
		expected bool
	}{
		{"Valid matrix_active", types.StateBucketMatrixActive, true},
		{"Valid dev_active", types.StateBucketDevActive, true},
		{"Valid trend_active", types.StateBucketTrendActive, true},
		{"Valid resolved", types.StateBucketResolved, true},
		{"Invalid empty", types.StateBucket(""), false},
		{"Invalid mixed case", types.StateBucket("Resolved"), false},
		{"Invalid unknown", types.StateBucket("active"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.bucket.IsValid()
			if result != tt.expected {
				t.Errorf("StateBucket(%q).IsValid() = %v, want %v", tt.bucket, result, tt.expected)
			}
		})
	}
}

func TestFieldNameValidation(t *testing.T) {
	for _, name := range types.FieldNames {
		if !name.IsValid() {
			t.Errorf("FieldName(%q).IsValid() = false, want true", name)
		}
	}
	if types.FieldName("priority").IsValid() {
		t.Error("FieldName(\"priority\").IsValid() = true, want false")
	}
}

func TestDimensionHeader(t *testing.T) {
	tests := []struct {
		dim      types.Dimension
		expected string
	}{
		{types.DimensionState, "State"},
		{types.DimensionBugType, "Bug Type"},
		{types.DimensionAssignee, "Developer"},
		{types.Dimension("module"), "module"},
	}

	for _, tt := range tests {
		t.Run(string(tt.dim), func(t *testing.T) {
			if got := tt.dim.Header(); got != tt.expected {
				t.Errorf("Dimension(%q).Header() = %q, want %q", tt.dim, got, tt.expected)
			}
		})
	}
}

func TestNewSnapshotID(t *testing.T) {
	id1, err := types.NewSnapshotID()
	if err != nil {
		t.Fatalf("NewSnapshotID() error = %v", err)
	}
	id2, err := types.NewSnapshotID()
	if err != nil {
		t.Fatalf("NewSnapshotID() error = %v", err)
	}

	if id1 == id2 {
		t.Errorf("NewSnapshotID() returned duplicate ID %q", id1)
	}
	if len(id1.String()) != 36 || strings.Count(id1.String(), "-") != 4 {
		t.Errorf("NewSnapshotID() = %q, want UUID format", id1)
	}
	// version nibble of a v7 UUID
	if id1.String()[14] != '7' {
		t.Errorf("NewSnapshotID() = %q, want UUID v7", id1)
	}
}
