package types

// StateBucket is a semantic lifecycle group an issue state can fall into.
// Buckets are not exclusive: each view has its own tolerance for vocabulary
// drift, so one state may be in several buckets or none.
type StateBucket string

const (
	// StateBucketMatrixActive feeds the state and bug type matrices
	StateBucketMatrixActive StateBucket = "matrix_active"
	// StateBucketDevActive feeds the developer workload matrix
	StateBucketDevActive StateBucket = "dev_active"
	// StateBucketTrendActive feeds the found-date trend
	StateBucketTrendActive StateBucket = "trend_active"
	// StateBucketResolved feeds the resolution summary
	StateBucketResolved StateBucket = "resolved"
)

// StateBuckets lists every bucket in evaluation order
var StateBuckets = []StateBucket{
	StateBucketMatrixActive,
	StateBucketDevActive,
	StateBucketTrendActive,
	StateBucketResolved,
}

// String returns the string representation of the bucket
func (b StateBucket) String() string {
	return string(b)
}

// IsValid checks if the bucket is valid
func (b StateBucket) IsValid() bool {
	switch b {
	case StateBucketMatrixActive, StateBucketDevActive, StateBucketTrendActive, StateBucketResolved:
		return true
	default:
		return false
	}
}
