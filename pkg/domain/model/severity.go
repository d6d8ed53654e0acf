package model

import (
	"bytes"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
)

// SeverityLevel is the canonical ordinal severity of an issue. Lower values
// are more urgent.
type SeverityLevel int

const (
	SeverityBlocker SeverityLevel = iota
	SeverityCritical
	SeverityMajor
	SeverityNormal
	SeverityMinor
)

// SeverityLevelCount is the number of canonical severity levels
const SeverityLevelCount = 5

// SeverityLevels lists every level in canonical (decreasing urgency) order
var SeverityLevels = [SeverityLevelCount]SeverityLevel{
	SeverityBlocker,
	SeverityCritical,
	SeverityMajor,
	SeverityNormal,
	SeverityMinor,
}

var severityNames = [SeverityLevelCount]string{
	"Blocker",
	"Critical",
	"Major",
	"Normal",
	"Minor",
}

// String returns the display name of the level
func (s SeverityLevel) String() string {
	if !s.IsValid() {
		return "SeverityLevel(" + strconv.Itoa(int(s)) + ")"
	}
	return severityNames[s]
}

// IsValid checks if the level is one of the canonical levels
func (s SeverityLevel) IsValid() bool {
	return s >= SeverityBlocker && s <= SeverityMinor
}

// MarshalText encodes the level by its display name
func (s SeverityLevel) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, goerr.New("invalid severity level", goerr.V("level", int(s)))
	}
	return []byte(severityNames[s]), nil
}

// UnmarshalText decodes a display name back into a level
func (s *SeverityLevel) UnmarshalText(text []byte) error {
	for i, name := range severityNames {
		if name == string(text) {
			*s = SeverityLevel(i)
			return nil
		}
	}
	return goerr.New("unknown severity level name", goerr.V("name", string(text)))
}

// SeverityCounts holds one counter per canonical severity level. It is a
// value type so aggregates can be compared and copied freely.
type SeverityCounts [SeverityLevelCount]int

// Get returns the count for level
func (c SeverityCounts) Get(level SeverityLevel) int {
	if !level.IsValid() {
		return 0
	}
	return c[level]
}

// Inc increments the count for level; invalid levels are ignored
func (c *SeverityCounts) Inc(level SeverityLevel) {
	if level.IsValid() {
		c[level]++
	}
}

// Total returns the sum over all levels
func (c SeverityCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// MarshalJSON writes the counts as an object keyed by level name in
// canonical order, e.g. {"Blocker":0,"Critical":1,...}
func (c SeverityCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, level := range SeverityLevels {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(level.String()))
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(c[level]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
