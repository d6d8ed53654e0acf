package engine

import (
	"strings"

	"github.com/Amey2003/excel-issue-tracker/pkg/domain/model"
)

type severityRule struct {
	level   model.SeverityLevel
	markers []string
}

// severityRules are evaluated in order; the first rule with a marker
// contained in the uppercased input wins
var severityRules = []severityRule{
	{level: model.SeverityBlocker, markers: []string{"BLOCKER"}},
	{level: model.SeverityCritical, markers: []string{"P0", "CRITICAL"}},
	{level: model.SeverityMajor, markers: []string{"P1", "MAJOR"}},
	{level: model.SeverityNormal, markers: []string{"P2", "NORMAL"}},
}

// ClassifySeverity maps raw severity or priority text to a canonical level.
// Anything without a recognized marker is Minor.
func ClassifySeverity(raw string) model.SeverityLevel {
	s := strings.ToUpper(raw)
	for _, rule := range severityRules {
		for _, marker := range rule.markers {
			if strings.Contains(s, marker) {
				return rule.level
			}
		}
	}
	return model.SeverityMinor
}
