package domain

import "strings"

// Stage is one phase of a customer journey, drawn as a timeline column.
type Stage struct {
	Label    string
	Position int
}

// DefaultStageLabels is the stage list a session starts with when none is configured.
var DefaultStageLabels = []string{"Awareness", "Consideration", "Decision"}

// DefaultStages returns the three default journey stages in order.
func DefaultStages() []Stage {
	return NewStages(DefaultStageLabels)
}

// NewStages assigns ordinal positions to labels. Blank labels are skipped.
func NewStages(labels []string) []Stage {
	stages := make([]Stage, 0, len(labels))
	for _, l := range labels {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		stages = append(stages, Stage{Label: l, Position: len(stages)})
	}
	return stages
}

// StageIndex returns the position of the stage whose label matches name
// (case-insensitive), or -1.
func StageIndex(stages []Stage, name string) int {
	for _, s := range stages {
		if strings.EqualFold(s.Label, strings.TrimSpace(name)) {
			return s.Position
		}
	}
	return -1
}
