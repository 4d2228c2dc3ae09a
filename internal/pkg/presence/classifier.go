package presence

import "github.com/piresc/sitetrack/internal/pkg/models"

// Classifier decides whether time spent at a station counts as work or break
type Classifier interface {
	Classify(stationID string) models.VisitKind
}

// ClassifierFunc adapts a function to Classifier
type ClassifierFunc func(stationID string) models.VisitKind

// Classify calls f(stationID)
func (f ClassifierFunc) Classify(stationID string) models.VisitKind {
	return f(stationID)
}

// BreakStations classifies the listed stations as break areas and everything else as work
type BreakStations map[string]struct{}

// NewBreakStations builds a BreakStations set from station IDs
func NewBreakStations(ids ...string) BreakStations {
	set := make(BreakStations, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Add marks another station as a break area
func (b BreakStations) Add(id string) {
	b[id] = struct{}{}
}

// Classify implements Classifier
func (b BreakStations) Classify(stationID string) models.VisitKind {
	if _, ok := b[stationID]; ok {
		return models.VisitKindBreak
	}
	return models.VisitKindWork
}

func classify(c Classifier, stationID string) models.VisitKind {
	if c == nil {
		return models.VisitKindWork
	}
	kind := c.Classify(stationID)
	if kind == "" {
		return models.VisitKindWork
	}
	return kind
}
