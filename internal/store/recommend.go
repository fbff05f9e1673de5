package store

import (
	"math"
	"sort"

	"github.com/fchant/daybrain/internal/model"
)

// TimeBucket is a coarse "how long do you have" classification
type TimeBucket string

const (
	TimeShort  TimeBucket = "short"
	TimeMedium TimeBucket = "medium"
	TimeLong   TimeBucket = "long"
)

// recommendLimit caps how many suggestions a request returns
const recommendLimit = 5

// Criteria describes a "what now" request
type Criteria struct {
	Time   TimeBucket
	Energy model.EnergyLevel
}

// Scorer ranks a candidate task; higher scores surface first. It is a
// heuristic, not an optimizer: there is no guarantee of best fit.
type Scorer interface {
	Score(t model.Task, subtasks int) float64
}

// lowEnergyScorer favors tasks with fewer moving parts
type lowEnergyScorer struct{}

func (lowEnergyScorer) Score(t model.Task, subtasks int) float64 {
	return -float64(subtasks)
}

// highEnergyScorer favors bigger, more structured tasks
type highEnergyScorer struct{}

func (highEnergyScorer) Score(t model.Task, subtasks int) float64 {
	return float64(subtasks)
}

// dueDateScorer orders by due date ascending, undated last
type dueDateScorer struct{}

func (dueDateScorer) Score(t model.Task, subtasks int) float64 {
	if t.DueDate == nil {
		return math.Inf(-1)
	}
	return -float64(t.DueDate.Unix())
}

// ScorerFor picks the ranking strategy for an energy level
func ScorerFor(energy model.EnergyLevel) Scorer {
	switch energy {
	case model.EnergyLow:
		return lowEnergyScorer{}
	case model.EnergyHigh:
		return highEnergyScorer{}
	default:
		return dueDateScorer{}
	}
}

// Recommend suggests up to five incomplete tasks matching the criteria.
// A short time bucket keeps only tasks with no subtasks.
func (s *Store) Recommend(c Criteria) []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	var candidates []model.Task
	for _, t := range s.tasks {
		if t.Completed || t.Archived {
			continue
		}
		if c.Time == TimeShort && len(s.children[t.ID]) > 0 {
			continue
		}
		candidates = append(candidates, t)
	}

	scorer := ScorerFor(c.Energy)
	sort.SliceStable(candidates, func(i, j int) bool {
		a := scorer.Score(candidates[i], len(s.children[candidates[i].ID]))
		b := scorer.Score(candidates[j], len(s.children[candidates[j].ID]))
		return a > b
	})

	if len(candidates) > recommendLimit {
		candidates = candidates[:recommendLimit]
	}
	return candidates
}
