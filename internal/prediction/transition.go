package prediction

import (
	"sort"

	"github.com/parameshwar777/compass-pal-backend-go/internal/models"
)

// TransitionModel counts label-to-label movements in a user's history.
// It is rebuilt from scratch on every prediction request; there is no
// persisted graph to go stale.
type TransitionModel struct {
	counts map[string]map[string]int
	order  map[string][]string // outgoing labels in first-seen order
	totals map[string]int
}

// Transition is one observed from->to movement with its count
type Transition struct {
	Label string
	Count int
}

// BuildTransitionModel scans samples in ascending chronological order and
// counts each consecutive pair of labeled samples as one transition.
// Unlabeled samples are skipped entirely, so two labeled samples separated
// by unlabeled ones are still treated as adjacent.
func BuildTransitionModel(samples []models.LocationSample) *TransitionModel {
	m := &TransitionModel{
		counts: make(map[string]map[string]int),
		order:  make(map[string][]string),
		totals: make(map[string]int),
	}

	prev := ""
	for _, s := range samples {
		if !s.HasLabel() {
			continue
		}
		cur := models.NormalizeLabel(s.Label)
		if prev != "" {
			m.add(prev, cur)
		}
		prev = cur
	}
	return m
}

func (m *TransitionModel) add(from, to string) {
	tos, ok := m.counts[from]
	if !ok {
		tos = make(map[string]int)
		m.counts[from] = tos
	}
	if _, seen := tos[to]; !seen {
		m.order[from] = append(m.order[from], to)
	}
	tos[to]++
	m.totals[from]++
}

// Has reports whether any outgoing transition from the label was observed
func (m *TransitionModel) Has(from string) bool {
	return m.totals[from] > 0
}

// Total returns the number of outgoing transitions observed from the label
func (m *TransitionModel) Total(from string) int {
	return m.totals[from]
}

// Outgoing returns the transitions from the label sorted by count
// descending. Ties keep first-seen order, so iteration is deterministic
// regardless of map ordering.
func (m *TransitionModel) Outgoing(from string) []Transition {
	labels := m.order[from]
	out := make([]Transition, 0, len(labels))
	for _, l := range labels {
		out = append(out, Transition{Label: l, Count: m.counts[from][l]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
