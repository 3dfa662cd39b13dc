package ledger

import "maps"

type StatKey struct {
	Kind    Kind
	Outcome Outcome
}

// Stats tallies records by kind and outcome.
type Stats struct {
	Counts map[StatKey]int
}

func NewStats() Stats {
	return Stats{Counts: make(map[StatKey]int)}
}

func (s Stats) add(kind Kind, outcome Outcome) {
	s.Counts[StatKey{Kind: kind, Outcome: outcome}]++
}

func (s Stats) merge(other Stats) {
	for key, n := range other.Counts {
		s.Counts[key] += n
	}
}

func (s Stats) clone() Stats {
	return Stats{Counts: maps.Clone(s.Counts)}
}

func (s Stats) Records() int {
	total := 0
	for _, n := range s.Counts {
		total += n
	}
	return total
}

func (s Stats) Applied() int {
	total := 0
	for key, n := range s.Counts {
		if key.Outcome == Applied {
			total += n
		}
	}
	return total
}

func (s Stats) Skipped() int {
	return s.Records() - s.Applied()
}

func (s Stats) Count(kind Kind, outcome Outcome) int {
	return s.Counts[StatKey{Kind: kind, Outcome: outcome}]
}
