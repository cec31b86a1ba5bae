package diversity

import (
	"sort"
	"time"

	"myDiverseMarket/domain"
)

const (
	hybridRelevanceWeight = 0.6
	hybridDiversityWeight = 0.4

	// a candidate is accepted above this contribution...
	acceptContribution = 0.3
	// ...or unconditionally while the selection is smaller than this
	acceptFloor = 5
)

// OversampleFactor is how many candidates per requested slot the greedy
// selector expects to receive.
const OversampleFactor = 5

type SelectionState int

const (
	// StateFilled means the requested count was reached.
	StateFilled SelectionState = iota
	// StateExhausted means candidates ran out first.
	StateExhausted
)

func (s SelectionState) String() string {
	if s == StateFilled {
		return "filled"
	}
	return "exhausted"
}

const (
	ReasonAcceptedDiverse = "accepted_diverse"
	ReasonAcceptedFloor   = "accepted_floor"
	ReasonRejected        = "rejected_low_diversity"
	ReasonSkippedFilled   = "skipped_filled"
)

type Selection struct {
	Items     []domain.Item
	State     SelectionState
	Decisions []domain.CandidateDecision
}

// SelectGreedy picks up to limit items from candidates by hybrid
// relevance/diversity order, accepting each one whose contribution to the
// current selection is high enough. Rejected candidates are not retried.
func SelectGreedy(candidates []domain.Item, limit int, now time.Time) Selection {
	return selectGreedy(candidates, limit, now, false)
}

// TraceGreedy runs SelectGreedy and records a decision for every candidate.
func TraceGreedy(candidates []domain.Item, limit int, now time.Time) Selection {
	return selectGreedy(candidates, limit, now, true)
}

// ScoreCandidates computes relevance and the ordering score against an
// empty selection, then sorts by hybrid score descending. Ties keep input
// order. The sort uses the exact hybrid score; HybridScore is the rounded
// value for display.
func ScoreCandidates(candidates []domain.Item, now time.Time) []domain.ScoredCandidate {
	ordering := NewSelectionTracker(0)

	type ranked struct {
		sc  domain.ScoredCandidate
		key float64
	}
	rs := make([]ranked, 0, len(candidates))
	for _, it := range candidates {
		rel := Relevance(it, now)
		div := ordering.Contribution(it)
		hybrid := hybridRelevanceWeight*rel + hybridDiversityWeight*div
		rs = append(rs, ranked{
			sc: domain.ScoredCandidate{
				Item:                  it,
				Relevance:             rel,
				DiversityContribution: div,
				HybridScore:           round3(hybrid),
			},
			key: hybrid,
		})
	}

	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].key > rs[j].key
	})

	scored := make([]domain.ScoredCandidate, len(rs))
	for i, r := range rs {
		scored[i] = r.sc
	}
	return scored
}

func selectGreedy(candidates []domain.Item, limit int, now time.Time, trace bool) Selection {
	if limit <= 0 {
		return Selection{Items: []domain.Item{}, State: StateFilled}
	}

	scored := ScoreCandidates(candidates, now)
	tracker := NewSelectionTracker(min(limit, len(scored)))

	var decisions []domain.CandidateDecision
	if trace {
		decisions = make([]domain.CandidateDecision, 0, len(scored))
	}

	for _, sc := range scored {
		if tracker.Len() >= limit {
			if !trace {
				break
			}
			decisions = append(decisions, domain.CandidateDecision{ScoredCandidate: sc, Reason: ReasonSkippedFilled})
			continue
		}

		contribution := tracker.Contribution(sc.Item)
		reason := ReasonRejected
		switch {
		case contribution > acceptContribution:
			reason = ReasonAcceptedDiverse
		case tracker.Len() < acceptFloor:
			reason = ReasonAcceptedFloor
		}

		accepted := reason != ReasonRejected
		if accepted {
			tracker.Add(sc.Item)
		}
		if trace {
			decisions = append(decisions, domain.CandidateDecision{
				ScoredCandidate:       sc,
				SelectionContribution: contribution,
				Accepted:              accepted,
				Reason:                reason,
			})
		}
	}

	state := StateExhausted
	if tracker.Len() >= limit {
		state = StateFilled
	}

	return Selection{
		Items:     tracker.Items(),
		State:     state,
		Decisions: decisions,
	}
}
