package diversity

import (
	"fmt"
	"testing"

	"myDiverseMarket/domain"
)

func TestSelectGreedy_NeverExceedsLimit(t *testing.T) {
	var pool []domain.Item
	for i := range 50 {
		pool = append(pool, item(uint64(i+1), fmt.Sprintf("cat-%d", i%6), fmt.Sprintf("brand-%d", i%9), float64(10+i*13), float64(i%5)+1))
	}

	for _, limit := range []int{0, 1, 5, 10, 49, 50, 80} {
		t.Run(fmt.Sprintf("limit=%d", limit), func(t *testing.T) {
			sel := SelectGreedy(pool, limit, testNow)
			if len(sel.Items) > limit {
				t.Fatalf("got %d items, limit %d", len(sel.Items), limit)
			}
			if sel.State == StateFilled && len(sel.Items) != limit {
				t.Errorf("state filled with %d of %d", len(sel.Items), limit)
			}
			seen := map[uint64]bool{}
			for _, it := range sel.Items {
				if seen[it.ID] {
					t.Fatalf("duplicate id %d", it.ID)
				}
				seen[it.ID] = true
			}
		})
	}
}

func TestSelectGreedy_ExcludedIDs(t *testing.T) {
	var pool []domain.Item
	for i := range 30 {
		pool = append(pool, item(uint64(i+1), fmt.Sprintf("cat-%d", i%5), fmt.Sprintf("brand-%d", i%3), float64(100+i), 4))
	}
	excluded := []uint64{1, 2, 3, 10, 29}

	sel := SelectGreedy(FilterExcluded(pool, excluded), 10, testNow)

	for _, it := range sel.Items {
		for _, id := range excluded {
			if it.ID == id {
				t.Errorf("excluded id %d selected", id)
			}
		}
	}
}

func TestSelectGreedy_HomogeneousPoolStopsAtFloor(t *testing.T) {
	var pool []domain.Item
	for i := range 10 {
		pool = append(pool, item(uint64(i+1), "Electronics", "Apple", 100, 4))
	}

	sel := SelectGreedy(pool, 10, testNow)

	if len(sel.Items) != acceptFloor {
		t.Errorf("got %d items, want %d", len(sel.Items), acceptFloor)
	}
	if sel.State != StateExhausted {
		t.Errorf("state = %v, want exhausted", sel.State)
	}
}

func TestSelectGreedy_DiversePoolFills(t *testing.T) {
	var pool []domain.Item
	for i := range 20 {
		pool = append(pool, item(uint64(i+1), fmt.Sprintf("cat-%d", i), fmt.Sprintf("brand-%d", i), float64(10*(i+1)), 4))
	}

	sel := SelectGreedy(pool, 8, testNow)

	if len(sel.Items) != 8 || sel.State != StateFilled {
		t.Errorf("got %d items state %v, want 8 filled", len(sel.Items), sel.State)
	}
}

func TestSelectGreedy_RelevanceOrder(t *testing.T) {
	pool := []domain.Item{
		item(1, "a", "x", 100, 3),
		item(2, "b", "y", 200, 5),
		item(3, "c", "z", 300, 4),
		item(4, "d", "w", 400, 4), // ties with 3, keeps input order
	}

	sel := SelectGreedy(pool, 4, testNow)

	if want := []uint64{2, 3, 4, 1}; !equalIDs(ids(sel.Items), want) {
		t.Errorf("order = %v, want %v", ids(sel.Items), want)
	}
}

func TestTraceGreedy_Decisions(t *testing.T) {
	var pool []domain.Item
	for i := range 8 {
		pool = append(pool, item(uint64(i+1), "Electronics", "Apple", 100, 4))
	}
	pool = append(pool, item(9, "Fashion", "Nike", 500, 4))

	sel := TraceGreedy(pool, 6, testNow)

	if len(sel.Decisions) != len(pool) {
		t.Fatalf("decisions = %d, want %d", len(sel.Decisions), len(pool))
	}

	reasons := map[string]int{}
	accepted := 0
	for _, d := range sel.Decisions {
		reasons[d.Reason]++
		if d.Accepted {
			accepted++
		}
		if d.HybridScore <= 0 {
			t.Errorf("candidate %d has hybrid score %f", d.Item.ID, d.HybridScore)
		}
	}
	if accepted != len(sel.Items) {
		t.Errorf("accepted decisions = %d, selected = %d", accepted, len(sel.Items))
	}
	if reasons[ReasonRejected] == 0 {
		t.Errorf("expected rejected candidates, got %v", reasons)
	}
	if reasons[ReasonAcceptedFloor]+reasons[ReasonAcceptedDiverse] != accepted {
		t.Errorf("reason counts %v do not match %d accepted", reasons, accepted)
	}
}

func TestSelectGreedy_CloseHybridScoresKeepRelevanceOrder(t *testing.T) {
	// relevance 0.201 vs 0.202: both hybrid scores display as 0.521
	lower := item(1, "a", "x", 100, 1.2625)
	higher := item(2, "b", "y", 100, 1.275)

	scored := ScoreCandidates([]domain.Item{lower, higher}, testNow)
	if scored[0].HybridScore != scored[1].HybridScore {
		t.Fatalf("hybrid scores %f and %f should round alike", scored[0].HybridScore, scored[1].HybridScore)
	}
	if scored[0].Item.ID != 2 {
		t.Errorf("first scored = %d, want 2", scored[0].Item.ID)
	}

	sel := SelectGreedy([]domain.Item{lower, higher}, 1, testNow)
	if want := []uint64{2}; !equalIDs(ids(sel.Items), want) {
		t.Errorf("selected %v, want %v", ids(sel.Items), want)
	}
}
