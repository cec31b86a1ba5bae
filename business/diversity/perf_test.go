//go:build !integration

package diversity

import (
	"fmt"
	"testing"
	"time"

	"myDiverseMarket/domain"
)

func syntheticPool(n int) []domain.Item {
	pool := make([]domain.Item, 0, n)
	for i := range n {
		it := item(uint64(i+1), fmt.Sprintf("cat-%d", i%10), fmt.Sprintf("brand-%d", i%20), float64(10+(i*37)%2000), float64(i%5)+1)
		it.ViewCount = int64(i * 3)
		pool = append(pool, it)
	}
	return pool
}

func TestBalanceByCategory_LargePool(t *testing.T) {
	pool := syntheticPool(1000)

	start := time.Now()
	got := BalanceByCategory(pool, 2)
	elapsed := time.Since(start)

	if len(got) == 0 {
		t.Fatal("empty result")
	}
	for k, c := range countBy(got, func(it domain.Item) string { return it.CategoryKey }) {
		if c > 2 {
			t.Errorf("category %s appears %d times", k, c)
		}
	}
	t.Logf("balanced %d items in %s", len(pool), elapsed)
	if elapsed > 500*time.Millisecond {
		t.Errorf("took %s, budget 500ms", elapsed)
	}
}

func TestSelectGreedy_LargePool(t *testing.T) {
	pool := syntheticPool(1000)

	start := time.Now()
	sel := SelectGreedy(pool, 50, testNow)
	elapsed := time.Since(start)

	t.Logf("selected %d of %d in %s (%s)", len(sel.Items), len(pool), elapsed, sel.State)
	if len(sel.Items) == 0 || len(sel.Items) > 50 {
		t.Errorf("selected %d items", len(sel.Items))
	}
	if elapsed > 500*time.Millisecond {
		t.Errorf("took %s, budget 500ms", elapsed)
	}
}

func BenchmarkSelectGreedy(b *testing.B) {
	pool := syntheticPool(250)
	b.ResetTimer()
	for range b.N {
		SelectGreedy(pool, 50, testNow)
	}
}
