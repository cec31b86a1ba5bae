package diversity

import (
	"fmt"
	"testing"

	"myDiverseMarket/domain"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.Item
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []domain.Item{item(1, "a", "x", 10, 4)}, 1},
		{
			name: "fully distinct",
			items: []domain.Item{
				item(1, "Electronics", "Apple", 100, 4),
				item(2, "Fashion", "Nike", 500, 4),
				item(3, "Home", "Ikea", 1000, 4),
			},
			want: 1,
		},
		{
			name: "one category and brand, prices spread",
			items: []domain.Item{
				item(1, "Electronics", "Apple", 100, 4),
				item(2, "Electronics", "Apple", 500, 4),
				item(3, "Electronics", "Apple", 1000, 4),
			},
			want: 0.3,
		},
		{
			name: "identical",
			items: []domain.Item{
				item(1, "Electronics", "Apple", 100, 4),
				item(2, "Electronics", "Apple", 100, 4),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.items)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestScore_DistinctBeatsHomogeneous(t *testing.T) {
	for _, n := range []int{2, 3, 4, 6, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var diverse, homogeneous []domain.Item
			for i := range n {
				price := float64(100 * (i + 1))
				diverse = append(diverse, item(uint64(i), fmt.Sprintf("cat-%d", i), fmt.Sprintf("brand-%d", i), price, 4))
				homogeneous = append(homogeneous, item(uint64(i), "same", "same", price, 4))
			}

			a, b := Score(diverse), Score(homogeneous)
			if a < b {
				t.Errorf("diverse %f < homogeneous %f", a, b)
			}
			if a <= 0.9 {
				t.Errorf("diverse score = %f, want > 0.9", a)
			}
			if a-b < 0.7-1e-9 {
				t.Errorf("gap %f smaller than category+brand weight", a-b)
			}
			if a > 1 || b < 0 {
				t.Errorf("scores out of range: %f, %f", a, b)
			}
		})
	}
}
