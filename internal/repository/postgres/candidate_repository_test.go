package postgres

import (
	"strings"
	"testing"

	"myDiverseMarket/business/diversity"
	"myDiverseMarket/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

// fragmentsInOrder fails unless every fragment occurs in expr, in order.
func fragmentsInOrder(t *testing.T, expr string, fragments ...string) {
	t.Helper()
	rest := expr
	for _, f := range fragments {
		i := strings.Index(rest, f)
		require.GreaterOrEqual(t, i, 0, "fragment %q missing or out of order in %q", f, expr)
		rest = rest[i+len(f):]
	}
}

func TestCategoryKeyExpr_FollowsResolverChain(t *testing.T) {
	assert.Equal(t,
		"COALESCE(NULLIF(categories.product_category, ''), categories.category_id::text, NULLIF(products.product_category, ''), 'unknown')",
		categoryKeyExpr)

	// the resolver chain, highest priority first
	named := diversity.ResolveItem(domain.Product{
		Category:        &domain.Category{CategoryID: 7, ProductCategory: "kitchen"},
		ProductCategory: "legacy",
	})
	idOnly := diversity.ResolveItem(domain.Product{
		Category:        &domain.Category{CategoryID: 7},
		ProductCategory: "legacy",
	})
	legacy := diversity.ResolveItem(domain.Product{ProductCategory: "legacy"})
	fallback := diversity.ResolveItem(domain.Product{})

	require.Equal(t, "kitchen", named.CategoryKey)
	require.Equal(t, "7", idOnly.CategoryKey)
	require.Equal(t, "legacy", legacy.CategoryKey)

	fragmentsInOrder(t, categoryKeyExpr,
		"categories.product_category",
		"categories.category_id::text",
		"products.product_category",
		"'"+fallback.CategoryKey+"'",
	)
}

func TestRatingOrderExpr_FollowsResolverChain(t *testing.T) {
	// a zero JSON average falls through to the legacy column
	item := diversity.ResolveItem(domain.Product{
		Ratings:     datatypes.JSON(`{"average":0,"count":0}`),
		RatingValue: 4.5,
	})
	require.Equal(t, 4.5, item.RatingAverage)

	fragmentsInOrder(t, ratingOrderExpr,
		"(products.ratings->>'average')::numeric > 0",
		"products.rating_value > 0",
		", 0)",
	)
}
