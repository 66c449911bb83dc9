package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeProduct(t *testing.T, code, name string, opts ...func(*Product)) Product {
	t.Helper()
	p, err := NewProduct(code, name, ProductTypeTube)
	require.NoError(t, err)
	for _, opt := range opts {
		opt(p)
	}
	return *p
}

func withTubeType(v string) func(*Product) {
	return func(p *Product) { p.TubeType = v }
}

func withMaterial(v string) func(*Product) {
	return func(p *Product) { p.Material = v }
}

func withCapacity(min, max float64) func(*Product) {
	return func(p *Product) {
		p.Dimensions.Capacity = &CapacityRange{Min: min, Max: max}
	}
}

func withCompartments(n int) func(*Product) {
	return func(p *Product) { p.Dimensions.Compartments = n }
}

func withDesigns(vs ...string) func(*Product) {
	return func(p *Product) { p.FunctionalDesigns = vs }
}

func withPopularity(score int) func(*Product) {
	return func(p *Product) { p.PopularityScore = score }
}

func withCreatedAt(ts time.Time) func(*Product) {
	return func(p *Product) { p.CreatedAt = ts }
}

func codes(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Code
	}
	return out
}

func TestFilterAndSort_EmptySpec(t *testing.T) {
	products := []Product{
		makeProduct(t, "LP-001", "口红管"),
		makeProduct(t, "LP-002", "唇釉管"),
		makeProduct(t, "BX-001", "气垫盒"),
	}

	result := FilterAndSort(products, FilterSpec{}, "")

	assert.Equal(t, []string{"LP-001", "LP-002", "BX-001"}, codes(result))
}

func TestFilterAndSort_NeverGrows(t *testing.T) {
	products := []Product{
		makeProduct(t, "LP-001", "口红管", withTubeType("口红管")),
		makeProduct(t, "LP-002", "唇釉管", withTubeType("唇釉管")),
	}

	specs := []FilterSpec{
		{},
		{TubeTypes: []string{"口红管"}},
		{Search: "唇釉"},
		{Materials: []string{"AS"}},
	}
	for _, spec := range specs {
		result := FilterAndSort(products, spec, SortNewest)
		assert.LessOrEqual(t, len(result), len(products))
	}
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	products := []Product{
		makeProduct(t, "LP-001", "口红管", withTubeType("口红管"), withMaterial("AS")),
		makeProduct(t, "LP-002", "唇釉管", withTubeType("唇釉管"), withMaterial("PETG")),
		makeProduct(t, "BX-001", "腮红盒", withMaterial("PP")),
	}
	spec := FilterSpec{Materials: []string{"AS", "PETG"}}

	once := FilterAndSort(products, spec, SortPopular)
	twice := FilterAndSort(once, spec, SortPopular)

	assert.Equal(t, codes(once), codes(twice))
}

func TestFilterAndSort_DimensionsCombineWithAnd(t *testing.T) {
	products := []Product{
		makeProduct(t, "A", "a", withTubeType("口红管"), withMaterial("AS")),
		makeProduct(t, "B", "b", withTubeType("口红管"), withMaterial("PP")),
		makeProduct(t, "C", "c", withTubeType("唇釉管"), withMaterial("AS")),
	}
	spec := FilterSpec{
		TubeTypes: []string{"口红管"},
		Materials: []string{"AS"},
	}

	result := FilterAndSort(products, spec, "")

	assert.Equal(t, []string{"A"}, codes(result))
}

func TestFilterAndSort_ValuesWithinSetCombineWithOr(t *testing.T) {
	products := []Product{
		makeProduct(t, "A", "a", withTubeType("口红管")),
		makeProduct(t, "B", "b", withTubeType("唇釉管")),
		makeProduct(t, "C", "c", withTubeType("固体棒")),
	}
	spec := FilterSpec{TubeTypes: []string{"口红管", "唇釉管"}}

	result := FilterAndSort(products, spec, "")

	assert.Equal(t, []string{"A", "B"}, codes(result))
}

func TestFilterAndSort_CapacityOverlap(t *testing.T) {
	tests := []struct {
		name    string
		product Product
		want    bool
	}{
		{"overlapping interval matches", makeProduct(t, "A", "a", withCapacity(3, 5)), true},
		{"disjoint above does not match", makeProduct(t, "B", "b", withCapacity(12, 15)), false},
		{"disjoint below does not match", makeProduct(t, "C", "c", withCapacity(1, 3)), false},
		{"contained interval matches", makeProduct(t, "D", "d", withCapacity(5, 8)), true},
		{"no capacity declared does not match", makeProduct(t, "E", "e"), false},
	}

	spec := FilterSpec{CapacityRange: &CapacityRange{Min: 4, Max: 10}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, spec.Matches(&tt.product))
		})
	}
}

func TestFilterAndSort_CompartmentRange(t *testing.T) {
	spec := FilterSpec{CompartmentRange: &IntRange{Min: 2, Max: 4}}

	inRange := makeProduct(t, "A", "a", withCompartments(3))
	outOfRange := makeProduct(t, "B", "b", withCompartments(6))
	unset := makeProduct(t, "C", "c")

	assert.True(t, spec.Matches(&inRange))
	assert.False(t, spec.Matches(&outOfRange))
	assert.False(t, spec.Matches(&unset))
}

func TestFilterAndSort_FunctionalDesignsMatchAnyElement(t *testing.T) {
	products := []Product{
		makeProduct(t, "A", "a", withDesigns("磁吸", "带镜子")),
		makeProduct(t, "B", "b", withDesigns("卡扣")),
		makeProduct(t, "C", "c"),
	}
	spec := FilterSpec{FunctionalDesigns: []string{"磁吸"}}

	result := FilterAndSort(products, spec, "")

	assert.Equal(t, []string{"A"}, codes(result))
}

func TestFilterAndSort_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	products := []Product{
		makeProduct(t, "LIP-100", "Magnetic lipstick tube", withMaterial("PETG")),
		makeProduct(t, "BOX-200", "散粉盒", withMaterial("pp")),
	}

	t.Run("matches code", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{Search: "lip-1"}, "")
		assert.Equal(t, []string{"LIP-100"}, codes(result))
	})

	t.Run("matches material regardless of case", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{Search: "PP"}, "")
		assert.Equal(t, []string{"BOX-200"}, codes(result))
	})

	t.Run("whitespace only search matches all", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{Search: "   "}, "")
		assert.Len(t, result, 2)
	})

	t.Run("matches chinese name", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{Search: "散粉"}, "")
		assert.Equal(t, []string{"BOX-200"}, codes(result))
	})
}

func TestFilterAndSort_Sorting(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	products := []Product{
		makeProduct(t, "OLD", "old", withCreatedAt(base), withPopularity(50)),
		makeProduct(t, "NEW", "new", withCreatedAt(base.Add(48*time.Hour)), withPopularity(10)),
		makeProduct(t, "MID", "mid", withCreatedAt(base.Add(24*time.Hour)), withPopularity(90)),
	}

	t.Run("newest orders by created at desc", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{}, SortNewest)
		assert.Equal(t, []string{"NEW", "MID", "OLD"}, codes(result))
	})

	t.Run("popular orders by score desc", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{}, SortPopular)
		assert.Equal(t, []string{"MID", "OLD", "NEW"}, codes(result))
	})

	t.Run("unknown key keeps input order", func(t *testing.T) {
		result := FilterAndSort(products, FilterSpec{}, "alphabetical")
		assert.Equal(t, []string{"OLD", "NEW", "MID"}, codes(result))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		_ = FilterAndSort(products, FilterSpec{}, SortNewest)
		assert.Equal(t, []string{"OLD", "NEW", "MID"}, codes(products))
	})
}

func TestFilterSpec_IsZero(t *testing.T) {
	assert.True(t, FilterSpec{}.IsZero())
	assert.True(t, FilterSpec{Search: "  "}.IsZero())
	assert.False(t, FilterSpec{Shapes: []string{"圆形"}}.IsZero())
	assert.False(t, FilterSpec{CapacityRange: &CapacityRange{Min: 1, Max: 2}}.IsZero())
}
