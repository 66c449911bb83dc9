package catalog

import (
	"sort"
	"strings"
)

// SortKey selects the ordering applied after filtering
type SortKey string

const (
	SortNewest  SortKey = "newest"
	SortPopular SortKey = "popular"
)

// IntRange is an inclusive integer interval
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FilterSpec describes a storefront filter selection. Every field is
// optional; an empty spec matches everything. Dimensions combine with
// AND, values inside one set combine with OR.
type FilterSpec struct {
	TubeTypes                []string       `json:"tubeTypes,omitempty"`
	BoxTypes                 []string       `json:"boxTypes,omitempty"`
	FunctionalDesigns        []string       `json:"functionalDesigns,omitempty"`
	Shapes                   []string       `json:"shapes,omitempty"`
	Materials                []string       `json:"materials,omitempty"`
	DevelopmentLineMaterials []string       `json:"developmentLineMaterials,omitempty"`
	CapacityRange            *CapacityRange `json:"capacityRange,omitempty"`
	CompartmentRange         *IntRange      `json:"compartmentRange,omitempty"`
	Search                   string         `json:"search,omitempty"`
}

// IsZero reports whether the spec constrains nothing
func (s FilterSpec) IsZero() bool {
	return len(s.TubeTypes) == 0 &&
		len(s.BoxTypes) == 0 &&
		len(s.FunctionalDesigns) == 0 &&
		len(s.Shapes) == 0 &&
		len(s.Materials) == 0 &&
		len(s.DevelopmentLineMaterials) == 0 &&
		s.CapacityRange == nil &&
		s.CompartmentRange == nil &&
		strings.TrimSpace(s.Search) == ""
}

// Matches reports whether a single product satisfies the spec
func (s FilterSpec) Matches(p *Product) bool {
	if q := strings.ToLower(strings.TrimSpace(s.Search)); q != "" && !matchesSearch(p, q) {
		return false
	}
	if len(s.TubeTypes) > 0 && !containsValue(s.TubeTypes, p.TubeType) {
		return false
	}
	if len(s.BoxTypes) > 0 && !containsValue(s.BoxTypes, p.BoxType) {
		return false
	}
	if len(s.Shapes) > 0 && !containsValue(s.Shapes, p.Shape) {
		return false
	}
	if len(s.Materials) > 0 && !containsValue(s.Materials, p.Material) {
		return false
	}
	if len(s.FunctionalDesigns) > 0 && !containsAny(s.FunctionalDesigns, p.FunctionalDesigns) {
		return false
	}
	if len(s.DevelopmentLineMaterials) > 0 && !containsAny(s.DevelopmentLineMaterials, p.DevelopmentLineMaterials) {
		return false
	}
	if r := s.CapacityRange; r != nil {
		cap := p.Dimensions.Capacity
		if cap == nil {
			return false
		}
		// Interval overlap: a 3-5ml tube matches a 4-10ml filter.
		if cap.Max < r.Min || cap.Min > r.Max {
			return false
		}
	}
	if r := s.CompartmentRange; r != nil {
		c := p.Dimensions.Compartments
		if c <= 0 || c < r.Min || c > r.Max {
			return false
		}
	}
	return true
}

// FilterAndSort returns the products matching the spec, ordered by the
// sort key. The input slice is never mutated; an unknown sort key keeps
// the filtered order as-is.
func FilterAndSort(products []Product, spec FilterSpec, key SortKey) []Product {
	result := make([]Product, 0, len(products))
	for i := range products {
		if spec.Matches(&products[i]) {
			result = append(result, products[i])
		}
	}

	switch key {
	case SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].PopularityScore > result[j].PopularityScore
		})
	}
	return result
}

func matchesSearch(p *Product, q string) bool {
	fields := []string{p.Name, p.Code, p.Material, p.Shape, p.TubeType, p.BoxType}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	for _, v := range p.FunctionalDesigns {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	for _, v := range p.DevelopmentLineMaterials {
		if strings.Contains(strings.ToLower(v), q) {
			return true
		}
	}
	return false
}

func containsValue(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}

func containsAny(set []string, values StringList) bool {
	for _, v := range values {
		if containsValue(set, v) {
			return true
		}
	}
	return false
}
