package catalog

// Page size choices offered by the storefront grid
var allowedPageSizes = map[int]bool{4: true, 8: true, 12: true, 16: true, 20: true, 24: true, 48: true}

// DefaultPageSize is used when a requested size is not an offered choice
const DefaultPageSize = 8

// NormalizePageSize clamps a requested page size to the offered choices
func NormalizePageSize(size int) int {
	if allowedPageSizes[size] {
		return size
	}
	return DefaultPageSize
}

// PageResult is one page of a filtered product list
type PageResult struct {
	Items      []Product `json:"items"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
}

// Paginate slices items into the requested page. TotalPages is zero for
// an empty list; a page beyond the last one resets to page 1 so a
// shrinking filter result never strands the visitor on a blank page.
func Paginate(items []Product, page, pageSize int) PageResult {
	pageSize = NormalizePageSize(pageSize)
	totalPages := (len(items) + pageSize - 1) / pageSize

	if page < 1 || page > totalPages {
		page = 1
	}
	if totalPages == 0 {
		return PageResult{Items: []Product{}, Page: 1, PageSize: pageSize, TotalItems: 0, TotalPages: 0}
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return PageResult{
		Items:      items[start:end],
		Page:       page,
		PageSize:   pageSize,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}

// CardSize is the rendering density hint for one grid card
type CardSize string

const (
	CardLarge   CardSize = "large"
	CardMedium  CardSize = "medium"
	CardSmall   CardSize = "small"
	CardCompact CardSize = "compact"
)

// LayoutSpec is the recommended grid arrangement for a page of products
type LayoutSpec struct {
	Columns  int      `json:"columns"`
	Rows     int      `json:"rows"`
	Gap      string   `json:"gap"`
	CardSize CardSize `json:"cardSize"`
}

// RecommendLayout picks a grid arrangement for the page size: few items
// get a single generous row, large pages pack into a compact six-column
// wall. The bands are tuned to the offered page size choices.
func RecommendLayout(count int) LayoutSpec {
	switch {
	case count <= 4:
		return LayoutSpec{Columns: min(count, 4), Rows: 1, Gap: "gap-6 md:gap-8", CardSize: CardLarge}
	case count <= 8:
		return LayoutSpec{Columns: min(ceilDiv(count, 2), 4), Rows: 2, Gap: "gap-4 md:gap-6", CardSize: CardMedium}
	case count <= 12:
		return LayoutSpec{Columns: min(ceilDiv(count, 3), 4), Rows: 3, Gap: "gap-3 md:gap-4", CardSize: CardMedium}
	case count <= 20:
		return LayoutSpec{Columns: min(ceilDiv(count, 4), 5), Rows: ceilDiv(count, 5), Gap: "gap-3 md:gap-4", CardSize: CardSmall}
	case count <= 48:
		return LayoutSpec{Columns: min(ceilDiv(count, 6), 6), Rows: ceilDiv(count, 6), Gap: "gap-2 md:gap-3", CardSize: CardSmall}
	default:
		return LayoutSpec{Columns: 6, Rows: ceilDiv(count, 6), Gap: "gap-2", CardSize: CardCompact}
	}
}

// PageItem is one entry in the pagination rail: a page number or an
// ellipsis gap marker
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageNumbers builds the pagination rail: first and last page always
// visible, a window of one around the current page, and at most one
// ellipsis per gap.
func PageNumbers(current, total int) []PageItem {
	if total < 1 {
		return nil
	}
	items := []PageItem{{Page: 1}}

	if current > 3 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for i := max(2, current-1); i <= min(total-1, current+1); i++ {
		items = append(items, PageItem{Page: i})
	}
	if current < total-2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	if total > 1 {
		items = append(items, PageItem{Page: total})
	}
	return items
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
