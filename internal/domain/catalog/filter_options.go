package catalog

import "sort"

// GroupedValues maps a display group name to its member values.
// Values that belong to no group land in the "其他" bucket.
type GroupedValues map[string][]string

// FilterOptions is the vocabulary offered to the storefront filter
// panel, derived from the live catalog with a static fallback.
type FilterOptions struct {
	TubeTypes                GroupedValues `json:"tubeTypes"`
	BoxTypes                 GroupedValues `json:"boxTypes"`
	FunctionalDesigns        GroupedValues `json:"functionalDesigns"`
	Shapes                   GroupedValues `json:"shapes"`
	Materials                []string      `json:"materials"`
	DevelopmentLineMaterials []string      `json:"developmentLineMaterials"`
	CapacityRange            CapacityRange `json:"capacityRange"`
	CompartmentRange         IntRange      `json:"compartmentRange"`
}

const ungroupedBucket = "其他"

// Display group mappings for the filter panel. Merchandising owns these
// lists; values outside them are still offered, just ungrouped.
var (
	tubeGroups = GroupedValues{
		"唇部":  {"润唇管", "唇釉管", "口红管", "唇膜瓶"},
		"眼部":  {"睫毛膏瓶", "睫毛膏管", "睫毛管", "睫毛膏", "眼线液瓶"},
		"面部":  {"膏霜瓶", "乳液瓶", "腮红液瓶", "腮红液管"},
		"多功能": {"固体棒"},
	}
	boxGroups = GroupedValues{
		"彩妆盒": {"眼影盒", "腮红盒", "高光盒"},
		"粉类盒": {"散粉盒", "粉饼盒", "蓬蓬粉"},
		"功能盒": {"气垫盒"},
	}
	functionGroups = GroupedValues{
		"开合方式": {"磁吸", "卡扣", "旋盖", "按压式", "挤压式"},
		"功能配件": {"带镜子", "带刷位", "带夹子", "顶片"},
		"结构特性": {"双头", "双层"},
		"外观特性": {"透明/透色", "透明/透色/实色", "透色", "儿童卡通", "挂坠款"},
	}
	shapeGroups = GroupedValues{
		"规则形状": {"圆形", "方形", "正方形", "长方形", "椭圆形"},
		"特殊形状": {"不规则", "波浪纹", "异形", "迷你"},
	}
)

// ExpandValues splits composite values on "/" and returns the sorted
// distinct parts
func ExpandValues(raw []string) []string {
	seen := make(map[string]bool)
	for _, r := range raw {
		for _, v := range SplitValues(r) {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// GroupValues buckets values by the given mapping, collecting leftovers
// under the 其他 bucket
func GroupValues(values []string, mapping GroupedValues) GroupedValues {
	grouped := make(GroupedValues)
	var ungrouped []string

	for _, v := range values {
		assigned := false
		for group, members := range mapping {
			if containsValue(members, v) {
				grouped[group] = append(grouped[group], v)
				assigned = true
				break
			}
		}
		if !assigned {
			ungrouped = append(ungrouped, v)
		}
	}
	if len(ungrouped) > 0 {
		grouped[ungroupedBucket] = ungrouped
	}
	return grouped
}

// BuildFilterOptions derives the filter vocabulary from distinct raw
// column values and the observed capacity/compartment extremes
func BuildFilterOptions(tubeTypes, boxTypes, functionalDesigns, shapes, materials, developmentLineMaterials []string, capacity CapacityRange, compartments IntRange) FilterOptions {
	return FilterOptions{
		TubeTypes:                GroupValues(ExpandValues(tubeTypes), tubeGroups),
		BoxTypes:                 GroupValues(ExpandValues(boxTypes), boxGroups),
		FunctionalDesigns:        GroupValues(ExpandValues(functionalDesigns), functionGroups),
		Shapes:                   GroupValues(ExpandValues(shapes), shapeGroups),
		Materials:                ExpandValues(materials),
		DevelopmentLineMaterials: ExpandValues(developmentLineMaterials),
		CapacityRange:            capacity,
		CompartmentRange:         compartments,
	}
}

// DefaultFilterOptions is the static vocabulary served when the catalog
// cannot be queried
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		TubeTypes: GroupValues([]string{
			"口红管", "唇釉管", "固体棒", "睫毛膏瓶", "眼线液瓶", "唇膜瓶", "粉底膏霜瓶", "发际线包材",
		}, tubeGroups),
		BoxTypes: GroupValues([]string{
			"腮红盒", "粉饼高光盒", "散粉盒", "气垫盒",
		}, boxGroups),
		FunctionalDesigns: GroupValues([]string{
			"磁吸", "卡扣", "双头", "双层", "带镜子", "带刷位", "贴片", "多格",
		}, functionGroups),
		Shapes: GroupValues([]string{
			"圆形", "正方形", "长方形", "椭圆形", "波浪纹", "迷你", "儿童卡通", "不规则",
		}, shapeGroups),
		Materials:                []string{"AS", "PETG", "PS", "PP"},
		DevelopmentLineMaterials: []string{"注塑/吹瓶", "工艺注塑", "吹瓶"},
		CapacityRange:            CapacityRange{Min: 1, Max: 30},
		CompartmentRange:         IntRange{Min: 1, Max: 20},
	}
}
