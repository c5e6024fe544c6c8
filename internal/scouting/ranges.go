package scouting

import "github.com/stitts-dev/franchise-sim/internal/models"

// GetRangeWidth returns the visible range width after a number of scouted weeks.
// The schedule is fixed: 20, 14, 10 and finally 6 once fully scouted.
func GetRangeWidth(weeksScouted int) int {
	switch {
	case weeksScouted < 4:
		return 20
	case weeksScouted < 8:
		return 14
	case weeksScouted < MaxWeeksScouted:
		return 10
	default:
		return 6
	}
}

// rangeAround centers a window of the given width on actual, shifting it back inside
// [1,99] rather than shrinking it.
func rangeAround(actual, width int) models.AttributeRange {
	actual = models.ClampAttribute(actual)
	lo := actual - width/2
	hi := lo + width

	if lo < models.MinAttribute {
		hi += models.MinAttribute - lo
		lo = models.MinAttribute
	}
	if hi > models.MaxAttribute {
		lo -= hi - models.MaxAttribute
		hi = models.MaxAttribute
	}
	if lo < models.MinAttribute {
		lo = models.MinAttribute
	}
	return models.AttributeRange{Min: lo, Max: hi}
}

// GenerateAttributeRanges builds the visible ranges for every actual attribute.
func GenerateAttributeRanges(actual models.Attributes, weeksScouted int) map[string]models.AttributeRange {
	width := GetRangeWidth(weeksScouted)
	ranges := make(map[string]models.AttributeRange, len(actual))
	for name, v := range actual {
		ranges[name] = rangeAround(v, width)
	}
	return ranges
}
