package matching

import (
	"strings"

	"github.com/you-rent/api/pkg/model"
)

// Filter applies the free-text query and the compound filter values to the
// estate collection and returns a new slice with the survivors in their
// original order. All constraints are AND-combined; an unset dimension
// constrains nothing, so an empty query with zero filter values returns the
// input unchanged. The function is idempotent and must always be fed the
// untouched base collection, never its own previous output narrowed by a
// stale filter.
func Filter(estates []model.Estate, query string, values model.FilterValues) []model.Estate {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]model.Estate, 0, len(estates))
	for _, e := range estates {
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) {
			continue
		}
		if !includeByFilters(e, values) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func includeByFilters(e model.Estate, values model.FilterValues) bool {
	if values.MinScore > 0 && e.Score < values.MinScore {
		return false
	}
	if !inRange(e.Price, values.Price) {
		return false
	}
	if !inRange(float64(e.Bedrooms), values.Bedrooms) {
		return false
	}
	if !inRange(float64(e.Bathrooms), values.Bathrooms) {
		return false
	}
	if !inRange(e.HabitableArea, values.HabitableSurface) {
		return false
	}
	// Estates without a construction year are not excluded by the year range.
	if e.ConstructionYear > 0 && !inRange(float64(e.ConstructionYear), values.ConstructionYear) {
		return false
	}
	if values.IncludeParking && !e.HasPrivateParking {
		return false
	}
	if values.IncludeStorage && !e.HasExtraStorage {
		return false
	}
	if values.WithPictures && len(e.PictureURLs) == 0 {
		return false
	}
	return true
}

func inRange(value float64, r *model.Range) bool {
	if r == nil {
		return true
	}
	if r.Lower != nil && value < *r.Lower {
		return false
	}
	if r.Upper != nil && value > *r.Upper {
		return false
	}
	return true
}
