package matching

import (
	"sort"

	"github.com/you-rent/api/pkg/model"
)

// MatchScore computes the percentage match of an estate against a saved
// search criteria. The denominator is the number of dimensions defined on
// the criteria (the price range counting as one); each defined dimension
// contributes when its predicate holds on the estate. Pure function, no
// error cases: a missing estate field simply fails its predicate.
func MatchScore(estate model.Estate, criteria model.SearchCriteria) float64 {
	dimensions := 4 // price range, country, city, bedrooms are always present
	satisfied := 0

	if estate.Price >= criteria.PriceMin && estate.Price <= criteria.PriceMax {
		satisfied++
	}
	if estate.Country == criteria.Country {
		satisfied++
	}
	if estate.City == criteria.City {
		satisfied++
	}
	if estate.Bedrooms >= criteria.Bedrooms {
		satisfied++
	}

	if criteria.Bathrooms > 0 {
		dimensions++
		if estate.Bathrooms >= criteria.Bathrooms {
			satisfied++
		}
	}
	if criteria.HabitableArea > 0 {
		dimensions++
		if estate.HabitableArea >= criteria.HabitableArea {
			satisfied++
		}
	}
	if criteria.Zip != "" {
		dimensions++
		if estate.Zip == criteria.Zip {
			satisfied++
		}
	}
	if criteria.HeatingType != nil {
		dimensions++
		if estate.HeatingType != nil && *estate.HeatingType == *criteria.HeatingType {
			satisfied++
		}
	}
	if criteria.ConstructionYear > 0 {
		dimensions++
		if estate.ConstructionYear > 0 && estate.ConstructionYear >= criteria.ConstructionYear {
			satisfied++
		}
	}
	if criteria.HasPrivateParking {
		dimensions++
		if estate.HasPrivateParking {
			satisfied++
		}
	}
	if criteria.HasExtraStorage {
		dimensions++
		if estate.HasExtraStorage {
			satisfied++
		}
	}

	if dimensions == 0 {
		return 0
	}
	return float64(satisfied) * 100 / float64(dimensions)
}

// MatchingList annotates each estate with its matching score against the
// criteria and returns only the estates that match at all, sorted by score
// descending. A score of zero means "no match" and is dropped, not shown as
// 0%. Tie order among equal scores is unspecified.
func MatchingList(estates []model.Estate, criteria model.SearchCriteria) []model.Estate {
	matched := make([]model.Estate, 0, len(estates))
	for _, e := range estates {
		score := MatchScore(e, criteria)
		if score > 0 {
			e.MatchingScore = score
			matched = append(matched, e)
		}
	}
	return SortByMatchingScore(matched)
}

// SortByMatchingScore orders estates by matching score, highest first, in
// place, and returns the slice for chaining.
func SortByMatchingScore(estates []model.Estate) []model.Estate {
	sort.Slice(estates, func(i, j int) bool {
		return estates[i].MatchingScore > estates[j].MatchingScore
	})
	return estates
}
