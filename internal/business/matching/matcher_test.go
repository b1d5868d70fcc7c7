package matching

import (
	"testing"

	"github.com/you-rent/api/pkg/model"
)

func intPtr(v int) *int { return &v }

func TestMatchScore(t *testing.T) {
	tests := []struct {
		name     string
		estate   model.Estate
		criteria model.SearchCriteria
		want     float64
	}{
		{
			name: "full match on four required dimensions",
			estate: model.Estate{
				Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2, Bathrooms: 1,
			},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
			},
			want: 100,
		},
		{
			name: "price outside range fails only that dimension",
			estate: model.Estate{
				Price: 2500, City: "Ghent", Country: "Belgium", Bedrooms: 2,
			},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
			},
			want: 75,
		},
		{
			name:   "nothing matches",
			estate: model.Estate{Price: 300, City: "Liege", Country: "France", Bedrooms: 1},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
			},
			want: 0,
		},
		{
			name: "optional dimensions widen the denominator",
			estate: model.Estate{
				Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				Bathrooms: 1, HabitableArea: 80,
			},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				Bathrooms: 2, HabitableArea: 60,
			},
			// 5 of 6 dimensions satisfied: bathrooms falls short.
			want: float64(5) * 100 / 6,
		},
		{
			name: "estate without construction year fails the year predicate",
			estate: model.Estate{
				Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2,
			},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				ConstructionYear: 1990,
			},
			want: float64(4) * 100 / 5,
		},
		{
			name: "heating type equality",
			estate: model.Estate{
				Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				HeatingType: intPtr(model.HeatingRadiators),
			},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				HeatingType: intPtr(model.HeatingRadiators),
			},
			want: 100,
		},
		{
			name: "parking and storage flags must both hold on the estate",
			estate: model.Estate{
				Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				HasPrivateParking: true,
			},
			criteria: model.SearchCriteria{
				PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
				HasPrivateParking: true, HasExtraStorage: true,
			},
			want: float64(5) * 100 / 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchScore(tt.estate, tt.criteria)
			if got != tt.want {
				t.Errorf("MatchScore = %v, want %v", got, tt.want)
			}
			if got < 0 || got > 100 {
				t.Errorf("MatchScore = %v, outside [0,100]", got)
			}
		})
	}
}

func TestMatchingListDropsZeroScores(t *testing.T) {
	criteria := model.SearchCriteria{
		PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
	}
	estates := []model.Estate{
		{ID: "a", Price: 300, City: "Liege", Country: "France", Bedrooms: 1},
		{ID: "b", Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2},
		{ID: "c", Price: 1500, City: "Liege", Country: "Belgium", Bedrooms: 2},
	}

	got := MatchingList(estates, criteria)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (zero-score estate must be dropped)", len(got))
	}
	if got[0].ID != "b" {
		t.Errorf("first = %s, want b (highest score first)", got[0].ID)
	}
	if got[0].MatchingScore != 100 {
		t.Errorf("score = %v, want 100", got[0].MatchingScore)
	}
	if got[1].MatchingScore >= got[0].MatchingScore {
		t.Errorf("not sorted descending: %v then %v", got[0].MatchingScore, got[1].MatchingScore)
	}
}

func TestMatchingListDoesNotMutateInput(t *testing.T) {
	criteria := model.SearchCriteria{
		PriceMin: 1000, PriceMax: 2000, City: "Ghent", Country: "Belgium", Bedrooms: 2,
	}
	estates := []model.Estate{
		{ID: "a", Price: 1500, City: "Ghent", Country: "Belgium", Bedrooms: 2},
	}

	MatchingList(estates, criteria)
	if estates[0].MatchingScore != 0 {
		t.Errorf("input estate mutated: matching score = %v", estates[0].MatchingScore)
	}
}
