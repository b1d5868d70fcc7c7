package matching

import (
	"reflect"
	"testing"

	"github.com/you-rent/api/pkg/model"
)

func floatPtr(v float64) *float64 { return &v }

func TestFilterEmptyIsIdentity(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", Name: "Canal house", Price: 900},
		{ID: "b", Name: "City loft", Price: 1200},
		{ID: "c", Name: "Garden flat", Price: 1600},
	}

	got := Filter(estates, "", model.FilterValues{})
	if !reflect.DeepEqual(got, estates) {
		t.Errorf("Filter with no constraints changed the list: %+v", got)
	}
}

func TestFilterTextQuery(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", Name: "Canal House"},
		{ID: "b", Name: "City loft"},
		{ID: "c", Name: "Boathouse"},
	}

	got := Filter(estates, "house", model.FilterValues{})
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("case-insensitive substring filter = %+v", got)
	}
}

func TestFilterPriceRange(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", Price: 900},
		{ID: "b", Price: 1200},
		{ID: "c", Price: 1600},
	}
	values := model.FilterValues{
		Price: &model.Range{Lower: floatPtr(1000), Upper: floatPtr(1500)},
	}

	got := Filter(estates, "", values)
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("price range filter = %+v, want only b", got)
	}
}

func TestFilterHalfOpenRanges(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", Bedrooms: 1},
		{ID: "b", Bedrooms: 3},
	}

	got := Filter(estates, "", model.FilterValues{Bedrooms: &model.Range{Lower: floatPtr(2)}})
	if len(got) != 1 || got[0].ID != "b" {
		t.Errorf("lower-only range = %+v", got)
	}

	got = Filter(estates, "", model.FilterValues{Bedrooms: &model.Range{Upper: floatPtr(2)}})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("upper-only range = %+v", got)
	}
}

func TestFilterConstructionYearSkipsUndated(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", ConstructionYear: 1960},
		{ID: "b"}, // no construction year: never excluded by this dimension
		{ID: "c", ConstructionYear: 2010},
	}
	values := model.FilterValues{
		ConstructionYear: &model.Range{Lower: floatPtr(2000)},
	}

	got := Filter(estates, "", values)
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "c" {
		t.Errorf("construction year filter = %+v", got)
	}
}

func TestFilterMinScore(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", Score: 4.5},
		{ID: "b", Score: 2},
		{ID: "c"}, // unscored counts as 0
	}

	got := Filter(estates, "", model.FilterValues{MinScore: 3})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("min score filter = %+v", got)
	}
}

func TestFilterBooleanFlags(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", HasPrivateParking: true, HasExtraStorage: true, PictureURLs: []string{"u"}},
		{ID: "b", HasPrivateParking: true},
		{ID: "c", PictureURLs: []string{}},
	}

	got := Filter(estates, "", model.FilterValues{IncludeParking: true})
	if len(got) != 2 {
		t.Errorf("parking filter = %+v", got)
	}
	got = Filter(estates, "", model.FilterValues{IncludeStorage: true})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("storage filter = %+v", got)
	}
	got = Filter(estates, "", model.FilterValues{WithPictures: true})
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("pictures filter must drop empty and missing URL lists: %+v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	estates := []model.Estate{
		{ID: "a", Name: "Canal house", Price: 900, HasPrivateParking: true},
		{ID: "b", Name: "City loft", Price: 1200},
		{ID: "c", Name: "Garden house", Price: 1600, HasPrivateParking: true},
	}
	values := model.FilterValues{
		Price:          &model.Range{Upper: floatPtr(1700)},
		IncludeParking: true,
	}

	once := Filter(estates, "house", values)
	twice := Filter(once, "house", values)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("reapplying the same filter changed the result: %+v vs %+v", once, twice)
	}
}
