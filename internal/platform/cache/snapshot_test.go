package cache

import (
	"testing"
	"time"

	"github.com/you-rent/api/pkg/model"
)

func TestSnapshotRoundTrip(t *testing.T) {
	snaps := New(time.Minute)

	in := []model.Estate{
		{ID: "a", Name: "Canal house", Price: 900},
		{ID: "b", Name: "City loft", Price: 1200},
	}
	if err := snaps.Put("estates", in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	var out []model.Estate
	if !snaps.Get("estates", &out) {
		t.Fatal("Get: miss for freshly stored snapshot")
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Price != 1200 {
		t.Errorf("round trip = %+v", out)
	}
}

func TestSnapshotExpiry(t *testing.T) {
	snaps := New(time.Nanosecond)

	if err := snaps.Put("estates", []model.Estate{{ID: "a"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	time.Sleep(time.Millisecond)

	var out []model.Estate
	if snaps.Get("estates", &out) {
		t.Error("Get: expired snapshot must be a miss")
	}
}

func TestSnapshotInvalidate(t *testing.T) {
	snaps := New(time.Minute)

	if err := snaps.Put("estates", []model.Estate{{ID: "a"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	snaps.Invalidate("estates")

	var out []model.Estate
	if snaps.Get("estates", &out) {
		t.Error("Get: invalidated snapshot must be a miss")
	}
}

func TestSnapshotMissOnUnknownKey(t *testing.T) {
	snaps := New(time.Minute)
	var out []model.Estate
	if snaps.Get("nope", &out) {
		t.Error("Get: unknown key must be a miss")
	}
}
