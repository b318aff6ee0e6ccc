package compare

import (
	"reflect"
	"testing"

	"github.com/halalsenpai/electricwheels/models"
)

func bike(id string) models.Bike {
	return models.Bike{ID: id, Name: "Bike " + id, Brand: "Evee", Slug: "bike-" + id}
}

func (s *Set) idsForTest() []string {
	items := s.Items()
	out := make([]string, len(items))
	for i, b := range items {
		out[i] = b.ID
	}
	return out
}

func TestSet_AddPreservesInsertionOrder(t *testing.T) {
	s := NewSet()
	s.Add(bike("b"))
	s.Add(bike("a"))
	s.Add(bike("c"))

	if got := s.idsForTest(); !reflect.DeepEqual(got, []string{"b", "a", "c"}) {
		t.Fatalf("items = %v, want insertion order [b a c]", got)
	}
}

func TestSet_DuplicateAddIsNoOp(t *testing.T) {
	s := NewSet()
	s.Add(bike("a"))
	s.Add(bike("a"))

	if s.Size() != 1 {
		t.Fatalf("size = %d after duplicate add, want 1", s.Size())
	}
}

func TestSet_AddBeyondCapIsNoOp(t *testing.T) {
	s := NewSet()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		s.Add(bike(id))
	}

	if got := s.idsForTest(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("items = %v, want the first %d additions only", got, MaxItems)
	}
	if s.CanAddMore() {
		t.Error("CanAddMore must be false at the cap")
	}
}

func TestSet_RemoveThenAddReopensSlot(t *testing.T) {
	s := NewSet()
	s.Add(bike("a"))
	s.Add(bike("b"))
	s.Add(bike("c"))

	s.Remove("b")
	if s.Has("b") {
		t.Fatal("removed item still present")
	}
	if !s.CanAddMore() {
		t.Fatal("removal must reopen a slot")
	}

	s.Add(bike("d"))
	if got := s.idsForTest(); !reflect.DeepEqual(got, []string{"a", "c", "d"}) {
		t.Fatalf("items = %v, want [a c d]", got)
	}
}

func TestSet_RemoveAbsentIsNoOp(t *testing.T) {
	s := NewSet()
	s.Add(bike("a"))
	s.Remove("missing")

	if s.Size() != 1 {
		t.Fatalf("size = %d after removing absent id, want 1", s.Size())
	}
}

func TestSet_Clear(t *testing.T) {
	s := NewSet()
	s.Add(bike("a"))
	s.Add(bike("b"))
	s.Clear()

	if s.Size() != 0 || s.ViewReady() {
		t.Fatalf("cleared set should be empty and not view-ready, size=%d", s.Size())
	}
	s.Add(bike("c"))
	if !s.Has("c") {
		t.Fatal("set unusable after Clear")
	}
}

func TestSet_ViewReady(t *testing.T) {
	s := NewSet()
	checks := []struct {
		add  string
		want bool
	}{
		{"a", false}, // 1 item
		{"b", true},  // 2 items
		{"c", true},  // 3 items
	}
	for _, c := range checks {
		s.Add(bike(c.add))
		if s.ViewReady() != c.want {
			t.Errorf("ViewReady with %d items = %v, want %v", s.Size(), s.ViewReady(), c.want)
		}
	}
}

func TestSet_ItemsReturnsCopy(t *testing.T) {
	s := NewSet()
	s.Add(bike("a"))
	s.Add(bike("b"))

	items := s.Items()
	items[0].ID = "mutated"

	if !s.Has("a") {
		t.Fatal("mutating the returned slice leaked into the set")
	}
}
