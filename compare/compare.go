// Package compare holds the bounded comparison set a visitor builds while
// browsing, plus the session store that keys one set per visitor.
package compare

import (
	"sync"

	"github.com/halalsenpai/electricwheels/models"
)

// MaxItems is the hard cap on side-by-side comparison slots.
const MaxItems = 3

// MinViewItems is the smallest set that makes a comparison view meaningful.
const MinViewItems = 2

// Set is an ordered, deduplicated collection of up to MaxItems bikes.
// Add and Remove are silent no-ops when they would violate the invariants;
// hitting the cap is a soft limit, not an error.
type Set struct {
	mu    sync.Mutex
	items []models.Bike
}

func NewSet() *Set {
	return &Set{items: make([]models.Bike, 0, MaxItems)}
}

// Add appends the bike unless it is already present or the set is full.
func (s *Set) Add(b models.Bike) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) >= MaxItems {
		return
	}
	for i := range s.items {
		if s.items[i].ID == b.ID {
			return
		}
	}
	s.items = append(s.items, b)
}

// Remove drops the bike with the given id; absent ids are a no-op.
func (s *Set) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = s.items[:0]
}

func (s *Set) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			return true
		}
	}
	return false
}

func (s *Set) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Set) CanAddMore() bool {
	return s.Size() < MaxItems
}

// ViewReady reports whether the set qualifies for the comparison view
// (2 or 3 members). Below that the view degrades to a prompt state.
func (s *Set) ViewReady() bool {
	n := s.Size()
	return n >= MinViewItems && n <= MaxItems
}

// Items returns the members in insertion order as a copy.
func (s *Set) Items() []models.Bike {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Bike, len(s.items))
	copy(out, s.items)
	return out
}
