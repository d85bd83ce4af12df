package repository

import (
	"maps"
	"slices"
	"sync"

	"github.com/deppfellow/items-api/internal/model"
)

// ItemStore keeps items in memory and assigns their ids.
//
// Invariants:
//   - ids are assigned here, start at 1 and strictly increase;
//   - nextID is greater than every id ever issued, so deleted ids are never reused.
//
// A single RWMutex guards both the map and the counter.
type ItemStore struct {
	mu     sync.RWMutex
	items  map[int64]model.Item
	nextID int64
}

// NewItemStore returns an empty store whose first id will be 1.
func NewItemStore() *ItemStore {
	return &ItemStore{
		items:  make(map[int64]model.Item),
		nextID: 1,
	}
}

// List returns every item ordered by id, which is also insertion order.
func (s *ItemStore) List() []model.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.Item, 0, len(s.items))
	for _, id := range slices.Sorted(maps.Keys(s.items)) {
		items = append(items, s.items[id].Clone())
	}
	return items
}

// Get looks an item up by id. The boolean is false when it does not exist.
func (s *ItemStore) Get(id int64) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return model.Item{}, false
	}
	return item.Clone(), true
}

// Create stores a new item under the next id.
func (s *ItemStore) Create(name string, description *string) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := model.Item{
		ID:          s.nextID,
		Name:        name,
		Description: description,
	}.Clone()

	s.items[item.ID] = item
	s.nextID++

	return item.Clone()
}

// Update applies patch to the item with the given id.
//
// Fields absent from the patch are left unchanged. The boolean is false
// when the item does not exist, in which case nothing is modified.
func (s *ItemStore) Update(id int64, patch model.ItemPatch) (model.Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return model.Item{}, false
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description.Set {
		item.Description = patch.Description.Ptr()
	}

	s.items[id] = item
	return item.Clone(), true
}

// Delete removes the item and reports whether it existed.
func (s *ItemStore) Delete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	return true
}

// Len returns the number of stored items.
func (s *ItemStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}
