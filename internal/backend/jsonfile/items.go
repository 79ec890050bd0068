package jsonfile

import (
	"encoding/json"

	"todo/internal/service"
)

// ItemStore holds the ordered todo item list backed by a JSON array file.
// Items are identified by 0-based position; removal shifts later items down.
type ItemStore struct {
	path  string
	items []service.Item
}

// NewItemStore loads the store from path. A missing, unreadable or
// malformed file yields an empty store.
func NewItemStore(path string) *ItemStore {
	s := &ItemStore{path: path}
	s.load()
	return s
}

func (s *ItemStore) load() {
	s.items = nil
	data, ok := readFile(s.path)
	if !ok {
		return
	}
	var items []service.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return
	}
	s.items = items
}

func (s *ItemStore) save() error {
	items := s.items
	if items == nil {
		items = []service.Item{}
	}
	data, err := marshalIndent(items)
	if err != nil {
		return err
	}
	return writeFile(s.path, data)
}

// Add appends a new pending item and persists.
func (s *ItemStore) Add(text string) (service.Item, error) {
	item := service.Item{
		Text:      text,
		CreatedAt: service.Now(),
	}
	s.items = append(s.items, item)
	if err := s.save(); err != nil {
		return service.Item{}, err
	}
	return item, nil
}

// Remove deletes and returns the item at index, or nil if out of range.
func (s *ItemStore) Remove(index int) (*service.Item, error) {
	if index < 0 || index >= len(s.items) {
		return nil, nil
	}
	item := s.items[index]
	s.items = append(s.items[:index], s.items[index+1:]...)
	if err := s.save(); err != nil {
		return nil, err
	}
	return &item, nil
}

// Complete marks the item at index completed. Re-completing an already
// completed item re-stamps completed_at.
func (s *ItemStore) Complete(index int) (bool, error) {
	if index < 0 || index >= len(s.items) {
		return false, nil
	}
	now := service.Now()
	s.items[index].Completed = true
	s.items[index].CompletedAt = &now
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Uncomplete marks the item at index pending and clears completed_at.
func (s *ItemStore) Uncomplete(index int) (bool, error) {
	if index < 0 || index >= len(s.items) {
		return false, nil
	}
	s.items[index].Completed = false
	s.items[index].CompletedAt = nil
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// List returns a copy of the items matching the filter, in list order.
func (s *ItemStore) List(filter service.ListFilter) []service.Item {
	out := make([]service.Item, 0, len(s.items))
	for _, item := range s.items {
		switch filter {
		case service.FilterPending:
			if item.Completed {
				continue
			}
		case service.FilterCompleted:
			if !item.Completed {
				continue
			}
		}
		out = append(out, item)
	}
	return out
}

// ClearCompleted removes all completed items and returns the number removed.
func (s *ItemStore) ClearCompleted() (int, error) {
	survivors := s.items[:0:0]
	for _, item := range s.items {
		if !item.Completed {
			survivors = append(survivors, item)
		}
	}
	removed := len(s.items) - len(survivors)
	s.items = survivors
	if err := s.save(); err != nil {
		return 0, err
	}
	return removed, nil
}

// Len returns the number of items currently held.
func (s *ItemStore) Len() int {
	return len(s.items)
}
