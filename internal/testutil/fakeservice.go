// Package testutil provides testing utilities.
package testutil

import (
	"strings"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for
// testing. It mirrors the store semantics without touching disk.
type FakeService struct {
	mu       sync.RWMutex
	items    []service.Item
	patterns []service.Pattern
	pos      map[string]int

	// Error injection for testing
	AddItemErr        error
	RemoveItemErr     error
	CompleteItemErr   error
	UncompleteItemErr error
	ClearCompletedErr error
	AddPatternErr     error
	RemovePatternErr  error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{pos: make(map[string]int)}
}

// SeedItem adds an item directly, bypassing error injection.
func (f *FakeService) SeedItem(text string, completed bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	item := service.Item{Text: text, Completed: completed, CreatedAt: service.Now()}
	if completed {
		now := service.Now()
		item.CompletedAt = &now
	}
	f.items = append(f.items, item)
}

// SeedPattern adds a pattern directly, bypassing error injection.
func (f *FakeService) SeedPattern(prefix, expansion string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsert(prefix, expansion)
}

func (f *FakeService) upsert(prefix, expansion string) {
	if i, exists := f.pos[prefix]; exists {
		f.patterns[i].Expansion = expansion
		return
	}
	f.pos[prefix] = len(f.patterns)
	f.patterns = append(f.patterns, service.Pattern{Prefix: prefix, Expansion: expansion})
}

// AddItem implements service.Service.
func (f *FakeService) AddItem(text string) (service.Item, error) {
	if f.AddItemErr != nil {
		return service.Item{}, f.AddItemErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	item := service.Item{Text: text, CreatedAt: service.Now()}
	f.items = append(f.items, item)
	return item, nil
}

// RemoveItem implements service.Service.
func (f *FakeService) RemoveItem(index int) (*service.Item, error) {
	if f.RemoveItemErr != nil {
		return nil, f.RemoveItemErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.items) {
		return nil, nil
	}
	item := f.items[index]
	f.items = append(f.items[:index], f.items[index+1:]...)
	return &item, nil
}

// CompleteItem implements service.Service.
func (f *FakeService) CompleteItem(index int) (bool, error) {
	if f.CompleteItemErr != nil {
		return false, f.CompleteItemErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.items) {
		return false, nil
	}
	now := service.Now()
	f.items[index].Completed = true
	f.items[index].CompletedAt = &now
	return true, nil
}

// UncompleteItem implements service.Service.
func (f *FakeService) UncompleteItem(index int) (bool, error) {
	if f.UncompleteItemErr != nil {
		return false, f.UncompleteItemErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if index < 0 || index >= len(f.items) {
		return false, nil
	}
	f.items[index].Completed = false
	f.items[index].CompletedAt = nil
	return true, nil
}

// ListItems implements service.Service.
func (f *FakeService) ListItems(filter service.ListFilter) []service.Item {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Item, 0, len(f.items))
	for _, item := range f.items {
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

// ItemCount implements service.Service.
func (f *FakeService) ItemCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

// ClearCompleted implements service.Service.
func (f *FakeService) ClearCompleted() (int, error) {
	if f.ClearCompletedErr != nil {
		return 0, f.ClearCompletedErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	survivors := f.items[:0:0]
	for _, item := range f.items {
		if !item.Completed {
			survivors = append(survivors, item)
		}
	}
	removed := len(f.items) - len(survivors)
	f.items = survivors
	return removed, nil
}

// AddPattern implements service.Service.
func (f *FakeService) AddPattern(prefix, expansion string) error {
	if f.AddPatternErr != nil {
		return f.AddPatternErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upsert(prefix, expansion)
	return nil
}

// RemovePattern implements service.Service.
func (f *FakeService) RemovePattern(prefix string) (bool, error) {
	if f.RemovePatternErr != nil {
		return false, f.RemovePatternErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	i, exists := f.pos[prefix]
	if !exists {
		return false, nil
	}
	f.patterns = append(f.patterns[:i], f.patterns[i+1:]...)
	delete(f.pos, prefix)
	for j := i; j < len(f.patterns); j++ {
		f.pos[f.patterns[j].Prefix] = j
	}
	return true, nil
}

// GetPattern implements service.Service.
func (f *FakeService) GetPattern(prefix string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	i, exists := f.pos[prefix]
	if !exists {
		return "", false
	}
	return f.patterns[i].Expansion, true
}

// ListPatterns implements service.Service.
func (f *FakeService) ListPatterns() []service.Pattern {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]service.Pattern, len(f.patterns))
	copy(out, f.patterns)
	return out
}

// FindMatchingPatterns implements service.Service.
func (f *FakeService) FindMatchingPatterns(partial string) []service.Pattern {
	f.mu.RLock()
	defer f.mu.RUnlock()
	var out []service.Pattern
	for _, p := range f.patterns {
		if strings.HasPrefix(p.Prefix, partial) {
			out = append(out, p)
		}
	}
	return out
}

// ExpandText implements service.Service.
func (f *FakeService) ExpandText(text string) string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, p := range f.patterns {
		if strings.HasPrefix(text, p.Prefix) {
			return p.Expansion + text[len(p.Prefix):]
		}
	}
	return text
}
