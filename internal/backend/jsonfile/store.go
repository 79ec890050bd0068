package jsonfile

import "todo/internal/service"

// Store implements service.Service over the two file-backed stores.
type Store struct {
	items    *ItemStore
	patterns *PatternStore
}

// New opens both stores. Missing or corrupt files load as empty.
func New(itemPath, patternPath string) *Store {
	return &Store{
		items:    NewItemStore(itemPath),
		patterns: NewPatternStore(patternPath),
	}
}

func (s *Store) AddItem(text string) (service.Item, error) { return s.items.Add(text) }
func (s *Store) RemoveItem(index int) (*service.Item, error) {
	return s.items.Remove(index)
}
func (s *Store) CompleteItem(index int) (bool, error)   { return s.items.Complete(index) }
func (s *Store) UncompleteItem(index int) (bool, error) { return s.items.Uncomplete(index) }
func (s *Store) ListItems(filter service.ListFilter) []service.Item {
	return s.items.List(filter)
}
func (s *Store) ItemCount() int                 { return s.items.Len() }
func (s *Store) ClearCompleted() (int, error)   { return s.items.ClearCompleted() }
func (s *Store) AddPattern(prefix, expansion string) error {
	return s.patterns.Add(prefix, expansion)
}
func (s *Store) RemovePattern(prefix string) (bool, error) { return s.patterns.Remove(prefix) }
func (s *Store) GetPattern(prefix string) (string, bool)   { return s.patterns.Get(prefix) }
func (s *Store) ListPatterns() []service.Pattern           { return s.patterns.List() }
func (s *Store) FindMatchingPatterns(partial string) []service.Pattern {
	return s.patterns.FindMatching(partial)
}
func (s *Store) ExpandText(text string) string { return s.patterns.Expand(text) }

// Reload re-reads both backing files, implementing service.Reloader.
func (s *Store) Reload() {
	s.items.load()
	s.patterns.load()
}
