// Package service defines the backend-agnostic interface for store operations.
package service

// Service is the interface commands talk to. The concrete implementation
// owns two independent stores (items and patterns), each persisted on every
// mutation. Out-of-range indices and unknown prefixes are reported through
// sentinel returns (nil/false), never errors; the error results carry only
// persistence failures.
type Service interface {
	// AddItem appends a new pending item and returns it.
	AddItem(text string) (Item, error)

	// RemoveItem removes the item at the 0-based index and returns it.
	// Returns nil (and does not persist) if the index is out of range.
	RemoveItem(index int) (*Item, error)

	// CompleteItem marks the item at the 0-based index completed, stamping
	// completed_at even if it was already completed. Returns false if the
	// index is out of range.
	CompleteItem(index int) (bool, error)

	// UncompleteItem marks the item pending and clears completed_at.
	// Same range semantics as CompleteItem.
	UncompleteItem(index int) (bool, error)

	// ListItems returns a copy of the items matching the filter,
	// preserving list order.
	ListItems(filter ListFilter) []Item

	// ItemCount returns the number of items currently held.
	ItemCount() int

	// ClearCompleted removes all completed items, preserving the relative
	// order of survivors, and returns the number removed.
	ClearCompleted() (int, error)

	// AddPattern inserts or updates a pattern. Updating an existing prefix
	// keeps its original position in the insertion order.
	AddPattern(prefix, expansion string) error

	// RemovePattern deletes a pattern. Returns false (no-op, no persist)
	// if the prefix is not stored.
	RemovePattern(prefix string) (bool, error)

	// GetPattern looks up a prefix exactly (no prefix matching).
	GetPattern(prefix string) (string, bool)

	// ListPatterns returns a copy of all patterns in insertion order.
	ListPatterns() []Pattern

	// FindMatchingPatterns returns the stored patterns whose prefix starts
	// with partial, in insertion order. Used for discovery, not expansion.
	FindMatchingPatterns(partial string) []Pattern

	// ExpandText replaces a leading pattern prefix with its expansion,
	// keeping any trailing remainder. Patterns are scanned in insertion
	// order and the first leading match wins, even when a longer stored
	// prefix would also match. Returns text unchanged if nothing matches.
	ExpandText(text string) string
}
