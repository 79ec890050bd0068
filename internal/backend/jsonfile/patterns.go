package jsonfile

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"todo/internal/service"
)

// PatternStore holds the prefix → expansion map backed by a JSON object
// file. Insertion order is part of the contract: expansion scans entries in
// the order they were first added, and the file is written in that order.
// A plain Go map would lose it, so the store keeps an ordered slice plus a
// position index.
type PatternStore struct {
	path    string
	entries []service.Pattern
	pos     map[string]int
}

// NewPatternStore loads the store from path. A missing, unreadable or
// malformed file yields an empty store.
func NewPatternStore(path string) *PatternStore {
	s := &PatternStore{path: path, pos: make(map[string]int)}
	s.load()
	return s
}

func (s *PatternStore) load() {
	s.entries = nil
	s.pos = make(map[string]int)
	data, ok := readFile(s.path)
	if !ok {
		return
	}

	// Token-level decode keeps the object's key order, which
	// json.Unmarshal into a map would destroy.
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return
	}

	var entries []service.Pattern
	pos := make(map[string]int)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return
		}
		key, ok := keyTok.(string)
		if !ok {
			return
		}
		var val string
		if err := dec.Decode(&val); err != nil {
			return
		}
		if i, exists := pos[key]; exists {
			entries[i].Expansion = val
			continue
		}
		pos[key] = len(entries)
		entries = append(entries, service.Pattern{Prefix: key, Expansion: val})
	}

	// Consume the closing brace and require EOF: trailing garbage after
	// the object makes the whole file malformed, same as the item store.
	if _, err := dec.Token(); err != nil {
		return
	}
	if _, err := dec.Token(); err != io.EOF {
		return
	}

	s.entries = entries
	s.pos = pos
}

func (s *PatternStore) save() error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString("\n  ")
		key, err := encodeString(e.Prefix)
		if err != nil {
			return err
		}
		val, err := encodeString(e.Expansion)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(s.entries) > 0 {
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return writeFile(s.path, buf.Bytes())
}

// Add inserts or updates a pattern and persists. Updating an existing
// prefix keeps its original position.
func (s *PatternStore) Add(prefix, expansion string) error {
	if i, exists := s.pos[prefix]; exists {
		s.entries[i].Expansion = expansion
	} else {
		s.pos[prefix] = len(s.entries)
		s.entries = append(s.entries, service.Pattern{Prefix: prefix, Expansion: expansion})
	}
	return s.save()
}

// Remove deletes a pattern. Returns false without persisting if the prefix
// is not stored.
func (s *PatternStore) Remove(prefix string) (bool, error) {
	i, exists := s.pos[prefix]
	if !exists {
		return false, nil
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	delete(s.pos, prefix)
	for j := i; j < len(s.entries); j++ {
		s.pos[s.entries[j].Prefix] = j
	}
	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

// Get looks up a prefix exactly.
func (s *PatternStore) Get(prefix string) (string, bool) {
	i, exists := s.pos[prefix]
	if !exists {
		return "", false
	}
	return s.entries[i].Expansion, true
}

// List returns a copy of all patterns in insertion order.
func (s *PatternStore) List() []service.Pattern {
	out := make([]service.Pattern, len(s.entries))
	copy(out, s.entries)
	return out
}

// FindMatching returns the stored patterns whose prefix starts with
// partial, in insertion order.
func (s *PatternStore) FindMatching(partial string) []service.Pattern {
	var out []service.Pattern
	for _, e := range s.entries {
		if strings.HasPrefix(e.Prefix, partial) {
			out = append(out, e)
		}
	}
	return out
}

// Expand replaces a leading pattern prefix with its expansion. Entries are
// scanned in insertion order and the first prefix that leads text wins,
// even when a longer stored prefix would also match. Longest-prefix
// matching would change the meaning of existing pattern files, so the scan
// order is deliberate.
func (s *PatternStore) Expand(text string) string {
	for _, e := range s.entries {
		if strings.HasPrefix(text, e.Prefix) {
			return e.Expansion + text[len(e.Prefix):]
		}
	}
	return text
}
