package catalog

import (
	"sort"
	"strings"
)

// Store is the in-memory catalog. It is an explicit value passed to the
// components that need it; there is no package-level instance.
type Store struct {
	tables      map[string]Table
	relTypes    map[string]RelationshipType
	packages    map[string]Package // keyed by both sys_id and source
	suggestions []SuggestedRelationship
}

// NewStore creates an empty catalog store.
func NewStore() *Store {
	return &Store{
		tables:   make(map[string]Table),
		relTypes: make(map[string]RelationshipType),
		packages: make(map[string]Package),
	}
}

// PutTable adds or replaces a table record.
func (s *Store) PutTable(t Table) {
	if t.Name == "" {
		return
	}
	s.tables[t.Name] = t
}

// Table returns the record for a table name.
func (s *Store) Table(name string) (Table, bool) {
	t, ok := s.tables[name]
	return t, ok
}

// TableNames returns all known table names in sorted order.
func (s *Store) TableNames() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TableCount returns the number of table records.
func (s *Store) TableCount() int { return len(s.tables) }

// PutRelationshipType adds or replaces a relationship type record.
func (s *Store) PutRelationshipType(rt RelationshipType) {
	if rt.ID == "" {
		return
	}
	s.relTypes[rt.ID] = rt
}

// RelationshipType returns the record for a relationship type id.
func (s *Store) RelationshipType(id string) (RelationshipType, bool) {
	rt, ok := s.relTypes[id]
	return rt, ok
}

// RelationshipTypeCount returns the number of relationship type records.
func (s *Store) RelationshipTypeCount() int { return len(s.relTypes) }

// PutPackage adds a package record, indexed by both source and sys_id so
// either key resolves to the same record.
func (s *Store) PutPackage(p Package) {
	if p.Source != "" {
		s.packages[p.Source] = p
	}
	if p.ID != "" {
		s.packages[p.ID] = p
	}
}

// Package returns the record for a package sys_id or source string.
func (s *Store) Package(key string) (Package, bool) {
	p, ok := s.packages[key]
	return p, ok
}

// AddSuggestion appends a suggested relationship in ingestion order.
func (s *Store) AddSuggestion(sr SuggestedRelationship) {
	s.suggestions = append(s.suggestions, sr)
}

// Suggestions returns all suggested relationships in ingestion order.
func (s *Store) Suggestions() []SuggestedRelationship {
	return s.suggestions
}

// DisplayLabel returns a human-readable label for a table, truncated to
// maxLen runes. Tables without a label fall back to a title-cased form of
// the table name.
func (s *Store) DisplayLabel(name string, maxLen int) string {
	label := name
	if t, ok := s.tables[name]; ok && t.Label != "" {
		label = t.Label
	}
	if label == name {
		label = titleCase(strings.ReplaceAll(name, "_", " "))
	}
	return truncate(label, maxLen)
}

// PackageDisplayName returns a human-readable name for a package source,
// cleaning up the common ServiceNow naming prefixes.
func (s *Store) PackageDisplayName(source string, maxLen int) string {
	if source == "" {
		return "Unknown Package"
	}
	p, ok := s.packages[source]
	if !ok {
		return "Unknown Package"
	}
	name := p.Name
	if name == "" {
		name = source
	}

	switch {
	case strings.HasPrefix(name, "@servicenow/"):
		name = "SN: " + strings.TrimPrefix(name, "@servicenow/")
	case strings.HasPrefix(name, "@devsnc/"):
		name = "DevSNC: " + strings.TrimPrefix(name, "@devsnc/")
	case strings.HasPrefix(name, "com."):
		// com.glide.service-portal -> Service Portal
		parts := strings.Split(name, ".")
		if len(parts) > 2 {
			name = strings.Join(parts[2:], " ")
			name = strings.ReplaceAll(name, "-", " ")
			name = strings.ReplaceAll(name, "_", " ")
			name = titleCase(name)
		}
	case strings.HasPrefix(source, "sn_"):
		if name == source {
			name = "SN " + titleCase(strings.ReplaceAll(strings.TrimPrefix(source, "sn_"), "_", " "))
		}
	}

	return truncate(name, maxLen)
}

// truncate shortens a string to maxLen runes, ending with an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// titleCase capitalizes the first letter of every space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
