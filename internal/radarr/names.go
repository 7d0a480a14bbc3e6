package radarr

import (
	"sort"
	"strings"
)

// NameMap is a two-way mapping between server ids and display names, used for
// quality profiles and tags.
type NameMap struct {
	byID   map[int64]string
	byName map[string]int64
}

// NewNameMap builds a map from id/name pairs. Later duplicates win.
func NewNameMap(pairs map[int64]string) NameMap {
	m := NameMap{
		byID:   make(map[int64]string, len(pairs)),
		byName: make(map[string]int64, len(pairs)),
	}
	for id, name := range pairs {
		m.Insert(id, name)
	}
	return m
}

// Insert records id <-> name, replacing any previous pairing of either side.
func (m *NameMap) Insert(id int64, name string) {
	if m.byID == nil {
		m.byID = make(map[int64]string)
		m.byName = make(map[string]int64)
	}
	if old, ok := m.byID[id]; ok {
		delete(m.byName, old)
	}
	if old, ok := m.byName[name]; ok {
		delete(m.byID, old)
	}
	m.byID[id] = name
	m.byName[name] = id
}

// Name returns the name for id.
func (m NameMap) Name(id int64) (string, bool) {
	name, ok := m.byID[id]
	return name, ok
}

// ID returns the id for name.
func (m NameMap) ID(name string) (int64, bool) {
	id, ok := m.byName[name]
	return id, ok
}

// Len returns the number of pairs.
func (m NameMap) Len() int {
	return len(m.byID)
}

// SortedNames returns every name in lexical order.
func (m NameMap) SortedNames() []string {
	names := make([]string, 0, len(m.byName))
	for name := range m.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JoinNames converts ids into a comma separated name list, skipping ids the
// map does not know.
func (m NameMap) JoinNames(ids []int64) string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := m.byID[id]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

// SplitIDs converts a comma separated name list into ids. Names the map does
// not know are returned separately.
func (m NameMap) SplitIDs(text string) (ids []int64, unknown []string) {
	for _, part := range strings.Split(text, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if id, ok := m.byName[strings.ToLower(name)]; ok {
			ids = append(ids, id)
			continue
		}
		if id, ok := m.byName[name]; ok {
			ids = append(ids, id)
			continue
		}
		unknown = append(unknown, name)
	}
	return ids, unknown
}
