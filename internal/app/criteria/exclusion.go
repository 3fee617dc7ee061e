package criteria

import "sort"

// ExclusionSet holds the ids of loggers whose entries are filtered out of the query
type ExclusionSet struct {
	ids map[int]struct{}
}

// NewExclusionSet creates a set holding the given ids
func NewExclusionSet(ids ...int) ExclusionSet {
	s := ExclusionSet{ids: make(map[int]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}

	return s
}

// Add excludes a logger; adding a present id is a no-op
func (s *ExclusionSet) Add(id int) {
	if s.ids == nil {
		s.ids = make(map[int]struct{})
	}

	s.ids[id] = struct{}{}
}

// Remove includes a logger again; removing an absent id is a no-op
func (s *ExclusionSet) Remove(id int) {
	delete(s.ids, id)
}

// ReplaceAll swaps the whole set for the given ids
func (s *ExclusionSet) ReplaceAll(ids []int) {
	*s = NewExclusionSet(ids...)
}

// ToggleAll applies the master checkbox: exclude everyone when nothing is excluded, otherwise include everyone
func (s *ExclusionSet) ToggleAll(allKnownIDs []int) {
	*s = ToggleAll(*s, allKnownIDs)
}

// Contains reports whether the logger is excluded
func (s ExclusionSet) Contains(id int) bool {
	_, ok := s.ids[id]
	return ok
}

// IsAllIncluded reports whether no logger is excluded
func (s ExclusionSet) IsAllIncluded() bool {
	return len(s.ids) == 0
}

// Len returns the number of excluded loggers
func (s ExclusionSet) Len() int {
	return len(s.ids)
}

// IDs returns the excluded ids in ascending order
func (s ExclusionSet) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}

// Clone returns an independent copy
func (s ExclusionSet) Clone() ExclusionSet {
	return NewExclusionSet(s.IDs()...)
}

// Equal reports whether both sets hold the same ids
func (s ExclusionSet) Equal(other ExclusionSet) bool {
	if len(s.ids) != len(other.ids) {
		return false
	}

	for id := range s.ids {
		if !other.Contains(id) {
			return false
		}
	}

	return true
}

// ToggleAll is the master checkbox as a pure function of the current set and the known id universe
func ToggleAll(current ExclusionSet, universe []int) ExclusionSet {
	if current.IsAllIncluded() {
		return NewExclusionSet(universe...)
	}

	return NewExclusionSet()
}
