package imap

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// IDSet is an unordered set of message sequence numbers or UIDs.
type IDSet map[uint32]struct{}

func NewIDSet(ids ...uint32) IDSet {
	set := make(IDSet, len(ids))

	set.Add(ids...)

	return set
}

// Add inserts the given ids; ids already present collapse.
func (set IDSet) Add(ids ...uint32) {
	for _, id := range ids {
		set[id] = struct{}{}
	}
}

func (set IDSet) Contains(id uint32) bool {
	_, ok := set[id]
	return ok
}

func (set IDSet) Len() int {
	return len(set)
}

// ToSlice returns the ids in ascending order.
func (set IDSet) ToSlice() []uint32 {
	ids := maps.Keys(set)

	slices.Sort(ids)

	return ids
}
