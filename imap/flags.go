package imap

import (
	"strings"

	"github.com/bradenaw/juniper/xslices"
	goimap "github.com/emersion/go-imap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	FlagSeen     = goimap.SeenFlag
	FlagAnswered = goimap.AnsweredFlag
	FlagFlagged  = goimap.FlaggedFlag
	FlagDeleted  = goimap.DeletedFlag
	FlagDraft    = goimap.DraftFlag
	FlagRecent   = goimap.RecentFlag // Read-only!.

	// FlagWildcard may only appear in PERMANENTFLAGS; it means new keywords can be created.
	FlagWildcard = goimap.TryCreateFlag
)

// FlagSet represents a set of IMAP flags. Flags are case-insensitive and no duplicates are allowed.
// System flags are stored in their RFC 3501 spelling whatever the server sent.
type FlagSet map[string]string

// NewFlagSet creates a flag set containing the specified flags.
func NewFlagSet(flags ...string) FlagSet {
	fs := make(FlagSet)

	for _, item := range flags {
		fs.add(item)
	}

	return fs
}

// NewFlagSetFromSlice creates a flag set containing the flags from a slice.
func NewFlagSetFromSlice(flags []string) FlagSet {
	return NewFlagSet(flags...)
}

// Len returns the number of flags in the flag set.
func (fs FlagSet) Len() int {
	return len(fs)
}

// ToSlice Returns the list of flags in the set as a sorted string slice. The returned list is a hard copy of the internal
// slice to avoid direct modifications of the FlagSet value that would break the uniqueness and case insensitivity rules.
func (fs FlagSet) ToSlice() []string {
	flags := maps.Values(fs)

	slices.Sort(flags)

	return flags
}

// Contains returns true if and only if the flag is in the set.
func (fs FlagSet) Contains(flag string) bool {
	_, ok := fs[strings.ToLower(flag)]
	return ok
}

// ContainsAll returns true if and only if all of the flags are in the set.
func (fs FlagSet) ContainsAll(flags ...string) bool {
	return xslices.IndexFunc(flags, func(f string) bool {
		return !fs.Contains(f)
	}) < 0
}

// Equals returns true if and only if the two sets are equal (same number of elements and each element of fs is also in otherFs).
func (fs FlagSet) Equals(otherFs FlagSet) bool {
	if fs.Len() != otherFs.Len() {
		return false
	}

	for key := range fs {
		if _, ok := otherFs[key]; !ok {
			return false
		}
	}

	return true
}

// Add returns a copy of the flag set with the given flags added. The case of existing elements is preserved.
func (fs FlagSet) Add(flags ...string) FlagSet {
	return fs.clone().add(flags...)
}

// AddFlagSet returns the union of both sets.
func (fs FlagSet) AddFlagSet(set FlagSet) FlagSet {
	return fs.Add(set.ToSlice()...)
}

// AllowsKeywords returns true if the set, used as PERMANENTFLAGS, contains the \* wildcard.
func (fs FlagSet) AllowsKeywords() bool {
	return fs.Contains(FlagWildcard)
}

func (fs FlagSet) add(flags ...string) FlagSet {
	for _, flag := range flags {
		flagLower := strings.ToLower(flag)

		if _, ok := fs[flagLower]; ok {
			continue
		}

		fs[flagLower] = canonicalFlag(flag)
	}

	return fs
}

// clone creates a hard copy of the flag set.
func (fs FlagSet) clone() FlagSet {
	return NewFlagSetFromSlice(fs.ToSlice())
}

// canonicalFlag fixes the case of system flags and leaves keywords untouched.
func canonicalFlag(flag string) string {
	if canonical := goimap.CanonicalFlag(flag); canonical != strings.ToLower(flag) {
		return canonical
	}

	return flag
}
