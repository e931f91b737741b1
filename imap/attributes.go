package imap

import (
	"strings"

	goimap "github.com/emersion/go-imap"
)

// NameAttribute is a mailbox name attribute sent in LIST and LSUB responses.
// Attributes outside the known set are extensions and are kept as sent.
type NameAttribute string

const (
	AttrNoSelect    NameAttribute = goimap.NoSelectAttr
	AttrNoInferiors NameAttribute = goimap.NoInferiorsAttr
	AttrMarked      NameAttribute = goimap.MarkedAttr
	AttrUnmarked    NameAttribute = goimap.UnmarkedAttr

	// Children attributes as defined in RFC-3348.
	AttrHasChildren   NameAttribute = goimap.HasChildrenAttr
	AttrHasNoChildren NameAttribute = goimap.HasNoChildrenAttr

	// Special Use attributes as defined in RFC-6154.
	AttrAll     NameAttribute = goimap.AllAttr
	AttrArchive NameAttribute = goimap.ArchiveAttr
	AttrDrafts  NameAttribute = goimap.DraftsAttr
	AttrFlagged NameAttribute = goimap.FlaggedAttr
	AttrJunk    NameAttribute = goimap.JunkAttr
	AttrSent    NameAttribute = goimap.SentAttr
	AttrTrash   NameAttribute = goimap.TrashAttr
)

var knownAttributes = []NameAttribute{
	AttrNoSelect,
	AttrNoInferiors,
	AttrMarked,
	AttrUnmarked,
	AttrHasChildren,
	AttrHasNoChildren,
	AttrAll,
	AttrArchive,
	AttrDrafts,
	AttrFlagged,
	AttrJunk,
	AttrSent,
	AttrTrash,
}

// NewNameAttribute returns the attribute for the given server string.
// Known attributes are matched case-insensitively and returned in their RFC spelling.
func NewNameAttribute(attr string) NameAttribute {
	for _, known := range knownAttributes {
		if strings.EqualFold(string(known), attr) {
			return known
		}
	}

	return NameAttribute(attr)
}

// IsExtension returns true if the attribute is not one of the known attributes.
func (a NameAttribute) IsExtension() bool {
	for _, known := range knownAttributes {
		if a == known {
			return false
		}
	}

	return true
}
