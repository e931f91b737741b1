package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/imap/response"
	"github.com/bradenaw/juniper/stream"
	goimap "github.com/emersion/go-imap"
	"golang.org/x/exp/slices"
)

// FetchRecord is the data returned for one message by FETCH.
// Flags, UID and Size are extracted up front; everything the server sent is kept in Attributes.
type FetchRecord struct {
	SeqNum imap.SeqID
	Flags  imap.FlagSet
	UID    *imap.UID
	Size   *uint32

	Attributes []response.FetchAttribute
}

func newFetchRecord(fetch *response.Fetch) *FetchRecord {
	rec := &FetchRecord{
		SeqNum:     fetch.SeqNum,
		Flags:      imap.NewFlagSet(),
		Attributes: slices.Clone(fetch.Attributes),
	}

	for _, attr := range fetch.Attributes {
		switch attr := attr.(type) {
		case *response.AttrFlags:
			rec.Flags = rec.Flags.Add(attr.Flags...)

		case *response.AttrUID:
			uid := attr.UID
			rec.UID = &uid

		case *response.AttrRFC822Size:
			size := attr.Size
			rec.Size = &size
		}
	}

	return rec
}

// Body returns the whole message, sent as BODY[] or RFC822.
func (r *FetchRecord) Body() ([]byte, bool) {
	return r.findSection(func(section *goimap.BodySectionName) bool {
		return section.Specifier == goimap.EntireSpecifier
	})
}

// Header returns the message header, sent as BODY[HEADER] or RFC822.HEADER.
func (r *FetchRecord) Header() ([]byte, bool) {
	return r.findSection(func(section *goimap.BodySectionName) bool {
		return section.Specifier == goimap.HeaderSpecifier && len(section.Fields) == 0 && !section.NotFields
	})
}

// Text returns the message text, sent as BODY[TEXT] or RFC822.TEXT.
func (r *FetchRecord) Text() ([]byte, bool) {
	return r.findSection(func(section *goimap.BodySectionName) bool {
		return section.Specifier == goimap.TextSpecifier
	})
}

// Section returns the data of the given body section. Partial sections match on their origin only,
// since that is all the server echoes back.
func (r *FetchRecord) Section(want *goimap.BodySectionName) ([]byte, bool) {
	for _, attr := range r.Attributes {
		if attr, ok := attr.(*response.AttrBodySection); ok && sameSection(attr.Section, want) {
			return attr.Data, true
		}
	}

	return nil, false
}

func (r *FetchRecord) Envelope() (*goimap.Envelope, bool) {
	for _, attr := range r.Attributes {
		if attr, ok := attr.(*response.AttrEnvelope); ok {
			return attr.Envelope, true
		}
	}

	return nil, false
}

func (r *FetchRecord) BodyStructure() (*goimap.BodyStructure, bool) {
	for _, attr := range r.Attributes {
		if attr, ok := attr.(*response.AttrBodyStructure); ok {
			return attr.BodyStructure, true
		}
	}

	return nil, false
}

func (r *FetchRecord) InternalDate() (time.Time, bool) {
	for _, attr := range r.Attributes {
		if attr, ok := attr.(*response.AttrInternalDate); ok {
			return attr.Date, true
		}
	}

	return time.Time{}, false
}

func (r *FetchRecord) String() string {
	return fmt.Sprintf("FetchRecord: SeqNum = %v, UID = %v, Size = %v, Flags = %v",
		r.SeqNum,
		optional(r.UID),
		optional(r.Size),
		r.Flags.ToSlice(),
	)
}

// findSection returns the first whole-message section, with no part path and no partial range, that matches.
func (r *FetchRecord) findSection(match func(*goimap.BodySectionName) bool) ([]byte, bool) {
	for _, attr := range r.Attributes {
		attr, ok := attr.(*response.AttrBodySection)
		if !ok {
			continue
		}

		if len(attr.Section.Path) == 0 && attr.Section.Partial == nil && match(attr.Section) {
			return attr.Data, true
		}
	}

	return nil, false
}

func sameSection(got, want *goimap.BodySectionName) bool {
	if got.Specifier != want.Specifier || got.NotFields != want.NotFields {
		return false
	}

	if !slices.Equal(got.Path, want.Path) {
		return false
	}

	if !slices.EqualFunc(got.Fields, want.Fields, strings.EqualFold) {
		return false
	}

	if len(want.Partial) == 0 {
		return len(got.Partial) == 0
	}

	return len(got.Partial) > 0 && got.Partial[0] == want.Partial[0]
}

func optional[T any](v *T) string {
	if v == nil {
		return "-"
	}

	return fmt.Sprint(*v)
}

// Fetches returns one record per FETCH response, in the order the server sent them.
func Fetches(s stream.Stream[*response.Record], sink Sender, opts ...Option) stream.Stream[*FetchRecord] {
	return newLazy(newExtractor("fetches", s, sink, opts), func(rec *response.Record) (*FetchRecord, bool) {
		fetch, ok := rec.Parsed().(*response.Fetch)
		if !ok {
			return nil, false
		}

		return newFetchRecord(fetch), true
	})
}
