package imap

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Capability string

const (
	IMAP4rev1     Capability = `IMAP4rev1`
	StartTLS      Capability = `STARTTLS`
	LoginDisabled Capability = `LOGINDISABLED`
	IDLE          Capability = `IDLE`
	UNSELECT      Capability = `UNSELECT`
	UIDPLUS       Capability = `UIDPLUS`
	MOVE          Capability = `MOVE`
	ID            Capability = `ID`
	SASLIR        Capability = `SASL-IR`
)

const authPrefix = `AUTH=`

// AuthCapability returns the capability announcing support for the given SASL mechanism.
func AuthCapability(mechanism string) Capability {
	return Capability(authPrefix + mechanism)
}

// Capabilities is the set of capabilities announced by a server.
// Capabilities are case-insensitive; the spelling of the first announcement is kept.
type Capabilities map[string]Capability

// NewCapabilities creates a capability set containing the given capabilities.
func NewCapabilities(caps ...Capability) Capabilities {
	set := make(Capabilities)

	for _, c := range caps {
		set.Insert(c)
	}

	return set
}

// Insert adds the capability to the set. It returns false if an equivalent capability was already present.
func (set Capabilities) Insert(c Capability) bool {
	key := strings.ToLower(string(c))

	if _, ok := set[key]; ok {
		return false
	}

	set[key] = c

	return true
}

// Has returns true if and only if the capability is in the set.
func (set Capabilities) Has(c Capability) bool {
	return set.HasString(string(c))
}

// HasString returns true if and only if a capability with the given name is in the set.
func (set Capabilities) HasString(c string) bool {
	_, ok := set[strings.ToLower(c)]
	return ok
}

// Len returns the number of capabilities in the set.
func (set Capabilities) Len() int {
	return len(set)
}

// ToSlice returns the capabilities as a sorted slice.
func (set Capabilities) ToSlice() []Capability {
	caps := maps.Values(set)

	slices.Sort(caps)

	return caps
}

// AuthMechanisms returns the SASL mechanisms announced with AUTH= capabilities, upper-cased and sorted.
func (set Capabilities) AuthMechanisms() []string {
	var mechs []string

	for key := range set {
		if strings.HasPrefix(key, strings.ToLower(authPrefix)) {
			mechs = append(mechs, strings.ToUpper(key[len(authPrefix):]))
		}
	}

	slices.Sort(mechs)

	return mechs
}
