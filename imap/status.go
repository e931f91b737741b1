package imap

import (
	"fmt"
	"strings"

	goimap "github.com/emersion/go-imap"
)

// StatusItem names a STATUS data item understood by the client.
type StatusItem string

// The closed set of STATUS items carried by unsolicited status pushes.
const (
	StatusMessages    = StatusItem(goimap.StatusMessages)
	StatusUIDNext     = StatusItem(goimap.StatusUidNext)
	StatusUIDValidity = StatusItem(goimap.StatusUidValidity)
	StatusUnseen      = StatusItem(goimap.StatusUnseen)
)

var statusItems = []StatusItem{
	StatusMessages,
	StatusUIDNext,
	StatusUIDValidity,
	StatusUnseen,
}

// ParseStatusItem returns the item with the given name. The bool is false if the item is not in the closed set.
func ParseStatusItem(name string) (StatusItem, bool) {
	for _, item := range statusItems {
		if strings.EqualFold(string(item), name) {
			return item, true
		}
	}

	return "", false
}

// StatusAttribute is one decoded STATUS item.
type StatusAttribute struct {
	Item  StatusItem
	Value uint32
}

func (a StatusAttribute) String() string {
	return fmt.Sprintf("%v %v", a.Item, a.Value)
}
