package session

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/ProtonMail/imapclient/async"
	"github.com/ProtonMail/imapclient/imap"
	"github.com/ProtonMail/imapclient/logging"
	"github.com/ProtonMail/imapclient/wait"
	"github.com/sirupsen/logrus"
)

// Receiver yields unsolicited events. *unsolicited.Sink is a Receiver.
type Receiver interface {
	Recv(ctx context.Context) (imap.UnsolicitedEvent, error)
}

// View is the client's picture of the selected mailbox. It is replaced by each SELECT or EXAMINE
// and updated by the unsolicited events the server pushes in between.
type View struct {
	name  string
	state *imap.MailboxState
	lock  sync.RWMutex

	group wait.Group
	log   logrus.FieldLogger
}

// NewView returns a view with no mailbox selected. Panics raised while watching are given to panicHandler.
func NewView(panicHandler async.PanicHandler) *View {
	return &View{
		group: wait.Group{PanicHandler: panicHandler},
		log:   logrus.WithField("pkg", "session"),
	}
}

// Replace makes the given mailbox the selected one. The view keeps its own copy of the state.
func (v *View) Replace(name string, state *imap.MailboxState) {
	v.lock.Lock()
	defer v.lock.Unlock()

	v.name = name
	v.state = state.Clone()

	v.log.WithField("mailbox", name).WithField("state", v.state).Debug("Selected mailbox")
}

// Clear forgets the selected mailbox, as after CLOSE or UNSELECT.
func (v *View) Clear() {
	v.lock.Lock()
	defer v.lock.Unlock()

	v.name, v.state = "", nil
}

// Snapshot returns a copy of the selected mailbox's state. The bool is false if no mailbox is selected.
func (v *View) Snapshot() (string, *imap.MailboxState, bool) {
	v.lock.RLock()
	defer v.lock.RUnlock()

	if v.state == nil {
		return "", nil, false
	}

	return v.name, v.state.Clone(), true
}

// Apply folds the event into the selected mailbox's state.
// It returns false if the event did not concern the selected mailbox.
func (v *View) Apply(event imap.UnsolicitedEvent) bool {
	v.lock.Lock()
	defer v.lock.Unlock()

	if v.state == nil {
		return false
	}

	switch event := event.(type) {
	case *imap.ExistsCount:
		v.state.Exists = event.Count

	case *imap.RecentCount:
		v.state.Recent = event.Count

	case *imap.Expunged:
		v.applyExpunge(event.SeqNum)

	case *imap.StatusPush:
		if !sameMailbox(event.Mailbox, v.name) {
			return false
		}

		v.applyStatus(event)

	default:
		return false
	}

	return true
}

func (v *View) applyExpunge(seq imap.SeqID) {
	if v.state.Exists > 0 {
		v.state.Exists--
	}

	if unseen := v.state.Unseen; unseen != nil {
		switch {
		case *unseen == seq:
			// The first unseen message is gone; the next one is not known until the server says.
			v.state.Unseen = nil

		case *unseen > seq:
			shifted := *unseen - 1
			v.state.Unseen = &shifted
		}
	}
}

func (v *View) applyStatus(event *imap.StatusPush) {
	if messages, ok := event.Attribute(imap.StatusMessages); ok {
		v.state.Exists = messages
	}

	if uidNext, ok := event.Attribute(imap.StatusUIDNext); ok {
		uid := imap.UID(uidNext)
		v.state.UIDNext = &uid
	}

	if uidValidity, ok := event.Attribute(imap.StatusUIDValidity); ok {
		uid := imap.UID(uidValidity)
		v.state.UIDValidity = &uid
	}
}

// Watch applies the events received from r in a new goroutine, until ctx is done or r fails.
func (v *View) Watch(ctx context.Context, r Receiver) {
	v.group.Go(func() {
		logging.DoAnnotate(ctx, func(ctx context.Context) {
			v.watch(ctx, r)
		}, logging.Labels{
			"Action": "Watching unsolicited events",
		})
	})
}

func (v *View) watch(ctx context.Context, r Receiver) {
	for {
		event, err := r.Recv(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
				v.log.WithError(err).Debug("Stopped watching unsolicited events")
			}

			return
		}

		if v.Apply(event) {
			v.log.WithField("event", event).Trace("Applied unsolicited event")
		} else {
			v.log.WithField("event", event).Trace("Ignored unsolicited event")
		}
	}
}

// Wait blocks until every watcher has returned.
func (v *View) Wait() {
	v.group.Wait()
}

// sameMailbox compares mailbox names. INBOX is case-insensitive, other names are not.
func sameMailbox(a, b string) bool {
	if strings.EqualFold(a, imap.Inbox) {
		return strings.EqualFold(b, imap.Inbox)
	}

	return a == b
}
