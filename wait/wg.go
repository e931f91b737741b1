// Package wait tracks goroutines so their owner can wait for them to return.
package wait

import (
	"sync"

	"github.com/ProtonMail/imapclient/async"
)

type Group struct {
	wg sync.WaitGroup

	// PanicHandler is given any panic raised by a goroutine of the group. If nil, panics are not recovered.
	PanicHandler async.PanicHandler
}

func (wg *Group) Go(f func()) {
	wg.wg.Add(1)

	go func() {
		defer wg.wg.Done()
		defer async.HandlePanic(wg.PanicHandler)

		f()
	}()
}

func (wg *Group) Wait() {
	wg.wg.Wait()
}
