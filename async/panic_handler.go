// Package async handles panics raised by goroutines the library starts on the caller's behalf.
package async

// PanicHandler receives the value of a recovered panic.
type PanicHandler interface {
	HandlePanic(r any)
}

// NoopPanicHandler re-raises the panic, as if no handler was installed.
type NoopPanicHandler struct{}

func (NoopPanicHandler) HandlePanic(r any) {
	panic(r)
}

// HandlePanic passes a recovered panic to the handler. It must be deferred directly.
// A nil handler leaves the panic alone.
func HandlePanic(panicHandler PanicHandler) {
	if panicHandler == nil {
		return
	}

	if r := recover(); r != nil {
		panicHandler.HandlePanic(r)
	}
}
