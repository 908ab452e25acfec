package tool

import (
	"context"
	"sync"
)

// DispatchObservation captures one dispatch outcome.
type DispatchObservation struct {
	Tool       string
	DurationMS int64
	Success    bool
	ErrorKind  ErrorKind
}

// Observer receives dispatch-level observability events.
type Observer interface {
	ObserveDispatch(ctx context.Context, observation DispatchObservation)
}

type noopObserver struct{}

func (noopObserver) ObserveDispatch(context.Context, DispatchObservation) {}

var (
	observerMu     sync.RWMutex
	activeObserver Observer = noopObserver{}
)

// SetObserver sets the process-wide dispatch observer. Passing nil restores
// the no-op observer.
func SetObserver(observer Observer) {
	observerMu.Lock()
	defer observerMu.Unlock()
	if observer == nil {
		activeObserver = noopObserver{}
		return
	}
	activeObserver = observer
}

func emitDispatchObservation(ctx context.Context, observation DispatchObservation) {
	observerMu.RLock()
	observer := activeObserver
	observerMu.RUnlock()
	observer.ObserveDispatch(ctx, observation)
}
