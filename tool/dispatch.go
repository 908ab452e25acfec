package tool

import (
	"context"
	"time"
)

// CallRequest is one decoded procedure call. ID is the transport's opaque
// correlation token; the dispatcher carries it through untouched.
type CallRequest struct {
	ID        any
	ToolName  string
	Arguments map[string]any
}

// CallResult is the outcome of exactly one CallRequest. Exactly one of
// Value and Err is meaningful: Err == nil means success.
type CallResult struct {
	Value any
	Err   *CallError
}

// OK reports whether the call succeeded.
func (r CallResult) OK() bool {
	return r.Err == nil
}

// Dispatcher resolves, validates, and invokes tool calls against a registry.
// It holds no per-call state and performs no I/O, so a single instance is
// safe for concurrent use.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a dispatcher over the given registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Dispatch runs one call to completion: resolve the tool, normalize the
// arguments, invoke the handler, and fold every failure path into the
// four-kind taxonomy. Every request produces exactly one result.
func (d *Dispatcher) Dispatch(ctx context.Context, req CallRequest) CallResult {
	start := time.Now()

	desc, err := d.registry.Lookup(req.ToolName)
	if err != nil {
		return d.finish(ctx, req, start, CallResult{
			Err: newCallError(KindMethodNotFound, err.Error(), err),
		})
	}

	normalized, err := ValidateArgs(desc.Params, req.Arguments)
	if err != nil {
		return d.finish(ctx, req, start, CallResult{
			Err: newCallError(KindInvalidParams, err.Error(), err),
		})
	}

	value, err, panicked := invokeHandler(desc.Handler, normalized)
	if panicked {
		// Defect in a handler. Internals must not leak to callers.
		return d.finish(ctx, req, start, CallResult{
			Err: newCallError(KindInternal, "unexpected error", err),
		})
	}
	if err != nil {
		return d.finish(ctx, req, start, CallResult{
			Err: newCallError(KindToolExecution, err.Error(), err),
		})
	}

	return d.finish(ctx, req, start, CallResult{Value: value})
}

func (d *Dispatcher) finish(ctx context.Context, req CallRequest, start time.Time, result CallResult) CallResult {
	obs := DispatchObservation{
		Tool:       req.ToolName,
		DurationMS: time.Since(start).Milliseconds(),
		Success:    result.OK(),
	}
	if result.Err != nil {
		obs.ErrorKind = result.Err.Kind
	}
	emitDispatchObservation(ctx, obs)
	return result
}

// invokeHandler calls a handler and converts panics into an error plus a
// panicked flag, keeping the raw panic value out of the caller-facing path.
func invokeHandler(h Handler, args map[string]any) (value any, err error, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			value = nil
			err = &panicError{value: r}
			panicked = true
		}
	}()
	value, err = h(args)
	return value, err, false
}

type panicError struct {
	value any
}

func (e *panicError) Error() string {
	return "handler panic"
}
