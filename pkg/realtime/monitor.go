package realtime

import (
	"sync"
	"time"

	"densityhq/callisto/pkg/params"
	"densityhq/callisto/pkg/validation"
)

// DefaultDebounce is the quiet period applied between an edit and the
// validation pass it schedules.
const DefaultDebounce = 300 * time.Millisecond

// Options configures a Monitor.
type Options struct {
	// Debounce is the trailing-edge quiet period. Default: 300ms.
	Debounce time.Duration

	// Mode selects the schema tier for every pass. Default: basic.
	Mode params.Mode

	// ValidateOnStart runs the first pass immediately on construction,
	// bypassing the debounce window. Subsequent updates still debounce.
	ValidateOnStart bool

	// OnResult is invoked after every completed pass and after ClearErrors,
	// outside the monitor's lock. Optional.
	OnResult func(validation.Result)
}

// Monitor owns the live-editing validation lifecycle for one parameter set
// under edit: it coalesces rapid successive updates into a single debounced
// pass, guards against stale passes overwriting newer state, and guarantees
// that no callback fires after Close.
//
// The monitor only ever reads the parameter set; ownership of the mutable
// record stays with the hosting editor surface.
type Monitor struct {
	validator *validation.Validator
	opts      Options

	mu         sync.Mutex
	timer      *time.Timer
	latest     *params.ParameterSet
	gen        uint64
	result     validation.Result
	validating bool
	closed     bool
}

// NewMonitor creates a monitor for the given initial parameter set.
func NewMonitor(ps *params.ParameterSet, opts Options) *Monitor {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Mode == "" {
		opts.Mode = params.ModeBasic
	}

	m := &Monitor{
		validator: validation.NewValidator(),
		opts:      opts,
		latest:    ps,
		result:    validation.EmptyResult(),
	}

	if opts.ValidateOnStart {
		m.Validate()
	}

	return m
}

// Update registers a new parameter state and schedules a validation pass
// after the debounce window. A pending pass is cancelled and rescheduled, so
// a burst of edits evaluates only the last state, once.
func (m *Monitor) Update(ps *params.ParameterSet) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.latest = ps
	m.validating = true
	m.gen++
	gen := m.gen

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(m.opts.Debounce, func() {
		m.runPass(gen)
	})
}

// Validate performs an immediate synchronous pass on the latest parameter
// state, cancelling any pending debounced pass, and returns the fresh result.
func (m *Monitor) Validate() validation.Result {
	m.mu.Lock()
	if m.closed {
		result := m.result
		m.mu.Unlock()
		return result
	}

	m.gen++
	gen := m.gen
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.validating = true
	ps := m.latest
	mode := m.opts.Mode
	m.mu.Unlock()

	result := m.safeValidate(ps, mode)
	m.publish(gen, result)
	return result
}

// ClearErrors resets the observable result to the empty valid state without
// re-running validation. Any pending pass is cancelled so it cannot
// immediately overwrite the cleared state.
func (m *Monitor) ClearErrors() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.result = validation.EmptyResult()
	m.validating = false
	cb := m.opts.OnResult
	result := m.result
	m.mu.Unlock()

	if cb != nil {
		cb(result)
	}
}

// SetMode changes the schema tier used by subsequent passes.
func (m *Monitor) SetMode(mode params.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if mode.Valid() {
		m.opts.Mode = mode
	}
}

// Result returns the most recently published validation result.
func (m *Monitor) Result() validation.Result {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.result
}

// Validating reports whether a pass is pending or running. Consumers use it
// to disable submission controls while feedback is stale.
func (m *Monitor) Validating() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validating
}

// Close cancels any pending pass. After Close no callback fires and the
// monitor's state no longer changes.
func (m *Monitor) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}
	m.closed = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.validating = false
}

// runPass is the debounce timer callback.
func (m *Monitor) runPass(gen uint64) {
	m.mu.Lock()
	if m.closed || gen != m.gen {
		// Superseded by a newer edit or disposed; drop the stale pass.
		m.mu.Unlock()
		return
	}
	ps := m.latest
	mode := m.opts.Mode
	m.mu.Unlock()

	result := m.safeValidate(ps, mode)
	m.publish(gen, result)
}

// publish stores a pass result unless a newer edit superseded it while the
// pass was running.
func (m *Monitor) publish(gen uint64, result validation.Result) {
	m.mu.Lock()
	if m.closed || gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.result = result
	m.validating = false
	cb := m.opts.OnResult
	m.mu.Unlock()

	if cb != nil {
		cb(result)
	}
}

// safeValidate runs a pass and converts any panic into the synthetic
// internal-error result. Live validation must never crash the editing
// session.
func (m *Monitor) safeValidate(ps *params.ParameterSet, mode params.Mode) (result validation.Result) {
	defer func() {
		if r := recover(); r != nil {
			result = validation.InternalErrorResult()
		}
	}()
	return m.validator.Validate(ps, mode)
}
