// Package realtime provides debounced live validation for a parameter set
// under interactive edit.
//
// A Monitor coalesces rapid successive edits into a single trailing-edge
// validation pass, exposes a Validating flag while feedback is stale, and
// supports an immediate manual pass that bypasses the debounce window:
//
//	m := realtime.NewMonitor(ps, realtime.Options{
//	    Debounce: 300 * time.Millisecond,
//	    Mode:     params.ModeAdvanced,
//	    OnResult: func(r validation.Result) { render(r) },
//	})
//	defer m.Close()
//
//	m.Update(edited)          // schedules a pass after the quiet period
//	result := m.Validate()    // immediate pass, returns the fresh result
//	m.ClearErrors()           // reset feedback without re-validating
//
// Staleness is handled with a generation counter: a pass scheduled before an
// edit never publishes after it, and Close guarantees no late callback.
// Panics inside the validation logic are downgraded to a synthetic result
// under the reserved "_general" field key so a live editing session cannot
// crash.
package realtime
