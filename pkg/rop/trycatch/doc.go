// Package trycatch converts fallible Go calls into rop.Result values so that
// call sites branch on data instead of on control flow.
//
// Two input shapes are supported and named explicitly:
//
//   - Sync runs a deferred computation once, right away, and returns its Result.
//   - Async and Await observe a computation that is already running (anything
//     with a Get() (T, error) method, such as future.Future) and never restart it.
//
// Failures are captured verbatim. A panic inside the computation is captured
// too: panicked errors are kept as they are, other panic values become
// *rop.PanicError. None of the functions here panic or apply timeouts.
//
// Nothing forces a caller to look at Err(); checking it is the caller's job.
package trycatch
