// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. These functions form the building blocks for error-aware
// call sites without channels.
//
// Highlights:
// - Succeed/Fail: construct Result[T]
// - Validate/AndValidate/FilterOrFail: turn a rejected value into a failure
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Try: call a function (Out, error) and convert error to failure
// - Tee/DoubleTee: side-effect helpers
// - Recover: map selected failures back onto the success track
// - Finally: reduce to a concrete value via success/error handlers
package solo
