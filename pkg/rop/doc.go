// Package rop defines Result[T], a value that carries either a produced value
// or the error that prevented it. Exactly one of the two is present.
//
// Results are immutable: Success and Fail build them, accessors read them.
// Composition lives in the solo and chain subpackages, and trycatch turns
// ordinary Go calls and in-flight computations into Results.
package rop
