// Package chain offers a fluent wrapper around rop.Result so that a sequence
// of fallible steps reads top to bottom.
//
// Steps after the first failure are skipped; the failure travels unchanged to
// Catch or Finally, where it is turned into a value.
package chain
