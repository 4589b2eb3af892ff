// Package styles performs the same fetch-and-decode of one person in several
// error-handling styles, from plain error propagation to a tagged pipeline.
//
// Every style returns a Report. A Report carries either the decoded Person or
// a short fallback text chosen from the failure kind.
package styles
