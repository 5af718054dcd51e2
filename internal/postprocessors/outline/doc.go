// Package outline derives the heading structure of a snippet body and
// recovers the text under a heading.
//
// Fenced code blocks are used only to filter matches. Every offset refers
// to the original body, so a Span can be sliced from it directly. The
// functions are pure and safe for concurrent use.
package outline
