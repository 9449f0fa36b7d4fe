// Package editor implements the keystroke-to-edit state machine of a
// console line editor.
//
// A Session owns the line being edited: a buffer.Buffer, a Tracker that
// keeps the terminal cursor in step with the logical cursor, a position in
// the caller's History and an optional completion cycle. Each call to
// Handle resolves one keystroke to one Action through Bindings, applies it
// and repaints only the cells right of the edit point.
package editor
