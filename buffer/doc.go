// Package buffer implements the text model of a single edited line.
//
// Offsets are 0-based rune indices. Ranges are half-open: [start, end).
// Every method that takes an offset validates it and reports violations as
// *RangeError; nothing is clamped.
package buffer
