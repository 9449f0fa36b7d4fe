// Package console defines the terminal capability the line editor draws
// through, with two implementations: Screen, an in-memory grid, and
// Terminal, which drives a real terminal with relative ANSI cursor moves.
//
// Coordinates are 0-based. Columns wrap at BufferWidth: writing into the
// last column leaves the cursor at column 0 of the next row.
package console
