// Package board owns the staging-to-board handoff.
//
// Ownership boundary:
// - staged document decoding
//
// - board file formatting and overwrite
//
// The board schema belongs to the tooling that consumes task-board.json;
// this package treats the document as opaque.
package board
