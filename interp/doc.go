// Package interp executes Screwtape programs.
//
// Screwtape is a minimalistic language with the following commands:
//
//   - `>`: move the tape cursor to the next cell
//   - `<`: move the tape cursor to the previous cell
//   - `+`: increment the value in the current cell
//   - `-`: decrement the value in the current cell
//   - `.`: output the character whose code point is the current cell's value
//   - `[`: do nothing (loop entry is unconditional)
//   - `]`: if the current cell is not 0, jump back to the matching `[`
//
// Every other byte in a program is silently skipped.
//
// The interpreter is split into three pieces: the memory tape (package tape),
// a pure bracket-matching pass that precomputes loop-jump targets before any
// instruction runs (BracketMap), and the instruction-pointer loop itself
// (Interpreter.Execute). The tape persists across Execute calls on the same
// Interpreter, so callers can inspect or reset memory between runs.
package interp
