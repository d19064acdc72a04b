package interp

import (
	"errors"
	"fmt"
)

// Sentinel bracket errors, matchable with errors.Is.
var (
	ErrUnmatchedClosing = errors.New("unmatched closing bracket")
	ErrUnmatchedOpening = errors.New("unmatched opening bracket")
)

// BracketError reports a bracket mismatch and the offset where it was found.
type BracketError struct {
	Pos  int   // byte offset of the offending bracket
	kind error // ErrUnmatchedClosing or ErrUnmatchedOpening
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("interp: %v at offset %d", e.kind, e.Pos)
}

func (e *BracketError) Unwrap() error {
	return e.kind
}

// BracketMap builds the loop-jump table for a program in a single
// left-to-right scan: each closing bracket's offset maps to the offset of its
// matching opening bracket. The stack discipline guarantees every recorded
// pair is properly nested.
//
// A `]` with no pending `[` fails with ErrUnmatchedClosing; a `[` still
// pending after the scan fails with ErrUnmatchedOpening. On failure no
// partial map is returned. Non-command bytes are ignored.
func BracketMap(program string) (map[int]int, error) {
	jumps := make(map[int]int)
	var stack []int

	for i := 0; i < len(program); i++ {
		switch program[i] {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return nil, &BracketError{Pos: i, kind: ErrUnmatchedClosing}
			}
			jumps[i] = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return nil, &BracketError{Pos: stack[0], kind: ErrUnmatchedOpening}
	}
	return jumps, nil
}
