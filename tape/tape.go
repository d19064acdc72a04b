// Package tape implements the Screwtape memory tape: an unbounded,
// bidirectionally growable sequence of integer cells with a cursor.
//
// Rather than a doubly-linked node chain, the tape is a deque built from two
// dynamic slices: one for cells at and after the origin, one for cells before
// it (stored nearest-first). Growth at either end is an amortized append and
// every cell is addressed by a signed position, so there is no pointer
// chasing in the interpreter's hot loop.
package tape

import "errors"

// ErrEmptyTape is returned when a tape reset is attempted with no cells.
var ErrEmptyTape = errors.New("tape: cannot initialize with zero cells")

// Tape is a growable two-ended sequence of integer cells with a cursor.
// The tape always contains at least one cell and the cursor always addresses
// a live cell. Tape is not safe for concurrent use.
type Tape struct {
	right []int // cells at positions 0, 1, 2, ...
	left  []int // cells at positions -1, -2, -3, ... (nearest first)
	pos   int   // cursor position; -len(left) <= pos < len(right)
}

// New creates a tape with a single cell holding 0, cursor on that cell.
func New() *Tape {
	return &Tape{right: []int{0}}
}

// cell returns a pointer to the cell at the given position.
func (t *Tape) cell(pos int) *int {
	if pos < 0 {
		return &t.left[-pos-1]
	}
	return &t.right[pos]
}

// Value returns the value of the cell under the cursor.
func (t *Tape) Value() int {
	return *t.cell(t.pos)
}

// Increment adds 1 to the cell under the cursor. No upper bound is enforced.
func (t *Tape) Increment() {
	*t.cell(t.pos)++
}

// Decrement subtracts 1 from the cell under the cursor. Values may go negative.
func (t *Tape) Decrement() {
	*t.cell(t.pos)--
}

// MoveForward moves the cursor one cell toward the tail, appending a single
// fresh zero cell when the cursor is already on the last cell.
func (t *Tape) MoveForward() {
	if t.pos == len(t.right)-1 {
		t.right = append(t.right, 0)
	}
	t.pos++
}

// MoveBackward moves the cursor one cell toward the head, prepending a single
// fresh zero cell when the cursor is already on the first cell. The new cell
// becomes the tape's head.
func (t *Tape) MoveBackward() {
	if t.pos == -len(t.left) {
		t.left = append(t.left, 0)
	}
	t.pos--
}

// MoveToHead repositions the cursor on the first cell without allocating.
func (t *Tape) MoveToHead() {
	t.pos = -len(t.left)
}

// MoveToTail repositions the cursor on the last cell without allocating.
func (t *Tape) MoveToTail() {
	t.pos = len(t.right) - 1
}

// Len returns the number of cells on the tape.
func (t *Tape) Len() int {
	return len(t.left) + len(t.right)
}

// Snapshot returns the cell values from head to tail.
func (t *Tape) Snapshot() []int {
	out := make([]int, 0, t.Len())
	for i := len(t.left) - 1; i >= 0; i-- {
		out = append(out, t.left[i])
	}
	out = append(out, t.right...)
	return out
}

// Reset replaces the entire cell sequence with the given values and positions
// the cursor on the first cell. The tape is left untouched when values is
// empty and ErrEmptyTape is returned.
func (t *Tape) Reset(values []int) error {
	if len(values) == 0 {
		return ErrEmptyTape
	}
	t.left = t.left[:0]
	t.right = append(t.right[:0], values...)
	t.pos = 0
	return nil
}
