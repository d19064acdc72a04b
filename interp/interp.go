package interp

import (
	"context"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/chazu/screwtape/tape"
)

var log = commonlog.GetLogger("screwtape.interp")

// Interpreter executes Screwtape programs against a persistent memory tape.
//
// The tape survives across Execute calls so state built by one program is
// visible to the next; use SetTape to start over. An Interpreter must not be
// driven from multiple goroutines at once.
type Interpreter struct {
	tape *tape.Tape

	// MaxSteps aborts execution with a StepLimitError after this many
	// dispatched commands. 0 means unlimited.
	MaxSteps int

	// Trace logs every dispatched command at debug level.
	Trace bool
}

// New creates an interpreter with a fresh single-cell tape.
func New() *Interpreter {
	return &Interpreter{tape: tape.New()}
}

// Execute runs a program and returns its accumulated output.
//
// The bracket map is computed eagerly, so a malformed program fails before
// any instruction executes and produces no output and no tape mutation.
func (in *Interpreter) Execute(program string) (string, error) {
	return in.ExecuteContext(context.Background(), program)
}

// ExecuteContext is Execute with cancellation. The context is polled every
// cancelCheckInterval steps rather than per instruction to keep the dispatch
// loop tight; see limits.go. If the context is cancelled or MaxSteps is
// exceeded mid-run, the error return dominates and any partial output is
// discarded. Tape mutations made before the cutoff are kept, since the tape
// is persistent caller-visible state.
func (in *Interpreter) ExecuteContext(ctx context.Context, program string) (string, error) {
	jumps, err := BracketMap(program)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	steps := 0

	for p := 0; p < len(program); p++ {
		c := program[p]
		if !isCommand(c) {
			continue
		}

		if in.Trace {
			log.Debugf("[%04d] %c value=%d", p, c, in.tape.Value())
		}

		switch c {
		case '+':
			in.tape.Increment()
		case '-':
			in.tape.Decrement()
		case '>':
			in.tape.MoveForward()
		case '<':
			in.tape.MoveBackward()
		case '.':
			// Direct cast of the cell value to a code point. Out-of-range
			// values follow Go's rune conversion rules (they encode as the
			// replacement character); there is no clamping or wrapping.
			out.WriteRune(rune(in.tape.Value()))
		case '[':
			// Loop entry is unconditional; only `]` consults the jump table.
		case ']':
			if in.tape.Value() != 0 {
				// The loop's p++ lands just past the matching `[`.
				p = jumps[p]
			}
		}

		steps++
		if in.MaxSteps > 0 && steps > in.MaxSteps {
			return "", &StepLimitError{Limit: in.MaxSteps, Pos: p}
		}
		if steps%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
	}

	return out.String(), nil
}

// Tape returns a snapshot of the tape's cells from head to tail.
func (in *Interpreter) Tape() []int {
	return in.tape.Snapshot()
}

// SetTape replaces the tape with the given cells, cursor on the first.
// Fails with tape.ErrEmptyTape when values is empty.
func (in *Interpreter) SetTape(values []int) error {
	return in.tape.Reset(values)
}

// Value returns the value of the cell under the cursor.
func (in *Interpreter) Value() int {
	return in.tape.Value()
}

// MoveToHead repositions the cursor on the tape's first cell.
func (in *Interpreter) MoveToHead() {
	in.tape.MoveToHead()
}

// MoveToTail repositions the cursor on the tape's last cell.
func (in *Interpreter) MoveToTail() {
	in.tape.MoveToTail()
}

// isCommand reports whether c is one of the seven Screwtape commands.
func isCommand(c byte) bool {
	switch c {
	case '+', '-', '<', '>', '.', '[', ']':
		return true
	}
	return false
}
