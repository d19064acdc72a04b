package interp

import (
	"errors"
	"fmt"
)

// ErrStepLimit is the sentinel wrapped by StepLimitError.
var ErrStepLimit = errors.New("step limit exceeded")

// cancelCheckInterval is how many dispatched commands run between context
// polls in ExecuteContext. Polling per instruction roughly doubles the cost
// of the dispatch loop; a tight Screwtape loop runs millions of steps per
// second, so cancellation latency at this granularity is still negligible.
const cancelCheckInterval = 1024

// StepLimitError reports that execution was cut off after exceeding the
// interpreter's MaxSteps budget.
type StepLimitError struct {
	Limit int // the configured budget
	Pos   int // instruction pointer when the budget ran out
}

func (e *StepLimitError) Error() string {
	return fmt.Sprintf("interp: %v (%d) at offset %d", ErrStepLimit, e.Limit, e.Pos)
}

func (e *StepLimitError) Unwrap() error {
	return ErrStepLimit
}
