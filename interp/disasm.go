package interp

import (
	"fmt"
	"strings"
)

// commandName returns the mnemonic for a Screwtape command byte.
func commandName(c byte) string {
	switch c {
	case '+':
		return "INC"
	case '-':
		return "DEC"
	case '>':
		return "FWD"
	case '<':
		return "BACK"
	case '.':
		return "OUT"
	case '[':
		return "LOOP"
	case ']':
		return "END_LOOP"
	}
	return ""
}

// Listing returns a human-readable listing of a program: one line per
// command byte with its offset and mnemonic, loop brackets annotated with
// their partner's offset. Non-command bytes are skipped. Fails with the same
// bracket errors as BracketMap.
func Listing(program string) (string, error) {
	jumps, err := BracketMap(program)
	if err != nil {
		return "", err
	}

	// Invert the close->open map so `[` lines can show their closer.
	closers := make(map[int]int, len(jumps))
	for closePos, openPos := range jumps {
		closers[openPos] = closePos
	}

	var sb strings.Builder
	for i := 0; i < len(program); i++ {
		c := program[i]
		if !isCommand(c) {
			continue
		}
		switch c {
		case '[':
			sb.WriteString(fmt.Sprintf("%04d  %c  %s (-> %04d)\n", i, c, commandName(c), closers[i]))
		case ']':
			sb.WriteString(fmt.Sprintf("%04d  %c  %s (-> %04d)\n", i, c, commandName(c), jumps[i]))
		default:
			sb.WriteString(fmt.Sprintf("%04d  %c  %s\n", i, c, commandName(c)))
		}
	}
	return sb.String(), nil
}
