package main

import (
	"fmt"
	"strconv"
	"strings"
)

// parseTape parses a comma-separated cell list like "5,2" or "72, 73".
// An empty string means no initial tape was requested.
func parseTape(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	cells := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid tape cell %q: %w", strings.TrimSpace(p), err)
		}
		cells = append(cells, n)
	}
	return cells, nil
}
