package interp

import (
	"errors"
	"reflect"
	"testing"
)

func TestBracketMapSimplePair(t *testing.T) {
	got, err := BracketMap("[]")
	if err != nil {
		t.Fatalf("BracketMap failed: %v", err)
	}
	want := map[int]int{1: 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBracketMapSequentialLoops(t *testing.T) {
	got, err := BracketMap("[+++][---]<<[+]")
	if err != nil {
		t.Fatalf("BracketMap failed: %v", err)
	}
	want := map[int]int{4: 0, 9: 5, 14: 12}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBracketMapNestedLoops(t *testing.T) {
	got, err := BracketMap(">[+>[+-]<]")
	if err != nil {
		t.Fatalf("BracketMap failed: %v", err)
	}
	want := map[int]int{9: 1, 7: 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBracketMapIgnoresOtherBytes(t *testing.T) {
	got, err := BracketMap("a[b]c")
	if err != nil {
		t.Fatalf("BracketMap failed: %v", err)
	}
	want := map[int]int{3: 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestBracketMapEmptyProgram(t *testing.T) {
	got, err := BracketMap("")
	if err != nil {
		t.Fatalf("BracketMap failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty map, got %v", got)
	}
}

func TestBracketMapUnmatchedClosing(t *testing.T) {
	_, err := BracketMap("]")
	if !errors.Is(err, ErrUnmatchedClosing) {
		t.Fatalf("Expected ErrUnmatchedClosing, got %v", err)
	}
	var be *BracketError
	if !errors.As(err, &be) {
		t.Fatalf("Expected a *BracketError, got %T", err)
	}
	if be.Pos != 0 {
		t.Errorf("Expected offset 0, got %d", be.Pos)
	}
}

func TestBracketMapUnmatchedOpening(t *testing.T) {
	_, err := BracketMap("[")
	if !errors.Is(err, ErrUnmatchedOpening) {
		t.Fatalf("Expected ErrUnmatchedOpening, got %v", err)
	}
}

func TestBracketMapReportsFirstLeftoverOpening(t *testing.T) {
	// The inner pair matches; the leftover `[` at offset 0 is the error.
	_, err := BracketMap("[[]")
	var be *BracketError
	if !errors.As(err, &be) {
		t.Fatalf("Expected a *BracketError, got %v", err)
	}
	if !errors.Is(err, ErrUnmatchedOpening) {
		t.Errorf("Expected ErrUnmatchedOpening, got %v", err)
	}
	if be.Pos != 0 {
		t.Errorf("Expected offset 0, got %d", be.Pos)
	}
}

func TestBracketMapClosingAfterBalancedPairs(t *testing.T) {
	_, err := BracketMap("[]]")
	var be *BracketError
	if !errors.As(err, &be) {
		t.Fatalf("Expected a *BracketError, got %v", err)
	}
	if !errors.Is(err, ErrUnmatchedClosing) {
		t.Errorf("Expected ErrUnmatchedClosing, got %v", err)
	}
	if be.Pos != 2 {
		t.Errorf("Expected offset 2, got %d", be.Pos)
	}
}

func TestBracketMapDeepNesting(t *testing.T) {
	got, err := BracketMap("[[[[]]]]")
	if err != nil {
		t.Fatalf("BracketMap failed: %v", err)
	}
	want := map[int]int{4: 3, 5: 2, 6: 1, 7: 0}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
