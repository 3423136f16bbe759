// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jdom_test

import (
	"io"
	"strings"
	"testing"

	"github.com/creachadair/jdom"
)

func TestCursor(t *testing.T) {
	c := jdom.NewCursor(strings.NewReader("a¢["))

	mustPeek := func(want rune) {
		t.Helper()
		if ch, err := c.Peek(); err != nil {
			t.Fatalf("Peek failed: %v", err)
		} else if ch != want {
			t.Fatalf("Peek: got %q, want %q", ch, want)
		}
	}
	mustNext := func(want rune) {
		t.Helper()
		if ch, err := c.Next(); err != nil {
			t.Fatalf("Next failed: %v", err)
		} else if ch != want {
			t.Fatalf("Next: got %q, want %q", ch, want)
		}
	}
	checkOffset := func(want int) {
		t.Helper()
		if got := c.Offset(); got != want {
			t.Fatalf("Offset: got %d, want %d", got, want)
		}
	}

	checkOffset(0)
	mustPeek('a')
	mustPeek('a') // peeking does not consume
	checkOffset(0)
	mustNext('a')
	checkOffset(1)

	mustPeek('¢')
	mustNext('¢') // multibyte rune advances by its encoded length
	checkOffset(3)

	mustNext('[')
	checkOffset(4)

	for i := 0; i < 3; i++ {
		if _, err := c.Peek(); err != io.EOF {
			t.Errorf("Peek at end: got %v, want io.EOF", err)
		}
		if _, err := c.Next(); err != io.EOF {
			t.Errorf("Next at end: got %v, want io.EOF", err)
		}
	}
	checkOffset(4)
}

func TestCursorEmpty(t *testing.T) {
	c := jdom.NewCursor(strings.NewReader(""))
	if _, err := c.Peek(); err != io.EOF {
		t.Errorf("Peek on empty input: got %v, want io.EOF", err)
	}
	if _, err := c.Next(); err != io.EOF {
		t.Errorf("Next on empty input: got %v, want io.EOF", err)
	}
}
