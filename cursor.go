// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"bufio"
	"io"
)

// A Cursor reads runes from an input stream with one rune of lookahead.
// Each call to Next consumes and returns the next rune of the input; Peek
// returns the same rune without consuming it. Both report io.EOF once the
// input is exhausted.
//
// A Cursor has no shared state and may be discarded at any time, but a
// single Cursor is not safe for concurrent use.
type Cursor struct {
	r   *bufio.Reader
	off int // byte offset of the next unread rune
}

// NewCursor constructs a new Cursor that consumes input from r.
// If r is already a *bufio.Reader it is used directly.
func NewCursor(r io.Reader) *Cursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Cursor{r: br}
}

// Peek returns the next rune of the input without consuming it.
// At the end of the input, Peek returns io.EOF.
func (c *Cursor) Peek() (rune, error) {
	ch, _, err := c.r.ReadRune()
	if err != nil {
		return 0, err
	}
	c.r.UnreadRune()
	return ch, nil
}

// Next consumes and returns the next rune of the input.
// At the end of the input, Next returns io.EOF.
func (c *Cursor) Next() (rune, error) {
	ch, nb, err := c.r.ReadRune()
	if err != nil {
		return 0, err
	}
	c.off += nb
	return ch, nil
}

// Offset reports the byte offset of the next unread rune of the input.
func (c *Cursor) Offset() int { return c.off }
