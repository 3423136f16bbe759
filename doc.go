// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

// Package jdom provides the input and string-encoding plumbing for a
// single-pass JSON parser.
//
// # Cursors
//
// The Cursor type is a minimal character-stream abstraction over an
// io.Reader, exposing one rune of lookahead. Peek reports the next rune
// of the input without consuming it, Next consumes and returns it, and
// both report io.EOF once the input is exhausted:
//
//	c := jdom.NewCursor(input)
//	for {
//	   ch, err := c.Next()
//	   if err == io.EOF {
//	      break
//	   }
//	   process(ch)
//	}
//
// A Cursor is intended to be owned by a single parse and is not safe for
// concurrent use.
//
// # Errors
//
// All grammar violations are reported as a *SyntaxError carrying the byte
// offset at which the violation was detected. There is no finer-grained
// error taxonomy: a parse either yields a complete value or fails with a
// syntax error. Errors do not carry line and column information.
//
// # String encoding
//
// Quote and Unquote convert between plain strings and their JSON
// encodings. Unquote reports an error for an invalid or truncated escape
// sequence. Each \uXXXX escape decodes to a single code unit; surrogate
// pairs are not combined, so an escaped pair yields two replacement runes
// rather than one supplementary-plane character.
//
// The value tree and the parser itself are provided by the ast
// subpackage.
package jdom
