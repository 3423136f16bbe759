// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jdom

import "fmt"

// SyntaxError is the concrete type of all errors reported for invalid
// JSON input. Every grammar violation is reported with this one kind;
// the Offset locates the violation as a byte position in the input.
type SyntaxError struct {
	Offset  int    // byte offset where the error was detected
	Message string // human-readable description

	Err error // underlying error, if any (e.g. an I/O error)
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Offset, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.Err }

// Syntaxf constructs a *SyntaxError at the given offset with a message
// formatted from msg and args.
func Syntaxf(offset int, msg string, args ...any) *SyntaxError {
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(msg, args...)}
}
