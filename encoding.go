// Copyright (C) 2024 Michael J. Fromberger. All Rights Reserved.

package jdom

import (
	"errors"
	"strings"

	"github.com/creachadair/jdom/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
func Quote(src string) string {
	return `"` + string(escape.Quote(mem.S(src))) + `"`
}

// Unquote decodes a JSON string value. Double quotation marks are
// removed, and escape sequences are replaced with their unescaped
// equivalents.
//
// Unquote reports an error for an invalid, unknown, or incomplete escape
// sequence. Each \uXXXX escape decodes to a single code unit; surrogate
// pairs are not combined, so an escaped pair yields two replacement runes
// rather than one supplementary-plane character.
func Unquote(src string) ([]byte, error) {
	if len(src) < 2 || !strings.HasPrefix(src, `"`) || !strings.HasSuffix(src, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(src[1 : len(src)-1]))
}
