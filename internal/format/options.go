// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

type QuotePolicy int

const (
	// QuoteNeeded quotes a field only when it contains the delimiter, the quote
	// character or a line break.
	QuoteNeeded QuotePolicy = iota
	// QuoteAlways quotes every field.
	QuoteAlways
	// QuoteNonNumeric quotes every field that is not a number.
	QuoteNonNumeric
	// QuoteNone never quotes; fields that would need quoting are rejected.
	QuoteNone
)

var quotePolicyNames = map[QuotePolicy]string{
	QuoteNeeded:     "needed",
	QuoteAlways:     "always",
	QuoteNonNumeric: "nonnumeric",
	QuoteNone:       "none",
}

func (q QuotePolicy) String() string {
	if name, ok := quotePolicyNames[q]; ok {
		return name
	}
	return fmt.Sprintf("QuotePolicy(%d)", int(q))
}

// ParseQuoting maps a configured quoting name to its policy. auto, text and all
// are accepted as aliases.
func ParseQuoting(s string) (QuotePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "needed", "if-needed", "minimal", "auto":
		return QuoteNeeded, nil
	case "always", "all":
		return QuoteAlways, nil
	case "nonnumeric", "non-numeric", "text":
		return QuoteNonNumeric, nil
	case "none", "never":
		return QuoteNone, nil
	}
	return QuoteNeeded, fmt.Errorf("unknown quoting policy %q (must be one of needed, always, nonnumeric, none)", s)
}

type LineEnding int

const (
	LF LineEnding = iota
	CRLF
	CR
)

func (l LineEnding) Sequence() string {
	switch l {
	case CRLF:
		return "\r\n"
	case CR:
		return "\r"
	default:
		return "\n"
	}
}

func (l LineEnding) String() string {
	switch l {
	case CRLF:
		return "crlf"
	case CR:
		return "cr"
	default:
		return "lf"
	}
}

func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lf", "unix", "\n":
		return LF, nil
	case "crlf", "windows", "\r\n":
		return CRLF, nil
	case "cr", "mac", "\r":
		return CR, nil
	}
	return LF, fmt.Errorf("unknown line ending %q (must be one of lf, crlf, cr)", s)
}

// Options controls how records are rendered. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	Delimiter  rune
	Quote      rune
	Quoting    QuotePolicy
	LineEnding LineEnding
}

func DefaultOptions() Options {
	return Options{
		Delimiter:  ',',
		Quote:      '"',
		Quoting:    QuoteNeeded,
		LineEnding: LF,
	}
}

func (o Options) Validate() error {
	if !validSeparator(o.Delimiter) {
		return fmt.Errorf("invalid delimiter %q", o.Delimiter)
	}
	if !validSeparator(o.Quote) {
		return fmt.Errorf("invalid quote character %q", o.Quote)
	}
	if o.Delimiter == o.Quote {
		return fmt.Errorf("delimiter and quote character must differ, both are %q", o.Delimiter)
	}
	if _, ok := quotePolicyNames[o.Quoting]; !ok {
		return fmt.Errorf("unknown quoting policy %d", int(o.Quoting))
	}
	if o.LineEnding < LF || o.LineEnding > CR {
		return fmt.Errorf("unknown line ending %d", int(o.LineEnding))
	}
	return nil
}

// ParseDelimiter accepts exactly one character. "\t" and "tab" name a tab.
func ParseDelimiter(s string) (rune, error) {
	switch s {
	case `\t`, "tab", "TAB":
		return '\t', nil
	}
	if s == "" {
		return 0, fmt.Errorf("enter a delimiter")
	}
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character (for example ; or | or , or :), got %q", s)
	}
	if !validSeparator(r) {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

func validSeparator(r rune) bool {
	return r != 0 && r != '\r' && r != '\n' && r != utf8.RuneError && utf8.ValidRune(r)
}
