// Copyright (c) Codesphere Inc.
// SPDX-License-Identifier: Apache-2.0

package textenc

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

const Default = "utf-8"

var (
	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrUnrepresentable = errors.New("character not representable")
	ErrInvalidText     = errors.New("text is not valid UTF-8")
)

// Encoding maps text to bytes for one code page. A nil enc means the text is
// written as UTF-8 unchanged.
type Encoding struct {
	Name        string
	Aliases     []string
	Description string
	// BOM is written once at the start of an empty file.
	BOM []byte

	enc       encoding.Encoding
	asciiOnly bool
}

var registry = []*Encoding{
	{Name: "utf-8", Aliases: []string{"utf8", "cp65001"}, Description: "Unicode UTF-8"},
	{Name: "utf-8-sig", Aliases: []string{"utf-8-bom", "utf8-bom"}, Description: "Unicode UTF-8 with byte order mark", BOM: []byte{0xEF, 0xBB, 0xBF}},
	{Name: "utf-16", Aliases: []string{"utf16", "ucs-2"}, Description: "Unicode UTF-16 little endian with byte order mark", BOM: []byte{0xFF, 0xFE},
		enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{Name: "utf-16le", Aliases: []string{"utf16le", "cp1200"}, Description: "Unicode UTF-16 little endian",
		enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},
	{Name: "utf-16be", Aliases: []string{"utf16be", "cp1201"}, Description: "Unicode UTF-16 big endian",
		enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
	{Name: "latin-1", Aliases: []string{"latin1", "iso-8859-1", "iso8859-1", "cp28591"}, Description: "ISO 8859-1 Western European",
		enc: charmap.ISO8859_1},
	{Name: "iso-8859-15", Aliases: []string{"latin-9", "latin9", "cp28605"}, Description: "ISO 8859-15 Western European with euro sign",
		enc: charmap.ISO8859_15},
	{Name: "windows-1252", Aliases: []string{"cp1252", "ansi"}, Description: "Windows Western European",
		enc: charmap.Windows1252},
	{Name: "windows-1250", Aliases: []string{"cp1250"}, Description: "Windows Central European",
		enc: charmap.Windows1250},
	{Name: "cp437", Aliases: []string{"ibm437", "oem-us"}, Description: "DOS United States",
		enc: charmap.CodePage437},
	{Name: "cp850", Aliases: []string{"ibm850"}, Description: "DOS Western European",
		enc: charmap.CodePage850},
	{Name: "ascii", Aliases: []string{"us-ascii", "cp20127"}, Description: "7-bit US-ASCII", asciiOnly: true},
}

func normalize(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(n, "_", "-")
}

// Lookup finds an encoding by name or alias, ignoring case. An empty name
// selects the default UTF-8 encoding.
func Lookup(name string) (*Encoding, error) {
	n := normalize(name)
	if n == "" {
		n = Default
	}
	for _, e := range registry {
		if e.Name == n {
			return e, nil
		}
		for _, a := range e.Aliases {
			if a == n {
				return e, nil
			}
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
}

// All returns the supported encodings sorted by name.
func All() []*Encoding {
	all := make([]*Encoding, len(registry))
	copy(all, registry)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

func (e *Encoding) HasBOM() bool {
	return len(e.BOM) > 0
}

func (e *Encoding) String() string {
	return e.Name
}

// Encode converts s to the bytes of this encoding. It never substitutes
// characters; a rune the code page lacks is an error.
func (e *Encoding) Encode(s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidText, e.Name)
	}
	switch {
	case e.asciiOnly:
		for i, r := range s {
			if r >= utf8.RuneSelf {
				return nil, unrepresentable(e, r, i)
			}
		}
		return []byte(s), nil
	case e.enc == nil:
		return []byte(s), nil
	}

	out, err := e.enc.NewEncoder().String(s)
	if err != nil {
		return nil, e.locate(s, err)
	}
	return []byte(out), nil
}

// locate finds the first rune the encoder rejects so the error names it.
func (e *Encoding) locate(s string, cause error) error {
	enc := e.enc.NewEncoder()
	for i, r := range s {
		if _, err := enc.String(string(r)); err != nil {
			return unrepresentable(e, r, i)
		}
	}
	return fmt.Errorf("%w in %s: %v", ErrUnrepresentable, e.Name, cause)
}

func unrepresentable(e *Encoding, r rune, offset int) error {
	return fmt.Errorf("%w in %s: %q (U+%04X) at byte %d", ErrUnrepresentable, e.Name, r, r, offset)
}
