package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// RepairMojibake reverses UTF-8 text that was decoded as Mac Roman. It
// returns the repaired string and true when a repair was made. Text is only
// rewritten when every rune maps back to a Mac Roman byte and those bytes
// form valid UTF-8 containing at least one multi-byte sequence, so ordinary
// accented text is left alone.
func RepairMojibake(s string) (string, bool) {
	if isASCII(s) {
		return s, false
	}

	raw, err := charmap.Macintosh.NewEncoder().String(s)
	if err != nil {
		return s, false
	}
	if raw == s || !utf8.ValidString(raw) || isASCII(raw) {
		return s, false
	}
	return raw, true
}

// Normalize repairs mojibake and returns the NFC form of s. Leading and
// trailing whitespace is preserved since bullet text may rely on it.
func Normalize(s string) string {
	if fixed, ok := RepairMojibake(s); ok {
		s = fixed
	}
	return norm.NFC.String(s)
}

// NormalizeAll applies Normalize to every element of ss in place and
// returns the number of strings that changed.
func NormalizeAll(ss []string) int {
	changed := 0
	for i, s := range ss {
		if n := Normalize(s); n != s {
			ss[i] = n
			changed++
		}
	}
	return changed
}

// CollapseSpace replaces runs of whitespace with a single space and trims
// the ends.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
