// Package textclean tidies user typed text before it is stored
// Pipeline order
// 1 drop control characters and invalid UTF-8
// 2 Unicode NFC composition
// 3 remove format characters such as zero width spaces and BOMs
// 4 fold fullwidth forms to their narrow equivalents
// 5 collapse whitespace runs to single spaces and trim
//
// Thai vowel and tone marks are combining characters and are kept as is
package textclean

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains; a Chain is stateful so each call takes its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Clean runs the whole pipeline
func Clean(s string) string {
	if s == "" {
		return ""
	}
	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// only reachable on a transformer bug; keep the sanitized text
		out = s
	}
	return strings.Join(strings.FieldsFunc(out, unicode.IsSpace), " ")
}

// Sanitize drops NUL and other C0 controls except tab, newline and carriage
// return, DEL, C1 controls and invalid UTF-8 bytes. Clean text is returned as is
func Sanitize(s string) string {
	i := strings.IndexFunc(s, drop)
	if i < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(s[:i])
	for _, r := range s[i:] {
		if !drop(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// drop reports runes Sanitize removes; ranging over a string yields
// RuneError for each invalid byte
func drop(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return false
	case r < 0x20, r == 0x7f:
		return true
	case r >= 0x80 && r <= 0x9f:
		return true
	case r == unicode.ReplacementChar:
		return true
	}
	return false
}
