package thaidate

import (
	"strings"
	"sync"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

// thaiZero is THAI DIGIT ZERO; ๐..๙ are contiguous
const thaiZero = '๐'

// foldPool hands out fresh transformer chains
// 1 width fold maps full-width ０-９ ／ ： to ASCII
// 2 Thai numerals ๐-๙ map to 0-9
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			width.Fold,
			runes.Map(func(r rune) rune {
				if r >= thaiZero && r <= thaiZero+9 {
					return '0' + (r - thaiZero)
				}
				return r
			}),
		)
	},
}

// foldDigits rewrites every digit and separator a Thai keyboard or an IME
// can produce into its ASCII form; ASCII input is returned unchanged
func foldDigits(s string) string {
	if isASCII(s) {
		return s
	}
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, s)
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return s
	}
	return out
}

// keepDigits drops everything except ASCII digits and sep
func keepDigits(s string, sep byte) string {
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == rune(sep) {
			return r
		}
		return -1
	}, s)
}

// FilterInput folds s and keeps only ASCII digits and sep
func FilterInput(s string, sep byte) string {
	return keepDigits(foldDigits(s), sep)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
