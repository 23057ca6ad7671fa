package formula

import (
	"fmt"
	"unicode"

	"github.com/gopherchem/isospec/ptable"
)

// Term is one (element, count) pair parsed out of a formula string.
type Term struct {
	Symbol string
	Count  int
}

// Parse tokenizes s into a sequence of Terms. Whitespace between and
// within terms is ignored. Each term is an element symbol — one
// uppercase letter optionally followed by one lowercase letter —
// optionally followed by a positive decimal count (default 1).
//
// Parse validates each symbol against ptable as it goes, so a caller
// never sees a Term for an element ptable does not know about.
//
// Complexity: O(len(s)).
func Parse(s string) ([]Term, error) {
	runes := []rune(s)
	n := len(runes)

	var terms []Term
	i := 0
	for i < n {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		start := i
		if !unicode.IsUpper(runes[i]) {
			return nil, &ParseError{Offset: i, Input: s, Err: ErrMalformedFormula}
		}
		symbol := string(runes[i])
		i++
		j := i
		for j < n && unicode.IsSpace(runes[j]) {
			j++
		}
		if j < n && unicode.IsLower(runes[j]) {
			symbol += string(runes[j])
			i = j + 1
		}

		count := 1
		j = i
		for j < n && unicode.IsSpace(runes[j]) {
			j++
		}
		if j < n && unicode.IsDigit(runes[j]) {
			i = j
			digitsStart := i
			for i < n && unicode.IsDigit(runes[i]) {
				i++
			}
			count = 0
			for _, r := range runes[digitsStart:i] {
				count = count*10 + int(r-'0')
			}
			if count == 0 {
				return nil, &ParseError{Offset: digitsStart, Input: s, Err: ErrMalformedFormula}
			}
		}

		if _, ok := ptable.Lookup(symbol); !ok {
			err := fmt.Errorf("%w %q (known symbols: %s)", ErrUnknownElement, symbol, ptable.KnownSymbolsHint())
			return nil, &ParseError{Offset: start, Input: s, Err: err}
		}

		terms = append(terms, Term{Symbol: symbol, Count: count})
	}

	if len(terms) == 0 {
		return nil, &ParseError{Offset: 0, Input: s, Err: ErrMalformedFormula}
	}

	return terms, nil
}
