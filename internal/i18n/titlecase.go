package i18n

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words never re-cased, in any language: small English function words plus
// protected acronyms and brand names.
var titlecaseExceptions = map[string]struct{}{
	"of": {}, "the": {}, "and": {}, "in": {}, "to": {}, "a": {}, "an": {},
	"for": {}, "on": {}, "at": {}, "from": {}, "by": {}, "with": {},
	"or": {}, "as": {}, "but": {}, "into": {}, "like": {}, "through": {},
	"after": {}, "over": {}, "between": {}, "out": {}, "against": {},
	"during": {}, "without": {}, "before": {}, "under": {}, "around": {},
	"among": {}, "about": {},
	"ITMO": {}, "ID": {}, "URL": {}, "Zoom": {},
}

// Titlecase capitalizes a title according to the language's convention.
// English gets every word capitalized except the exception set; other
// languages get natural sentence casing (first word capitalized, the rest
// lowercased, exceptions untouched). Words are rejoined with single
// spaces. The function is idempotent.
func Titlecase(s string, lang Language) string {
	words := strings.Fields(s)
	if lang == English {
		for i, w := range words {
			if _, ok := titlecaseExceptions[w]; !ok {
				words[i] = titleWord(w)
			}
		}
		return strings.Join(words, " ")
	}
	for i, w := range words {
		if _, ok := titlecaseExceptions[w]; ok {
			continue
		}
		if i == 0 {
			words[i] = capitalize(w)
		} else {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}

// titleWord upper-cases the first letter of every letter run and
// lower-cases the rest, so "(lecture)" becomes "(Lecture)". Punctuation
// inside a word starts a new run.
func titleWord(w string) string {
	var b strings.Builder
	b.Grow(len(w))
	prevLetter := false
	for _, r := range w {
		switch {
		case !unicode.IsLetter(r):
			b.WriteRune(r)
			prevLetter = false
		case prevLetter:
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(unicode.ToUpper(r))
			prevLetter = true
		}
	}
	return b.String()
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}
