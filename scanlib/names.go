package scanlib

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var namePatterns sync.Map // map[string]*regexp.Regexp

func namePattern(ext string) *regexp.Regexp {
	if re, ok := namePatterns.Load(ext); ok {
		return re.(*regexp.Regexp)
	}
	re, _ := namePatterns.LoadOrStore(ext, regexp.MustCompile(`[A-Za-z0-9_.\-]+\.`+asciiFold(ext)))
	return re.(*regexp.Regexp)
}

// asciiFold quotes ext for a regexp matching it without case sensitivity. The
// (?i) flag isn't used since it also folds non-ASCII runes (e.g. U+017F).
func asciiFold(ext string) string {
	var b strings.Builder
	for _, c := range ext {
		switch {
		case 'a' <= c && c <= 'z':
			b.WriteString("[" + string(c) + string(c-'a'+'A') + "]")
		case 'A' <= c && c <= 'Z':
			b.WriteString("[" + string(c-'A'+'a') + string(c) + "]")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	return b.String()
}

// FindCandidateNames returns the ASCII filename-like strings ending in "."+ext
// (case-insensitive) found in buf, in the order they first appear. Duplicates
// are removed.
func FindCandidateNames(buf []byte, ext string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range namePattern(ext).FindAll(buf, -1) {
		name, lossy := DecodeName(m)
		if lossy {
			Log("dropped invalid bytes from name %q\n", name)
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// DecodeName decodes b as UTF-8, dropping any ill-formed sequences. The second
// return value is true if anything was dropped.
func DecodeName(b []byte) (string, bool) {
	if utf8.Valid(b) {
		return string(b), false
	}
	s, _, err := transform.Bytes(runes.ReplaceIllFormed(), b)
	if err != nil {
		return "", true
	}
	s, _, err = transform.Bytes(runes.Remove(runes.Predicate(func(r rune) bool {
		return r == utf8.RuneError
	})), s)
	if err != nil {
		return "", true
	}
	return string(s), true
}
