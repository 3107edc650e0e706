package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery applies NFKC, trims the text and compresses runs of
// whitespace into one space. Case is kept, so the result can go straight into
// a case-insensitive match.
func NormalizeQuery(text string) string {
	return collapseSpace(strings.TrimSpace(norm.NFKC.String(text)))
}

// NormalizeText prepares text for search keys and comparison:
//   - applies NFKC so Arabic presentation forms collapse to base letters
//   - trims leading/trailing whitespace
//   - case-folds Latin text
//   - compresses runs of whitespace into one space
//
// Arabic diacritics (tashkeel), hyphens, and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFKC.String(text))
	if text == "" {
		return ""
	}
	// Casers are stateful, so one is built per call.
	return collapseSpace(cases.Fold().String(text))
}

func collapseSpace(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			if prevSpace {
				continue
			}
			prevSpace = true
			b.WriteRune(' ')
			continue
		}
		prevSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
