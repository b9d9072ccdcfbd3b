package textnorm

import (
	"strings"
	"unicode"
)

// NormalizeIdentifier implements the stricter authority-identifier
// normalization, following the Library of Congress's own
// LCCN normalization rule: strip whitespace; if a hyphen is present,
// left-zero-pad the digits after it to 6 digits (the classic
// "year-serial" LCCN shape, e.g. "25-12345" -> "25012345"); strip every
// remaining non-alphanumeric character; lowercase the alphabetic
// prefix; and, only once that padding step still leaves more than 8
// digits, drop leading zeros from the numeric tail instead of keeping
// them. This is the Go analogue of original_source's normalize_lccn
// helper, generalized to "digits and a lowercase alphabetic
// prefix" rather than LCCN specifically.
func NormalizeIdentifier(s string) string {
	if s == "" {
		return ""
	}
	s = strings.Join(strings.Fields(s), "")

	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		before, after := s[:idx], s[idx+1:]
		digitsAfter := onlyDigits(after)
		if len(digitsAfter) < 6 {
			digitsAfter = strings.Repeat("0", 6-len(digitsAfter)) + digitsAfter
		}
		if len(onlyDigits(before))+len(digitsAfter) > 8 {
			digitsAfter = strings.TrimLeft(digitsAfter, "0")
			if digitsAfter == "" {
				digitsAfter = "0"
			}
		}
		s = before + digitsAfter
	}

	var prefix, digits strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			prefix.WriteRune(unicode.ToLower(r))
		case unicode.IsDigit(r):
			digits.WriteRune(r)
		default:
			// remaining punctuation is dropped
		}
	}
	digitStr := digits.String()
	if len(digitStr) > 8 {
		trimmed := strings.TrimLeft(digitStr, "0")
		if trimmed == "" {
			trimmed = "0"
		}
		digitStr = trimmed
	}
	return prefix.String() + digitStr
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
