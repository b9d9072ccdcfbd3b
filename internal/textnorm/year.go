package textnorm

import "regexp"

// yearRe matches a 4-digit run bounded by non-digit word boundaries so
// that e.g. "18401" doesn't yield a spurious "1840".
var yearRe = regexp.MustCompile(`(?:^|\D)(\d{4})(?:\D|$)`)

const (
	MinYear = 1500
	MaxYear = 2099
)

// ExtractYear scans s for the first 4-digit run in [MinYear, MaxYear]
// delimited by word boundaries. Returns (0, false) when
// no such run exists.
func ExtractYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	pos := 0
	for pos < len(s) {
		loc := yearRe.FindStringSubmatchIndex(s[pos:])
		if loc == nil {
			break
		}
		start, end := loc[2], loc[3]
		year := atoi4(s[pos+start : pos+end])
		if year >= MinYear && year <= MaxYear {
			return year, true
		}
		pos += end
	}
	return 0, false
}

func atoi4(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
