package textnorm

import "strings"

// stemAll applies a deterministic suffix-stripping stemmer selected by
// language. Stemming is intentionally simple (a fixed suffix table, not
// a full Porter/Snowball implementation) since the scorer only needs
// stems to converge on the same token for close morphological variants,
// not a linguistically perfect root.
func stemAll(tokens []string, lang Language) []string {
	strip := suffixStripper(lang)
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = strip(tok)
	}
	return out
}

type stemFunc func(string) string

func suffixStripper(lang Language) stemFunc {
	switch lang {
	case French:
		return stripSuffixes([]string{"ations", "ation", "ement", "ements", "es", "e", "s"})
	case German:
		return stripSuffixes([]string{"ungen", "ung", "heit", "keit", "en", "er", "e"})
	case Spanish:
		return stripSuffixes([]string{"aciones", "acion", "mente", "es", "os", "as", "o", "a"})
	case Italian:
		return stripSuffixes([]string{"azioni", "azione", "mente", "i", "e", "o", "a"})
	default:
		return stemEnglish
	}
}

// stripSuffixes returns a stemmer that removes the first matching
// suffix (longest first) from words longer than minStemLen+suffix,
// never shrinking a word below a 3-character stem.
func stripSuffixes(suffixes []string) stemFunc {
	return func(word string) string {
		if len(word) <= 4 {
			return word
		}
		for _, suf := range suffixes {
			if strings.HasSuffix(word, suf) && len(word)-len(suf) >= 3 {
				return word[:len(word)-len(suf)]
			}
		}
		return word
	}
}

// stemEnglish applies a small set of ordered suffix rules covering the
// common plural/verb-inflection endings likely to appear in
// bibliographic titles and author headings.
func stemEnglish(word string) string {
	if len(word) <= 4 {
		return word
	}
	switch {
	case strings.HasSuffix(word, "ies") && len(word) > 5:
		return word[:len(word)-3] + "y"
	case strings.HasSuffix(word, "ing") && len(word)-3 >= 3:
		return word[:len(word)-3]
	case strings.HasSuffix(word, "ed") && len(word)-2 >= 3:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "es") && len(word)-2 >= 3:
		return word[:len(word)-2]
	case strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") && len(word)-1 >= 3:
		return word[:len(word)-1]
	default:
		return word
	}
}
