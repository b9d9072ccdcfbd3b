package textnorm

import "strings"

// Language is one of the small fixed set of processing languages the
// matcher supports.
type Language string

const (
	English Language = "eng"
	French  Language = "fre"
	German  Language = "ger"
	Spanish Language = "spa"
	Italian Language = "ita"
)

// abbreviations maps a language to its table of abbreviation -> expansion.
// Matching normalization expands these before stopword removal so that
// "co." and "company" collapse to the same token stream.
var abbreviations = map[Language]map[string]string{
	English: {
		"co":    "company",
		"corp":  "corporation",
		"inc":   "incorporated",
		"ltd":   "limited",
		"assn":  "association",
		"dept":  "department",
		"univ":  "university",
		"natl":  "national",
		"intl":  "international",
		"govt":  "government",
		"soc":   "society",
		"vol":   "volume",
		"ed":    "edition",
		"pub":   "publisher",
		"st":    "saint",
		"mr":    "mister",
		"assoc": "associates",
	},
	French: {
		"cie":  "compagnie",
		"ste":  "societe",
		"st":   "saint",
		"ed":   "edition",
		"univ": "universite",
	},
	German: {
		"ges":  "gesellschaft",
		"verl": "verlag",
		"univ": "universitat",
		"bd":   "band",
	},
	Spanish: {
		"cia":  "compania",
		"univ": "universidad",
		"ed":   "edicion",
		"sta":  "santa",
	},
	Italian: {
		"soc":  "societa",
		"univ": "universita",
		"ed":   "edizione",
	},
}

// stopwords per language, removed during matching normalization.
var stopwords = map[Language]map[string]struct{}{
	English: setOf("a", "an", "and", "the", "of", "in", "on", "for", "to", "by", "with", "from", "at", "or"),
	French:  setOf("le", "la", "les", "de", "des", "du", "un", "une", "et", "a", "en", "dans"),
	German:  setOf("der", "die", "das", "den", "dem", "des", "und", "ein", "eine", "in", "von", "zu"),
	Spanish: setOf("el", "la", "los", "las", "de", "del", "un", "una", "y", "en", "por", "con"),
	Italian: setOf("il", "lo", "la", "i", "gli", "le", "di", "del", "e", "in", "per", "con"),
}

func setOf(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// ResolveLanguage maps a three-letter MARC-style code to a processing
// language, returning English with fallback=true for anything unknown.
func ResolveLanguage(code string) (lang Language, fallback bool) {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "eng", "en":
		return English, false
	case "fre", "fra", "fr":
		return French, false
	case "ger", "deu", "de":
		return German, false
	case "spa", "es", "esp":
		return Spanish, false
	case "ita", "it", "ital":
		return Italian, false
	default:
		return English, true
	}
}

// expandAbbreviations rewrites known abbreviation tokens to their
// expansions for the given language.
func expandAbbreviations(tokens []string, lang Language) []string {
	table := abbreviations[lang]
	if len(table) == 0 {
		return tokens
	}
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		if exp, ok := table[tok]; ok {
			out[i] = exp
		} else {
			out[i] = tok
		}
	}
	return out
}

// removeStopwords drops tokens present in the language's stopword list.
func removeStopwords(tokens []string, lang Language) []string {
	table := stopwords[lang]
	if len(table) == 0 {
		return tokens
	}
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, drop := table[tok]; drop {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// NormalizeForMatching runs the full matching pipeline: standard
// normalization, abbreviation expansion, stopword removal, and
// deterministic suffix-stripping stemming. Idempotent
// after a single pass: a second call against the result is a no-op
// because the pipeline is re-run on its own output until that output
// stops changing (a stem such as "proceeding" from "proceedings" would
// otherwise be stemmed again on the next call).
func NormalizeForMatching(s string, lang Language) string {
	if s == "" {
		return ""
	}
	out := s
	// Bounded so a pathological input can never loop forever.
	for pass := 0; pass < 10; pass++ {
		tokens := Tokenize(NormalizeStandard(out))
		tokens = expandAbbreviations(tokens, lang)
		tokens = removeStopwords(tokens, lang)
		tokens = stemAll(tokens, lang)
		next := strings.Join(tokens, " ")
		if next == out {
			break
		}
		out = next
	}
	return out
}
