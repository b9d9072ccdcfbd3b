package marcloader

import (
	"strings"

	"github.com/pulibrary/marc-copyright/internal/textnorm"
)

// resolveLanguageWithStatus resolves code to a processing language plus
// the three-way detection status original_source distinguishes: "detected" (code present and mapped), "unknown_code"
// (code present but unrecognized, folded to English), and
// "fallback_english" (no code supplied at all).
func resolveLanguageWithStatus(code string) (textnorm.Language, string) {
	clean := strings.ToLower(strings.TrimSpace(code))
	if clean == "" {
		return textnorm.English, "fallback_english"
	}
	lang, fallback := textnorm.ResolveLanguage(clean)
	if fallback {
		return lang, "unknown_code"
	}
	return lang, "detected"
}
