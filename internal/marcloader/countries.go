package marcloader

import (
	"strings"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

// usCountryCodes is the fixed set of official MARC country codes for
// the United States (Library of Congress MARC Code List for
// Countries), grounded on original_source's US_COUNTRY_CODES.
var usCountryCodes = map[string]struct{}{
	"aku": {}, "alu": {}, "aru": {}, "azu": {}, "cau": {}, "cou": {}, "ctu": {}, "dcu": {},
	"deu": {}, "flu": {}, "gau": {}, "hiu": {}, "iau": {}, "idu": {}, "ilu": {}, "inu": {},
	"ksu": {}, "kyu": {}, "lau": {}, "mau": {}, "mdu": {}, "meu": {}, "miu": {}, "mnu": {},
	"mou": {}, "msu": {}, "mtu": {}, "nbu": {}, "ncu": {}, "ndu": {}, "nhu": {}, "nju": {},
	"nmu": {}, "nvu": {}, "nyu": {}, "ohu": {}, "oku": {}, "oru": {}, "pau": {}, "riu": {},
	"scu": {}, "sdu": {}, "tnu": {}, "txu": {}, "utu": {}, "vau": {}, "vtu": {}, "wau": {},
	"wvu": {}, "wyu": {}, "xxu": {},
}

// countryFromControl008 extracts the country code from positions 15-17
// of a MARC 008 control field and classifies it as US or non-US.
func countryFromControl008(field008 string) (string, domain.CountryClassification) {
	if len(field008) < 18 {
		return "", domain.CountryUnknown
	}
	code := strings.TrimSpace(field008[15:18])
	if code == "" {
		return "", domain.CountryUnknown
	}
	if _, ok := usCountryCodes[strings.ToLower(code)]; ok {
		return code, domain.CountryUS
	}
	return code, domain.CountryNonUS
}
