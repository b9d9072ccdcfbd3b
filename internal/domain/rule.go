package domain

// Rule is the machine-readable citation explaining why a status was
// assigned, grounded on the original's CopyrightStatusRule enum
// (original_source/marc_pd_tool/core/domain/enums.py).
type Rule int

const (
	RuleNone Rule = iota
	RuleUSPreCopyrightExpiration
	RuleForeignPreCopyrightExpiration
	RuleUSRenewalPeriodNotRenewed
	RuleUSRenewalPeriodRenewed
	RuleUSRenewalPeriodNoMatch
	RuleUSRegisteredNoRenewal
	RuleUSRenewalFound
	RuleUSNoMatch
	RuleUSBothRegAndRenewal
	RuleForeignRenewed
	RuleForeignRegisteredNotRenewed
	RuleForeignNoMatch
	RuleCountryUnknownRenewed
	RuleCountryUnknownRegistered
	RuleCountryUnknownNoMatch
	RuleOutOfDataRange
)

var ruleDescriptions = map[Rule]string{
	RuleUSPreCopyrightExpiration:      "Published before copyright expiration year",
	RuleForeignPreCopyrightExpiration: "Foreign work published before copyright expiration",
	RuleUSRenewalPeriodNotRenewed:     "US renewal period: registered but not renewed",
	RuleUSRenewalPeriodRenewed:        "US renewal period: registered and renewed",
	RuleUSRenewalPeriodNoMatch:        "US renewal period: no registration data found",
	RuleUSRegisteredNoRenewal:         "US: registered but no renewal found",
	RuleUSRenewalFound:                "US: renewal record found",
	RuleUSNoMatch:                     "US: no registration or renewal data found",
	RuleUSBothRegAndRenewal:           "US: both registration and renewal found",
	RuleForeignRenewed:                "Foreign work with US renewal",
	RuleForeignRegisteredNotRenewed:   "Foreign work with US registration only",
	RuleForeignNoMatch:                "Foreign work with no US copyright records",
	RuleCountryUnknownRenewed:         "Unknown country with renewal found",
	RuleCountryUnknownRegistered:      "Unknown country with registration only",
	RuleCountryUnknownNoMatch:         "Unknown country with no matches",
	RuleOutOfDataRange:                "Year beyond available copyright data",
}

// Description returns the human-readable reasoning for a rule citation.
func (r Rule) Description() string {
	if d, ok := ruleDescriptions[r]; ok {
		return d
	}
	return "unknown rule"
}
