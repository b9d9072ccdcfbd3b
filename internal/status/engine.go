// Package status implements the copyright status-determination rule
// engine: a pure function from jurisdiction, year, match evidence, and
// the data-coverage window to a status label and a machine-readable
// rule citation. Grounded on original_source's
// core/domain/copyright_logic.py, whose Python `match` statement is
// reimplemented here as an explicit ordered decision table per the
// "pattern-matched rule dispatch" design note — kept pure and testable
// in isolation from the rest of the pipeline.
package status

import (
	"time"

	"github.com/pulibrary/marc-copyright/internal/domain"
)

// RenewalPeriodEnd is the last year of the U.S. copyright renewal
// window (works published through 1977 needed to be renewed to retain
// copyright after the 1976 Act took effect).
const RenewalPeriodEnd = 1977

// DefaultExpirationYearOffset implements "current year minus 96" when
// no explicit copyright_expiration_year is configured.
const DefaultExpirationYearOffset = 96

// DefaultExpirationYear returns the default copyright-expiration year:
// the current year minus DefaultExpirationYearOffset.
func DefaultExpirationYear(now time.Time) int {
	return now.Year() - DefaultExpirationYearOffset
}

// Input bundles every fact the rule engine needs to reach a verdict.
// It intentionally carries no Publication reference: the engine is a
// pure function of these fields, independent of any particular record
// representation.
type Input struct {
	Jurisdiction   domain.CountryClassification
	Year           int
	HasYear        bool
	HasRegistration bool
	HasRenewal      bool
	ExpirationYear  int
	MaxDataYear     int
	CountryCode     string
}

// Determine runs the copyright status decision procedure: the
// first matching rule wins.
func Determine(in Input) (domain.StatusLabel, domain.Rule) {
	if in.HasYear && in.Year < in.ExpirationYear {
		return preExpirationLabel(in), preExpirationRule(in.Jurisdiction)
	}

	if in.HasYear && in.Year > in.MaxDataYear {
		return domain.StatusLabel{Base: domain.StatusOutOfDataRange, Year: in.MaxDataYear, HasYear: true}, domain.RuleOutOfDataRange
	}

	switch in.Jurisdiction {
	case domain.CountryUS:
		inRenewalPeriod := in.HasYear && in.Year >= in.ExpirationYear && in.Year <= RenewalPeriodEnd
		return determineUS(in, inRenewalPeriod)
	case domain.CountryNonUS:
		return determineForeign(in)
	default:
		return determineUnknownCountry(in)
	}
}

func preExpirationLabel(in Input) domain.StatusLabel {
	switch in.Jurisdiction {
	case domain.CountryUS:
		return domain.StatusLabel{Base: domain.StatusUSPre, Year: in.ExpirationYear, HasYear: true}
	case domain.CountryNonUS:
		return domain.StatusLabel{Base: domain.StatusForeignPre, Year: in.ExpirationYear, HasYear: true, Country: in.CountryCode}
	default:
		return domain.StatusLabel{Base: domain.StatusCountryUnknownPre, Year: in.ExpirationYear, HasYear: true}
	}
}

func preExpirationRule(j domain.CountryClassification) domain.Rule {
	if j == domain.CountryUS {
		return domain.RuleUSPreCopyrightExpiration
	}
	return domain.RuleForeignPreCopyrightExpiration
}

func determineUS(in Input, inRenewalPeriod bool) (domain.StatusLabel, domain.Rule) {
	switch {
	case in.HasRenewal:
		rule := domain.RuleUSRenewalFound
		if inRenewalPeriod {
			rule = domain.RuleUSRenewalPeriodRenewed
		}
		return domain.StatusLabel{Base: domain.StatusUSRenewed}, rule
	case in.HasRegistration:
		rule := domain.RuleUSRegisteredNoRenewal
		if inRenewalPeriod {
			rule = domain.RuleUSRenewalPeriodNotRenewed
		}
		return domain.StatusLabel{Base: domain.StatusUSRegisteredNotRenewed}, rule
	default:
		rule := domain.RuleUSNoMatch
		if inRenewalPeriod {
			rule = domain.RuleUSRenewalPeriodNoMatch
		}
		return domain.StatusLabel{Base: domain.StatusUSNoMatch}, rule
	}
}

func determineForeign(in Input) (domain.StatusLabel, domain.Rule) {
	switch {
	case in.HasRenewal:
		return domain.StatusLabel{Base: domain.StatusForeignRenewed, Country: in.CountryCode}, domain.RuleForeignRenewed
	case in.HasRegistration:
		return domain.StatusLabel{Base: domain.StatusForeignRegisteredNotRenewed, Country: in.CountryCode}, domain.RuleForeignRegisteredNotRenewed
	default:
		return domain.StatusLabel{Base: domain.StatusForeignNoMatch, Country: in.CountryCode}, domain.RuleForeignNoMatch
	}
}

func determineUnknownCountry(in Input) (domain.StatusLabel, domain.Rule) {
	switch {
	case in.HasRenewal:
		return domain.StatusLabel{Base: domain.StatusCountryUnknownRenewed}, domain.RuleCountryUnknownRenewed
	case in.HasRegistration:
		return domain.StatusLabel{Base: domain.StatusCountryUnknownRegisteredNotRenewed}, domain.RuleCountryUnknownRegistered
	default:
		return domain.StatusLabel{Base: domain.StatusCountryUnknownNoMatch}, domain.RuleCountryUnknownNoMatch
	}
}

// Apply runs Determine against a Publication's current fields and
// writes the resulting label and rule citation back onto it.
func Apply(p *domain.Publication, expirationYear, maxDataYear int) {
	label, rule := Determine(Input{
		Jurisdiction:    p.CountryClassification,
		Year:            p.Year,
		HasYear:         p.HasYear,
		HasRegistration: p.HasRegistrationMatch(),
		HasRenewal:      p.HasRenewalMatch(),
		ExpirationYear:  expirationYear,
		MaxDataYear:     maxDataYear,
		CountryCode:     p.CountryCode,
	})
	p.Status = label
	p.StatusRule = rule
}
