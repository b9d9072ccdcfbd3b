package domain

import "strconv"

// StatusBase is the fixed portion of a copyright status label. Dynamic
// suffixes (year, country) are carried separately on StatusLabel and
// rendered on demand, following the instruction to
// model dynamic labels as a tagged variant, not an exhaustive string enum.
type StatusBase int

const (
	StatusUnknown StatusBase = iota
	StatusUSRenewed
	StatusUSRegisteredNotRenewed
	StatusUSNoMatch
	StatusUSPre
	StatusForeignRenewed
	StatusForeignRegisteredNotRenewed
	StatusForeignNoMatch
	StatusForeignPre
	StatusCountryUnknownRenewed
	StatusCountryUnknownRegisteredNotRenewed
	StatusCountryUnknownNoMatch
	StatusCountryUnknownPre
	StatusOutOfDataRange
)

var statusBaseNames = map[StatusBase]string{
	StatusUSRenewed:                          "US_RENEWED",
	StatusUSRegisteredNotRenewed:             "US_REGISTERED_NOT_RENEWED",
	StatusUSNoMatch:                          "US_NO_MATCH",
	StatusUSPre:                              "US_PRE",
	StatusForeignRenewed:                     "FOREIGN_RENEWED",
	StatusForeignRegisteredNotRenewed:        "FOREIGN_REGISTERED_NOT_RENEWED",
	StatusForeignNoMatch:                     "FOREIGN_NO_MATCH",
	StatusForeignPre:                         "FOREIGN_PRE",
	StatusCountryUnknownRenewed:              "COUNTRY_UNKNOWN_RENEWED",
	StatusCountryUnknownRegisteredNotRenewed: "COUNTRY_UNKNOWN_REGISTERED_NOT_RENEWED",
	StatusCountryUnknownNoMatch:              "COUNTRY_UNKNOWN_NO_MATCH",
	StatusCountryUnknownPre:                  "COUNTRY_UNKNOWN_PRE",
	StatusOutOfDataRange:                     "OUT_OF_DATA_RANGE",
}

// StatusLabel is the structured form of a final copyright status: a fixed
// base plus optional year/country suffixes, rendered to a string only at
// the boundary (export, display, statistics keying).
type StatusLabel struct {
	Base    StatusBase
	Year    int
	HasYear bool
	Country string
}

// String renders the label, e.g. "US_PRE_1929" or "FOREIGN_RENEWED_gbr".
func (l StatusLabel) String() string {
	s := statusBaseNames[l.Base]
	if s == "" {
		s = "UNKNOWN"
	}
	if l.HasYear {
		s += "_" + strconv.Itoa(l.Year)
	}
	if l.Country != "" {
		s += "_" + l.Country
	}
	return s
}
