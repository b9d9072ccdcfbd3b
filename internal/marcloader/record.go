package marcloader

import (
	"strings"

	"github.com/pulibrary/marc-copyright/internal/domain"
	"github.com/pulibrary/marc-copyright/internal/textnorm"
)

// subfield is a single MARC subfield, keyed by its one-letter code.
type subfield struct {
	Code string `xml:"code,attr"`
	Text string `xml:",chardata"`
}

// controlField is a fixed-field MARC control field (001, 005, 008, ...).
type controlField struct {
	Tag  string `xml:"tag,attr"`
	Text string `xml:",chardata"`
}

// dataField is a variable MARC data field (tags 0xx and above carrying
// subfields), matched regardless of namespace since xml.Decoder
// resolves Name.Local independent of the element's namespace URI.
type dataField struct {
	Tag       string     `xml:"tag,attr"`
	Subfields []subfield `xml:"subfield"`
}

// record is the decoded shape of one MARC <record> element.
type record struct {
	ControlFields []controlField `xml:"controlfield"`
	DataFields    []dataField    `xml:"datafield"`
}

func (r *record) controlField(tag string) (string, bool) {
	for _, cf := range r.ControlFields {
		if cf.Tag == tag {
			return cf.Text, true
		}
	}
	return "", false
}

func (r *record) dataFieldsByTag(tag string) []dataField {
	var out []dataField
	for _, df := range r.DataFields {
		if df.Tag == tag {
			out = append(out, df)
		}
	}
	return out
}

func (r *record) firstSubfield(tag, code string) (string, bool) {
	for _, df := range r.dataFieldsByTag(tag) {
		for _, sf := range df.Subfields {
			if sf.Code == code && sf.Text != "" {
				return sf.Text, true
			}
		}
	}
	return "", false
}

// firstSubfieldAmong tries each tag in order, returning the first
// matching subfield found — the Go analogue of original_source's
// _extract_marc_field tag-priority helper (e.g. 264 before 260).
func (r *record) firstSubfieldAmong(tags []string, code string) (string, bool) {
	for _, tag := range tags {
		if v, ok := r.firstSubfield(tag, code); ok {
			return v, true
		}
	}
	return "", false
}

// title assembles the 245 title from subfields a/b/n/p in their
// original source order.
func (r *record) title() string {
	var parts []string
	for _, df := range r.dataFieldsByTag("245") {
		for _, sf := range df.Subfields {
			switch sf.Code {
			case "a", "b", "n", "p":
				if t := strings.TrimSpace(sf.Text); t != "" {
					parts = append(parts, t)
				}
			}
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return textnorm.RemoveBracketedContent(strings.Join(parts, " "))
}

// mainAuthor tries 100$a, then 110$a, then 111$a, stripping a trailing
// life-date segment from the personal-name (100) form, e.g.
// "Smith, John, 1945-" -> "Smith, John".
func (r *record) mainAuthor() string {
	if a, ok := r.firstSubfield("100", "a"); ok {
		return stripTrailingDates(a)
	}
	if a, ok := r.firstSubfield("110", "a"); ok {
		return a
	}
	if a, ok := r.firstSubfield("111", "a"); ok {
		return a
	}
	return ""
}

func stripTrailingDates(name string) string {
	parts := strings.Split(name, ",")
	if len(parts) < 3 {
		return name
	}
	last := strings.TrimSpace(parts[len(parts)-1])
	if last == "" {
		return name
	}
	looksLikeDate := last[0] >= '0' && last[0] <= '9' || strings.HasSuffix(last, "-")
	if !looksLikeDate {
		return name
	}
	return strings.TrimSpace(strings.Join(parts[:len(parts)-1], ","))
}

// toPublication extracts a Publication from a decoded MARC record,
// following the MARC tag-to-field mapping. Returns false when
// the record has no usable title, mirroring original_source's
// drop-record-without-title rule.
func (r *record) toPublication() (*domain.Publication, bool) {
	title := r.title()
	if title == "" {
		return nil, false
	}

	p := domain.NewPublication(title)
	p.Source = "MARC"

	if c, ok := r.firstSubfield("245", "c"); ok {
		p.OriginalAuthor = c
	}
	p.OriginalMainAuthor = r.mainAuthor()

	control008, has008 := r.controlField("008")

	pubDate, ok := r.firstSubfieldAmong([]string{"264", "260"}, "c")
	if !ok && has008 && len(control008) >= 11 {
		pubDate = control008[7:11]
	}
	p.SetPubDateAndExtractYear(pubDate)

	if place, ok := r.firstSubfieldAmong([]string{"264", "260"}, "a"); ok {
		p.OriginalPlace = place
	}
	if publisher, ok := r.firstSubfieldAmong([]string{"264", "260"}, "b"); ok {
		p.OriginalPublisher = publisher
	}
	if edition, ok := r.firstSubfield("250", "a"); ok {
		p.OriginalEdition = edition
	}

	if has008 {
		code, classification := countryFromControl008(control008)
		p.CountryCode = code
		p.CountryClassification = classification
	}

	languageCode := ""
	if has008 && len(control008) >= 38 {
		languageCode = strings.ToLower(strings.TrimSpace(control008[35:38]))
	}
	if languageCode == "" {
		if a, ok := r.firstSubfield("041", "a"); ok {
			lower := strings.ToLower(strings.TrimSpace(a))
			if len(lower) > 3 {
				lower = lower[:3]
			}
			languageCode = lower
		}
	}
	lang, status := resolveLanguageWithStatus(languageCode)
	p.LanguageCode = lang
	p.LanguageDetectionStatus = status

	if id, ok := r.controlField("001"); ok {
		p.SourceID = id
	}

	if lccn, ok := r.firstSubfield("010", "a"); ok {
		p.SetLCCN(strings.TrimSpace(lccn))
	}

	return p, true
}
