package vision

import (
	"regexp"
	"strings"

	"github.com/vbonduro/plantid/internal/domain"
)

// Field labels requested by IdentifyPrompt.
const (
	LabelName           = "Name"
	LabelScientificName = "Scientific Name"
	LabelDescription    = "Description"
	LabelCare           = "Care"
	LabelFunFact        = "Fun Fact"
)

// Labels lists the fields in display order.
var Labels = []string{LabelName, LabelScientificName, LabelDescription, LabelCare, LabelFunFact}

var labelPatterns = func() map[string]*regexp.Regexp {
	m := make(map[string]*regexp.Regexp, len(Labels))
	for _, l := range Labels {
		m[l] = compileLabel(l)
	}
	return m
}()

// compileLabel matches "<label>:" followed by the rest of that line. Neither
// the whitespace after the colon nor the capture may cross a newline, so a
// blank field yields an empty capture instead of the following line.
func compileLabel(label string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(label) + `:[^\S\n]*(.*)`)
}

// ExtractField returns the trimmed text after the first "<label>:" in text,
// or domain.NotAvailable if the label is absent or its value is blank.
// Matching is case-sensitive and always scans from the start of text.
func ExtractField(text, label string) string {
	re, ok := labelPatterns[label]
	if !ok {
		re = compileLabel(label)
	}

	m := re.FindStringSubmatch(text)
	if m == nil {
		return domain.NotAvailable
	}
	if v := strings.TrimSpace(m[1]); v != "" {
		return v
	}
	return domain.NotAvailable
}

// ParseResponse extracts every PlantInfo field from a model response.
func ParseResponse(raw string) domain.PlantInfo {
	return domain.PlantInfo{
		Name:           ExtractField(raw, LabelName),
		ScientificName: ExtractField(raw, LabelScientificName),
		Description:    ExtractField(raw, LabelDescription),
		Care:           ExtractField(raw, LabelCare),
		FunFact:        ExtractField(raw, LabelFunFact),
	}
}
