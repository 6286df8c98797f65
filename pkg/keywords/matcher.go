// Package keywords diffs a job description's extracted keyword set against
// resume text. Extraction itself happens in the model; this package handles
// the untrusted response and the matching math.
package keywords

import (
	"math"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// jsonSpanPattern grabs the widest {...} span, matching how the model tends to
// wrap its JSON in prose despite being told not to.
var jsonSpanPattern = regexp.MustCompile(`(?s)\{.*\}`)

// Extraction is the structured keyword set a model response decodes into.
type Extraction struct {
	Keywords   []string `json:"keywords"`
	Skills     []string `json:"skills"`
	Tools      []string `json:"tools"`
	SoftSkills []string `json:"softSkills"`
}

// Analysis is an Extraction diffed against a document.
type Analysis struct {
	Extraction
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	MatchPercent int      `json:"match_percent"`
}

// ParseExtraction pulls the first JSON object out of a raw model response.
// Returns false when no parseable object is present; the caller treats that
// as "no analysis", never as an error.
func ParseExtraction(raw string) (Extraction, bool) {
	span := jsonSpanPattern.FindString(raw)
	if span == "" || !gjson.Valid(span) {
		return Extraction{}, false
	}

	parsed := gjson.Parse(span)
	return Extraction{
		Keywords:   stringSlice(parsed.Get("keywords")),
		Skills:     stringSlice(parsed.Get("skills")),
		Tools:      stringSlice(parsed.Get("tools")),
		SoftSkills: stringSlice(parsed.Get("softSkills")),
	}, true
}

func stringSlice(value gjson.Result) []string {
	if !value.IsArray() {
		return nil
	}
	var out []string
	for _, item := range value.Array() {
		if s := item.String(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Match splits the union of all extracted terms into those the document
// already contains (case-folded substring) and those it lacks.
func Match(extraction Extraction, document string) Analysis {
	all := make([]string, 0, len(extraction.Keywords)+len(extraction.Skills)+len(extraction.Tools)+len(extraction.SoftSkills))
	all = append(all, extraction.Keywords...)
	all = append(all, extraction.Skills...)
	all = append(all, extraction.Tools...)
	all = append(all, extraction.SoftSkills...)

	contentLower := strings.ToLower(document)

	matched := []string{}
	missing := []string{}
	for _, kw := range all {
		if strings.Contains(contentLower, strings.ToLower(kw)) {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}

	percent := 0
	if len(all) > 0 {
		percent = int(math.Round(float64(len(matched)) / float64(len(all)) * 100))
	}

	return Analysis{
		Extraction:   extraction,
		Matched:      matched,
		Missing:      missing,
		MatchPercent: percent,
	}
}
