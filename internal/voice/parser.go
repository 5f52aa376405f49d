// Package voice turns spoken Telugu quantity phrases into numbers and
// manages the capture session around an external speech recognizer.
package voice

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// fractionTerm maps one vocabulary phrase to a fixed quantity.
type fractionTerm struct {
	phrase string
	value  decimal.Decimal
}

// fractionTerms covers bare fractions and whole-and-half compounds. The
// bare digit strings ("05" etc.) are transcription artifacts the recognizer
// emits for fraction phrases.
//
// Matched longest phrase first, so ముప్పావు (0.75) is never shadowed by its
// పావు (0.25) substring and ఒకటిన్నర (1.5) wins over ఒకటి (1).
var fractionTerms = []fractionTerm{
	{"పావు", decimal.RequireFromString("0.25")},   // paavu: quarter
	{"అర", decimal.RequireFromString("0.5")},      // ara: half
	{"సగం", decimal.RequireFromString("0.5")},     // sagam: half
	{"ముప్పావు", decimal.RequireFromString("0.75")}, // muppaavu: three quarters
	{"025", decimal.RequireFromString("0.25")},
	{"05", decimal.RequireFromString("0.5")},
	{"075", decimal.RequireFromString("0.75")},
	{"ఒకటిన్నర", decimal.RequireFromString("1.5")},  // okatinnara: one and a half
	{"రెండున్నర", decimal.RequireFromString("2.5")},  // rendunnara: two and a half
	{"మూడున్నర", decimal.RequireFromString("3.5")},  // moodunnara: three and a half
	{"నాలుగున్నర", decimal.RequireFromString("4.5")}, // naalugunnara: four and a half
}

// digitWord maps one spoken digit word to its numeral characters.
type digitWord struct {
	phrase  string
	numeral string
}

// digitWords substitutes spoken digits before numeral extraction. Applied
// longest phrase first so ఒకటి is rewritten before its ఒక prefix.
var digitWords = []digitWord{
	{"సున్న", "0"},
	{"ఒక", "1"},
	{"ఒకటి", "1"},
	{"రెండు", "2"},
	{"మూడు", "3"},
	{"నాలుగు", "4"},
	{"ఐదు", "5"},
	{"ఆరు", "6"},
	{"ఏడు", "7"},
	{"ఎనిమిది", "8"},
	{"తొమ్మిది", "9"},
	{"పది", "10"},
}

func init() {
	sort.SliceStable(fractionTerms, func(i, j int) bool {
		return len(fractionTerms[i].phrase) > len(fractionTerms[j].phrase)
	})
	sort.SliceStable(digitWords, func(i, j int) bool {
		return len(digitWords[i].phrase) > len(digitWords[j].phrase)
	})
}

var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

var (
	quarterStep = decimal.RequireFromString("0.25")
	halfStep    = decimal.RequireFromString("0.5")
	threeQStep  = decimal.RequireFromString("0.75")
)

// Parse extracts a positive quantity from a free-form transcript. The
// second return value is false when no quantity was found; callers must
// fall back to manual entry, never treat that as zero.
//
// This is a best-effort heuristic over a fixed vocabulary, not a numeral
// grammar. Steps, first match wins:
//
//  1. lowercase and strip whitespace
//  2. fraction and whole-and-half vocabulary, longest phrase first
//  3. spoken digit substitution, then first numeral run
//  4. ad-hoc "N/4" mixed fractions add a quarter step to the number
func Parse(text string) (decimal.Decimal, bool) {
	normalized := strings.ToLower(stripSpaces(text))
	if normalized == "" {
		return decimal.Decimal{}, false
	}

	for _, term := range fractionTerms {
		if strings.Contains(normalized, term.phrase) {
			return term.value, true
		}
	}

	substituted := normalized
	for _, word := range digitWords {
		substituted = strings.ReplaceAll(substituted, word.phrase, word.numeral)
	}

	match := numberPattern.FindString(substituted)
	if match == "" {
		return decimal.Decimal{}, false
	}
	value, err := decimal.NewFromString(strings.TrimSuffix(match, "."))
	if err != nil {
		return decimal.Decimal{}, false
	}

	switch {
	case strings.Contains(substituted, "1/4"):
		value = value.Add(quarterStep)
	case strings.Contains(substituted, "2/4"):
		value = value.Add(halfStep)
	case strings.Contains(substituted, "3/4"):
		value = value.Add(threeQStep)
	}

	if !value.IsPositive() {
		return decimal.Decimal{}, false
	}
	return value, true
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
