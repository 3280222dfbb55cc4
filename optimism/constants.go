package optimism

import "regexp"

const (
	// Intercept is the regression intercept added to the aggregate score.
	// It anchors a no-evidence result at neutral on the 1-9 scale rather
	// than at 0.
	Intercept = 5.037104721

	// MaxPlaces is the largest accepted decimal-places value for rounding.
	MaxPlaces = 20
)

// Encoding selects how a match's frequency and weight combine into its
// contribution to the score.
type Encoding string

const (
	// EncodingBinary contributes the raw lexicon weight once per matched
	// term, regardless of frequency.
	EncodingBinary Encoding = "binary"
	// EncodingFrequency contributes (frequency / word count) * weight.
	EncodingFrequency Encoding = "frequency"
	// EncodingPercent reports matched-token fractions instead of weighted
	// values; the aggregate is the fraction of tokens that matched.
	EncodingPercent Encoding = "percent"
)

// Output selects the shape of the returned Result.
type Output string

const (
	OutputLex     Output = "lex"
	OutputMatches Output = "matches"
	OutputFull    Output = "full"
)

// SortKey orders the match table in "matches" and "full" output.
type SortKey string

const (
	SortFreq   SortKey = "freq"
	SortWeight SortKey = "weight"
	SortLex    SortKey = "lex"
)

// Locale selects the spelling dialect of the input text.
type Locale string

const (
	LocaleUS Locale = "US"
	LocaleGB Locale = "GB"
)

// Match word tokens, preserving internal apostrophes
var tokenRegexp = regexp.MustCompile(`[’']?[\pL]+(?:[’'][\pL]+)*[’']?|\pN+`)
