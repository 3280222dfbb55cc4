package optimism

import (
	"math"

	"go.uber.org/zap"
)

// Options configures a single Score call. Construct it with DefaultOptions
// and override fields; the zero value is not meaningful because defaults
// such as the weight bounds are materialized explicitly rather than inferred
// from zero values.
type Options struct {
	// Encoding selects the contribution scheme. Default EncodingBinary.
	Encoding Encoding `yaml:"encoding"`

	// Locale selects the spelling dialect of the input. LocaleGB rewrites
	// British spellings to their American lexicon forms before matching.
	// Default LocaleUS.
	Locale Locale `yaml:"locale"`

	// Min and Max bound the lexicon weights eligible for the match set.
	// Both bounds are inclusive. Defaults -Inf and +Inf.
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`

	// NGrams lists the span lengths expanded alongside unigrams. A span
	// larger than the document's token count is skipped for that call.
	// {0} (or an empty list) disables expansion. Default {2, 3}.
	NGrams []int `yaml:"ngrams"`

	// NoIntercept drops the Intercept term from the aggregate score.
	NoIntercept bool `yaml:"noInt"`

	// Output selects the Result shape. Default OutputLex.
	Output Output `yaml:"output"`

	// Places rounds the score and match values to this many decimal places
	// at the formatting boundary. Valid range 0..MaxPlaces; -1 disables
	// rounding. Default -1.
	Places int `yaml:"places"`

	// SortBy orders the match table. Default SortFreq.
	SortBy SortKey `yaml:"sortBy"`

	// WCGrams includes expanded n-grams in the word-count denominator used
	// by the frequency and percent encodings. Default false: the denominator
	// is the unigram count captured before expansion.
	WCGrams bool `yaml:"wcGrams"`
}

// DefaultOptions returns the documented defaults for every option.
func DefaultOptions() *Options {
	return &Options{
		Encoding: EncodingBinary,
		Locale:   LocaleUS,
		Min:      math.Inf(-1),
		Max:      math.Inf(1),
		NGrams:   []int{2, 3},
		Output:   OutputLex,
		Places:   -1,
		SortBy:   SortFreq,
	}
}

// resolve validates the options and returns a copy with every unrecognized
// value replaced by its documented default. Invalid options warn through the
// logger but never fail the call.
func (o *Options) resolve(log *zap.Logger) Options {
	def := DefaultOptions()
	if o == nil {
		return *def
	}

	r := *o

	switch r.Encoding {
	case EncodingBinary, EncodingFrequency, EncodingPercent:
	default:
		log.Warn("unrecognized encoding, using default",
			zap.String("encoding", string(r.Encoding)),
			zap.String("default", string(def.Encoding)))
		r.Encoding = def.Encoding
	}

	switch r.Locale {
	case LocaleUS, LocaleGB:
	default:
		log.Warn("unrecognized locale, using default",
			zap.String("locale", string(r.Locale)),
			zap.String("default", string(def.Locale)))
		r.Locale = def.Locale
	}

	switch r.Output {
	case OutputLex, OutputMatches, OutputFull:
	default:
		log.Warn("unrecognized output mode, using default",
			zap.String("output", string(r.Output)),
			zap.String("default", string(def.Output)))
		r.Output = def.Output
	}

	switch r.SortBy {
	case SortFreq, SortWeight, SortLex:
	default:
		log.Warn("unrecognized sort key, using default",
			zap.String("sortBy", string(r.SortBy)),
			zap.String("default", string(def.SortBy)))
		r.SortBy = def.SortBy
	}

	if math.IsNaN(r.Min) {
		log.Warn("non-numeric min bound, using default")
		r.Min = def.Min
	}
	if math.IsNaN(r.Max) {
		log.Warn("non-numeric max bound, using default")
		r.Max = def.Max
	}

	if r.NGrams == nil {
		r.NGrams = def.NGrams
	}

	if r.Places < -1 || r.Places > MaxPlaces {
		log.Warn("places out of range, rounding disabled",
			zap.Int("places", r.Places))
		r.Places = -1
	}

	return r
}
