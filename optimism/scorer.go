package optimism

import (
	"errors"
	"fmt"
	"os"

	"github.com/gonum/floats"
	"go.uber.org/zap"
)

// ErrNoTokens is returned by Score when the input yields no scorable tokens
// (nil-ish, empty, or whitespace/punctuation-only text). It is the "no
// result" signal, distinct from a legitimate zero score.
var ErrNoTokens = errors.New("optimism: no scorable tokens")

var nopLogger = zap.NewNop()

// Give an optimism score to text on a 1-9 scale (5 = neutral).
//
// A Scorer holds two lexica: the future vocabulary gates which terms are
// eligible at all, and the affect lexicon supplies the weight for each gated
// term. Both are loaded once by Init and read-only afterwards, so a single
// Scorer is safe for concurrent use.
type Scorer struct {
	FutureSet  map[string]struct{}
	AffectMap  map[string]float64
	DialectMap map[string]string

	// Logger receives diagnostics for option fallbacks and skipped n-gram
	// spans. Nil disables logging.
	Logger *zap.Logger
}

// Initialize scorer with lexicons
// if no filepaths passed to init, using the embedded default lexicon files
func (s *Scorer) Init(filenames ...string) error {
	var futureData, affectData, dialectData string

	switch len(filenames) {
	case 0:
		for _, f := range []struct {
			name string
			dst  *string
		}{
			{defaultFutureFile, &futureData},
			{defaultAffectFile, &affectData},
			{defaultDialectFile, &dialectData},
		} {
			data, err := lexiconFS.ReadFile(f.name)
			if err != nil {
				return fmt.Errorf("optimism: reading embedded %s: %w", f.name, err)
			}
			*f.dst = string(data)
		}
	case 3:
		for i, dst := range []*string{&futureData, &affectData, &dialectData} {
			data, err := os.ReadFile(filenames[i])
			if err != nil {
				return fmt.Errorf("optimism: reading %s: %w", filenames[i], err)
			}
			*dst = string(data)
		}
	default:
		return fmt.Errorf("optimism: Init takes no filenames or exactly 3 (future, affect, dialect), got %d", len(filenames))
	}

	s.FutureSet = MakeFutureSet(futureData)
	if len(s.FutureSet) == 0 {
		return errors.New("optimism: future vocabulary is empty")
	}

	affectMap, err := MakeWeightMap(affectData)
	if err != nil {
		return err
	}
	if len(affectMap) == 0 {
		return errors.New("optimism: affect lexicon is empty")
	}
	s.AffectMap = affectMap

	dialectMap, err := MakeDialectMap(dialectData)
	if err != nil {
		return err
	}
	s.DialectMap = dialectMap

	return nil
}

// Score runs the matching-and-aggregation pipeline over text and returns a
// Result shaped by opts.Output. A nil opts scores with DefaultOptions.
// Invalid option values fall back to their defaults; the only error
// condition is input that produces no tokens, reported as ErrNoTokens.
func (s *Scorer) Score(text string, opts *Options) (*Result, error) {
	resolved := opts.resolve(s.logger())

	doc := s.newDocument(text, resolved)
	if doc == nil {
		return nil, ErrNoTokens
	}

	matches := s.match(doc, resolved)
	score := aggregate(matches, doc, resolved)

	return format(matches, score, doc, resolved), nil
}

// match gates the expanded token sequence on the future vocabulary,
// annotates each gated term with its occurrence count, then intersects the
// result with the affect lexicon under the inclusive [Min, Max] weight
// bounds. Records keep first-occurrence order.
func (s *Scorer) match(doc *document, opts Options) []MatchRecord {
	counts := make(map[string]int)
	var order []string

	for _, token := range doc.Expanded {
		if _, ok := s.FutureSet[token]; !ok {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	records := make([]MatchRecord, 0, len(order))
	for _, term := range order {
		weight, ok := s.AffectMap[term]
		if !ok {
			continue
		}
		if weight < opts.Min || weight > opts.Max {
			continue
		}

		frequency := counts[term]
		record := MatchRecord{
			Term:      term,
			Frequency: frequency,
			Weight:    weight,
		}

		switch opts.Encoding {
		case EncodingFrequency:
			record.Value = float64(frequency) / float64(doc.WordCount) * weight
		case EncodingPercent:
			record.Value = float64(frequency) / float64(doc.WordCount)
		default:
			record.Value = weight
		}

		records = append(records, record)
	}

	return records
}

// aggregate sums the match contributions into the final score. The
// intercept is added exactly once, never per match, and only under the
// weighted encodings; with the intercept disabled and no matches the score
// is a plain 0.
func aggregate(records []MatchRecord, doc *document, opts Options) float64 {
	if opts.Encoding == EncodingPercent {
		matched := 0
		for _, record := range records {
			matched += record.Frequency
		}
		return float64(matched) / float64(doc.WordCount)
	}

	values := make([]float64, len(records))
	for i, record := range records {
		values[i] = record.Value
	}

	score := floats.Sum(values)
	if !opts.NoIntercept {
		score += Intercept
	}

	return score
}

func (s *Scorer) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return nopLogger
}
