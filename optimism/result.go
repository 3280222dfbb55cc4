package optimism

import (
	"sort"

	"github.com/gonum/floats"
)

// MatchRecord is one matched term with its occurrence count, its affect
// weight, and its encoded contribution value.
type MatchRecord struct {
	Term      string  `json:"term"`
	Frequency int     `json:"frequency"`
	Weight    float64 `json:"weight"`
	Value     float64 `json:"value"`
}

// MatchInfo summarizes the match set for the "matches" and "full" outputs.
type MatchInfo struct {
	// TotalMatches is the sum of match frequencies.
	TotalMatches int `json:"total_matches"`
	// TotalUniqueMatches is the count of distinct matched terms.
	TotalUniqueMatches int `json:"total_unique_matches"`
	// TotalTokens is the word count used as the encoding denominator.
	TotalTokens int `json:"total_tokens"`
	// PercentMatches is TotalMatches / TotalTokens as a decimal fraction.
	PercentMatches float64 `json:"percent_matches"`
}

// Result is the output of one Score call, immutable once returned. Which
// fields are populated depends on Options.Output: OutputLex fills Score,
// OutputMatches fills Matches and Info, OutputFull fills all three.
type Result struct {
	Score   float64       `json:"score"`
	Matches []MatchRecord `json:"matches,omitempty"`
	Info    *MatchInfo    `json:"info,omitempty"`
}

// sortMatches orders records by the requested key, descending. Sorts are
// stable, so ties keep first-occurrence order.
func sortMatches(records []MatchRecord, key SortKey) {
	switch key {
	case SortWeight:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Weight > records[j].Weight
		})
	case SortLex:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Value > records[j].Value
		})
	default:
		sort.SliceStable(records, func(i, j int) bool {
			return records[i].Frequency > records[j].Frequency
		})
	}
}

// format shapes the final Result. Rounding happens here and nowhere
// earlier; raw lexicon weights are reported unrounded.
func format(records []MatchRecord, score float64, doc *document, opts Options) *Result {
	if opts.Places >= 0 {
		score = floats.Round(score, opts.Places)
		for i := range records {
			records[i].Value = floats.Round(records[i].Value, opts.Places)
		}
	}

	result := &Result{}

	if opts.Output == OutputLex || opts.Output == OutputFull {
		result.Score = score
	}

	if opts.Output == OutputMatches || opts.Output == OutputFull {
		totalMatches := 0
		for _, record := range records {
			totalMatches += record.Frequency
		}

		percentMatches := float64(totalMatches) / float64(doc.WordCount)
		if opts.Places >= 0 {
			percentMatches = floats.Round(percentMatches, opts.Places)
		}

		sortMatches(records, opts.SortBy)

		result.Matches = records
		result.Info = &MatchInfo{
			TotalMatches:       totalMatches,
			TotalUniqueMatches: len(records),
			TotalTokens:        doc.WordCount,
			PercentMatches:     percentMatches,
		}
	}

	return result
}
