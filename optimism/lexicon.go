package optimism

import (
	"embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed data/*.txt
var lexiconFS embed.FS

const (
	defaultFutureFile  = "data/future_vocab.txt"
	defaultAffectFile  = "data/affect_lexicon.txt"
	defaultDialectFile = "data/dialect_gb.txt"
)

// MakeFutureSet parses future-vocabulary file data: one term (word or
// space-joined n-gram) per line. Blank lines and #-comments are skipped.
func MakeFutureSet(data string) map[string]struct{} {
	futureSet := make(map[string]struct{})

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		futureSet[line] = struct{}{}
	}

	return futureSet
}

// MakeWeightMap converts affect lexicon file data to a term -> weight map.
// Each line holds a term and a float weight separated by a tab.
func MakeWeightMap(data string) (map[string]float64, error) {
	weightMap := make(map[string]float64)

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		values := strings.Split(line, "\t")
		if len(values) != 2 {
			return nil, fmt.Errorf("optimism: malformed affect lexicon line %q", line)
		}

		weight, err := strconv.ParseFloat(values[1], 64)
		if err != nil {
			return nil, fmt.Errorf("optimism: bad weight for term %q: %w", values[0], err)
		}

		weightMap[values[0]] = weight
	}

	return weightMap, nil
}

// MakeDialectMap converts dialect file data to a GB -> US spelling map.
// Each line holds the British form and the American form separated by a tab.
func MakeDialectMap(data string) (map[string]string, error) {
	dialectMap := make(map[string]string)

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		values := strings.Split(line, "\t")
		if len(values) != 2 {
			return nil, fmt.Errorf("optimism: malformed dialect line %q", line)
		}

		dialectMap[values[0]] = values[1]
	}

	return dialectMap, nil
}
