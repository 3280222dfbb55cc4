package optimism

import (
	"sort"
	"strings"
	"unicode"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// document is the per-call token view of one input string.
type document struct {
	// Tokens holds the unigrams after normalization and dialect rewriting.
	Tokens []string
	// Expanded holds the unigrams followed by the requested n-grams in
	// ascending span order.
	Expanded []string
	// WordCount is the denominator used by the frequency and percent
	// encodings.
	WordCount int
}

// NormalizeText lowercases and trims the input and folds combining marks so
// accented variants match lexicon entries.
func NormalizeText(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	text = norm.NFD.String(text)
	text = strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, text)

	return norm.NFC.String(text)
}

// Tokenize splits normalized text into word tokens. Punctuation separates
// tokens; internal apostrophes are preserved.
func Tokenize(text string) []string {
	return tokenRegexp.FindAllString(text, -1)
}

// NGrams returns the contiguous n-token groups of tokens, joined by single
// spaces, in document order. Returns nil when fewer than n tokens exist.
func NGrams(tokens []string, n int) []string {
	if n < 1 || len(tokens) < n {
		return nil
	}

	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}

	return grams
}

// newDocument normalizes, tokenizes, and expands one input string under
// already-resolved options. Returns nil when the input yields no tokens.
func (s *Scorer) newDocument(text string, opts Options) *document {
	normalized := NormalizeText(text)
	if normalized == "" {
		return nil
	}

	tokens := Tokenize(normalized)
	if len(tokens) == 0 {
		return nil
	}

	if opts.Locale == LocaleGB {
		for i, token := range tokens {
			if us, ok := s.DialectMap[token]; ok {
				tokens[i] = us
			}
		}
	}

	// unigrams first, then n-grams in ascending span order
	spans := append([]int(nil), opts.NGrams...)
	sort.Ints(spans)

	expanded := make([]string, len(tokens), len(tokens)*(len(spans)+1))
	copy(expanded, tokens)

	prev := 0
	for _, n := range spans {
		if n == prev {
			continue
		}
		prev = n

		if n < 2 {
			continue
		}
		if len(tokens) < n {
			s.logger().Debug("skipping n-gram span longer than document",
				zap.Int("span", n),
				zap.Int("tokens", len(tokens)))
			continue
		}

		expanded = append(expanded, NGrams(tokens, n)...)
	}

	wordCount := len(tokens)
	if opts.WCGrams {
		wordCount = len(expanded)
	}

	return &document{
		Tokens:    tokens,
		Expanded:  expanded,
		WordCount: wordCount,
	}
}
