package optimism

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()

	assert.Equal(t, EncodingBinary, opts.Encoding)
	assert.Equal(t, LocaleUS, opts.Locale)
	assert.True(t, math.IsInf(opts.Min, -1))
	assert.True(t, math.IsInf(opts.Max, 1))
	assert.Equal(t, []int{2, 3}, opts.NGrams)
	assert.False(t, opts.NoIntercept)
	assert.Equal(t, OutputLex, opts.Output)
	assert.Equal(t, -1, opts.Places)
	assert.Equal(t, SortFreq, opts.SortBy)
	assert.False(t, opts.WCGrams)
}

func TestOptions_Resolve_Nil(t *testing.T) {
	var opts *Options

	resolved := opts.resolve(zap.NewNop())
	assert.Equal(t, *DefaultOptions(), resolved)
}

func TestOptions_Resolve_Fallbacks(t *testing.T) {
	opts := &Options{
		Encoding: "tfidf",
		Locale:   "AU",
		Min:      math.NaN(),
		Max:      math.NaN(),
		Output:   "table",
		Places:   21,
		SortBy:   "alphabetical",
	}

	resolved := opts.resolve(zap.NewNop())

	assert.Equal(t, EncodingBinary, resolved.Encoding)
	assert.Equal(t, LocaleUS, resolved.Locale)
	assert.True(t, math.IsInf(resolved.Min, -1))
	assert.True(t, math.IsInf(resolved.Max, 1))
	assert.Equal(t, []int{2, 3}, resolved.NGrams)
	assert.Equal(t, OutputLex, resolved.Output)
	assert.Equal(t, -1, resolved.Places)
	assert.Equal(t, SortFreq, resolved.SortBy)
}

func TestOptions_Resolve_KeepsValidValues(t *testing.T) {
	opts := DefaultOptions()
	opts.Encoding = EncodingFrequency
	opts.Locale = LocaleGB
	opts.Min = 0
	opts.Max = 0.5
	opts.NGrams = []int{2}
	opts.NoIntercept = true
	opts.Output = OutputFull
	opts.Places = 0
	opts.SortBy = SortWeight
	opts.WCGrams = true

	resolved := opts.resolve(zap.NewNop())
	assert.Equal(t, *opts, resolved)

	// resolving never mutates the caller's options
	assert.Equal(t, EncodingFrequency, opts.Encoding)
}

func TestOptions_Resolve_ExplicitZeroBounds(t *testing.T) {
	// a deliberate zero bound is a real value, not "unset"
	opts := DefaultOptions()
	opts.Min = 0

	resolved := opts.resolve(zap.NewNop())
	assert.Zero(t, resolved.Min)
	assert.True(t, math.IsInf(resolved.Max, 1))
}
