package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLines_Valid(t *testing.T) {
	assert.Empty(t, Validate(DefaultLines()))
}

func TestDefaultSet_NoOverlaps(t *testing.T) {
	// The seed catalog must map each code to at most one line, or a
	// fresh organization starts out with ambiguity warnings.
	set := DefaultSet()
	for code := 1000; code <= 5999; code++ {
		ids := set.Matching(code)
		assert.LessOrEqual(t, len(ids), 1, "code %d matched %v", code, ids)
	}
}

func TestDefaultSet_KnownLines(t *testing.T) {
	set := DefaultSet()

	assert.Equal(t, []string{"cash"}, set.Matching(1000))
	assert.Equal(t, []string{"trade_receivables"}, set.Matching(1140))
	assert.Equal(t, []string{"trade_payables"}, set.Matching(2010))
	assert.Equal(t, []string{"loans_short_term"}, set.Matching(2100))
	assert.Equal(t, []string{"taxes_payable"}, set.Matching(2200))
	// 2500 is carved out of payables and pulled into its own line.
	assert.Equal(t, []string{"dividends_payable"}, set.Matching(2500))
	assert.Equal(t, []string{"revenue"}, set.Matching(4010))
}
