package numfmt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	assert.Equal(t, "12.0%", Percent(0.12))
	assert.Equal(t, "-4.5%", Percent(-0.045))
	assert.Equal(t, NotAvailable, Percent(math.NaN()))
	assert.Equal(t, NotAvailable, Percent(math.Inf(1)))
	assert.Equal(t, NotAvailable, Percent(math.Inf(-1)))
}

func TestPercentToken(t *testing.T) {
	t.Run("valid tokens", func(t *testing.T) {
		assert.Equal(t, "12.5%", PercentToken("12.5"))
		assert.Equal(t, "12.5%", PercentToken("12.5%"))
		assert.Equal(t, "8.0%", PercentToken(" 8 "))
	})

	t.Run("corrupt tokens never leak through", func(t *testing.T) {
		assert.Equal(t, NotAvailable, PercentToken("NaN"))
		assert.Equal(t, NotAvailable, PercentToken("NaN%"))
		assert.Equal(t, NotAvailable, PercentToken("Infinity"))
		assert.Equal(t, NotAvailable, PercentToken("-Infinity%"))
		assert.Equal(t, NotAvailable, PercentToken("12,3garbage"))
		assert.Equal(t, NotAvailable, PercentToken(""))
	})
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "$1,234,567", Currency(1234567.2))
	assert.Equal(t, "$950", Currency(950))
	assert.Equal(t, "-$100,000", Currency(-100000))
	assert.Equal(t, "$0", Currency(0))
	assert.Equal(t, NotAvailable, Currency(math.NaN()))
	assert.Equal(t, NotAvailable, Currency(math.Inf(1)))
}

func TestScore(t *testing.T) {
	assert.Equal(t, "8.5", Score(8.5))
	assert.Equal(t, "10.0", Score(10))
	assert.Equal(t, NotAvailable, Score(math.NaN()))
}
