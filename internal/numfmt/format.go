// Package numfmt formats currency, percentage, and score values for
// display. Non-finite and corrupt inputs render as "N/A" and are logged at
// warn level so bad engine data stays visible instead of being silently
// masked.
package numfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// NotAvailable is the placeholder shown for values that cannot be
// formatted.
const NotAvailable = "N/A"

// Percent renders a fractional rate (0.12 -> "12.0%").
func Percent(v float64) string {
	if !isFinite(v) {
		zap.L().Warn("non-finite percentage value", zap.Float64("value", v))
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", v*100)
}

// PercentToken renders a percentage that arrived as a string. Known-corrupt
// tokens ("NaN", "Infinity", parse failures) render as N/A; the raw token
// is logged so upstream serialization bugs surface in the logs rather than
// disappearing into a placeholder.
func PercentToken(s string) string {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if trimmed == "" {
		return NotAvailable
	}

	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "nan") || strings.Contains(lower, "inf") {
		zap.L().Warn("corrupt percentage token from engine", zap.String("token", s))
		return NotAvailable
	}

	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		zap.L().Warn("unparseable percentage token from engine", zap.String("token", s))
		return NotAvailable
	}
	if !isFinite(v) {
		zap.L().Warn("non-finite percentage token from engine", zap.String("token", s))
		return NotAvailable
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Currency renders a USD amount with thousands separators and no decimals.
func Currency(v float64) string {
	if !isFinite(v) {
		zap.L().Warn("non-finite currency value", zap.Float64("value", v))
		return NotAvailable
	}

	neg := v < 0
	whole := int64(math.Round(math.Abs(v)))
	grouped := group(whole)
	if neg {
		return "-$" + grouped
	}
	return "$" + grouped
}

// Score renders a 0-10 score with one decimal.
func Score(v float64) string {
	if !isFinite(v) {
		zap.L().Warn("non-finite score value", zap.Float64("value", v))
		return NotAvailable
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func group(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
