package plt

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// sigdigitZero is the sigdigit sentinel for zero, which has no most
// significant digit.
const sigdigitZero = math.MinInt32

// sigdigit returns the power-of-ten position of the most significant digit of
// |num|: 432 -> 2, 0.04 -> -2.
func sigdigit(num float64) int {
	num = math.Abs(num)
	if num == 0 {
		return sigdigitZero
	}

	ret := 0
	if num > 1 {
		for num >= 10 {
			num /= 10
			ret++
		}
	} else {
		for num < 1 {
			num *= 10
			ret--
		}
	}
	return ret
}

// decimals returns the first ndigits decimal digits of num.
func decimals(num float64, ndigits int) []int {
	digits := make([]int, 0, ndigits)
	for i := 0; i < ndigits; i++ {
		num -= math.Floor(num)
		num *= 10
		digits = append(digits, int(math.Floor(num)))
	}
	return digits
}

// roundTo rounds num to place decimal digits.
func roundTo(num float64, place int) float64 {
	shift := math.Pow(10, float64(place))
	return math.Round(num*shift) / shift
}

var superscriptDigits = [10]string{"⁰", "¹", "²", "³", "⁴", "⁵", "⁶", "⁷", "⁸", "⁹"}

// superscript renders n with Unicode superscript digits.
func superscript(n int) string {
	if n < 0 {
		return "⁻" + superscript(-n)
	}
	if n < 10 {
		return superscriptDigits[n]
	}
	return superscript(n/10) + superscriptDigits[n%10]
}

// tickModifiers solves the display modifiers for a tick list: an additive
// offset subtracted from every tick, a power-of-ten exponent the remainder is
// scaled by, and the decimal precision that loses no tick's trailing digits.
// The input is sorted internally; modifier solving and label formatting always
// agree on ordering.
func tickModifiers(ticks []float64) (offset float64, exponent, precision int, err error) {
	for _, tick := range ticks {
		if math.IsNaN(tick) {
			return 0, 0, 0, fmt.Errorf("%w: tick is NaN", ErrBadTickPlacement)
		}
	}
	if len(ticks) == 0 {
		return 0, 0, 0, nil
	}

	sorted := append([]float64(nil), ticks...)
	sort.Float64s(sorted)
	last := sorted[len(sorted)-1]

	// the highest most significant digit position of any tick
	maxMultiplier := sigdigit(last)

	// the most significant digit position of the largest gap between
	// consecutive ticks
	maxDif := 0.0
	for i := 1; i < len(sorted); i++ {
		if dif := sorted[i] - sorted[i-1]; i == 1 || dif > maxDif {
			maxDif = dif
		}
	}
	difMultiplier := maxMultiplier
	if maxDif != 0 {
		difMultiplier = sigdigit(maxDif)
	}

	// when the ticks span many more orders of magnitude than their spacing
	// resolves, subtract the first tick so the remaining digits stay
	// significant
	if difMultiplier < maxMultiplier-3 {
		offset = sorted[0]
	}

	maxMultiplier = sigdigit(roundTo(last-offset, 3-difMultiplier))
	if maxMultiplier < -2 || maxMultiplier > 3 {
		exponent = maxMultiplier
	}

	// precision ceiling, then tightened to the last nonzero decimal over all
	// ticks
	maxPrecision := 3
	if exponent == 0 && maxMultiplier >= 0 {
		maxPrecision = 3 - maxMultiplier
	}
	for _, tick := range sorted {
		if exponent != 0 {
			tick = math.Round(tick*math.Pow(10, float64(3-exponent))) * 1e-3
		}
		digits := decimals(tick, maxPrecision)
		for i := len(digits) - 1; i >= 0; i-- {
			if digits[i] != 0 {
				if i+1 > precision {
					precision = i + 1
				}
				break
			}
		}
	}

	return offset, exponent, precision, nil
}

// ticksToLabels formats tick values with the given modifiers. Ticks are
// sorted ascending before formatting.
func ticksToLabels(ticks []float64, offset float64, exponent, precision int) ([]string, error) {
	for _, tick := range ticks {
		if math.IsNaN(tick) {
			return nil, fmt.Errorf("%w: tick is NaN", ErrBadTickPlacement)
		}
	}
	if len(ticks) == 0 {
		return nil, nil
	}

	sorted := append([]float64(nil), ticks...)
	sort.Float64s(sorted)

	labels := make([]string, len(sorted))
	for i, tick := range sorted {
		tick = roundTo(tick-offset, 4-exponent)
		if exponent != 0 {
			tick = math.Round(tick*math.Pow(10, float64(3-exponent))) * 1e-3
		}
		labels[i] = strconv.FormatFloat(tick, 'f', precision, 64)
	}
	return labels, nil
}

// modifierText renders the "x10^n + offset" annotation drawn alongside an
// axis, or "" when no modifier applies.
func modifierText(offset float64, exponent int) string {
	var sb strings.Builder
	if exponent != 0 {
		sb.WriteString("x10")
		sb.WriteString(superscript(exponent))
	}
	if offset != 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		// fixed notation; offsets arise at large magnitudes where 'g' would
		// switch to scientific form
		sb.WriteString("+ ")
		sb.WriteString(strconv.FormatFloat(offset, 'f', -1, 64))
	}
	return sb.String()
}

// generateTicks produces tick locations for one axis and tick kind. The On
// policy places onCount evenly spaced ticks; Auto does the same only when the
// axis is primary (has at least one plot attached). Manual lists are returned
// verbatim.
func generateTicks(spacing TickSpacing, span interval, isPrimary bool, onCount int) []float64 {
	if spacing.kind == spacingManual {
		return append([]float64(nil), spacing.ticks...)
	}

	var n int
	switch spacing.kind {
	case spacingCount:
		n = spacing.count
	case spacingOn:
		n = onCount
	case spacingAuto:
		if isPrimary {
			n = onCount
		}
	}

	ticks := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		ticks = append(ticks, span.lo+(span.hi-span.lo)*(float64(i)/float64(n-1)))
	}
	return ticks
}

// filterMinorTicks removes minor ticks that exactly coincide with a major
// tick, to avoid doubled marks.
func filterMinorTicks(minor, major []float64) []float64 {
	kept := make([]float64, 0, len(minor))
	for _, tick := range minor {
		collides := false
		for _, m := range major {
			if tick == m {
				collides = true
				break
			}
		}
		if !collides {
			kept = append(kept, tick)
		}
	}
	return kept
}
