package wikifmt

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Renderable is the numeric rendering policy shared by every argument kind.
// Each method takes a percent flag: numeric kinds scale by 100 before
// rounding or grouping, and every mode except the raw float form appends
// a literal "%".
type Renderable interface {
	// RenderRaw renders the placeholder form without a modifier.
	RenderRaw(percent bool) string
	// RenderAsInteger renders the [i] form with thousands separators.
	RenderAsInteger(percent bool) string
	// RenderAsFloat renders the [fN] form rounded to precision digits.
	RenderAsFloat(precision int, percent bool) string
}

// maxRoundingPrecision is the largest precision that still changes a
// float64; beyond it the value is rendered unrounded.
const maxRoundingPrecision = 15

// English grouping is comma-separated in groups of three, which is the
// fixed convention of the rendered text regardless of the host locale.
var grouping = message.NewPrinter(language.English)

func (t Text) RenderRaw(percent bool) string {
	return string(t) + percentSuffix(percent)
}

func (t Text) RenderAsInteger(percent bool) string {
	return string(t) + "[i]" + percentSuffix(percent)
}

func (t Text) RenderAsFloat(precision int, percent bool) string {
	tag := "[f]"
	if precision > 0 {
		tag = "[f" + strconv.Itoa(precision) + "]"
	}
	return string(t) + tag + percentSuffix(percent)
}

func (v Signed) RenderRaw(percent bool) string {
	return v.RenderAsInteger(percent)
}

func (v Signed) RenderAsInteger(percent bool) string {
	n := int64(v)
	if percent {
		n = scaleSigned(n)
	}
	return grouping.Sprintf("%d", n) + percentSuffix(percent)
}

func (v Signed) RenderAsFloat(precision int, percent bool) string {
	return Floating(v).RenderAsFloat(precision, percent)
}

func (v Unsigned) RenderRaw(percent bool) string {
	return v.RenderAsInteger(percent)
}

func (v Unsigned) RenderAsInteger(percent bool) string {
	n := uint64(v)
	if percent {
		n = scaleUnsigned(n)
	}
	return grouping.Sprintf("%d", n) + percentSuffix(percent)
}

func (v Unsigned) RenderAsFloat(precision int, percent bool) string {
	return Floating(v).RenderAsFloat(precision, percent)
}

// RenderRaw scales and rounds to a whole number. The percent flag only
// scales; no "%" is appended in this mode.
func (v Floating) RenderRaw(percent bool) string {
	return formatDecimal(math.Round(scaleFloat(float64(v), percent)))
}

// RenderAsInteger rounds once after scaling and groups the result; the
// integer renderer is called without percent so scaling is not repeated.
func (v Floating) RenderAsInteger(percent bool) string {
	n := saturateInt64(math.Round(scaleFloat(float64(v), percent)))
	return Signed(n).RenderAsInteger(false) + percentSuffix(percent)
}

func (v Floating) RenderAsFloat(precision int, percent bool) string {
	f := roundTo(scaleFloat(float64(v), percent), precision)
	return formatDecimal(f) + percentSuffix(percent)
}

func percentSuffix(percent bool) string {
	if percent {
		return "%"
	}
	return ""
}

func scaleFloat(f float64, percent bool) float64 {
	if percent {
		return f * 100
	}
	return f
}

func scaleSigned(n int64) int64 {
	switch {
	case n > math.MaxInt64/100:
		return math.MaxInt64
	case n < math.MinInt64/100:
		return math.MinInt64
	default:
		return n * 100
	}
}

func scaleUnsigned(n uint64) uint64 {
	if n > math.MaxUint64/100 {
		return math.MaxUint64
	}
	return n * 100
}

// roundTo rounds half away from zero to precision decimal digits.
func roundTo(f float64, precision int) float64 {
	if precision <= 0 {
		return math.Round(f)
	}
	if precision > maxRoundingPrecision {
		return f
	}
	pow := math.Pow10(precision)
	scaled := f * pow
	if math.IsInf(scaled, 0) {
		return f
	}
	return math.Round(scaled) / pow
}

// saturateInt64 converts f to int64, clamping at the representable bounds.
// NaN becomes zero.
func saturateInt64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(f)
	}
}

// formatDecimal renders the shortest decimal that reads back as f, with no
// exponent and no grouping.
func formatDecimal(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
