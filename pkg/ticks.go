package spectra

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places ticks at round values without truncating their
// labels, which the default gonum ticker does on narrow ranges.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	if t.NSuggestedTicks == 0 {
		t.NSuggestedTicks = 4
	}
	if max <= min {
		panic("illegal range")
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens

	var ticks []plot.Tick
	val := math.Floor(min/majorDelta) * majorDelta
	prec := int(math.Ceil(math.Log10(max)) - math.Floor(math.Log10(majorDelta)))
	for val <= max {
		if val >= min {
			v := roundTick(val, prec)
			ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)})
		}
		val += majorDelta
	}

	minorDelta := majorDelta / 2
	val = math.Floor(min/minorDelta) * minorDelta
	for val <= max {
		minor := val >= min
		for _, tick := range ticks {
			if tick.Value == val {
				minor = false
			}
		}
		if minor {
			ticks = append(ticks, plot.Tick{Value: val})
		}
		val += minorDelta
	}
	return ticks
}

func roundTick(x float64, prec int) float64 {
	if x == 0 {
		return 0
	}
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	rounded := math.Round(x*pow) / pow
	if math.IsInf(rounded, 0) {
		return x
	}
	return rounded
}
