package pattern

import (
	"math"

	"ChartSentinel/internal/model"
)

// twinPeakTolerance is the maximum relative difference between the two
// peaks (troughs) of a double top (bottom).
const twinPeakTolerance = 0.008

// headAndShouldersRule matches a three-point local maximum over Highs:
// rising left shoulder into the head, falling right shoulder, head above
// both. Anchored at the head's High.
type headAndShouldersRule struct{ window }

func newHeadAndShoulders() Rule { return headAndShouldersRule{window{2, 2}} }

func (headAndShouldersRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	leftShoulder := bars[i-2].High < bars[i-1].High && bars[i-1].High < bars[i].High
	rightShoulder := bars[i].High > bars[i+1].High && bars[i+1].High > bars[i+2].High
	if leftShoulder && rightShoulder {
		return match(model.HeadAndShoulders, bars, i, bars[i].High)
	}
	return noMatch()
}

// invertedHeadAndShouldersRule is the mirror test on Lows. Anchored at the
// head's Low.
type invertedHeadAndShouldersRule struct{ window }

func newInvertedHeadAndShoulders() Rule { return invertedHeadAndShouldersRule{window{2, 2}} }

func (invertedHeadAndShouldersRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	leftShoulder := bars[i-2].Low > bars[i-1].Low && bars[i-1].Low > bars[i].Low
	rightShoulder := bars[i].Low < bars[i+1].Low && bars[i+1].Low < bars[i+2].Low
	if leftShoulder && rightShoulder {
		return match(model.InvertedHeadAndShoulders, bars, i, bars[i].Low)
	}
	return noMatch()
}

// doubleTopRule matches twin peaks at i-1 and i+1 with near-equal Highs,
// a lower bar between them, and outer bars below their adjacent peaks.
// Anchored at the higher peak, timestamped at the middle trough bar.
type doubleTopRule struct{ window }

func newDoubleTop() Rule { return doubleTopRule{window{2, 2}} }

func (doubleTopRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	left, right := bars[i-1].High, bars[i+1].High
	if math.Abs(right-left) > twinPeakTolerance*left {
		return noMatch()
	}
	if bars[i-2].High >= left || bars[i+2].High >= right {
		return noMatch()
	}
	if bars[i].High >= left || bars[i].High >= right {
		return noMatch()
	}
	return match(model.DoubleTop, bars, i, math.Max(left, right))
}

// doubleBottomRule is the mirror test on Lows. Anchored at the lower trough.
type doubleBottomRule struct{ window }

func newDoubleBottom() Rule { return doubleBottomRule{window{2, 2}} }

func (doubleBottomRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	left, right := bars[i-1].Low, bars[i+1].Low
	if math.Abs(right-left) > twinPeakTolerance*left {
		return noMatch()
	}
	if bars[i-2].Low <= left || bars[i+2].Low <= right {
		return noMatch()
	}
	if bars[i].Low <= left || bars[i].Low <= right {
		return noMatch()
	}
	return match(model.DoubleBottom, bars, i, math.Min(left, right))
}
