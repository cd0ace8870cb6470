package pattern

import "ChartSentinel/internal/model"

const (
	// starLongBodyRatio is the minimum body/range ratio for the long
	// first and third candles of a star reversal.
	starLongBodyRatio = 0.6
	// starSmallBodyRatio is the maximum middle-body size relative to the
	// first candle's body.
	starSmallBodyRatio = 0.4
)

// morningStarRule matches a long bearish candle, a small-bodied star, and
// a long bullish candle closing above the first body's midpoint. Anchored
// at the third candle's Low.
type morningStarRule struct{ window }

func newMorningStar() Rule { return morningStarRule{window{2, 0}} }

func (morningStarRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	first, star, third := bars[i-2], bars[i-1], bars[i]
	if !first.Bearish() || first.Body() < first.Range()*starLongBodyRatio {
		return noMatch()
	}
	if star.Body() > first.Body()*starSmallBodyRatio {
		return noMatch()
	}
	if !third.Bullish() || third.Body() < third.Range()*starLongBodyRatio {
		return noMatch()
	}
	midpoint := (first.Open + first.Close) / 2
	if third.Close < midpoint {
		return noMatch()
	}
	return match(model.MorningStar, bars, i, third.Low)
}

// eveningStarRule is the mirror test. Anchored at the third candle's High.
type eveningStarRule struct{ window }

func newEveningStar() Rule { return eveningStarRule{window{2, 0}} }

func (eveningStarRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	first, star, third := bars[i-2], bars[i-1], bars[i]
	if !first.Bullish() || first.Body() < first.Range()*starLongBodyRatio {
		return noMatch()
	}
	if star.Body() > first.Body()*starSmallBodyRatio {
		return noMatch()
	}
	if !third.Bearish() || third.Body() < third.Range()*starLongBodyRatio {
		return noMatch()
	}
	midpoint := (first.Open + first.Close) / 2
	if third.Close > midpoint {
		return noMatch()
	}
	return match(model.EveningStar, bars, i, third.High)
}
