package pattern

import "ChartSentinel/internal/model"

const (
	// dojiBodyRatio is the maximum body/range ratio for a doji.
	dojiBodyRatio = 0.10
	// wickDominance is the minimum wick/body ratio for hammer and
	// shooting star shadows.
	wickDominance = 2.0
	// wickSlack is the maximum opposite-wick/body ratio for hammer and
	// shooting star.
	wickSlack = 0.3
)

// bullishEngulfingRule matches a bullish bar whose body fully contains the
// previous bearish bar's body. Anchored at the engulfing bar's Low.
type bullishEngulfingRule struct{ window }

func newBullishEngulfing() Rule { return bullishEngulfingRule{window{1, 0}} }

func (bullishEngulfingRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	prev, cur := bars[i-1], bars[i]
	if !prev.Bearish() || !cur.Bullish() {
		return noMatch()
	}
	if cur.Open > prev.Close || cur.Close < prev.Open {
		return noMatch()
	}
	return match(model.BullishEngulfing, bars, i, cur.Low)
}

// bearishEngulfingRule is the mirror test. Anchored at the engulfing
// bar's High.
type bearishEngulfingRule struct{ window }

func newBearishEngulfing() Rule { return bearishEngulfingRule{window{1, 0}} }

func (bearishEngulfingRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	prev, cur := bars[i-1], bars[i]
	if !prev.Bullish() || !cur.Bearish() {
		return noMatch()
	}
	if cur.Open < prev.Close || cur.Close > prev.Open {
		return noMatch()
	}
	return match(model.BearishEngulfing, bars, i, cur.High)
}

// dojiRule matches a bar whose body is under dojiBodyRatio of its range.
// Zero-range bars never match. Anchored at the Close.
type dojiRule struct{ window }

func newDoji() Rule { return dojiRule{window{0, 0}} }

func (dojiRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	b := bars[i]
	if b.Range() == 0 {
		return noMatch()
	}
	if b.Body()/b.Range() >= dojiBodyRatio {
		return noMatch()
	}
	return match(model.Doji, bars, i, b.Close)
}

// hammerRule matches a long lower shadow (>= wickDominance x body) with a
// short upper shadow, after a bearish bar. Anchored at the Low.
type hammerRule struct{ window }

func newHammer() Rule { return hammerRule{window{1, 0}} }

func (hammerRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	b := bars[i]
	if b.LowerWick() < b.Body()*wickDominance || b.UpperWick() > b.Body()*wickSlack {
		return noMatch()
	}
	if !bars[i-1].Bearish() {
		return noMatch()
	}
	return match(model.Hammer, bars, i, b.Low)
}

// shootingStarRule is the mirror test: long upper shadow after a bullish
// bar. Anchored at the High.
type shootingStarRule struct{ window }

func newShootingStar() Rule { return shootingStarRule{window{1, 0}} }

func (shootingStarRule) Evaluate(bars []model.Bar, i int) (model.Match, bool) {
	b := bars[i]
	if b.UpperWick() < b.Body()*wickDominance || b.LowerWick() > b.Body()*wickSlack {
		return noMatch()
	}
	if !bars[i-1].Bullish() {
		return noMatch()
	}
	return match(model.ShootingStar, bars, i, b.High)
}
