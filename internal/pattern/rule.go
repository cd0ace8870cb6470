package pattern

import "ChartSentinel/internal/model"

// Rule is one pattern's windowed matching test. Evaluate is a pure function
// of the bars inside [i-Lookback, i+Lookahead]; the engine only calls it at
// indices where that window fits inside the series.
type Rule interface {
	// Lookback is the number of bars required before the evaluation index.
	Lookback() int
	// Lookahead is the number of bars required after the evaluation index.
	Lookahead() int
	// Evaluate tests the window centered at i and returns the match, if any.
	Evaluate(bars []model.Bar, i int) (model.Match, bool)
}

// window carries the fixed lookback/lookahead sizes shared by all rules.
type window struct {
	back, ahead int
}

func (w window) Lookback() int  { return w.back }
func (w window) Lookahead() int { return w.ahead }

func match(kind model.Kind, bars []model.Bar, i int, price float64) (model.Match, bool) {
	return model.Match{Kind: kind, Time: bars[i].Time, Price: price}, true
}

func noMatch() (model.Match, bool) { return model.Match{}, false }
