package engine

import (
	"errors"
	"fmt"

	"ChartSentinel/internal/model"
	"ChartSentinel/internal/pattern"
)

// ErrInvalidRequest indicates an empty or unknown set of requested kinds.
var ErrInvalidRequest = errors.New("invalid detection request")

// Detect scans the series once per requested kind and returns every match
// in scan order. The result holds exactly the requested kinds; a kind with
// no occurrences maps to an empty list. Detect never mutates the series
// and is safe to call concurrently.
func Detect(series *model.Series, kinds []model.Kind) (model.Result, error) {
	if len(kinds) == 0 {
		return nil, fmt.Errorf("%w: no pattern kinds requested", ErrInvalidRequest)
	}
	if len(series.Bars) == 0 {
		return nil, model.ErrEmptySeries
	}

	rules := make(map[model.Kind]pattern.Rule, len(kinds))
	for _, kind := range kinds {
		if _, seen := rules[kind]; seen {
			continue
		}
		rule, ok := pattern.RuleFor(kind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown pattern kind %q", ErrInvalidRequest, kind)
		}
		rules[kind] = rule
	}

	result := make(model.Result, len(rules))
	for kind, rule := range rules {
		result[kind] = scan(series.Bars, kind, rule)
	}
	return result, nil
}

// scan runs one rule over every index where its window fits. Cost is
// linear in the number of bars.
func scan(bars []model.Bar, kind model.Kind, rule pattern.Rule) []model.Match {
	matches := []model.Match{}
	for i := rule.Lookback(); i < len(bars)-rule.Lookahead(); i++ {
		if m, ok := rule.Evaluate(bars, i); ok {
			m.Kind = kind
			matches = append(matches, m)
		}
	}
	return matches
}
