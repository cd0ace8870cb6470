package pattern

import "ChartSentinel/internal/model"

// catalogEntry ties a pattern kind to its rule and display label.
type catalogEntry struct {
	kind  model.Kind
	label string
	rule  Rule
}

// catalog is the fixed pattern registry. Adding a pattern means adding a
// rule and one entry here.
var catalog = []catalogEntry{
	{model.HeadAndShoulders, "Head and Shoulders", newHeadAndShoulders()},
	{model.InvertedHeadAndShoulders, "Inverted Head and Shoulders", newInvertedHeadAndShoulders()},
	{model.DoubleTop, "Double Top", newDoubleTop()},
	{model.DoubleBottom, "Double Bottom", newDoubleBottom()},
	{model.BullishEngulfing, "Bullish Engulfing", newBullishEngulfing()},
	{model.BearishEngulfing, "Bearish Engulfing", newBearishEngulfing()},
	{model.Doji, "Doji", newDoji()},
	{model.Hammer, "Hammer", newHammer()},
	{model.ShootingStar, "Shooting Star", newShootingStar()},
	{model.MorningStar, "Morning Star", newMorningStar()},
	{model.EveningStar, "Evening Star", newEveningStar()},
}

var byKind = func() map[model.Kind]catalogEntry {
	m := make(map[model.Kind]catalogEntry, len(catalog))
	for _, e := range catalog {
		m[e.kind] = e
	}
	return m
}()

// Kinds returns all supported pattern kinds in catalog order.
func Kinds() []model.Kind {
	kinds := make([]model.Kind, len(catalog))
	for i, e := range catalog {
		kinds[i] = e.kind
	}
	return kinds
}

// Known reports whether the kind exists in the catalog.
func Known(kind model.Kind) bool {
	_, ok := byKind[kind]
	return ok
}

// Label returns the human-readable display string for a kind. Labels are
// persisted in exports and must stay stable.
func Label(kind model.Kind) string {
	if e, ok := byKind[kind]; ok {
		return e.label
	}
	return string(kind)
}

// KindForLabel resolves a display label (as found in config files or
// exports) back to its kind.
func KindForLabel(label string) (model.Kind, bool) {
	for _, e := range catalog {
		if e.label == label {
			return e.kind, true
		}
	}
	return "", false
}

// RuleFor returns the rule implementing a kind.
func RuleFor(kind model.Kind) (Rule, bool) {
	e, ok := byKind[kind]
	if !ok {
		return nil, false
	}
	return e.rule, true
}
