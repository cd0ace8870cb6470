package pattern

import (
	"testing"

	"ChartSentinel/internal/model"
)

func TestBullishEngulfing(t *testing.T) {
	rule, _ := RuleFor(model.BullishEngulfing)
	bars := []model.Bar{
		{Time: day(0), Open: 10, High: 10.5, Low: 8.5, Close: 9},     // bearish
		{Time: day(1), Open: 8.9, High: 10.3, Low: 8.7, Close: 10.1}, // engulfs
	}
	m, ok := rule.Evaluate(bars, 1)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Price != 8.7 {
		t.Errorf("expected anchor at engulfing bar low 8.7, got %.2f", m.Price)
	}
}

func TestBullishEngulfing_NoMatch(t *testing.T) {
	rule, _ := RuleFor(model.BullishEngulfing)
	tests := []struct {
		name string
		bars []model.Bar
	}{
		{"prior bar bullish", []model.Bar{
			{Time: day(0), Open: 9, High: 10.5, Low: 8.5, Close: 10},
			{Time: day(1), Open: 8.9, High: 10.3, Low: 8.7, Close: 10.1},
		}},
		{"body not contained", []model.Bar{
			{Time: day(0), Open: 10, High: 10.5, Low: 8.5, Close: 9},
			{Time: day(1), Open: 9.2, High: 10.3, Low: 8.7, Close: 10.1}, // opens above prior close
		}},
		{"second bar bearish", []model.Bar{
			{Time: day(0), Open: 10, High: 10.5, Low: 8.5, Close: 9},
			{Time: day(1), Open: 10.1, High: 10.3, Low: 8.7, Close: 8.9},
		}},
	}
	for _, tt := range tests {
		if _, ok := rule.Evaluate(tt.bars, 1); ok {
			t.Errorf("%s: unexpected match", tt.name)
		}
	}
}

func TestBearishEngulfing(t *testing.T) {
	rule, _ := RuleFor(model.BearishEngulfing)
	bars := []model.Bar{
		{Time: day(0), Open: 9, High: 10.5, Low: 8.5, Close: 10},     // bullish
		{Time: day(1), Open: 10.1, High: 10.3, Low: 8.7, Close: 8.9}, // engulfs
	}
	m, ok := rule.Evaluate(bars, 1)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Price != 10.3 {
		t.Errorf("expected anchor at engulfing bar high 10.3, got %.2f", m.Price)
	}
}

func TestDoji(t *testing.T) {
	rule, _ := RuleFor(model.Doji)

	doji := []model.Bar{{Time: day(0), Open: 10, High: 10.5, Low: 9.5, Close: 10.05}}
	m, ok := rule.Evaluate(doji, 0)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Price != 10.05 {
		t.Errorf("expected anchor at close 10.05, got %.2f", m.Price)
	}

	solid := []model.Bar{{Time: day(0), Open: 10, High: 10.6, Low: 9.9, Close: 10.5}}
	if _, ok := rule.Evaluate(solid, 0); ok {
		t.Error("unexpected match for a solid-bodied bar")
	}

	flat := []model.Bar{{Time: day(0), Open: 10, High: 10, Low: 10, Close: 10}}
	if _, ok := rule.Evaluate(flat, 0); ok {
		t.Error("unexpected match for a zero-range bar")
	}
}

func TestHammer(t *testing.T) {
	rule, _ := RuleFor(model.Hammer)
	bars := []model.Bar{
		{Time: day(0), Open: 11, High: 11.2, Low: 10.4, Close: 10.5},  // bearish context
		{Time: day(1), Open: 10.4, High: 10.52, Low: 10, Close: 10.5}, // long lower wick
	}
	m, ok := rule.Evaluate(bars, 1)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Price != 10 {
		t.Errorf("expected anchor at low 10, got %.2f", m.Price)
	}

	// Same shape after a bullish bar is not a hammer.
	bars[0] = model.Bar{Time: day(0), Open: 10.4, High: 11.2, Low: 10.3, Close: 11}
	if _, ok := rule.Evaluate(bars, 1); ok {
		t.Error("unexpected match without downtrend context")
	}
}

func TestShootingStar(t *testing.T) {
	rule, _ := RuleFor(model.ShootingStar)
	bars := []model.Bar{
		{Time: day(0), Open: 10, High: 10.6, Low: 9.9, Close: 10.5},     // bullish context
		{Time: day(1), Open: 10.5, High: 10.9, Low: 10.38, Close: 10.4}, // long upper wick
	}
	m, ok := rule.Evaluate(bars, 1)
	if !ok {
		t.Fatal("expected a match")
	}
	if m.Price != 10.9 {
		t.Errorf("expected anchor at high 10.9, got %.2f", m.Price)
	}

	// Long lower wick disqualifies.
	bars[1].Low = 10.0
	if _, ok := rule.Evaluate(bars, 1); ok {
		t.Error("unexpected match with a long lower wick")
	}
}
