package pattern

import (
	"testing"

	"ChartSentinel/internal/model"
)

func TestCatalog_AllKindsRegistered(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 11 {
		t.Fatalf("expected 11 kinds, got %d", len(kinds))
	}
	for _, kind := range kinds {
		if !Known(kind) {
			t.Errorf("%s not known", kind)
		}
		if _, ok := RuleFor(kind); !ok {
			t.Errorf("%s has no rule", kind)
		}
	}
}

// Labels are exported verbatim and must never drift.
func TestCatalog_Labels(t *testing.T) {
	want := map[model.Kind]string{
		model.HeadAndShoulders:         "Head and Shoulders",
		model.InvertedHeadAndShoulders: "Inverted Head and Shoulders",
		model.DoubleTop:                "Double Top",
		model.DoubleBottom:             "Double Bottom",
		model.BullishEngulfing:         "Bullish Engulfing",
		model.BearishEngulfing:         "Bearish Engulfing",
		model.Doji:                     "Doji",
		model.Hammer:                   "Hammer",
		model.ShootingStar:             "Shooting Star",
		model.MorningStar:              "Morning Star",
		model.EveningStar:              "Evening Star",
	}
	for kind, label := range want {
		if got := Label(kind); got != label {
			t.Errorf("%s: expected label %q, got %q", kind, label, got)
		}
		back, ok := KindForLabel(label)
		if !ok || back != kind {
			t.Errorf("label %q did not resolve back to %s", label, kind)
		}
	}
}

func TestCatalog_UnknownKind(t *testing.T) {
	if Known(model.Kind("CUP_AND_HANDLE")) {
		t.Error("unexpected catalog entry")
	}
	if _, ok := RuleFor(model.Kind("CUP_AND_HANDLE")); ok {
		t.Error("unexpected rule")
	}
	if _, ok := KindForLabel("Cup and Handle"); ok {
		t.Error("unexpected label resolution")
	}
}
