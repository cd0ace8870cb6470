package model

import "time"

// Kind identifies one of the supported chart patterns.
type Kind string

const (
	HeadAndShoulders         Kind = "HEAD_AND_SHOULDERS"
	InvertedHeadAndShoulders Kind = "INVERTED_HEAD_AND_SHOULDERS"
	DoubleTop                Kind = "DOUBLE_TOP"
	DoubleBottom             Kind = "DOUBLE_BOTTOM"
	BullishEngulfing         Kind = "BULLISH_ENGULFING"
	BearishEngulfing         Kind = "BEARISH_ENGULFING"
	Doji                     Kind = "DOJI"
	Hammer                   Kind = "HAMMER"
	ShootingStar             Kind = "SHOOTING_STAR"
	MorningStar              Kind = "MORNING_STAR"
	EveningStar              Kind = "EVENING_STAR"
)

// Match is a single detected pattern occurrence. Time is the timestamp of
// the bar the rule matched at; Price is the anchor used for annotation
// placement (the extremum that defines the pattern).
type Match struct {
	Kind  Kind
	Time  time.Time
	Price float64
}

// Result maps each requested kind to its matches in chronological order.
// A kind that was requested but never matched maps to an empty list.
type Result map[Kind][]Match
