package surface

// Level is the load band a percentage falls into.
type Level int

const (
	// Medium covers [10, 90] and also NaN.
	Medium Level = iota
	// Low is strictly below 10%.
	Low
	// High is strictly above 90%.
	High
)

// Classification bounds, exclusive on both sides.
const (
	LowBelow  = 10.0
	HighAbove = 90.0
)

// String returns the lower-case level name.
func (l Level) String() string {
	switch l {
	case Low:
		return "low"
	case High:
		return "high"
	default:
		return "medium"
	}
}

// Classify maps a utilization percentage onto a Level.
// The boundary values 10 and 90 themselves are Medium.
func Classify(p float64) Level {
	switch {
	case p < LowBelow:
		return Low
	case p > HighAbove:
		return High
	default:
		return Medium
	}
}
