package models

// Bounds of a Percent value.
const (
	MinPercent = 0
	MaxPercent = 100
)

// Percent is a whole-number percentage in [0,100].
type Percent int

// Clamp saturates v to [MinPercent, MaxPercent].
func Clamp(v int) Percent {
	if v < MinPercent {
		return MinPercent
	}
	if v > MaxPercent {
		return MaxPercent
	}
	return Percent(v)
}

// Fraction returns the value as a ratio in [0,1], suitable for progress bars.
func (p Percent) Fraction() float64 {
	return float64(Clamp(int(p))) / MaxPercent
}
