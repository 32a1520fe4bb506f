package models

// Amount is a monetary value that may be absent. Valid is false when the
// source cell was empty or could not be parsed, which downstream must not
// confuse with a genuine value of zero.
type Amount struct {
	Value float64
	Valid bool
}

// NewAmount returns a present Amount holding v.
func NewAmount(v float64) Amount {
	return Amount{Value: v, Valid: true}
}

// Positive reports whether the amount is present and greater than zero.
func (a Amount) Positive() bool {
	return a.Valid && a.Value > 0
}

// Abs returns the absolute value, ignoring presence.
func (a Amount) Abs() float64 {
	if a.Value < 0 {
		return -a.Value
	}
	return a.Value
}
