package token

// Decimal is an exact base-10 fixed-point value. Scale counts fractional
// digits including leading zeros, so {7, 1, 2} reads as 7.01.
type Decimal struct {
	Whole uint64
	Frac  uint64
	Scale uint8
}

// Float64 returns the nearest float64 to the decimal value.
func (d Decimal) Float64() float64 {
	div := 1.0
	for i := uint8(0); i < d.Scale; i++ {
		div *= 10
	}
	return float64(d.Whole) + float64(d.Frac)/div
}
