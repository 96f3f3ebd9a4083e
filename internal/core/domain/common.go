package domain

// Currency is the ISO-style currency code used across both platforms.
// The sheet backend only knows these three.
type Currency string

const (
	BDT Currency = "BDT"
	USD Currency = "USD"
	GBP Currency = "GBP"
)

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	switch c {
	case BDT, USD, GBP:
		return true
	}
	return false
}
