package mathutil

// IntMin returns the smaller of two ints (search: int-math).
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntClamp limits x to [lo, hi] (search: int-math).
func IntClamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Pad3 renders n as at least three digits, keeping only the last three
// when it is longer. Negative values render as 000.
func Pad3(n int) string {
	if n < 0 {
		n = 0
	}
	n %= 1000
	return string([]byte{byte('0' + n/100), byte('0' + n/10%10), byte('0' + n%10)})
}
