package numerology

// Reduce collapses n to a single digit 1-9 by iterated base-10 digit sum.
// Values <= 0 reduce to 0; there is no meaningful reduction below zero.
func Reduce(n int) int {
	if n <= 0 {
		return 0
	}
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}
