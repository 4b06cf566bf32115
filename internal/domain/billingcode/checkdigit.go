package billingcode

// CheckDigit computes the Módulo 10 check digit used throughout the
// billing code layout (overall code DV and per-group linha digitável
// DVs).
//
// Algorithm: walk the digits right to left alternating weights 2 and 1,
// starting with 2 on the rightmost digit; products above 9 drop 9; the
// digit is (10 - sum%10) % 10, so a round sum yields 0.
//
// The empty string yields 0. Callers always supply non-empty fixed-width
// fields; an empty input here is a caller bug, not a data condition.
func CheckDigit(digits string) int {
	sum := 0
	weight := 2
	for i := len(digits) - 1; i >= 0; i-- {
		p := int(digits[i]-'0') * weight
		if p > 9 {
			p -= 9
		}
		sum += p
		if weight == 2 {
			weight = 1
		} else {
			weight = 2
		}
	}
	return (10 - sum%10) % 10
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
