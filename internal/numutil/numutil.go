// Package numutil holds the small numeric helpers shared by clue building
// and the solver: digit/number conversions, the special-property predicates
// (prime, perfect, fibonacci) and ordinal formatting for clue text.
package numutil

import (
	"math"
	"strconv"
)

// NumToDigits splits a non-negative number into its decimal digits,
// most significant first.
func NumToDigits(n int) []int {
	if n == 0 {
		return []int{0}
	}
	var rev []int
	for n > 0 {
		rev = append(rev, n%10)
		n /= 10
	}
	out := make([]int, len(rev))
	for i := range rev {
		out[i] = rev[len(rev)-1-i]
	}
	return out
}

// DigitsToNum joins a digit slice back into the number it spells.
func DigitsToNum(digits []int) int {
	n := 0
	for _, d := range digits {
		n = n*10 + d
	}
	return n
}

// JoinDigits returns the number spelled by digits[from..to] inclusive.
func JoinDigits(digits []int, from, to int) int {
	return DigitsToNum(digits[from : to+1])
}

// IsPrime reports whether n is prime. Trial division is plenty for the
// 6-digit numbers this game deals in.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}
	return true
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func IsPerfect(n int) bool {
	if n < 2 {
		return false
	}
	sum := 1
	for f := 2; f*f <= n; f++ {
		if n%f == 0 {
			sum += f
			if q := n / f; q != f {
				sum += q
			}
		}
	}
	return sum == n
}

// IsFibonacci reports whether n is a Fibonacci number, using the
// 5n^2 +/- 4 perfect-square test.
func IsFibonacci(n int) bool {
	return isSquare(5*n*n+4) || isSquare(5*n*n-4)
}

func isSquare(n int) bool {
	if n < 0 {
		return false
	}
	s := int(math.Sqrt(float64(n)))
	// Guard against float truncation on either side.
	for _, c := range []int{s - 1, s, s + 1} {
		if c >= 0 && c*c == n {
			return true
		}
	}
	return false
}

// CheckSum reports whether x + y equals target.
func CheckSum(x, y, target int) bool { return x+y == target }

// CheckProduct reports whether x * y equals target.
func CheckProduct(x, y, target int) bool { return x*y == target }

// Ordinal renders a zero-based digit index as its one-based placement
// string: 0 -> "1st", 1 -> "2nd", 2 -> "3rd", 3 -> "4th", ...
func Ordinal(i int) string {
	switch i {
	case 0:
		return "1st"
	case 1:
		return "2nd"
	case 2:
		return "3rd"
	default:
		return strconv.Itoa(i+1) + "th"
	}
}
