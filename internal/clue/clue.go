// internal/clue/clue.go
//
// Clue vocabulary for the digits game.
// Defines:
//   - Difficulty levels and the per-difficulty generation limits.
//   - The clue keys used across generation, the maps index, and the solver.
//   - Display formatting: every clue sentence carries one CAPITALIZED
//     keyword the player is meant to reason about.
package clue

import (
	"fmt"
	"strings"

	"github.com/dafrizzy/digits/internal/numutil"
)

// Difficulty selects how generous and how deep the clue set is.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// Clue keys. These key the generated clue lists, the maps index rows, and
// the solver's match sets.
const (
	KeyMultiples = "multiples"
	KeyTotalSum  = "total_sum"
	KeyEven      = "even"
	KeyOrder     = "order"
	KeyPrime     = "prime"
	KeyPerfect   = "perfect"
	KeyFibonacci = "fibonacci"
	KeySum       = "sum"
	KeyProduct   = "product"
)

// Keys returns all clue keys in a stable order.
func Keys() []string {
	return []string{
		KeyMultiples, KeyTotalSum, KeyPrime, KeyPerfect, KeyFibonacci,
		KeyEven, KeyOrder, KeyProduct, KeySum,
	}
}

// MultiplesLimit caps the divisor size used in DIVIDED clues. Anything
// above 4 ("is 5 times") gives the digit pair away.
const MultiplesLimit = 4

// RunLimit returns the maximum digit-run length considered for the special
// property keys (prime/perfect/fibonacci) at a difficulty. Zero means the
// full number length.
func RunLimit(d Difficulty) int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	default:
		return 0
	}
}

// SpecialKeys are the clue keys whose runs obey RunLimit.
func SpecialKeys() []string { return []string{KeyPrime, KeyPerfect, KeyFibonacci} }

// DisplayKey converts a clue key to its player-facing keyword:
// "multiples" renders as DIVIDED, everything else uppercases with
// underscores turned into spaces.
func DisplayKey(key string) string {
	if key == KeyMultiples {
		return "DIVIDED"
	}
	return strings.ToUpper(strings.ReplaceAll(key, "_", " "))
}

// ---------------------------- formatting ------------------------------------

func formatOrder(m OrderMap) string {
	switch {
	case m.Ascending:
		return "My digits are in ascending ORDER"
	case m.Descending:
		return "My digits are in descending ORDER"
	default:
		return "My digits are in neither ascending nor descending ORDER"
	}
}

func formatTotalSum(digit int, comparison string) string {
	return fmt.Sprintf("My %s digit is %s the TOTAL SUM of all my other digits",
		numutil.Ordinal(digit), comparison)
}

func formatEven(numEven int) string {
	switch numEven {
	case 0:
		return "None of my digits are EVEN"
	case 1:
		return "1 of my digits is EVEN"
	default:
		return fmt.Sprintf("%d of my digits are EVEN", numEven)
	}
}

// formatMultiple renders one entry of the multiples matrix: digit at
// multiple is multiplier times the digit at factor. A multiplier of -1
// marks the zero-by-zero pair.
func formatMultiple(factor, multiple, multiplier int) string {
	if multiplier == -1 {
		return fmt.Sprintf("My %s digit DIVIDED by any number equals my %s digit",
			numutil.Ordinal(factor), numutil.Ordinal(multiple))
	}
	return fmt.Sprintf("My %s digit DIVIDED by %d equals my %s digit",
		numutil.Ordinal(multiple), multiplier, numutil.Ordinal(factor))
}

const noMultiples = "None of my digits are multiples of each other"

// formatSpecial renders one run entry of a special-properties map. The run
// is encoded the same way the map stores it: a 1-based index, or the
// concatenation of the 1-based start and end indexes.
func formatSpecial(attribute string, run int) string {
	keyword := strings.ToUpper(attribute)
	if run < 10 {
		return fmt.Sprintf("My %s digit is a %s number", numutil.Ordinal(run-1), keyword)
	}
	first, second := run/10, run%10
	return fmt.Sprintf("Joining my %s through %s digits makes a %s number",
		numutil.Ordinal(first-1), numutil.Ordinal(second-1), keyword)
}

func formatNoSpecial(attribute string) string {
	return fmt.Sprintf("None of my digits or joining of my digits makes a %s number.",
		strings.ToUpper(attribute))
}

func formatPartial(attribute string, target, f1, f2 int) string {
	return fmt.Sprintf("My %s digit is the %s of my %s and %s digits",
		numutil.Ordinal(target), strings.ToUpper(attribute),
		numutil.Ordinal(f1), numutil.Ordinal(f2))
}

func formatNoPartial(attribute string) string {
	return fmt.Sprintf("None of my digits are the %s of a combination of two of my other digits.",
		strings.ToUpper(attribute))
}
