// internal/clue/cluemap.go
//
// Numeric maps per clue kind. A map is the machine-readable shape of what a
// clue kind says about a number; two numbers that share a map are
// indistinguishable under that clue kind. MapKey() gives the canonical
// string form the maps index and the solver match rows against.
package clue

import (
	"sort"
	"strconv"
	"strings"

	"github.com/dafrizzy/digits/internal/numutil"
)

// OrderMap captures whether the digits run in ascending or descending order.
type OrderMap struct {
	Ascending  bool
	Descending bool
}

func OrderMapOf(digits []int) OrderMap {
	m := OrderMap{Ascending: true, Descending: true}
	for i := 1; i < len(digits); i++ {
		if digits[i-1] > digits[i] {
			m.Ascending = false
		}
		if digits[i-1] < digits[i] {
			m.Descending = false
		}
	}
	return m
}

func (m OrderMap) MapKey() string {
	return boolDigit(m.Ascending) + "," + boolDigit(m.Descending)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// TotalSumMap compares every digit against the sum of its siblings:
// 1 greater, 0 equal, -1 less.
type TotalSumMap struct {
	Comp []int
}

func TotalSumMapOf(digits []int) TotalSumMap {
	total := 0
	for _, d := range digits {
		total += d
	}
	comp := make([]int, len(digits))
	for i, d := range digits {
		switch rest := total - d; {
		case d > rest:
			comp[i] = 1
		case d == rest:
			comp[i] = 0
		default:
			comp[i] = -1
		}
	}
	return TotalSumMap{Comp: comp}
}

func (m TotalSumMap) MapKey() string { return joinInts(m.Comp) }

// EvenMap records each digit's parity. Matching for this kind happens on
// the even count alone, so that is what the key carries.
type EvenMap struct {
	Parity  []int
	NumEven int
}

func EvenMapOf(digits []int) EvenMap {
	m := EvenMap{Parity: make([]int, len(digits))}
	for i, d := range digits {
		if d%2 == 0 {
			m.Parity[i] = 1
			m.NumEven++
		}
	}
	return m
}

func (m EvenMap) MapKey() string { return strconv.Itoa(m.NumEven) }

// MultiplesMap is the NxN factor matrix: Factors[i][j] = k when
// digits[i] == k * digits[j] and 1 <= k <= limit, with -1 marking a pair of
// zero digits (zero divided by anything is zero). The diagonal stays zero.
type MultiplesMap struct {
	Factors [][]int
}

func MultiplesMapOf(digits []int, limit int) MultiplesMap {
	n := len(digits)
	f := make([][]int, n)
	for i := range f {
		f[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			a, b := digits[i], digits[j]
			if a == 0 && b == 0 {
				f[i][j] = -1
				continue
			}
			if b == 0 || a%b != 0 {
				continue
			}
			if k := a / b; k >= 1 && k <= limit {
				f[i][j] = k
			}
		}
	}
	return MultiplesMap{Factors: f}
}

// Any reports whether the matrix carries any relation at all.
func (m MultiplesMap) Any() bool {
	for _, row := range m.Factors {
		for _, k := range row {
			if k != 0 {
				return true
			}
		}
	}
	return false
}

func (m MultiplesMap) MapKey() string {
	rows := make([]string, len(m.Factors))
	for i, row := range m.Factors {
		rows[i] = joinInts(row)
	}
	return strings.Join(rows, ";")
}

// SpecialMap lists the digit runs that satisfy a property predicate.
// A run is encoded as its 1-based index for a single digit, or the
// concatenation of the 1-based start and end indexes for longer runs
// (digits 1 through 4 encode as 14).
type SpecialMap struct {
	Attribute string
	Runs      []int
}

// SpecialMapOf scans runs of up to limit consecutive digits (the whole
// number when limit is 0) and keeps those whose joined value satisfies pred.
func SpecialMapOf(digits []int, attribute string, pred func(int) bool, limit int) SpecialMap {
	n := len(digits)
	if limit <= 0 || limit > n {
		limit = n
	}
	var runs []int
	for i := 0; i < n; i++ {
		end := i + limit
		if end > n {
			end = n
		}
		for j := i; j < end; j++ {
			if !pred(numutil.JoinDigits(digits, i, j)) {
				continue
			}
			if i == j {
				runs = append(runs, i+1)
			} else {
				runs = append(runs, (i+1)*10+(j+1))
			}
		}
	}
	sort.Ints(runs)
	return SpecialMap{Attribute: attribute, Runs: runs}
}

func (m SpecialMap) MapKey() string { return joinInts(m.Runs) }

// PartialsMap records, for every target digit, the index pairs of two other
// digits whose sum or product equals it.
type PartialsMap struct {
	Attribute string
	Combos    [][][2]int
}

func PartialsMapOf(digits []int, attribute string, pred func(x, y, target int) bool) PartialsMap {
	n := len(digits)
	combos := make([][][2]int, n)
	for i, target := range digits {
		for j := 0; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if j == i || k == i {
					continue
				}
				if pred(digits[j], digits[k], target) {
					combos[i] = append(combos[i], [2]int{j, k})
				}
			}
		}
	}
	return PartialsMap{Attribute: attribute, Combos: combos}
}

// Any reports whether any target digit has at least one combination.
func (m PartialsMap) Any() bool {
	for _, c := range m.Combos {
		if len(c) > 0 {
			return true
		}
	}
	return false
}

func (m PartialsMap) MapKey() string {
	rows := make([]string, len(m.Combos))
	for i, cs := range m.Combos {
		pairs := make([]string, len(cs))
		for p, c := range cs {
			pairs[p] = strconv.Itoa(c[0]) + "-" + strconv.Itoa(c[1])
		}
		rows[i] = strings.Join(pairs, " ")
	}
	return strings.Join(rows, ";")
}

// ------------------------------ helpers -------------------------------------

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ",")
}
