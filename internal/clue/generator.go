// internal/clue/generator.go
//
// Generates every clue for a number at a difficulty, along with the
// canonical map key per clue kind. The solver narrows this full set down to
// the clues actually shown to the player.
package clue

import "github.com/dafrizzy/digits/internal/numutil"

// Set is the complete clue output for one number: the display sentences and
// the map keys used to find other numbers that satisfy the same clues.
type Set struct {
	Number     int
	Digits     []int
	Difficulty Difficulty
	Clues      map[string][]string
	MapKeys    map[string]string
}

// SpecialPred returns the predicate behind a special-property clue key.
func SpecialPred(key string) func(int) bool {
	switch key {
	case KeyPrime:
		return numutil.IsPrime
	case KeyPerfect:
		return numutil.IsPerfect
	case KeyFibonacci:
		return numutil.IsFibonacci
	default:
		return nil
	}
}

// Generate builds the full clue set for number at difficulty d.
func Generate(number int, d Difficulty) *Set {
	digits := numutil.NumToDigits(number)
	s := &Set{
		Number:     number,
		Digits:     digits,
		Difficulty: d,
		Clues:      make(map[string][]string),
		MapKeys:    make(map[string]string),
	}

	mm := MultiplesMapOf(digits, MultiplesLimit)
	var multiples []string
	for i, row := range mm.Factors {
		for j, k := range row {
			if (k > 0 && k <= MultiplesLimit) || k == -1 {
				multiples = append(multiples, formatMultiple(j, i, k))
			}
		}
	}
	if !mm.Any() {
		multiples = append(multiples, noMultiples)
	}
	s.Clues[KeyMultiples] = multiples
	s.MapKeys[KeyMultiples] = mm.MapKey()

	tm := TotalSumMapOf(digits)
	var totals []string
	for i, c := range tm.Comp {
		switch c {
		case 1:
			totals = append(totals, formatTotalSum(i, "greater than"))
		case 0:
			totals = append(totals, formatTotalSum(i, "equal to"))
		}
	}
	s.Clues[KeyTotalSum] = totals
	s.MapKeys[KeyTotalSum] = tm.MapKey()

	em := EvenMapOf(digits)
	s.Clues[KeyEven] = []string{formatEven(em.NumEven)}
	s.MapKeys[KeyEven] = em.MapKey()

	om := OrderMapOf(digits)
	s.Clues[KeyOrder] = []string{formatOrder(om)}
	s.MapKeys[KeyOrder] = om.MapKey()

	for _, key := range SpecialKeys() {
		sm := SpecialMapOf(digits, key, SpecialPred(key), RunLimit(d))
		var clues []string
		for _, run := range sm.Runs {
			clues = append(clues, formatSpecial(key, run))
		}
		if len(clues) == 0 {
			clues = append(clues, formatNoSpecial(key))
		}
		s.Clues[key] = clues
		s.MapKeys[key] = sm.MapKey()
	}

	partials := map[string]func(x, y, target int) bool{
		KeySum:     numutil.CheckSum,
		KeyProduct: numutil.CheckProduct,
	}
	for key, pred := range partials {
		pm := PartialsMapOf(digits, key, pred)
		var clues []string
		if pm.Any() {
			for i, combos := range pm.Combos {
				for _, c := range combos {
					clues = append(clues, formatPartial(key, i, c[0], c[1]))
				}
			}
		} else {
			clues = append(clues, formatNoPartial(key))
		}
		s.Clues[key] = clues
		s.MapKeys[key] = pm.MapKey()
	}

	return s
}

// MapKeyFor computes the canonical map key of one clue kind for an
// arbitrary number. The maps index builder and the solver share this.
func MapKeyFor(key string, digits []int, d Difficulty) string {
	switch key {
	case KeyMultiples:
		return MultiplesMapOf(digits, MultiplesLimit).MapKey()
	case KeyTotalSum:
		return TotalSumMapOf(digits).MapKey()
	case KeyEven:
		return EvenMapOf(digits).MapKey()
	case KeyOrder:
		return OrderMapOf(digits).MapKey()
	case KeyPrime, KeyPerfect, KeyFibonacci:
		return SpecialMapOf(digits, key, SpecialPred(key), RunLimit(d)).MapKey()
	case KeySum:
		return PartialsMapOf(digits, key, numutil.CheckSum).MapKey()
	case KeyProduct:
		return PartialsMapOf(digits, key, numutil.CheckProduct).MapKey()
	default:
		return ""
	}
}
