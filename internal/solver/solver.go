// internal/solver/solver.go
//
// Narrows the full clue set for an answer down to the clues the player
// actually sees. A clue-key combination "solves" the answer when the
// numbers matching every key's map intersect in exactly one number; the
// solver searches combination sizes in difficulty order (easy hands out the
// most keys, medium/hard the fewest), keeps the solutions with the fewest
// total clues, picks one at random, and appends the negative-constraint
// clues that tell the player the listed clues are exhaustive.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/dafrizzy/digits/internal/clue"
	"github.com/dafrizzy/digits/internal/mapsdb"
)

// ErrNoSolution means no combination of clue kinds pins the answer down to
// a single number; the caller should roll a new answer.
var ErrNoSolution = errors.New("no clue combination uniquely identifies the answer")

// Result is the final, display-keyed clue listing for one game.
type Result struct {
	// Clues maps display keywords (DIVIDED, PRIME, ...) to the clue
	// sentences shown to the player, negative constraints included.
	Clues map[string][]string
	// NumKeys is how many clue kinds the chosen combination spans.
	NumKeys int
}

// Solver resolves clue sets against the maps index.
type Solver struct {
	store *mapsdb.Store
	rng   *rand.Rand
}

func New(store *mapsdb.Store) *Solver {
	return &Solver{store: store, rng: rand.New(rand.NewSource(rand.Int63()))}
}

// NewWithRand pins the tie-breaking source, for deterministic tests.
func NewWithRand(store *mapsdb.Store, rng *rand.Rand) *Solver {
	return &Solver{store: store, rng: rng}
}

type combo struct {
	keys     []string
	numClues int
}

// Solve reduces set to a uniquely-solving clue listing.
func (s *Solver) Solve(ctx context.Context, set *clue.Set) (*Result, error) {
	keys := clue.Keys()
	matches := make(map[string][]int, len(keys))
	for _, k := range keys {
		m, err := s.store.Matches(ctx, set.Difficulty, k, set.MapKeys[k], len(set.Digits))
		if err != nil {
			return nil, fmt.Errorf("load matches for %s: %w", k, err)
		}
		matches[k] = m
	}

	solved := s.findOverlaps(keys, matches, set)
	if len(solved) == 0 {
		return nil, ErrNoSolution
	}

	chosen := s.pickFunnest(solved)
	out := make(map[string][]string, len(chosen.keys))
	for _, k := range chosen.keys {
		clues := append([]string(nil), set.Clues[k]...)
		if neg := negativeConstraint(k, set.Difficulty); neg != "" {
			clues = append(clues, neg)
		}
		out[clue.DisplayKey(k)] = clues
	}
	return &Result{Clues: out, NumKeys: len(chosen.keys)}, nil
}

// findOverlaps walks combination sizes and returns every combination at the
// first size that produces a unique intersection. Easy difficulty walks
// from the largest size down so the player gets the most clue kinds;
// medium and hard walk up from one.
func (s *Solver) findOverlaps(keys []string, matches map[string][]int, set *clue.Set) []combo {
	sizes := make([]int, 0, len(keys))
	if set.Difficulty == clue.Easy {
		for n := len(keys); n >= 1; n-- {
			sizes = append(sizes, n)
		}
	} else {
		for n := 1; n <= len(keys); n++ {
			sizes = append(sizes, n)
		}
	}

	for _, size := range sizes {
		var solved []combo
		forEachCombination(keys, size, func(ck []string) {
			if overlapCount(matches, ck) != 1 {
				return
			}
			total := 0
			for _, k := range ck {
				total += len(set.Clues[k])
			}
			solved = append(solved, combo{keys: append([]string(nil), ck...), numClues: total})
		})
		if len(solved) > 0 {
			return solved
		}
	}
	return nil
}

// pickFunnest keeps the combinations with the fewest total clues and picks
// one at random.
func (s *Solver) pickFunnest(solved []combo) combo {
	min := solved[0].numClues
	for _, c := range solved[1:] {
		if c.numClues < min {
			min = c.numClues
		}
	}
	var best []combo
	for _, c := range solved {
		if c.numClues == min {
			best = append(best, c)
		}
	}
	return best[s.rng.Intn(len(best))]
}

// overlapCount counts the numbers present in every key's match list.
func overlapCount(matches map[string][]int, keys []string) int {
	seen := make(map[int]int, len(matches[keys[0]]))
	for _, n := range matches[keys[0]] {
		seen[n] = 1
	}
	for _, k := range keys[1:] {
		for _, n := range matches[k] {
			if seen[n] == 0 {
				continue
			}
			seen[n]++
		}
		// Keep only numbers seen in every list so far.
		for n, c := range seen {
			if c == 1 {
				delete(seen, n)
			} else {
				seen[n] = 1
			}
		}
	}
	return len(seen)
}

// forEachCombination visits every size-k combination of keys in order.
func forEachCombination(keys []string, k int, visit func([]string)) {
	n := len(keys)
	if k < 1 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	pick := make([]string, k)
	for {
		for i, j := range idx {
			pick[i] = keys[j]
		}
		visit(pick)

		// Advance to the next combination.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// negativeConstraint renders the "nothing else applies" clue for a chosen
// key, or "" for kinds whose single clue is already exhaustive.
func negativeConstraint(key string, d clue.Difficulty) string {
	display := clue.DisplayKey(key)
	switch key {
	case clue.KeyMultiples:
		return fmt.Sprintf("No other %s clues apply for the divisors 1 through %d",
			display, clue.MultiplesLimit)
	case clue.KeyPrime, clue.KeyPerfect, clue.KeyFibonacci:
		return fmt.Sprintf("No other %s%s clues apply to my digits",
			runLimitPhrase(d), display)
	case clue.KeySum, clue.KeyProduct:
		return fmt.Sprintf("No other 1-digit %s clues apply to my digits", display)
	default:
		return ""
	}
}

func runLimitPhrase(d clue.Difficulty) string {
	switch limit := clue.RunLimit(d); {
	case limit == 1:
		return "1-digit "
	case limit > 1:
		return fmt.Sprintf("1 or %d digit ", limit)
	default:
		return ""
	}
}
