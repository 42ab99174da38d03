package solver

import (
	"context"
	"database/sql"
	"math/rand"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafrizzy/digits/internal/clue"
	"github.com/dafrizzy/digits/internal/mapsdb"
)

func indexedStore(t *testing.T) *mapsdb.Store {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, mapsdb.EnsureSchema(db))
	require.NoError(t, mapsdb.NewBuilder(db).Build(context.Background(), 3, 3))
	return mapsdb.NewStore(db)
}

func TestSolveProducesDisplayKeyedClues(t *testing.T) {
	store := indexedStore(t)
	s := NewWithRand(store, rand.New(rand.NewSource(1)))

	set := clue.Generate(123, clue.Medium)
	res, err := s.Solve(context.Background(), set)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, res.NumKeys, len(res.Clues))
	assert.NotZero(t, res.NumKeys)

	displayKeys := map[string]bool{}
	for _, k := range clue.Keys() {
		displayKeys[clue.DisplayKey(k)] = true
	}
	for k, clues := range res.Clues {
		assert.True(t, displayKeys[k], "unexpected final key %q", k)
		// Negative-constraint kinds always end with their constraint.
		switch k {
		case "DIVIDED":
			assert.Contains(t, clues,
				"No other DIVIDED clues apply for the divisors 1 through 4")
		case "PRIME", "PERFECT", "FIBONACCI":
			assert.Contains(t, clues,
				"No other 1 or 2 digit "+k+" clues apply to my digits")
		case "SUM", "PRODUCT":
			assert.Contains(t, clues,
				"No other 1-digit "+k+" clues apply to my digits")
		}
	}
}

func TestSolveEasyUsesMoreKeysThanHard(t *testing.T) {
	store := indexedStore(t)
	s := NewWithRand(store, rand.New(rand.NewSource(7)))
	ctx := context.Background()

	easy, err := s.Solve(ctx, clue.Generate(123, clue.Easy))
	require.NoError(t, err)
	hard, err := s.Solve(ctx, clue.Generate(123, clue.Hard))
	require.NoError(t, err)

	// Easy searches combination sizes from the top down, hard from one up.
	assert.GreaterOrEqual(t, easy.NumKeys, hard.NumKeys)
}

func TestSolveNoIndexMeansNoSolution(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, mapsdb.EnsureSchema(db))

	s := New(mapsdb.NewStore(db))
	_, err = s.Solve(context.Background(), clue.Generate(123, clue.Medium))
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestNegativeConstraintWording(t *testing.T) {
	assert.Equal(t,
		"No other DIVIDED clues apply for the divisors 1 through 4",
		negativeConstraint(clue.KeyMultiples, clue.Hard))
	assert.Equal(t,
		"No other 1-digit PRIME clues apply to my digits",
		negativeConstraint(clue.KeyPrime, clue.Easy))
	assert.Equal(t,
		"No other 1 or 2 digit FIBONACCI clues apply to my digits",
		negativeConstraint(clue.KeyFibonacci, clue.Medium))
	assert.Equal(t,
		"No other PERFECT clues apply to my digits",
		negativeConstraint(clue.KeyPerfect, clue.Hard))
	assert.Equal(t,
		"No other 1-digit SUM clues apply to my digits",
		negativeConstraint(clue.KeySum, clue.Medium))
	assert.Empty(t, negativeConstraint(clue.KeyOrder, clue.Medium))
	assert.Empty(t, negativeConstraint(clue.KeyEven, clue.Medium))
	assert.Empty(t, negativeConstraint(clue.KeyTotalSum, clue.Medium))
}

func TestForEachCombination(t *testing.T) {
	keys := []string{"a", "b", "c", "d"}
	var got [][]string
	forEachCombination(keys, 2, func(c []string) {
		got = append(got, append([]string(nil), c...))
	})
	want := [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"}, {"c", "d"},
	}
	assert.Equal(t, want, got)

	var all [][]string
	forEachCombination(keys, 4, func(c []string) {
		all = append(all, append([]string(nil), c...))
	})
	assert.Equal(t, [][]string{{"a", "b", "c", "d"}}, all)
}

func TestOverlapCount(t *testing.T) {
	matches := map[string][]int{
		"x": {1, 2, 3},
		"y": {2, 3, 4},
		"z": {3, 4, 5},
	}
	assert.Equal(t, 3, overlapCount(matches, []string{"x"}))
	assert.Equal(t, 2, overlapCount(matches, []string{"x", "y"}))
	assert.Equal(t, 1, overlapCount(matches, []string{"x", "y", "z"}))
}
