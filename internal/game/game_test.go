package game

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dafrizzy/digits/internal/clue"
	"github.com/dafrizzy/digits/internal/mapsdb"
	"github.com/dafrizzy/digits/internal/solver"
)

func testSolver(t *testing.T) *solver.Solver {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, mapsdb.EnsureSchema(db))
	require.NoError(t, mapsdb.NewBuilder(db).Build(context.Background(), 3, 3))
	return solver.New(mapsdb.NewStore(db))
}

func TestRandomAnswerStaysInRange(t *testing.T) {
	for _, n := range []int{3, 4, 5, 6} {
		lo := 1
		for i := 1; i < n; i++ {
			lo *= 10
		}
		for i := 0; i < 50; i++ {
			a := RandomAnswer(n)
			assert.GreaterOrEqual(t, a, lo, "n=%d", n)
			assert.LessOrEqual(t, a, lo*10-1, "n=%d", n)
		}
	}
}

func TestNewProducesSolvableGame(t *testing.T) {
	sv := testSolver(t)
	g, err := New(context.Background(), sv, 3, clue.Medium)
	require.NoError(t, err)
	assert.Len(t, g.ID, 16)
	assert.Equal(t, 3, g.NumDigits)
	assert.Equal(t, clue.Medium, g.Difficulty)
	assert.NotEmpty(t, g.Clues)
	assert.GreaterOrEqual(t, g.Answer, 100)
	assert.LessOrEqual(t, g.Answer, 999)
}

func TestCheckGuess(t *testing.T) {
	g := &Game{Answer: 1234, NumDigits: 4}
	assert.True(t, g.CheckGuess(1234))
	assert.False(t, g.CheckGuess(1243))
}

func TestAnswerDigits(t *testing.T) {
	g := &Game{Answer: 10203, NumDigits: 5}
	assert.Equal(t, []string{"1", "0", "2", "0", "3"}, g.AnswerDigits())
}

func TestCongratulationIsKnownMessage(t *testing.T) {
	seen := map[string]bool{}
	for _, m := range congratulations {
		seen[m] = true
	}
	for i := 0; i < 20; i++ {
		assert.True(t, seen[Congratulation()])
	}
}

func TestHighlightCluesMarksUnsatisfied(t *testing.T) {
	// Answer 123 showing only its ORDER clue; guess 321 is descending.
	g := &Game{
		Answer:     123,
		NumDigits:  3,
		Difficulty: clue.Medium,
		Clues: map[string][]string{
			"ORDER": {"My digits are in ascending ORDER"},
		},
	}
	got := g.HighlightClues(321)
	assert.Equal(t, []string{"My digits are in ascending ORDER"}, got)

	// A guess that is also ascending satisfies the clue.
	assert.Empty(t, g.HighlightClues(129))
}

func TestHighlightCluesAlwaysLightsNegativeConstraints(t *testing.T) {
	g := &Game{
		Answer:     123,
		NumDigits:  3,
		Difficulty: clue.Medium,
		Clues: map[string][]string{
			"EVEN": {
				"1 of my digits is EVEN",
				// Synthetic constraint line: never generated for a guess.
				"No other EVEN clues apply to my digits",
			},
		},
	}
	got := g.HighlightClues(145) // also exactly one even digit
	assert.Contains(t, got, "No other EVEN clues apply to my digits")
	assert.NotContains(t, got, "1 of my digits is EVEN")
}

func TestHighlightCluesMarksOvershoot(t *testing.T) {
	// Shown listing has one DIVIDED clue; guess 248 generates several, so
	// the last shown clue lights up as well.
	g := &Game{
		Answer:     123,
		NumDigits:  3,
		Difficulty: clue.Medium,
		Clues: map[string][]string{
			"DIVIDED": {"My 2nd digit DIVIDED by 2 equals my 1st digit"},
		},
	}
	got := g.HighlightClues(248)
	assert.Contains(t, got, "My 2nd digit DIVIDED by 2 equals my 1st digit")
}
