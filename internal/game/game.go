// internal/game/game.go
//
// Game sessions for the digits game.
// Responsibilities:
//   - Random answer generation within a digit-count range.
//   - Creating a session: roll answers until the solver can produce a
//     uniquely-solving clue listing (three attempts, then give up).
//   - Guess equality check and the congratulation line on a win.
//   - Hint highlighting: which shown clues does a wrong guess fail?
package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math/big"

	"github.com/dafrizzy/digits/internal/clue"
	"github.com/dafrizzy/digits/internal/numutil"
	"github.com/dafrizzy/digits/internal/solver"
)

// answerAttempts bounds how many answers are rolled before giving up on a
// solvable clue listing.
const answerAttempts = 3

// ErrUnsolvable means no rolled answer produced a uniquely-solving clue
// listing within the retry limit.
var ErrUnsolvable = errors.New("could not generate a solvable number")

// congratulations are the win messages; one is chosen at random.
var congratulations = []string{
	"Wowowowow! That was it, good job!",
	"Congratulations! You guessed it!",
	"Nice work! I love you!",
	"Well done, nerd.",
	"Impressive! You got it!",
	"Nice job! I'll get you next time.",
	"Wow! You're my hero!",
	"Showoff. Well done, congrats, etc.",
	"Booyah!! You make me so proud.",
}

// Game holds the state of one hidden number and its clue listing.
type Game struct {
	ID         string
	Answer     int
	NumDigits  int
	Difficulty clue.Difficulty
	// Clues is the display-keyed listing shown to the player.
	Clues map[string][]string
}

// New rolls answers with numDigits digits until the solver produces a clue
// listing, up to answerAttempts times.
func New(ctx context.Context, sv *solver.Solver, numDigits int, d clue.Difficulty) (*Game, error) {
	for i := 0; i < answerAttempts; i++ {
		answer := RandomAnswer(numDigits)
		set := clue.Generate(answer, d)
		res, err := sv.Solve(ctx, set)
		if errors.Is(err, solver.ErrNoSolution) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return &Game{
			ID:         randomID(),
			Answer:     answer,
			NumDigits:  numDigits,
			Difficulty: d,
			Clues:      res.Clues,
		}, nil
	}
	return nil, ErrUnsolvable
}

// RandomAnswer returns a cryptographically random number with exactly n
// digits (no leading zero).
func RandomAnswer(n int) int {
	lo := 1
	for i := 1; i < n; i++ {
		lo *= 10
	}
	span := int64(lo*10 - lo)
	v, _ := rand.Int(rand.Reader, big.NewInt(span))
	return lo + int(v.Int64())
}

// CheckGuess reports whether guess equals the hidden answer.
func (g *Game) CheckGuess(guess int) bool { return guess == g.Answer }

// AnswerDigits returns the answer's digits as strings, for prefilling the
// form when the player asks for the reveal.
func (g *Game) AnswerDigits() []string {
	digits := numutil.NumToDigits(g.Answer)
	out := make([]string, len(digits))
	for i, d := range digits {
		out[i] = string(rune('0' + d))
	}
	return out
}

// Congratulation picks a random win message.
func Congratulation() string {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(len(congratulations))))
	return congratulations[v.Int64()]
}

// HighlightClues compares the shown listing against the clues a wrong guess
// generates and returns the shown clues to emphasize:
//   - every shown clue the guess does not itself satisfy, and
//   - the last shown clue of a keyword where the guess satisfies strictly
//     more clues than were shown (the listing is exhaustive, so extra
//     matches mean the guess overshoots).
//
// Negative-constraint clues never appear in a guess's generated set, so a
// wrong guess always lights them up.
func (g *Game) HighlightClues(guess int) []string {
	guessSet := clue.Generate(guess, g.Difficulty)
	byDisplay := make(map[string][]string, len(guessSet.Clues))
	for key, clues := range guessSet.Clues {
		byDisplay[clue.DisplayKey(key)] = clues
	}

	var highlighted []string
	for keyword, shown := range g.Clues {
		got := byDisplay[keyword]
		if len(got) > len(shown) && len(shown) > 0 {
			highlighted = append(highlighted, shown[len(shown)-1])
		}
		gotSet := make(map[string]struct{}, len(got))
		for _, c := range got {
			gotSet[c] = struct{}{}
		}
		for _, c := range shown {
			if _, ok := gotSet[c]; !ok {
				highlighted = append(highlighted, c)
			}
		}
	}
	return highlighted
}

// randomID returns a compact 16-hex-char session identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
