// internal/httpserver/routes.go
//
// Page handlers for the setup and guess screens, plus the best-effort
// SQLite bookkeeping (game rows, per-player stats).

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/dafrizzy/digits/internal/clue"
	"github.com/dafrizzy/digits/internal/game"
	"github.com/dafrizzy/digits/internal/numutil"
	"github.com/dafrizzy/digits/internal/store"
)

// choice is a single radio option on the setup form.
type choice struct {
	Value    string
	Label    string
	Selected bool
}

// setupData feeds templates/setup.html.
type setupData struct {
	CSRFToken    string
	Error        string
	Difficulties []choice
	DigitCounts  []choice
}

// clueGroup is one keyword's clue list, in stable display order.
type clueGroup struct {
	Keyword string
	Clues   []string
}

// guessData feeds templates/guess.html.
type guessData struct {
	CSRFToken      string
	Fields         []string
	ClueGroups     []clueGroup
	Highlighted    map[string]bool
	GuessSubmitted bool
	Correct        bool
	Congrats       string
	Guess          string
}

const (
	defaultDifficulty = clue.Medium
	defaultNumDigits  = 5
)

func (s *Server) handleSetupPage(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	s.render(w, "setup.html", s.setupData(sess, "", defaultDifficulty, defaultNumDigits))
}

func (s *Server) handleStartGame(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	if !checkCSRF(r, sess) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}

	d := clue.Difficulty(r.PostFormValue("difficulty"))
	if !d.Valid() {
		d = defaultDifficulty
	}
	n, err := strconv.Atoi(r.PostFormValue("num_digits"))
	if err != nil || n < s.opts.MinDigits || n > s.opts.MaxDigits {
		n = defaultNumDigits
		if n < s.opts.MinDigits || n > s.opts.MaxDigits {
			n = s.opts.MinDigits
		}
	}

	g, err := game.New(r.Context(), s.solver, n, d)
	if errors.Is(err, game.ErrUnsolvable) {
		s.render(w, "setup.html", s.setupData(sess,
			"I couldn't think of a good number. Try again!", d, n))
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("create game")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game session")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.recordGameStart(r.Context(), sess.PlayerID, g)

	sess.GameID = g.ID
	s.saveSession(w, sess)
	http.Redirect(w, r, "/guess", http.StatusSeeOther)
}

func (s *Server) handleGuessPage(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	g, ok := s.activeGame(r.Context(), sess)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.render(w, "guess.html", s.guessData(sess, g))
}

func (s *Server) handleGuessAction(w http.ResponseWriter, r *http.Request) {
	sess := s.loadSession(w, r)
	if !checkCSRF(r, sess) {
		http.Error(w, "invalid csrf token", http.StatusForbidden)
		return
	}
	g, ok := s.activeGame(r.Context(), sess)
	if !ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	switch {
	case r.PostFormValue("submit_play_again") != "":
		if err := s.store.Delete(r.Context(), g.ID); err != nil {
			log.Warn().Err(err).Str("game", g.ID).Msg("delete game session")
		}
		sess.GameID = ""
		s.saveSession(w, sess)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case r.PostFormValue("submit_reveal") != "":
		s.recordGameOver(r.Context(), sess.PlayerID, g.ID, "revealed")
		data := s.guessData(sess, g)
		data.Fields = g.AnswerDigits()
		s.render(w, "guess.html", data)

	case r.PostFormValue("submit_hint") != "":
		digits := formDigits(r, g.NumDigits)
		guess := numutil.DigitsToNum(digits)
		data := s.guessData(sess, g)
		data.Fields = fieldStrings(digits)
		if g.CheckGuess(guess) {
			s.recordWin(r.Context(), sess.PlayerID, g)
			data.GuessSubmitted = true
			data.Correct = true
			data.Congrats = game.Congratulation()
		} else {
			for _, c := range g.HighlightClues(guess) {
				data.Highlighted[c] = true
			}
		}
		s.render(w, "guess.html", data)

	default: // submit_guess
		digits := formDigits(r, g.NumDigits)
		guess := numutil.DigitsToNum(digits)
		s.recordGuess(r.Context(), g.ID)
		data := s.guessData(sess, g)
		data.Fields = fieldStrings(digits)
		data.GuessSubmitted = true
		data.Guess = strconv.Itoa(guess)
		if g.CheckGuess(guess) {
			s.recordWin(r.Context(), sess.PlayerID, g)
			data.Correct = true
			data.Congrats = game.Congratulation()
		}
		s.render(w, "guess.html", data)
	}
}

// activeGame resolves the session's game ID to a live session, if any.
func (s *Server) activeGame(ctx context.Context, sess session) (*game.Game, bool) {
	if sess.GameID == "" {
		return nil, false
	}
	g, err := s.store.Get(ctx, sess.GameID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("game", sess.GameID).Msg("load game session")
		return nil, false
	}
	return g, true
}

func (s *Server) setupData(sess session, errMsg string, d clue.Difficulty, n int) setupData {
	data := setupData{CSRFToken: sess.CSRF, Error: errMsg}
	labels := []struct {
		d     clue.Difficulty
		label string
	}{{clue.Easy, "Easy"}, {clue.Medium, "Medium"}, {clue.Hard, "Hard"}}
	for _, diff := range labels {
		data.Difficulties = append(data.Difficulties, choice{
			Value:    string(diff.d),
			Label:    diff.label,
			Selected: diff.d == d,
		})
	}
	for i := s.opts.MinDigits; i <= s.opts.MaxDigits; i++ {
		data.DigitCounts = append(data.DigitCounts, choice{
			Value:    strconv.Itoa(i),
			Label:    strconv.Itoa(i),
			Selected: i == n,
		})
	}
	return data
}

func (s *Server) guessData(sess session, g *game.Game) guessData {
	data := guessData{
		CSRFToken:   sess.CSRF,
		Fields:      make([]string, g.NumDigits),
		Highlighted: make(map[string]bool),
	}
	seen := make(map[string]bool)
	for _, key := range clue.Keys() {
		keyword := clue.DisplayKey(key)
		if seen[keyword] {
			continue
		}
		seen[keyword] = true
		if clues, ok := g.Clues[keyword]; ok && len(clues) > 0 {
			data.ClueGroups = append(data.ClueGroups, clueGroup{Keyword: keyword, Clues: clues})
		}
	}
	return data
}

// formDigits parses digit_1..digit_n; blank or malformed fields count as 0.
func formDigits(r *http.Request, n int) []int {
	digits := make([]int, n)
	for i := 0; i < n; i++ {
		v := r.PostFormValue(fmt.Sprintf("digit_%d", i+1))
		if d, err := strconv.Atoi(v); err == nil && d >= 0 && d <= 9 {
			digits[i] = d
		}
	}
	return digits
}

func fieldStrings(digits []int) []string {
	out := make([]string, len(digits))
	for i, d := range digits {
		out[i] = strconv.Itoa(d)
	}
	return out
}

// ----------------------------- bookkeeping ----------------------------------
//
// Stats writes are best effort: a failed insert or update is logged and
// the request carries on.

func (s *Server) recordGameStart(ctx context.Context, playerID string, g *game.Game) {
	if s.db == nil {
		return
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO players (id) VALUES (?)`, playerID); err != nil {
		log.Warn().Err(err).Msg("insert player row")
		return
	}
	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO games (id, player_id, difficulty, num_digits, answer, status)
		 VALUES (?, ?, ?, ?, ?, 'active')`,
		g.ID, playerID, string(g.Difficulty), g.NumDigits, g.Answer); err != nil {
		log.Warn().Err(err).Str("game", g.ID).Msg("insert game row")
	}
}

func (s *Server) recordGuess(ctx context.Context, gameID string) {
	if s.db == nil {
		return
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE games SET guesses = guesses + 1 WHERE id = ?`, gameID); err != nil {
		log.Warn().Err(err).Str("game", gameID).Msg("bump guess count")
	}
}

func (s *Server) recordWin(ctx context.Context, playerID string, g *game.Game) {
	if s.db == nil {
		return
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE games SET status = 'won', finished_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = 'active'`, g.ID)
	if err != nil {
		log.Warn().Err(err).Str("game", g.ID).Msg("finish game row")
		return
	}
	// Resubmitting a winning guess must not double-count the win.
	if n, _ := res.RowsAffected(); n == 0 {
		return
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE players SET games_played = games_played + 1, wins = wins + 1,
		 streak = streak + 1 WHERE id = ?`, playerID); err != nil {
		log.Warn().Err(err).Str("player", playerID).Msg("bump player stats")
	}
}

func (s *Server) recordGameOver(ctx context.Context, playerID, gameID, status string) {
	if s.db == nil {
		return
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE games SET status = ?, finished_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND status = 'active'`, status, gameID)
	if err != nil {
		log.Warn().Err(err).Str("game", gameID).Msg("finish game row")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE players SET games_played = games_played + 1, streak = 0
		 WHERE id = ?`, playerID); err != nil {
		log.Warn().Err(err).Str("player", playerID).Msg("bump player stats")
	}
}
