// internal/game/engine.go
//
// In-memory puzzle engine for one term.ooo-style game.
// Responsibilities:
//   - Hold the hidden answer of every board and the shared row history.
//   - Score guesses with the classic two-pass Wordle algorithm.
//   - Render scored rows as the site's accessibility labels, so the solver
//     reads a simulated game exactly like a real one.
//   - Freeze a board once it is solved; stop accepting rows once every board
//     is done or the attempt budget is spent.
//
// Puzzle satisfies the solver's Submitter, Observer and Restarter contracts.

package game

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/termo-solver/internal/words"
)

var (
	ErrPuzzleFinished = errors.New("puzzle finished")
	ErrInvalidGuess   = errors.New("invalid guess")
	ErrRowNotPlayed   = errors.New("row not played")
	ErrNoSuchBoard    = errors.New("no such board")
)

// Puzzle is a simulated multi-board game.
type Puzzle struct {
	ID      string   // Unique puzzle identifier (random hex string).
	Variant Variant  // Board count and attempt budget.
	Answers []string // One hidden word per board (folded).
	Guesses []string // Rows played so far, shared by every board.

	solvedAt []int // per board: row that solved it, or -1
}

// NewPuzzle builds a puzzle with one answer per board of v.
func NewPuzzle(v Variant, answers ...string) (*Puzzle, error) {
	if !v.valid() {
		return nil, fmt.Errorf("invalid variant %d", int(v))
	}
	if len(answers) != v.Boards() {
		return nil, fmt.Errorf("%s needs %d answers, got %d", v, v.Boards(), len(answers))
	}
	p := &Puzzle{ID: randomID(), Variant: v}
	for _, a := range answers {
		w := words.Fold(a)
		if !words.IsWord(w) {
			return nil, fmt.Errorf("%w: answer %q", ErrInvalidGuess, a)
		}
		p.Answers = append(p.Answers, w)
	}
	p.reset()
	return p, nil
}

func (p *Puzzle) reset() {
	p.Guesses = []string{}
	p.solvedAt = make([]int, len(p.Answers))
	for i := range p.solvedAt {
		p.solvedAt[i] = -1
	}
}

// Submit plays word on every unsolved board.
func (p *Puzzle) Submit(ctx context.Context, word string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.Finished() {
		return ErrPuzzleFinished
	}
	word = words.Fold(word)
	if !words.IsWord(word) {
		return fmt.Errorf("%w: %q", ErrInvalidGuess, word)
	}
	row := len(p.Guesses)
	p.Guesses = append(p.Guesses, word)
	for b, ans := range p.Answers {
		if p.solvedAt[b] < 0 && ans == word {
			p.solvedAt[b] = row
		}
	}
	return nil
}

// ObserveRow returns the labelled tiles of one played row on one board.
// Rows after the one that solved the board are never filled in.
func (p *Puzzle) ObserveRow(ctx context.Context, board, row int) (RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if board < 0 || board >= len(p.Answers) {
		return nil, fmt.Errorf("%w: %d", ErrNoSuchBoard, board)
	}
	if row < 0 || row >= len(p.Guesses) || (p.solvedAt[board] >= 0 && row > p.solvedAt[board]) {
		return nil, fmt.Errorf("%w: board %d row %d", ErrRowNotPlayed, board, row)
	}
	clue := Score(p.Guesses[row], p.Answers[board])
	out := make(RawRow, len(clue))
	for i, c := range clue {
		ch := strings.ToUpper(string(c.Letter))
		out[i] = RawCell{Char: ch, Signal: Label(c)}
	}
	return out, nil
}

// NewGame clears the row history; the answers stay the same.
func (p *Puzzle) NewGame(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.reset()
	return nil
}

// Solved reports whether board has been solved.
func (p *Puzzle) Solved(board int) bool { return p.solvedAt[board] >= 0 }

// Finished reports whether every board is solved or the budget is spent.
func (p *Puzzle) Finished() bool {
	if len(p.Guesses) >= p.Variant.MaxAttempts() {
		return true
	}
	for b := range p.Answers {
		if !p.Solved(b) {
			return false
		}
	}
	return true
}

// Label renders a cell the way term.ooo labels its tiles.
func Label(c Cell) string {
	ch := strings.ToUpper(string(c.Letter))
	switch c.Status {
	case StatusGreen:
		return fmt.Sprintf("letra %q correta", ch)
	case StatusYellow:
		return fmt.Sprintf("letra %q em outro local", ch)
	default:
		return fmt.Sprintf("letra %q errada", ch)
	}
}

// Score implements the standard Wordle two-pass scoring algorithm.
//
// Pass 1:
//   - Mark exact matches green.
//   - Count remaining (non-green) answer letters.
//
// Pass 2:
//   - For each non-green guess letter: if a count remains for it, mark
//     yellow and decrement; otherwise mark black.
//
// Both words must be folded a–z words of equal length.
func Score(guess, answer string) Clue {
	var clue Clue
	var counts [26]int

	for i := 0; i < words.Len; i++ {
		clue[i].Letter = guess[i]
		if guess[i] == answer[i] {
			clue[i].Status = StatusGreen
		} else {
			counts[answer[i]-'a']++
		}
	}
	for i := 0; i < words.Len; i++ {
		if clue[i].Status == StatusGreen {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			clue[i].Status = StatusYellow
			counts[j]--
		} else {
			clue[i].Status = StatusBlack
		}
	}
	return clue
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
