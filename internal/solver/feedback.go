package solver

import (
	"fmt"
	"strings"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/words"
)

// signalRules classify term.ooo tile labels. Order matters: "errada" is
// checked before "local".
var signalRules = []struct {
	token  string
	status game.Status
}{
	{"errada", game.StatusBlack},
	{"local", game.StatusYellow},
	{"correta", game.StatusGreen},
}

func classify(signal string) (game.Status, bool) {
	s := strings.ToLower(strings.TrimSpace(signal))
	switch st := game.Status(s); st {
	case game.StatusGreen, game.StatusYellow, game.StatusBlack:
		return st, true
	}
	for _, r := range signalRules {
		if strings.Contains(s, r.token) {
			return r.status, true
		}
	}
	return "", false
}

// Interpret converts an observed row into a Clue.
func Interpret(raw game.RawRow) (game.Clue, error) {
	var clue game.Clue
	if len(raw) != words.Len {
		return clue, fmt.Errorf("%w: %d cells, want %d", ErrMalformedObservation, len(raw), words.Len)
	}
	for i, cell := range raw {
		st, ok := classify(cell.Signal)
		if !ok {
			return clue, fmt.Errorf("%w: cell %d signal %q", ErrMalformedObservation, i, cell.Signal)
		}
		ch := words.Fold(cell.Char)
		if len(ch) != 1 || ch[0] < 'a' || ch[0] > 'z' {
			return clue, fmt.Errorf("%w: cell %d char %q", ErrMalformedObservation, i, cell.Char)
		}
		clue[i] = game.Cell{Letter: ch[0], Status: st}
	}
	return clue, nil
}
