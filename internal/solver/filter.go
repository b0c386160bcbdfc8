package solver

import (
	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/words"
)

// Filter returns the candidates consistent with clue, in input order.
//
// Entries are applied green first, then yellow, then black; the yellow
// and black rules depend on which positions the same clue fixed (green)
// or constrained (yellow). candidates is never modified.
//
// Repeated letters get no special treatment: each entry is applied on its
// own, so a guess with a yellow and a black copy of the same letter can
// reject a word that the two-pass scoring would accept.
func Filter(clue game.Clue, candidates []string) []string {
	var fixed, bound [words.Len]bool
	out := candidates

	for i, c := range clue {
		if c.Status != game.StatusGreen {
			continue
		}
		out = keep(out, func(w string) bool { return w[i] == c.Letter })
		fixed[i] = true
	}
	bound = fixed

	var required []byte
	for i, c := range clue {
		if c.Status != game.StatusYellow {
			continue
		}
		out = keep(out, func(w string) bool {
			return w[i] != c.Letter && occursOutside(w, c.Letter, fixed)
		})
		bound[i] = true
		required = append(required, c.Letter)
	}

	for _, c := range clue {
		if c.Status != game.StatusBlack {
			continue
		}
		out = keep(out, func(w string) bool {
			return !occursOutside(w, c.Letter, bound) && containsAny(w, required)
		})
	}
	return out
}

// keep returns a new slice with the words matching pred.
func keep(in []string, pred func(string) bool) []string {
	out := make([]string, 0, len(in))
	for _, w := range in {
		if pred(w) {
			out = append(out, w)
		}
	}
	return out
}

// occursOutside reports whether l appears in w at a position not marked in skip.
func occursOutside(w string, l byte, skip [words.Len]bool) bool {
	for p := 0; p < words.Len; p++ {
		if !skip[p] && w[p] == l {
			return true
		}
	}
	return false
}

// containsAny reports whether w contains one of letters; true when letters is empty.
func containsAny(w string, letters []byte) bool {
	if len(letters) == 0 {
		return true
	}
	for _, l := range letters {
		for p := 0; p < len(w); p++ {
			if w[p] == l {
				return true
			}
		}
	}
	return false
}
