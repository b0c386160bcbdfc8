// internal/game/types.go
//
// Core type definitions shared by the solver and its collaborators.
// Defines:
//   - Status / Cell / Clue: structured per-position feedback for one guess.
//   - Variant: the closed set of puzzle modes and their budgets.
//   - RawCell / RawRow: what a collaborator observes on screen before
//     interpretation.

package game

import (
	"fmt"
	"strings"

	"github.com/robalobadob/termo-solver/internal/words"
)

// OpeningWord is the first guess of every cold-started run.
const OpeningWord = "areio"

// Status is the evaluation of a single letter in a played row.
//   - "green":  letter in the correct position.
//   - "yellow": letter in the answer but elsewhere.
//   - "black":  letter not (or no longer) in the answer.
type Status string

const (
	StatusGreen  Status = "green"
	StatusYellow Status = "yellow"
	StatusBlack  Status = "black"
)

// Cell is the letter and status of one position.
type Cell struct {
	Letter byte   `json:"letter"`
	Status Status `json:"status"`
}

// Clue is the feedback for one played row, one Cell per position.
type Clue [words.Len]Cell

// Solved reports whether every position is green.
func (c Clue) Solved() bool {
	for _, x := range c {
		if x.Status != StatusGreen {
			return false
		}
	}
	return true
}

// Word returns the letters of the clue as a string.
func (c Clue) Word() string {
	var b [words.Len]byte
	for i, x := range c {
		b[i] = x.Letter
	}
	return string(b[:])
}

// String renders the clue as letter+mark pairs, e.g. "a. r? e? i. o!".
// '!' is green, '?' yellow, '.' black.
func (c Clue) String() string {
	var sb strings.Builder
	for i, x := range c {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(x.Letter)
		switch x.Status {
		case StatusGreen:
			sb.WriteByte('!')
		case StatusYellow:
			sb.WriteByte('?')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// RawCell is one observed tile: the displayed character and the
// accessibility label (or other signal) describing its correctness.
type RawCell struct {
	Char   string `json:"char"`
	Signal string `json:"signal"`
}

// RawRow is one observed row of tiles, in position order.
type RawRow []RawCell

// Variant is one of the supported puzzle modes.
type Variant int

const (
	Termo Variant = iota
	Dueto
	Quarteto
)

var variantTable = [...]struct {
	name        string
	boards      int
	maxAttempts int
}{
	Termo:    {"termo", 1, 6},
	Dueto:    {"dueto", 2, 7},
	Quarteto: {"quarteto", 4, 9},
}

// Variants lists every supported variant in order.
func Variants() []Variant { return []Variant{Termo, Dueto, Quarteto} }

// ParseVariant resolves a variant by name (case-insensitive).
func ParseVariant(name string) (Variant, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, v := range Variants() {
		if variantTable[v].name == n {
			return v, nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", name)
}

func (v Variant) valid() bool { return v >= 0 && int(v) < len(variantTable) }

// String returns the variant's name.
func (v Variant) String() string {
	if !v.valid() {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantTable[v].name
}

// Boards is the number of boards solved in lock-step.
func (v Variant) Boards() int { return variantTable[v].boards }

// MaxAttempts is the row budget shared by every board.
func (v Variant) MaxAttempts() int { return variantTable[v].maxAttempts }

// WarmRetry reports whether a failed run retries from the narrowed
// candidate set instead of starting over. Only single-board games do.
func (v Variant) WarmRetry() bool { return v.Boards() == 1 }

// MarshalText encodes the variant by name.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.valid() {
		return nil, fmt.Errorf("invalid variant %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText decodes a variant name.
func (v *Variant) UnmarshalText(b []byte) error {
	p, err := ParseVariant(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}
