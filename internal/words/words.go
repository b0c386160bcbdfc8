// internal/words/words.go
//
// Word dictionary for the solver.
//
// Responsibilities:
//   - Load the candidate universe from a file or fall back to the embedded list.
//   - Normalize every entry (lowercase, diacritics stripped) and keep only
//     5-letter a–z words, de-duplicated in first-seen order.
//   - Expose the list read-only; callers get copies, never the backing slice.
//
// A Dictionary is passed explicitly to every operation that needs one.
// There is no package-level dictionary.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/termo-solver/assets"
)

// Len is the fixed word length of every puzzle variant.
const Len = 5

// ErrEmpty is returned when no valid word survives normalization.
var ErrEmpty = errors.New("words: dictionary is empty")

// Dictionary is an immutable ordered list of candidate words.
type Dictionary struct {
	list []string
	set  map[string]struct{}
}

// New normalizes list into a Dictionary.
// Invalid entries are dropped; an empty result is an error.
func New(list []string) (*Dictionary, error) {
	d := &Dictionary{set: make(map[string]struct{}, len(list))}
	for _, raw := range list {
		w := Fold(raw)
		if !IsWord(w) {
			continue
		}
		if _, dup := d.set[w]; dup {
			continue
		}
		d.set[w] = struct{}{}
		d.list = append(d.list, w)
	}
	if len(d.list) == 0 {
		return nil, ErrEmpty
	}
	return d, nil
}

// Load reads one word per line from path.
func Load(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return New(lines)
}

// Default builds the dictionary from the embedded word list.
func Default() (*Dictionary, error) {
	lines, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("embedded words: %w", err)
	}
	return New(lines)
}

// Open loads path when set, otherwise the embedded default.
func Open(path string) (*Dictionary, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}

// Words returns a copy of the dictionary in load order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.list))
	copy(out, d.list)
	return out
}

// Len reports the number of words.
func (d *Dictionary) Len() int { return len(d.list) }

// Contains reports whether w (after folding) is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	_, ok := d.set[Fold(w)]
	return ok
}

// IsWord reports whether s is exactly Len lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != Len {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
