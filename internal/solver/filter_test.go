package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/words"
)

func defaultWords(t *testing.T) []string {
	t.Helper()
	d, err := words.Default()
	require.NoError(t, err)
	return d.Words()
}

func TestFilter_AreioAgainstCorte(t *testing.T) {
	candidates := []string{"areio", "corte", "morte", "norte", "pizza", "trevo"}
	got := Filter(game.Score("areio", "corte"), candidates)
	assert.Equal(t, []string{"corte", "morte", "norte"}, got)
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	candidates := []string{"corte", "morte", "norte"}
	orig := append([]string(nil), candidates...)

	got := Filter(game.Score("morte", "corte"), candidates)
	assert.Equal(t, []string{"corte", "norte"}, got)
	assert.Equal(t, orig, candidates)
}

func TestFilter_AllGreenKeepsOnlyThatWord(t *testing.T) {
	got := Filter(game.Score("norte", "norte"), []string{"corte", "norte", "morte"})
	assert.Equal(t, []string{"norte"}, got)
}

// Repeated letters are applied per position: the black copy of "l" rejects
// every word holding an "l" outside the yellow/green positions, including
// the answer itself.
func TestFilter_RepeatedLetterUsesPerPositionRules(t *testing.T) {
	clue := game.Score("llzzz", "abldd")
	require.Equal(t, game.StatusYellow, clue[0].Status)
	require.Equal(t, game.StatusBlack, clue[1].Status)

	assert.Empty(t, Filter(clue, []string{"abldd"}))
}

func TestFilter_YellowAndBlack(t *testing.T) {
	var clue game.Clue
	for i, l := range []byte("abcde") {
		clue[i] = game.Cell{Letter: l, Status: game.StatusBlack}
	}
	clue[0].Status = game.StatusYellow // "a" somewhere but not first

	got := Filter(clue, []string{"xaxxx", "xxxxx", "axxxx", "xxbxx"})
	assert.Equal(t, []string{"xaxxx"}, got)
}

// randomClue builds an arbitrary clue over the letters of a dictionary word.
func randomClue(rng *rand.Rand, word string) game.Clue {
	statuses := []game.Status{game.StatusGreen, game.StatusYellow, game.StatusBlack}
	var c game.Clue
	for i := range c {
		c[i] = game.Cell{Letter: word[i], Status: statuses[rng.IntN(len(statuses))]}
	}
	return c
}

func TestFilter_Properties(t *testing.T) {
	all := defaultWords(t)
	rng := rand.New(rand.NewPCG(7, 7))

	var clues []game.Clue
	for i := 0; i < 200; i++ {
		guess := all[rng.IntN(len(all))]
		answer := all[rng.IntN(len(all))]
		clues = append(clues, game.Score(guess, answer))
		clues = append(clues, randomClue(rng, guess))
	}

	for _, clue := range clues {
		got := Filter(clue, all)

		// monotonic shrink
		require.LessOrEqual(t, len(got), len(all), clue.String())

		// idempotence
		require.Equal(t, got, Filter(clue, got), clue.String())

		var bound [words.Len]bool
		for i, c := range clue {
			bound[i] = c.Status != game.StatusBlack
		}
		for _, w := range got {
			for i, c := range clue {
				switch c.Status {
				case game.StatusGreen:
					require.Equal(t, c.Letter, w[i], "green %s in %s", clue, w)
				case game.StatusYellow:
					require.NotEqual(t, c.Letter, w[i], "yellow %s in %s", clue, w)
					require.Contains(t, w, string(c.Letter), "yellow %s in %s", clue, w)
				case game.StatusBlack:
					for p := 0; p < words.Len; p++ {
						if !bound[p] {
							require.NotEqual(t, c.Letter, w[p], "black %s in %s", clue, w)
						}
					}
				}
			}
		}
	}
}

// With no repeated letters in the guess, two-pass scoring never makes the
// filter drop the answer.
func TestFilter_KeepsAnswerForDistinctLetterGuesses(t *testing.T) {
	all := defaultWords(t)
	distinct := func(w string) bool {
		var seen [26]bool
		for i := 0; i < len(w); i++ {
			if seen[w[i]-'a'] {
				return false
			}
			seen[w[i]-'a'] = true
		}
		return true
	}

	checked := 0
	for gi := 0; gi < len(all); gi += 7 {
		guess := all[gi]
		if !distinct(guess) {
			continue
		}
		for ai := 0; ai < len(all); ai += 11 {
			answer := all[ai]
			assert.Contains(t, Filter(game.Score(guess, answer), all), answer, "guess %s answer %s", guess, answer)
			checked++
		}
	}
	assert.Positive(t, checked)
}
