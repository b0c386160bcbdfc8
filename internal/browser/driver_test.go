package browser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/solver"
)

func TestURL(t *testing.T) {
	assert.Equal(t, "https://term.ooo/", URL("https://term.ooo", game.Termo))
	assert.Equal(t, "https://term.ooo/2/", URL("https://term.ooo/", game.Dueto))
	assert.Equal(t, "http://localhost:8080/4/", URL("http://localhost:8080", game.Quarteto))
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{`letra "A" correta`, "A"},
		{`letra "É" em outro local`, "É"},
		{`letra "" errada`, ""},
		{`vazio`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLabel(tt.label))
		})
	}
}

func TestKeySelector(t *testing.T) {
	assert.Equal(t, "#kbd_a", keySelector('a'))
	assert.Equal(t, "#kbd_z", keySelector('Z'))
}

// Tiles read from the page go through the solver's interpreter unchanged.
func TestObservedLabelsInterpret(t *testing.T) {
	labels := []string{
		`letra "C" correta`,
		`letra "O" em outro local`,
		`letra "R" errada`,
		`letra "T" correta`,
		`letra "E" correta`,
	}
	raw := make(game.RawRow, 0, len(labels))
	for _, l := range labels {
		raw = append(raw, game.RawCell{Char: parseLabel(l), Signal: l})
	}
	clue, err := solver.Interpret(raw)
	require.NoError(t, err)
	assert.Equal(t, "c! o? r. t! e!", clue.String())
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.Headless)
	assert.Equal(t, "https://term.ooo", cfg.BaseURL)
	assert.Positive(t, cfg.Settle)
}
