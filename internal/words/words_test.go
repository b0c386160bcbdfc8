package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A", "a"},
		{"Ç", "c"},
		{"órgão", "orgao"},
		{"  Pátio ", "patio"},
		{"areio", "areio"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.in))
		})
	}
}

func TestNew_NormalizesAndDeduplicates(t *testing.T) {
	d, err := New([]string{"Fúria", "furia", "casa", "órgão", "areio", "ab1de", "longer"})
	require.NoError(t, err)

	assert.Equal(t, []string{"furia", "orgao", "areio"}, d.Words())
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.Contains("FURIA"))
	assert.True(t, d.Contains("órgão"))
	assert.False(t, d.Contains("casa"))
}

func TestNew_Empty(t *testing.T) {
	_, err := New([]string{"abc", ""})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestWords_ReturnsCopy(t *testing.T) {
	d, err := New([]string{"corte", "morte"})
	require.NoError(t, err)

	w := d.Words()
	w[0] = "zzzzz"
	assert.Equal(t, []string{"corte", "morte"}, d.Words())
}

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.True(t, d.Contains("areio"), "opening word must be in the default list")
	for _, w := range d.Words() {
		assert.True(t, IsWord(w), w)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("Corte\n\nnorte\nsextas\n"), 0o644))

	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"corte", "norte"}, d.Words())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
