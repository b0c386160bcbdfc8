package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/termo-solver/internal/game"
	"github.com/robalobadob/termo-solver/internal/solver"
)

func testStores(t *testing.T) map[string]Store {
	t.Helper()
	sq, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })
	return map[string]Store{"memory": NewMemoryStore(), "sqlite": sq}
}

func TestStore_SaveGetRecent(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 3; i++ {
				r := &Run{
					ID:         fmt.Sprintf("run-%d", i),
					Variant:    "dueto",
					Source:     "simulated",
					Status:     StatusSolved,
					Result:     []string{"corte", "pular"},
					Runs:       1,
					Rows:       5 + i,
					StartedAt:  base.Add(time.Duration(i) * time.Minute),
					FinishedAt: base.Add(time.Duration(i)*time.Minute + time.Second),
				}
				require.NoError(t, st.Save(ctx, r))
			}

			got, err := st.Get(ctx, "run-1")
			require.NoError(t, err)
			assert.Equal(t, []string{"corte", "pular"}, got.Result)
			assert.Equal(t, 6, got.Rows)
			assert.True(t, base.Add(time.Minute).Equal(got.StartedAt))

			_, err = st.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			recent, err := st.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, "run-2", recent[0].ID)
			assert.Equal(t, "run-1", recent[1].ID)

			// replace keeps one row
			got.Status = StatusFailed
			require.NoError(t, st.Save(ctx, got))
			all, err := st.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}

func TestStore_RecentOrdersWithinOneSecond(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 10, 15, 18, 0, 0, 0, time.UTC)

	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, st.Save(ctx, &Run{ID: "older", Variant: "termo", Status: StatusSolved, Result: []string{}, StartedAt: base, FinishedAt: base}))
			newer := base.Add(500 * time.Millisecond)
			require.NoError(t, st.Save(ctx, &Run{ID: "newer", Variant: "termo", Status: StatusSolved, Result: []string{}, StartedAt: newer, FinishedAt: newer}))

			recent, err := st.Recent(ctx, 0)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, "newer", recent[0].ID)
			assert.Equal(t, "older", recent[1].ID)
			assert.True(t, newer.Equal(recent[0].StartedAt))
		})
	}
}

func TestOpenSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")
	st, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, st.Save(context.Background(), &Run{ID: "a", Variant: "termo", Source: "simulated", Status: StatusSolved, Result: []string{"corte"}}))
	require.NoError(t, st.Close())

	st, err = OpenSQLite(path)
	require.NoError(t, err)
	defer st.Close()
	r, err := st.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"corte"}, r.Result)
}

func TestNewRun(t *testing.T) {
	started := time.Now().Add(-time.Second)
	out := &solver.Outcome{
		Variant: game.Termo,
		Result:  []string{"corte"},
		Runs:    2,
		Reports: []*solver.Report{{Played: []string{"areio", "morte"}}, {Played: []string{"corte"}}},
	}

	r := NewRun(game.Termo, "simulated", started, out, nil)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "termo", r.Variant)
	assert.Equal(t, StatusSolved, r.Status)
	assert.Equal(t, 3, r.Rows)
	assert.Equal(t, 2, r.Runs)

	failed := NewRun(game.Dueto, "browser", started, nil, fmt.Errorf("wrap: %w", solver.ErrEmptyCandidateSet))
	assert.Equal(t, StatusFailed, failed.Status)
	assert.Equal(t, "empty_candidate_set", failed.ErrorKind)
	assert.Empty(t, failed.Result)
}
