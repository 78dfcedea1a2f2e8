package domain

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func entry(tx string, trust int64, at time.Time) *BalanceChangeEntry {
	return &BalanceChangeEntry{TransactionID: tx, BalanceID: "b1", UserID: "u1", TrustBalance: trust, CreatedAt: at}
}

func TestReconstruct_SumsLegsPerTransaction(t *testing.T) {
	entries := []*BalanceChangeEntry{
		entry("T2", -200_000, t0.Add(2*time.Minute)),
		entry("T1", 500_000, t0),
		entry("T1", 100_000, t0.Add(time.Second)),
	}

	rows := Reconstruct(0, entries)

	require.Len(t, rows, 2)
	assert.Equal(t, "T1", rows[0].TransactionID)
	assert.Equal(t, int64(600_000), rows[0].Delta)
	assert.Equal(t, t0.Add(time.Second), rows[0].EffectiveAt)
	assert.Equal(t, "0.6", rows[0].Balance().String())
	assert.Equal(t, "T2", rows[1].TransactionID)
	assert.Equal(t, "0.4", rows[1].Balance().String())
	assert.Equal(t, "-0.2", rows[1].DeltaAmount().String())
}

func TestReconstruct_Empty(t *testing.T) {
	rows := Reconstruct(42, nil)
	assert.Empty(t, rows)
}

func TestReconstruct_OpeningBalance(t *testing.T) {
	rows := Reconstruct(1_000_000, []*BalanceChangeEntry{entry("T1", -250_000, t0)})

	require.Len(t, rows, 1)
	assert.Equal(t, int64(750_000), rows[0].RunningBalance)
}

func TestReconstruct_TiesBrokenByTransactionID(t *testing.T) {
	rows := Reconstruct(0, []*BalanceChangeEntry{
		entry("b", 2, t0),
		entry("c", 3, t0),
		entry("a", 1, t0),
	})

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.TransactionID
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
	assert.Equal(t, int64(6), rows[2].RunningBalance)
}

func TestReconstruct_MatchesPrefixSum(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for round := 0; round < 50; round++ {
		n := rng.IntN(40)
		deltas := make([]int64, n)
		var entries []*BalanceChangeEntry
		for i := 0; i < n; i++ {
			deltas[i] = rng.Int64N(2_000_000) - 1_000_000
			at := t0.Add(time.Duration(i) * time.Minute)
			id := string(rune('A'+i/26)) + string(rune('a'+i%26))

			// split into legs posted slightly earlier than the last one
			first := deltas[i] / 3
			entries = append(entries,
				entry(id, first, at.Add(-time.Second)),
				entry(id, deltas[i]-first, at),
			)
		}
		rng.Shuffle(len(entries), func(i, j int) { entries[i], entries[j] = entries[j], entries[i] })

		opening := rng.Int64N(1_000_000)
		rows := Reconstruct(opening, entries)

		require.Len(t, rows, n)
		want := opening
		for i, r := range rows {
			want += deltas[i]
			assert.Equal(t, deltas[i], r.Delta)
			assert.Equal(t, want, r.RunningBalance)
			if i > 0 {
				assert.Equal(t, rows[i-1].RunningBalance+r.Delta, r.RunningBalance)
			}
		}
	}
}

func TestRewinder_MatchesReconstruct(t *testing.T) {
	entries := []*BalanceChangeEntry{
		entry("T1", 600_000, t0),
		entry("T2", -200_000, t0.Add(time.Minute)),
		entry("T3", 50_000, t0.Add(2*time.Minute)),
	}
	opening := int64(100_000)
	forward := Reconstruct(opening, entries)

	deltas := GroupByTransaction(entries)
	slices.Reverse(deltas)

	rw := NewRewinder(forward[len(forward)-1].RunningBalance)
	for i, d := range deltas {
		row := rw.Booked(d)
		assert.Equal(t, forward[len(forward)-1-i], row)
	}
	assert.Equal(t, opening, rw.Balance())
}
