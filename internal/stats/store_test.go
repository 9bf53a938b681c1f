package stats

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridgames/internal/game"
)

// tally looks a player up on the scoreboard
func tally(t *testing.T, store *Store, player string) PlayerStats {
	t.Helper()

	for _, stats := range store.All() {
		if stats.Player == player {
			return stats
		}
	}
	t.Fatalf("player %q not on the scoreboard", player)
	return PlayerStats{}
}

func TestStore_Empty(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.All())
	assert.Equal(t, int32(0), PlayerStats{Player: "alice"}.TotalGames())
}

func TestStore_RecordResult(t *testing.T) {
	store := NewStore()

	// Record a win/loss
	store.RecordResult([]string{"winner"}, []string{"loser-1", "loser-2"}, false)

	winnerStats := tally(t, store, "winner")
	assert.Equal(t, int32(1), winnerStats.Wins)
	assert.Equal(t, int32(0), winnerStats.Losses)

	for _, name := range []string{"loser-1", "loser-2"} {
		loserStats := tally(t, store, name)
		assert.Equal(t, int32(0), loserStats.Wins)
		assert.Equal(t, int32(1), loserStats.Losses)
	}

	// Record a draw
	store.RecordResult([]string{"winner"}, []string{"loser-1"}, true)

	assert.Equal(t, int32(1), tally(t, store, "winner").Draws)
	assert.Equal(t, int32(1), tally(t, store, "loser-1").Draws)
	assert.Equal(t, int32(0), tally(t, store, "loser-2").Draws)
	assert.Equal(t, int32(2), tally(t, store, "winner").TotalGames())
}

func TestStore_RecordGame(t *testing.T) {
	store := NewStore()
	x := game.NewSide(0, "X", "alice", "bob")
	o := game.NewSide(1, "O")

	store.RecordGame(x, []*game.Side{x, o})
	store.RecordGame(nil, []*game.Side{x, o})

	assert.Equal(t, PlayerStats{Player: "alice", Wins: 1, Draws: 1}, tally(t, store, "alice"))
	assert.Equal(t, PlayerStats{Player: "bob", Wins: 1, Draws: 1}, tally(t, store, "bob"))
	assert.Equal(t, PlayerStats{Player: game.DefaultPlayerName, Losses: 1, Draws: 1}, tally(t, store, game.DefaultPlayerName))
}

func TestStore_All(t *testing.T) {
	store := NewStore()
	store.RecordResult([]string{"carol", "alice"}, []string{"bob"}, false)

	all := store.All()
	require.Len(t, all, 3)
	assert.Equal(t, "alice", all[0].Player)
	assert.Equal(t, "bob", all[1].Player)
	assert.Equal(t, "carol", all[2].Player)
	assert.Equal(t, int32(1), all[1].Losses)
}

func TestStore_Concurrent(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	// Concurrent updates to same player
	for i := 0; i < 100; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			store.RecordResult([]string{"alice"}, nil, false)
		}()
		go func() {
			defer wg.Done()
			store.RecordResult(nil, []string{"alice"}, false)
		}()
		go func() {
			defer wg.Done()
			store.RecordResult([]string{"alice"}, nil, true)
		}()
	}
	wg.Wait()

	stats := tally(t, store, "alice")
	assert.Equal(t, int32(100), stats.Wins)
	assert.Equal(t, int32(100), stats.Losses)
	assert.Equal(t, int32(100), stats.Draws)
	assert.Equal(t, int32(300), stats.TotalGames())
}
