package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSide(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  []string
	}{
		{
			name:  "named players",
			names: []string{"alice", " bob "},
			want:  []string{"alice", "bob"},
		},
		{
			name:  "blank names are skipped",
			names: []string{"alice", "  ", ""},
			want:  []string{"alice"},
		},
		{
			name: "no players",
			want: []string{DefaultPlayerName},
		},
		{
			name:  "only blanks",
			names: []string{" "},
			want:  []string{DefaultPlayerName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			side := NewSide(3, "Team", tt.names...)

			assert.Equal(t, 3, side.ID)
			assert.Equal(t, "Team", side.Name)
			got := make([]string, 0, len(side.Players))
			for _, p := range side.Players {
				got = append(got, p.Name)
				assert.Zero(t, p.Wins)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSide_RandomPlayer(t *testing.T) {
	side := NewSide(0, "X", "a", "b", "c")
	rng := rand.New(rand.NewPCG(1, 2))

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		p := side.RandomPlayer(rng)
		require.Contains(t, side.Players, p)
		seen[p.Name]++
	}
	assert.Len(t, seen, 3)

	// Same seed, same picks
	a := rand.New(rand.NewPCG(7, 7))
	b := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 20; i++ {
		assert.Same(t, side.RandomPlayer(a), side.RandomPlayer(b))
	}

	solo := NewSide(1, "O", "only")
	assert.Equal(t, "only", solo.RandomPlayer(nil).Name)
}

func TestSide_RecordWin(t *testing.T) {
	side := NewSide(0, "X", "a", "b")
	side.RecordWin()
	side.RecordWin()

	for _, p := range side.Players {
		assert.Equal(t, 2, p.Wins)
	}
}
