package stats

import (
	"sort"
	"sync"
	"sync/atomic"

	"gridgames/internal/game"
)

// PlayerStats holds the win/loss/draw tally of one player name
type PlayerStats struct {
	Player string
	Wins   int32
	Losses int32
	Draws  int32
}

// TotalGames returns the total number of games played
func (s PlayerStats) TotalGames() int32 {
	return s.Wins + s.Losses + s.Draws
}

// Store is the process-lifetime scoreboard. Players are keyed by name, so
// the same name on two sides shares one tally.
type Store struct {
	mu    sync.RWMutex
	stats map[string]*PlayerStats
}

// NewStore creates an empty scoreboard
func NewStore() *Store {
	return &Store{
		stats: make(map[string]*PlayerStats),
	}
}

func (s *Store) getOrCreate(player string) *PlayerStats {
	s.mu.RLock()
	stats, exists := s.stats[player]
	s.mu.RUnlock()
	if exists {
		return stats
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check after acquiring write lock
	if stats, exists = s.stats[player]; exists {
		return stats
	}
	stats = &PlayerStats{Player: player}
	s.stats[player] = stats
	return stats
}

func load(stats *PlayerStats) PlayerStats {
	return PlayerStats{
		Player: stats.Player,
		Wins:   atomic.LoadInt32(&stats.Wins),
		Losses: atomic.LoadInt32(&stats.Losses),
		Draws:  atomic.LoadInt32(&stats.Draws),
	}
}

// All returns every tally sorted by player name
func (s *Store) All() []PlayerStats {
	s.mu.RLock()
	out := make([]PlayerStats, 0, len(s.stats))
	for _, stats := range s.stats {
		out = append(out, load(stats))
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Player < out[j].Player })
	return out
}

// RecordResult tallies one finished game. On a draw every listed player gets
// a draw; otherwise winners get a win and losers a loss.
func (s *Store) RecordResult(winners, losers []string, draw bool) {
	for _, p := range winners {
		if draw {
			atomic.AddInt32(&s.getOrCreate(p).Draws, 1)
		} else {
			atomic.AddInt32(&s.getOrCreate(p).Wins, 1)
		}
	}
	for _, p := range losers {
		if draw {
			atomic.AddInt32(&s.getOrCreate(p).Draws, 1)
		} else {
			atomic.AddInt32(&s.getOrCreate(p).Losses, 1)
		}
	}
}

// RecordGame tallies a finished game from its sides. A nil winner is a draw.
func (s *Store) RecordGame(winner *game.Side, sides []*game.Side) {
	var winners, others []string
	for _, side := range sides {
		for _, p := range side.Players {
			if winner != nil && side.ID == winner.ID {
				winners = append(winners, p.Name)
			} else {
				others = append(others, p.Name)
			}
		}
	}
	s.RecordResult(winners, others, winner == nil)
}
