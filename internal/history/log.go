package history

import (
	"errors"
	"sync"

	"gridgames/internal/game"
)

var ErrRecordAlreadyExists = errors.New("record already exists")

// Log is the append-only record of every game instance archived during the
// process lifetime. Records keep the order in which they were appended.
type Log struct {
	mu      sync.RWMutex
	records []game.GameRecord
	byID    map[string]struct{}
}

// NewLog creates an empty history log
func NewLog() *Log {
	return &Log{
		byID: make(map[string]struct{}),
	}
}

// Append stores records in order. A record whose ID is already present
// rejects the whole batch.
func (l *Log) Append(records ...game.GameRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, rec := range records {
		if _, exists := l.byID[rec.ID]; exists {
			return ErrRecordAlreadyExists
		}
	}

	for _, rec := range records {
		rec.Moves = append([]game.MoveRecord(nil), rec.Moves...)
		l.byID[rec.ID] = struct{}{}
		l.records = append(l.records, rec)
	}
	return nil
}

// Records returns a copy of the log in append order. Moves are copied too,
// so archived records cannot be changed through the result.
func (l *Log) Records() []game.GameRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]game.GameRecord, len(l.records))
	for i, rec := range l.records {
		rec.Moves = append([]game.MoveRecord(nil), rec.Moves...)
		out[i] = rec
	}
	return out
}

// Len returns the number of archived records
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records)
}
