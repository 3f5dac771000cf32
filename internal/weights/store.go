// Package weights keeps the in-memory per-user weight log.
package weights

import "sync"

// historyCap bounds the per-user history to the newest entries.
const historyCap = 30

// Entry is one recorded weight, dated in the bot's fixed timezone.
type Entry struct {
	Date string
	Kg   float64
}

// Record tracks a single user's weights. Last mirrors the tail of
// History whenever History is non-empty.
type Record struct {
	Last    *float64
	History []Entry
}

// Store maps Telegram user ids to weight records. State lives for the
// process lifetime only; there is no persistence.
type Store struct {
	mu    sync.Mutex
	users map[int64]*Record
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[int64]*Record)}
}

// Add records kg for the user on the given date, creating the record on
// first use, and returns the previous weight (nil on first entry).
// History keeps only the newest 30 entries.
func (s *Store) Add(userID int64, kg float64, date string) *float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		rec = &Record{}
		s.users[userID] = rec
	}

	prev := rec.Last
	v := kg
	rec.Last = &v
	rec.History = append(rec.History, Entry{Date: date, Kg: kg})
	if len(rec.History) > historyCap {
		rec.History = rec.History[len(rec.History)-historyCap:]
	}
	return prev
}

// Get returns a copy of the user's record, or ok=false when the user
// has never logged a weight.
func (s *Store) Get(userID int64) (Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		return Record{}, false
	}
	out := Record{History: append([]Entry(nil), rec.History...)}
	if rec.Last != nil {
		v := *rec.Last
		out.Last = &v
	}
	return out, true
}
