package storage

import (
	"encoding/json"

	"go.uber.org/zap"
)

// Store reads and writes whole slot documents through a Backend. Failures
// are logged and swallowed: reads degrade to empty results, writes to
// no-ops. After a swallowed write failure the caller's in-memory state and
// the persisted state diverge until the next successful write; that trade
// is deliberate for best-effort personal data.
type Store struct {
	backend Backend
	log     *zap.Logger
}

func NewStore(backend Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{backend: backend, log: log}
}

func (s *Store) Backend() Backend { return s.backend }

func (s *Store) Close() error { return s.backend.Close() }

// ReadAll returns the full sequence persisted under slot. A missing slot,
// unreadable backend, or malformed document all yield an empty sequence.
func ReadAll[T any](s *Store, slot string) []T {
	var records []T
	if !s.decode(slot, &records) {
		return []T{}
	}
	if records == nil {
		return []T{}
	}
	return records
}

// WriteAll replaces the sequence persisted under slot.
func WriteAll[T any](s *Store, slot string, records []T) {
	s.encode(slot, records)
}

// ReadOne returns the single record persisted under slot, or false when the
// slot is missing or unreadable.
func ReadOne[T any](s *Store, slot string) (T, bool) {
	var record T
	if !s.decode(slot, &record) {
		var zero T
		return zero, false
	}
	return record, true
}

// WriteOne replaces the single record persisted under slot.
func WriteOne[T any](s *Store, slot string, record T) {
	s.encode(slot, record)
}

func (s *Store) decode(slot string, out any) bool {
	data, ok, err := s.backend.Get(slot)
	if err != nil {
		s.log.Warn("read slot", zap.String("slot", slot), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}
	// Decode to a dynamic tree first so timestamp revival can run over
	// every string at every depth, then re-decode into the typed target.
	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		s.log.Warn("parse slot", zap.String("slot", slot), zap.Error(err))
		return false
	}
	revived, err := json.Marshal(reviveTimestamps(tree))
	if err != nil {
		s.log.Warn("revive slot", zap.String("slot", slot), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(revived, out); err != nil {
		s.log.Warn("decode slot", zap.String("slot", slot), zap.Error(err))
		return false
	}
	return true
}

func (s *Store) encode(slot string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.log.Warn("encode slot", zap.String("slot", slot), zap.Error(err))
		return
	}
	if err := s.backend.Set(slot, data); err != nil {
		s.log.Warn("write slot", zap.String("slot", slot), zap.Error(err))
	}
}
