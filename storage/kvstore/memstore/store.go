package memstore

import (
	"sync"

	"github.com/umairnumplate/noor-ul-masajid/core"
)

// Store keeps values in memory; it backs tests and the `memory` store engine.
type Store struct {
	sync.RWMutex
	table map[string][]byte

	getErr error
	setErr error
}

var _ core.KVStore = (*Store)(nil)

func New() *Store {
	return &Store{table: make(map[string][]byte)}
}

// FailReads makes every Get return err; nil restores normal reads.
func (s *Store) FailReads(err error) {
	s.Lock()
	defer s.Unlock()
	s.getErr = err
}

// FailWrites makes every Set return err without storing; nil restores normal writes.
func (s *Store) FailWrites(err error) {
	s.Lock()
	defer s.Unlock()
	s.setErr = err
}

func (s *Store) Get(key string) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.table[key]
	if !ok {
		return nil, core.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

func (s *Store) Set(key string, value []byte) error {
	s.Lock()
	defer s.Unlock()

	if s.setErr != nil {
		return s.setErr
	}
	s.table[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Close() error { return nil }
