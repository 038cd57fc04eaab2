package kvdb

import (
	"sync"
)

// table is one collection held in memory and written back whole after every change.
type table[T any] struct {
	sync.RWMutex
	key  string
	rows []T
	id   func(T) string
	db   *DB
}

func newTable[T any](db *DB, key string, id func(T) string) *table[T] {
	return &table[T]{db: db, key: key, id: id}
}

func (t *table[T]) load(def []T) {
	t.rows = Get[[]T](t.db.kv, t.db.logger, t.key, def)
	if t.rows == nil {
		t.rows = make([]T, 0)
	}
}

// persist must be called with the write lock held.
func (t *table[T]) persist() {
	Set(t.db.kv, t.db.logger, t.key, t.rows)
}

func (t *table[T]) all() []T {
	t.RLock()
	defer t.RUnlock()
	rows := make([]T, len(t.rows))
	copy(rows, t.rows)
	return rows
}

func (t *table[T]) get(id string) (T, bool) {
	t.RLock()
	defer t.RUnlock()
	for _, r := range t.rows {
		if t.id(r) == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}

// update replaces the collection by fn(rows) and persists it; last writer wins.
func (t *table[T]) update(fn func(rows []T) []T) {
	t.Lock()
	defer t.Unlock()
	rows := make([]T, len(t.rows))
	copy(rows, t.rows)
	t.rows = fn(rows)
	if t.rows == nil {
		t.rows = make([]T, 0)
	}
	t.persist()
}

// save replaces the row with the same id in place, or appends v.
func (t *table[T]) save(v T) T {
	t.update(func(rows []T) []T {
		for i, r := range rows {
			if t.id(r) == t.id(v) {
				rows[i] = v
				return rows
			}
		}
		return append(rows, v)
	})
	return v
}

func (t *table[T]) delete(ids ...string) {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}
	t.update(func(rows []T) []T {
		kept := rows[:0]
		for _, r := range rows {
			if _, ok := drop[t.id(r)]; !ok {
				kept = append(kept, r)
			}
		}
		return kept
	})
}
