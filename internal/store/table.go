package store

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record with this key already exists")
)

// Table holds every record of one entity type for the lifetime of the
// process, in insertion order. There is no persistence behind it; a restart
// starts over from the seed data.
type Table[K comparable, T any] struct {
	mu    sync.RWMutex
	rows  []T
	index map[K]int
	key   func(T) K
}

func NewTable[K comparable, T any](key func(T) K) *Table[K, T] {
	return &Table[K, T]{
		index: make(map[K]int),
		key:   key,
	}
}

// Insert appends a record whose key is already set.
func (t *Table[K, T]) Insert(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insert(row)
}

func (t *Table[K, T]) insert(row T) error {
	k := t.key(row)
	if _, ok := t.index[k]; ok {
		return ErrDuplicate
	}
	t.index[k] = len(t.rows)
	t.rows = append(t.rows, row)
	return nil
}

func (t *Table[K, T]) Get(k K) (T, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[k]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return t.rows[i], nil
}

// Update replaces the record with the same key in place, preserving its
// position in the listing.
func (t *Table[K, T]) Update(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[t.key(row)]
	if !ok {
		return ErrNotFound
	}
	t.rows[i] = row
	return nil
}

// Delete removes the record; the remaining rows keep their relative order.
func (t *Table[K, T]) Delete(k K) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	i, ok := t.index[k]
	if !ok {
		return ErrNotFound
	}
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
	delete(t.index, k)
	for j := i; j < len(t.rows); j++ {
		t.index[t.key(t.rows[j])] = j
	}
	return nil
}

// List returns a copy of all records in insertion order.
func (t *Table[K, T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *Table[K, T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// SeqTable is a Table keyed by a generated integer id. Ids come from a
// monotonic counter, never from slice position, so deleting the newest row
// does not release its id for reuse.
type SeqTable[T any] struct {
	Table[int, T]
	nextID int
	withID func(T, int) T
}

func NewSeqTable[T any](key func(T) int, withID func(T, int) T) *SeqTable[T] {
	return &SeqTable[T]{
		Table:  Table[int, T]{index: make(map[int]int), key: key},
		nextID: 1,
		withID: withID,
	}
}

// Insert adds a record that already carries an id (seed data) and keeps the
// counter ahead of it.
func (t *SeqTable[T]) Insert(row T) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.insert(row); err != nil {
		return err
	}
	if id := t.key(row); id >= t.nextID {
		t.nextID = id + 1
	}
	return nil
}

// Add assigns the next id and appends, returning the completed record.
func (t *SeqTable[T]) Add(row T) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row = t.withID(row, t.nextID)
	if err := t.insert(row); err != nil {
		var zero T
		return zero, err
	}
	t.nextID++
	return row, nil
}
