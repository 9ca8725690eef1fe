package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rec struct {
	ID   int
	Name string
}

func newRecTable() *SeqTable[rec] {
	return NewSeqTable(
		func(r rec) int { return r.ID },
		func(r rec, id int) rec { r.ID = id; return r },
	)
}

func TestAddAssignsSequentialIDs(t *testing.T) {
	tbl := newRecTable()

	first, err := tbl.Add(rec{Name: "a"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID, "empty table starts at 1")

	second, err := tbl.Add(rec{Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	got, err := tbl.Get(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, got, "lookup by returned id yields the input with id populated")
}

func TestAddAfterSeedContinuesPastMaxID(t *testing.T) {
	tbl := newRecTable()
	require.NoError(t, tbl.Insert(rec{ID: 7, Name: "seeded"}))

	added, err := tbl.Add(rec{Name: "next"})
	require.NoError(t, err)
	assert.Equal(t, 8, added.ID)
}

func TestIDsAreNotReusedAfterDelete(t *testing.T) {
	tbl := newRecTable()
	tbl.Add(rec{Name: "a"})
	b, _ := tbl.Add(rec{Name: "b"})

	require.NoError(t, tbl.Delete(b.ID))

	c, err := tbl.Add(rec{Name: "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, c.ID, "deleting the newest row must not release its id")
}

func TestUpdateReplacesInPlace(t *testing.T) {
	tbl := newRecTable()
	a, _ := tbl.Add(rec{Name: "a"})
	b, _ := tbl.Add(rec{Name: "b"})
	c, _ := tbl.Add(rec{Name: "c"})

	require.NoError(t, tbl.Update(rec{ID: b.ID, Name: "b2"}))

	got, err := tbl.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "b2", got.Name)

	// Other records untouched, positions preserved
	list := tbl.List()
	require.Len(t, list, 3)
	assert.Equal(t, []rec{a, {ID: b.ID, Name: "b2"}, c}, list)
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	tbl := newRecTable()
	tbl.Add(rec{Name: "a"})

	err := tbl.Update(rec{ID: 99, Name: "ghost"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, tbl.Len(), "failed update must not change the table")
}

func TestDeletePreservesRemainingOrder(t *testing.T) {
	tbl := newRecTable()
	a, _ := tbl.Add(rec{Name: "a"})
	b, _ := tbl.Add(rec{Name: "b"})
	c, _ := tbl.Add(rec{Name: "c"})

	require.NoError(t, tbl.Delete(b.ID))

	_, err := tbl.Get(b.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []rec{a, c}, tbl.List())

	assert.ErrorIs(t, tbl.Delete(b.ID), ErrNotFound, "second delete reports not found")
}

func TestInsertDuplicateKeyRejected(t *testing.T) {
	tbl := NewTable(func(r rec) int { return r.ID })
	require.NoError(t, tbl.Insert(rec{ID: 1, Name: "a"}))
	assert.ErrorIs(t, tbl.Insert(rec{ID: 1, Name: "again"}), ErrDuplicate)
}

func TestListReturnsACopy(t *testing.T) {
	tbl := newRecTable()
	tbl.Add(rec{Name: "a"})

	list := tbl.List()
	list[0].Name = "mutated"

	got, err := tbl.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Name)
}
