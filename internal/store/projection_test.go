package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	Name string
	Age  int
}

var personFields = Fields[person]{
	Search: []string{"name", "age"},
	Text: map[string]func(person) string{
		"name": func(p person) string { return p.Name },
	},
	Numeric: map[string]func(person) float64{
		"age": func(p person) float64 { return float64(p.Age) },
	},
}

func TestSortIsCaseInsensitive(t *testing.T) {
	rows := []person{{Name: "Bob"}, {Name: "alice"}}

	asc := Apply(rows, Projection{SortField: "name"}, personFields)
	require.Len(t, asc, 2)
	assert.Equal(t, "alice", asc[0].Name)
	assert.Equal(t, "Bob", asc[1].Name)

	// Toggling the same field reverses the order exactly
	desc := Apply(rows, Projection{SortField: "name", Desc: true}, personFields)
	assert.Equal(t, "Bob", desc[0].Name)
	assert.Equal(t, "alice", desc[1].Name)
}

func TestNumericFieldsSortNumerically(t *testing.T) {
	rows := []person{{Name: "a", Age: 100}, {Name: "b", Age: 9}}

	got := Apply(rows, Projection{SortField: "age"}, personFields)
	assert.Equal(t, 9, got[0].Age, "9 sorts before 100 numerically, after it lexically")
}

func TestTiesKeepInsertionOrder(t *testing.T) {
	rows := []person{{Name: "same", Age: 1}, {Name: "SAME", Age: 2}, {Name: "Same", Age: 3}}

	got := Apply(rows, Projection{SortField: "name"}, personFields)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Age, got[1].Age, got[2].Age})
}

func TestQueryMatchesSubstringCaseInsensitive(t *testing.T) {
	rows := []person{{Name: "Alice Brown"}, {Name: "Bob White"}, {Name: "Carol Green"}}

	got := Apply(rows, Projection{Query: "bRoW"}, personFields)
	require.Len(t, got, 1)
	assert.Equal(t, "Alice Brown", got[0].Name)
}

func TestQueryMatchesNumericFieldsAsText(t *testing.T) {
	rows := []person{{Name: "a", Age: 42}, {Name: "b", Age: 7}}

	got := Apply(rows, Projection{Query: "42"}, personFields)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Name)
}

func TestUnmatchedQueryYieldsEmptyWithoutMutating(t *testing.T) {
	rows := []person{{Name: "Alice"}, {Name: "Bob"}}

	got := Apply(rows, Projection{Query: "zzz"}, personFields)
	assert.Empty(t, got)
	assert.Equal(t, []person{{Name: "Alice"}, {Name: "Bob"}}, rows, "input slice untouched")
}

func TestUnknownSortFieldKeepsOrder(t *testing.T) {
	rows := []person{{Name: "b"}, {Name: "a"}}

	got := Apply(rows, Projection{SortField: "nope"}, personFields)
	assert.Equal(t, rows, got)
}
