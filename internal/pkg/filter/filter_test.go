package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	ID         int
	Name       string
	Email      string
	Department string
}

func name(p person) string       { return p.Name }
func email(p person) string      { return p.Email }
func department(p person) string { return p.Department }

var people = []person{
	{ID: 1, Name: "Ana Lopez", Email: "ana@example.com", Department: "Sales"},
	{ID: 2, Name: "Daniel Kim", Email: "dkim@example.com", Department: "Engineering"},
	{ID: 3, Name: "Grace Hopper", Email: "grace@example.com", Department: "Engineering"},
	{ID: 4, Name: "Hannah Arendt", Email: "hannah@example.com", Department: "Engineering"},
}

func ids(ps []person) []int {
	out := make([]int, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_NoFiltersReturnsInputInOrder(t *testing.T) {
	got := Apply(people)
	assert.Equal(t, people, got)

	got = Apply(people, Contains[person]("", name), Equals("", department))
	assert.Equal(t, people, got)
}

func TestApply_IsConjunctive(t *testing.T) {
	got := Apply(people,
		Contains[person]("an", name),
		Equals("Engineering", department),
	)

	// Ana matches the name only; Grace matches the department only.
	assert.Equal(t, []int{2, 4}, ids(got))
}

func TestContains_CaseInsensitiveAcrossFields(t *testing.T) {
	got := Apply(people, Contains[person]("  GRACE ", name, email))
	assert.Equal(t, []int{3}, ids(got))

	got = Apply(people, Contains[person]("dkim@", name, email))
	assert.Equal(t, []int{2}, ids(got))
}

func TestEquals_IsExact(t *testing.T) {
	got := Apply(people, Equals("engineering", department))
	assert.Empty(t, got)
}

func TestJoin_DropsUnresolvedRows(t *testing.T) {
	type row struct {
		ID       int
		PersonID int
	}
	rows := []row{{ID: 10, PersonID: 1}, {ID: 11, PersonID: 99}, {ID: 12, PersonID: 3}}
	index := Index(people, func(p person) int { return p.ID })

	joined := Join(rows, func(r row) int { return r.PersonID }, index)

	if assert.Len(t, joined, 2) {
		assert.Equal(t, 10, joined[0].Item.ID)
		assert.Equal(t, "Ana Lopez", joined[0].Ref.Name)
		assert.Equal(t, 12, joined[1].Item.ID)
		assert.Equal(t, "Grace Hopper", joined[1].Ref.Name)
	}
}

func TestSortBy_StableAndCopies(t *testing.T) {
	sorted := SortBy(people, func(a, b person) bool { return a.Department < b.Department })

	assert.Equal(t, []int{2, 3, 4, 1}, ids(sorted))
	assert.Equal(t, []int{1, 2, 3, 4}, ids(people), "input must not be reordered")
}

func TestCount(t *testing.T) {
	n := Count(people, func(p person) bool { return p.Department == "Engineering" })
	assert.Equal(t, 3, n)
}
