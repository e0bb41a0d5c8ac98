package match

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

var known = []string{"compare", "expr", "flatten", "join", "logical", "merge", "not", "split", "translate"}

func TestRank(t *testing.T) {
	list := Rank("flaten", known)

	best := list.Best()
	if assert.NotNil(t, best) {
		assert.Equal(t, "flatten", best.Name)
	}

	assert.Len(t, list, len(known))

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Score, list[i].Score)
	}
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"translate"}, Suggest("tranlsate", known, 3))
	assert.Equal(t, []string{"merge"}, Suggest("Merge", known, 1))
	assert.Empty(t, Suggest("zzzzzz", known, 3))
	assert.Empty(t, Suggest("join", nil, 3))
}

func TestCandidateList(t *testing.T) {
	var empty CandidateList
	assert.Nil(t, empty.Best())
	assert.Empty(t, empty.Top(2))

	list := CandidateList{{Name: "b", Score: 0.5}, {Name: "a", Score: 0.5}, {Name: "c", Score: 0.9}}
	sort.Sort(list)

	assert.Equal(t, CandidateList{{Name: "c", Score: 0.9}, {Name: "a", Score: 0.5}, {Name: "b", Score: 0.5}}, list)
	assert.Len(t, list.AboveThreshold(0.6), 1)
	assert.Len(t, list.Top(2), 2)
}
