package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intRange(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return items
}

func Test_Pager_TotalPages(t *testing.T) {
	cases := []struct {
		n, size, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 5, 2},
		{11, 5, 3},
		{100, 7, 15},
	}
	for _, tc := range cases {
		p := NewPager(intRange(tc.n), tc.size)
		assert.Equal(t, tc.want, p.TotalPages(), "n=%d size=%d", tc.n, tc.size)
	}
}

func Test_Pager_PageItems(t *testing.T) {
	p := NewPager(intRange(12), 5)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.PageItems())

	p.NextPage()
	assert.Equal(t, []int{6, 7, 8, 9, 10}, p.PageItems())

	// Last page carries the remainder
	p.NextPage()
	assert.Equal(t, []int{11, 12}, p.PageItems())
}

func Test_Pager_GoToPage_OutOfRangeIsNoOp(t *testing.T) {
	p := NewPager(intRange(12), 5)
	p.GoToPage(2)
	assert.Equal(t, 2, p.Page())

	p.GoToPage(0)
	assert.Equal(t, 2, p.Page())

	p.GoToPage(-3)
	assert.Equal(t, 2, p.Page())

	p.GoToPage(4)
	assert.Equal(t, 2, p.Page())
}

func Test_Pager_NavigationBounds(t *testing.T) {
	p := NewPager(intRange(8), 5)

	p.PreviousPage() // already first
	assert.Equal(t, 1, p.Page())

	p.NextPage()
	assert.Equal(t, 2, p.Page())

	p.NextPage() // already last
	assert.Equal(t, 2, p.Page())
}

func Test_Pager_ShrinkResetsToPageOne(t *testing.T) {
	p := NewPager(intRange(25), 10)
	p.GoToPage(3)
	assert.Equal(t, 3, p.Page())

	// Filter shrank the collection below page 3
	p.SetItems(intRange(4))
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, []int{1, 2, 3, 4}, p.PageItems())
}

func Test_Pager_Indexes(t *testing.T) {
	p := NewPager(intRange(12), 5)
	assert.Equal(t, 1, p.StartIndex())
	assert.Equal(t, 5, p.EndIndex())
	assert.Equal(t, 12, p.TotalItems())

	p.GoToPage(3)
	assert.Equal(t, 11, p.StartIndex())
	assert.Equal(t, 12, p.EndIndex())
}

func Test_Pager_EmptyCollection(t *testing.T) {
	p := NewPager([]int{}, 5)
	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 1, p.TotalPages())
	assert.Empty(t, p.PageItems())
	assert.Equal(t, 0, p.StartIndex())
	assert.Equal(t, 0, p.EndIndex())
}

func Test_Pager_SliceRecomputedOnEveryAccess(t *testing.T) {
	items := intRange(6)
	p := NewPager(items, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, p.PageItems())

	p.SetItems(intRange(3))
	assert.Equal(t, []int{1, 2, 3}, p.PageItems())
}
