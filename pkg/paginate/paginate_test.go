package paginate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nums(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateFirstPage(t *testing.T) {
	res := Paginate(nums(25), 1, 10)

	assert.Equal(t, nums(25)[:10], res.Data)
	assert.Equal(t, Meta{Page: 1, Limit: 10, Total: 25, TotalPages: 3}, res.Pagination)
}

func TestPaginateLastPartialPage(t *testing.T) {
	res := Paginate(nums(25), 3, 10)

	require.Len(t, res.Data, 5)
	assert.Equal(t, 20, res.Data[0])
	assert.Equal(t, 3, res.Pagination.TotalPages)
}

func TestPaginateOutOfRangePage(t *testing.T) {
	res := Paginate(nums(25), 9, 10)

	assert.Empty(t, res.Data)
	assert.Equal(t, 25, res.Pagination.Total)
	assert.Equal(t, 3, res.Pagination.TotalPages)
}

func TestPaginateAllPagesSumToTotal(t *testing.T) {
	for _, limit := range []int{1, 3, 7, 10, 100} {
		items := nums(53)
		res := Paginate(items, 1, limit)

		seen := 0
		for page := 1; page <= res.Pagination.TotalPages; page++ {
			seen += len(Paginate(items, page, limit).Data)
		}
		assert.Equal(t, len(items), seen, "limit %d", limit)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	res := Paginate([]int{}, 1, 10)

	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.Pagination.Total)
	assert.Equal(t, 0, res.Pagination.TotalPages)
}

func TestPaginateDegenerateLimits(t *testing.T) {
	// Zero and negative limits must not panic; contents are unspecified
	// but stable: empty data, zero totalPages, total preserved.
	for _, limit := range []int{0, -1, -10} {
		assert.NotPanics(t, func() {
			res := Paginate(nums(5), 1, limit)
			assert.Empty(t, res.Data)
			assert.Equal(t, 5, res.Pagination.Total)
			assert.Equal(t, 0, res.Pagination.TotalPages)
		})
	}
}

func TestPaginateNegativePage(t *testing.T) {
	assert.NotPanics(t, func() {
		res := Paginate(nums(5), -2, 2)
		assert.Equal(t, 5, res.Pagination.Total)
	})
}
