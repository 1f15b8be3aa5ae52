package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromRequest_Defaults(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/products", nil))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
	assert.Equal(t, 0, p.Offset)
}

func TestFromRequest_CustomValues(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/products?page=3&per_page=10", nil))
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 20, p.Offset)
}

func TestFromRequest_IgnoresInvalid(t *testing.T) {
	p := FromRequest(httptest.NewRequest("GET", "/products?page=-1&per_page=500", nil))
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PerPage)
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(items, Params{Page: 1, PerPage: 2, Offset: 0}))
	assert.Equal(t, []int{3, 4}, Slice(items, Params{Page: 2, PerPage: 2, Offset: 2}))
	assert.Equal(t, []int{5}, Slice(items, Params{Page: 3, PerPage: 2, Offset: 4}))
	assert.Empty(t, Slice(items, Params{Page: 9, PerPage: 2, Offset: 16}))
}

func TestNewResult(t *testing.T) {
	r := NewResult([]string{"a", "b"}, 5, Params{Page: 1, PerPage: 2})
	assert.Equal(t, 5, r.TotalCount)
	assert.Equal(t, 3, r.TotalPages)
	assert.True(t, r.HasNext)
	assert.False(t, r.HasPrev)

	r = NewResult([]string{"e"}, 5, Params{Page: 3, PerPage: 2})
	assert.False(t, r.HasNext)
	assert.True(t, r.HasPrev)
}

func TestNewResult_NilData(t *testing.T) {
	r := NewResult[string](nil, 0, Params{Page: 1, PerPage: 20})
	assert.NotNil(t, r.Data)
	assert.Empty(t, r.Data)
	assert.Zero(t, r.TotalPages)
}
