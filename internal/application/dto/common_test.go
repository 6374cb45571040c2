package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ramdev/inventory-api/internal/application/dto"
)

func TestPageQuery_Normalize(t *testing.T) {
	defaults := dto.PageDefaults{PageNumber: 0, PageSize: 10}

	q := dto.PageQuery{}.Normalize(defaults, dto.SortProductDefault)
	assert.Equal(t, 0, q.PageNumber)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, "name", q.SortBy)

	// Los valores explícitos se respetan tal cual.
	q = dto.PageQuery{PageNumber: 3, PageSize: 25, SortBy: "price"}.Normalize(defaults, dto.SortProductDefault)
	assert.Equal(t, 3, q.PageNumber)
	assert.Equal(t, 25, q.PageSize)
	assert.Equal(t, "price", q.SortBy)

	// Negativos vuelven al default.
	q = dto.PageQuery{PageNumber: -1, PageSize: -5}.Normalize(defaults, dto.SortOrderDefault)
	assert.Equal(t, 0, q.PageNumber)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, "orderId", q.SortBy)
}

// Sin tope configurado cualquier tamaño pasa; con tope se recorta.
func TestPageQuery_Normalize_Tope(t *testing.T) {
	sinTope := dto.PageDefaults{PageSize: 10}
	q := dto.PageQuery{PageSize: 100000}.Normalize(sinTope, dto.SortProductDefault)
	assert.Equal(t, 100000, q.PageSize)

	conTope := dto.PageDefaults{PageSize: 10, MaxPageSize: 100}
	q = dto.PageQuery{PageSize: 100000}.Normalize(conTope, dto.SortProductDefault)
	assert.Equal(t, 100, q.PageSize)
}

func TestPageQuery_Offset(t *testing.T) {
	q := dto.PageQuery{PageNumber: 4, PageSize: 25}
	assert.Equal(t, 100, q.Offset())
}

func TestNewPaginationResponse_TotalPagesRedondeaHaciaArriba(t *testing.T) {
	q := dto.PageQuery{PageNumber: 1, PageSize: 10}

	resp := dto.NewPaginationResponse(nil, q, 41)
	assert.Equal(t, 5, resp.Pagination.TotalPages)
	assert.EqualValues(t, 41, resp.Pagination.TotalElements)
	assert.Equal(t, 1, resp.Pagination.PageNumber)

	resp = dto.NewPaginationResponse(nil, q, 40)
	assert.Equal(t, 4, resp.Pagination.TotalPages)

	resp = dto.NewPaginationResponse(nil, q, 0)
	assert.Equal(t, 0, resp.Pagination.TotalPages)
}
