package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
		wantOffset          int
	}{
		{0, 0, 1, 20, 0},
		{3, 10, 3, 10, 20},
		{-2, 500, 1, 100, 0},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, p.Page)
		assert.Equal(t, tt.wantLimit, p.Limit)
		assert.Equal(t, tt.wantOffset, p.Offset())
	}
}

func TestParsePagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/movies?page=2&limit=abc", nil)

	p := ParsePagination(c)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, DefaultLimit, p.Limit)
}
