package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", page: 0, limit: 0, wantPage: 1, wantLimit: 10},
		{name: "negative page", page: -5, limit: 20, wantPage: 1, wantLimit: 20},
		{name: "limit over cap", page: 2, limit: 500, wantPage: 2, wantLimit: 50},
		{name: "in bounds", page: 3, limit: 8, wantPage: 3, wantLimit: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := ClampPagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(17, 8))
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAuthor, ParseRole("author"))
	assert.Equal(t, RoleReader, ParseRole("reader"))
	assert.Equal(t, RoleReader, ParseRole("admin"))
	assert.Equal(t, RoleReader, ParseRole(""))
}

func TestParseContentType(t *testing.T) {
	assert.Equal(t, ContentMarkdown, ParseContentType("markdown"))
	assert.Equal(t, ContentHTML, ParseContentType("html"))
	assert.Equal(t, ContentHTML, ParseContentType("docx"))
}
