package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelToSnake(t *testing.T) {
	cases := map[string]string{
		"Title":       "title",
		"ReleaseDate": "release_date",
		"PageSize":    "page_size",
		"ID":          "id",
		"CategoryID":  "category_id",
		"HTTPServer":  "http_server",
	}
	for in, want := range cases {
		assert.Equal(t, want, CamelToSnake(in), "input %q", in)
	}
}
