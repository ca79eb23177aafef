package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImages(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"nil falls back to placeholder", nil, []string{PlaceholderImage}},
		{"blank entries are dropped", []string{"", "  "}, []string{PlaceholderImage}},
		{"relative with slash", []string{"/media/a.jpg"}, []string{"http://api.test/media/a.jpg"}},
		{"relative without slash", []string{"uploads/b.png"}, []string{"http://api.test/uploads/b.png"}},
		{"absolute kept", []string{"https://cdn.example.com/c.webp"}, []string{"https://cdn.example.com/c.webp"}},
		{"protocol relative kept", []string{"//cdn.example.com/d.gif"}, []string{"//cdn.example.com/d.gif"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveImages("http://api.test/", tt.in))
		})
	}
}
