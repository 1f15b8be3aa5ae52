package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Smart Phones", "smart-phones"},
		{"Home & Kitchen!", "home-kitchen"},
		{"  Laptops  ", "laptops"},
		{"beauty", "beauty"},
		{"Mens---Shoes", "mens-shoes"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Generate(tt.in), "input %q", tt.in)
	}
}
