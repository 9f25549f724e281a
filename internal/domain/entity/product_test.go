package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories() {
		assert.True(t, c.Valid(), string(c))
	}

	assert.False(t, Category("Toys").Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("electronics").Valid(), "category matching is case-sensitive")
}

func TestProduct_InStock(t *testing.T) {
	assert.True(t, (&Product{Stock: 1}).InStock())
	assert.False(t, (&Product{Stock: 0}).InStock())
}

func TestClampedStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		quantity int
		want     int
	}{
		{"plenty left", 10, 3, 7},
		{"exactly zero", 5, 5, 0},
		{"over-decrement clamps", 2, 5, 0},
		{"zero quantity", 4, 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampedStock(tt.stock, tt.quantity))
		})
	}
}
