package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
		{"createdat", "updatedat", 3},
		{"héllo", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distance(tt.a, tt.b))
			assert.Equal(t, tt.expected, Distance(tt.b, tt.a))
		})
	}
}

func TestClosest(t *testing.T) {
	names := []string{"name", "hire_date", "position", "int_a"}

	got, ok := Closest("HireDat", names)
	assert.True(t, ok)
	assert.Equal(t, "hire_date", got)

	got, ok = Closest("nmae", names)
	assert.True(t, ok)
	assert.Equal(t, "name", got)

	_, ok = Closest("salary", names)
	assert.False(t, ok)

	_, ok = Closest("x", nil)
	assert.False(t, ok)
}
