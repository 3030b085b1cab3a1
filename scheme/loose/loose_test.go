package loose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGreaterThan(t *testing.T) {
	t.Parallel()

	s := New()

	tests := []struct {
		a, b string
		want bool
	}{
		{"1.0.10", "1.0.9", true},
		{"1.0.0", "1.0.0", false},
		{"1.2.3.4", "1.2.3", true},
		{"2.0", "1.9.9", true},
		{"1.0.0", "1.0.0-rc1", true},
		{"v1.1.0", "1.0.0", true},
		{"latest", "1.0.0", false},
		{"1.0.0", "latest", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.IsGreaterThan(tt.a, tt.b), "%s > %s", tt.a, tt.b)
	}
}

func TestIsStable(t *testing.T) {
	t.Parallel()

	s := New()

	assert.True(t, s.IsStable("1.2.3"))
	assert.True(t, s.IsStable("1.2.3.4"))
	assert.False(t, s.IsStable("1.2.3-beta1"))
	assert.False(t, s.IsStable("not/a/version"))
}

func TestConstraints(t *testing.T) {
	t.Parallel()

	s := New()

	assert.True(t, s.IsValid(">= 1.0, < 2.0"))
	assert.True(t, s.IsValid("~> 1.2"))
	assert.False(t, s.IsValid("^1.0.0"))
	assert.False(t, s.IsValid("not-a-range!!"))

	assert.True(t, s.Matches("1.5.0", ">= 1.0, < 2.0"))
	assert.False(t, s.Matches("2.0.0", ">= 1.0, < 2.0"))
	assert.True(t, s.Matches("1.5.0", "~> 1.2"))
	assert.False(t, s.Matches("2.0.0", "~> 1.2"))
}

func TestSegments(t *testing.T) {
	t.Parallel()

	s := New()

	assert.Equal(t, 1, s.Major("1.2.3"))
	assert.Equal(t, 2, s.Minor("1.2.3"))
	assert.Equal(t, 3, s.Patch("1.2.3"))

	assert.Equal(t, 0, s.Patch("1.2"))
	assert.Equal(t, 1, s.Major("1.2.3.4"))

	assert.Equal(t, -1, s.Major("latest"))
}
