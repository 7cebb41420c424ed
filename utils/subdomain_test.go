package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubdomain(t *testing.T) {
	assert.Equal(t, "demo", NormalizeSubdomain("  Demo "))
	assert.Equal(t, "my-app", NormalizeSubdomain("MY-APP"))
}

func TestIsValidSubdomain(t *testing.T) {
	valid := []string{"a", "demo", "my-app", "app42", "1site", strings.Repeat("a", 63)}
	for _, s := range valid {
		assert.True(t, IsValidSubdomain(s), s)
	}

	invalid := []string{
		"",
		"-demo",
		"demo-",
		"my_app",
		"Demo",
		"dots.are.out",
		strings.Repeat("a", 64),
	}
	for _, s := range invalid {
		assert.False(t, IsValidSubdomain(s), s)
	}
}
