package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidInput(t *testing.T) {
	assert.True(t, IsValidInput("alice", 3))
	assert.False(t, IsValidInput("al", 3))
	assert.False(t, IsValidInput("   ", 3))
	assert.False(t, IsValidInput("", 1))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("a.b+c@sub.example.co"))
	assert.False(t, IsValidEmail("alice"))
	assert.False(t, IsValidEmail("alice@"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestNormalizeOption(t *testing.T) {
	assert.Equal(t, "A", NormalizeOption(" a "))
	assert.Equal(t, "D", NormalizeOption("d"))
	assert.Equal(t, "", NormalizeOption("  "))
}

func TestIsValidOption(t *testing.T) {
	for _, opt := range []string{"A", "b", " C ", "d"} {
		assert.True(t, IsValidOption(opt), opt)
	}
	for _, opt := range []string{"", "E", "AB", "1"} {
		assert.False(t, IsValidOption(opt), opt)
	}
}
