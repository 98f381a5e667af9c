package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedIDs_ReturnsInOrder(t *testing.T) {
	gen := NewFixedIDs("mailer-1", "auditor-1")

	assert.Equal(t, "mailer-1", gen.Generate())
	assert.Equal(t, "auditor-1", gen.Generate())
}

func TestFixedIDs_PanicsWhenExhausted(t *testing.T) {
	gen := NewFixedIDs("only-1")
	gen.Generate()

	assert.Panics(t, func() { gen.Generate() })
}
