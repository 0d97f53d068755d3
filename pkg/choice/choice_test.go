package choice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTernary(t *testing.T) {
	assert.Equal(t, "Searching...", Ternary(true, "Searching...", "Search"))
	assert.Equal(t, "Search", Ternary(false, "Searching...", "Search"))
}

func TestCoalesce(t *testing.T) {
	assert.Equal(t, "a", Coalesce("", "a", "b"))
	assert.Equal(t, "—", Coalesce("", "—"))
	assert.Equal(t, "", Coalesce[string]())
	assert.Equal(t, 3, Coalesce(0, 3))
}
