package vtscreen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCell(t *testing.T) {
	c := NewCell()
	assert.Equal(t, " ", c.Data)
	assert.Equal(t, DefaultColor, c.Fg)
	assert.Equal(t, DefaultColor, c.Bg)
	assert.False(t, c.Bold)
}

func TestStyledPreservesAttrsChangesData(t *testing.T) {
	c := Cell{Data: " ", Fg: "red", Bold: true}
	styled := c.styled("X")
	assert.Equal(t, "X", styled.Data)
	assert.Equal(t, "red", styled.Fg)
	assert.True(t, styled.Bold)
}
