package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	s, err := ParseSelector("a.nav-link.active#home")
	require.NoError(t, err)
	assert.Equal(t, Selector{Tag: "a", ID: "home", Classes: []string{"nav-link", "active"}}, s)

	s, err = ParseSelector(".brand")
	require.NoError(t, err)
	assert.Equal(t, Selector{Classes: []string{"brand"}}, s)

	s, err = ParseSelector("nav")
	require.NoError(t, err)
	assert.Equal(t, Selector{Tag: "nav"}, s)
}

func TestParseSelectorErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "nav a", "a > b", ".", "a..b", "[href]"} {
		_, err := ParseSelector(in)
		assert.Error(t, err, in)
	}
}

func TestMatches(t *testing.T) {
	a := NewElement("A", "nav-link")
	a.ID = "home"

	assert.True(t, a.Matches(".nav-link"))
	assert.True(t, a.Matches("a.nav-link"))
	assert.True(t, a.Matches("#home"))
	assert.True(t, a.Matches("*"))
	assert.False(t, a.Matches(".brand"))
	assert.False(t, a.Matches("div.nav-link"))
	assert.False(t, a.Matches("nav a"))
	assert.False(t, (*Element)(nil).Matches(".nav-link"))
}
