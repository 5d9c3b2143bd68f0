package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomain(t *testing.T) {
	assert.Equal(t, "acme.com", Domain("https://www.acme.com/about"))
	assert.Equal(t, "acme.com", Domain("http://acme.com"))
	assert.Equal(t, "acme.com", Domain("acme.com/team?x=1"))
	assert.Equal(t, "sub.acme.com", Domain("https://sub.acme.com#anchor"))
}

func TestNewGoogleSearcher_RequiresCredentials(t *testing.T) {
	_, err := NewGoogleSearcher(t.Context(), "", "cx")
	assert.Error(t, err)

	_, err = NewGoogleSearcher(t.Context(), "key", "")
	assert.Error(t, err)
}
