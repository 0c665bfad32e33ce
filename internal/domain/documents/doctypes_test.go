package documents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryKnown(t *testing.T) {
	reg := NewRegistry(nil)

	assert.True(t, reg.Known("passport"))
	assert.True(t, reg.Known("Bank-Statement"))
	assert.False(t, reg.Known("tax-return"))
}

func TestRegistryMatches(t *testing.T) {
	reg := NewRegistry(nil)

	assert.True(t, reg.Matches("passport", "Passport"))
	assert.True(t, reg.Matches("passport", "travel document"))
	assert.False(t, reg.Matches("passport", "financial-report"))

	// separator folding: classifier hyphens vs keyword spaces
	assert.True(t, reg.Matches("bank-statement", "financial-report"))
	assert.True(t, reg.Matches("degree", "scientific publication"))

	assert.False(t, reg.Matches("passport", ""))
}

func TestRegistryCustomTable(t *testing.T) {
	reg := NewRegistry(map[string][]string{
		"permit": {"work permit", "residence card"},
	})

	assert.True(t, reg.Known("permit"))
	assert.False(t, reg.Known("passport"))
	assert.True(t, reg.Matches("permit", "Work Permit"))
	assert.Equal(t, []string{"permit"}, reg.Types())
}
