package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin_LoadsAndValidates(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)
	assert.Equal(t, 9, reg.Len())
	require.NoError(t, reg.Validate())
}

func TestBuiltin_DocumentOrder(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	entries := reg.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "bibliographic-fields-list-block", entries[0].Name)
	assert.Equal(t, "address-value-block", entries[len(entries)-1].Name)
}

func TestBuiltin_FirstListItemInheritsListItem(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	e, ok := reg.Lookup("bibliographic-fields-first-list-item")
	require.True(t, ok)
	assert.Equal(t, "bibliographic-fields-list-item", e.InheritsFrom)
	require.NotEmpty(t, e.Description)
	assert.Contains(t, e.Description[0], "sets the space before to 0pt.")

	chain, err := reg.Chain(e.Name)
	require.NoError(t, err)
	require.Len(t, chain, 2)
	assert.Equal(t, "bibliographic-fields-list-item", chain[0].Name)
}

func TestBuiltin_AddressValueBlockPreservesWhitespaceProse(t *testing.T) {
	reg, err := Builtin()
	require.NoError(t, err)

	e, ok := reg.Lookup("address-value-block")
	require.True(t, ok)
	assert.Equal(t, "fo:block", e.FOElement)
	assert.Equal(t, "bibliographic-fields-block", e.InheritsFrom)
	assert.Equal(t, []string{"document/docinfo/address"}, e.DocutilsSources)
	assert.Contains(t, e.Description[0], "whitespace-collapse")
}

func TestBuiltin_EveryEntryComplete(t *testing.T) {
	entries, err := BuiltinEntries()
	require.NoError(t, err)

	for _, e := range entries {
		assert.NotEmpty(t, e.Name)
		assert.NotEmpty(t, e.FOElement, "entry %s", e.Name)
		assert.NotEmpty(t, e.DocutilsSources, "entry %s", e.Name)
		assert.NotEmpty(t, e.Description, "entry %s", e.Name)
	}
}
