package render

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/attrdoc/internal/catalog"
)

var updateGolden = flag.Bool("update-golden", false, "Update golden files")

func sampleRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	reg, err := catalog.NewRegistry(
		catalog.Entry{
			Name:            "sample-list-block",
			FOElement:       "fo:list-block",
			DocutilsSources: []string{"document/docinfo"},
			Description:     []string{"Formats the sample list.", "Second paragraph."},
		},
		catalog.Entry{
			Name:            "sample-first-list-item",
			FOElement:       "fo:list-item",
			DocutilsSources: []string{"document/docinfo/author", "document/docinfo/date"},
			InheritsFrom:    "sample-list-block",
			Description:     []string{"Sets the space before to 0pt."},
		},
	)
	require.NoError(t, err)
	return reg
}

func checkGolden(t *testing.T, goldenName string, got []byte) {
	t.Helper()
	goldenPath := filepath.Join("testdata", "golden", goldenName)
	if *updateGolden {
		require.NoError(t, os.MkdirAll(filepath.Dir(goldenPath), 0o750))
		require.NoError(t, os.WriteFile(goldenPath, got, 0o600))
	}
	want, err := os.ReadFile(goldenPath)
	require.NoError(t, err, "golden file missing; run with -update-golden")
	assert.Equal(t, string(want), string(got))
}

func TestRenderer_RegistryRSTGolden(t *testing.T) {
	renderer, err := New(FormatRST)
	require.NoError(t, err)

	out, err := renderer.Registry("Sample Catalog", sampleRegistry(t))
	require.NoError(t, err)
	checkGolden(t, "sample.rst", out)
}

func TestRenderer_RegistryMarkdownGolden(t *testing.T) {
	renderer, err := New(FormatMarkdown)
	require.NoError(t, err)

	out, err := renderer.Registry("Sample Catalog", sampleRegistry(t))
	require.NoError(t, err)
	checkGolden(t, "sample.md", out)
}

func TestRenderer_RegistryIsIdempotent(t *testing.T) {
	reg := sampleRegistry(t)
	for _, format := range []Format{FormatRST, FormatMarkdown} {
		renderer, err := New(format)
		require.NoError(t, err)

		first, err := renderer.Registry("Sample Catalog", reg)
		require.NoError(t, err)
		second, err := renderer.Registry("Sample Catalog", reg)
		require.NoError(t, err)
		assert.Equal(t, first, second, "format %s", format)
	}
}

func TestRenderer_EntryHeaderRST(t *testing.T) {
	renderer, err := New(FormatRST)
	require.NoError(t, err)

	reg := sampleRegistry(t)
	e, ok := reg.Lookup("sample-first-list-item")
	require.True(t, ok)

	block, err := renderer.Entry(e)
	require.NoError(t, err)
	assert.Contains(t, block, "sample-first-list-item\n======================\n")
	assert.Contains(t, block, ":fo: ``fo:list-item``")
	assert.Contains(t, block, ":docutils: document/docinfo/author, document/docinfo/date")
	assert.Contains(t, block, ":inherits: `sample-list-block`_")
	assert.Contains(t, block, "Sets the space before to 0pt.")
}

func TestRenderer_EntryWithoutParentOmitsInherits(t *testing.T) {
	renderer, err := New(FormatRST)
	require.NoError(t, err)

	reg := sampleRegistry(t)
	e, ok := reg.Lookup("sample-list-block")
	require.True(t, ok)

	block, err := renderer.Entry(e)
	require.NoError(t, err)
	assert.NotContains(t, block, ":inherits:")
}

func TestRenderer_BuiltinFirstListItem(t *testing.T) {
	// The canonical example: the first-list-item entry must name its
	// parent and keep the distinguishing space-before text.
	reg, err := catalog.Builtin()
	require.NoError(t, err)

	renderer, err := New(FormatRST)
	require.NoError(t, err)

	e, ok := reg.Lookup("bibliographic-fields-first-list-item")
	require.True(t, ok)

	block, err := renderer.Entry(e)
	require.NoError(t, err)
	assert.Contains(t, block, ":inherits: `bibliographic-fields-list-item`_")
	assert.Contains(t, block, "sets the space before to 0pt.")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: FormatRST},
		{in: "rst", want: FormatRST},
		{in: "reStructuredText", want: FormatRST},
		{in: "markdown", want: FormatMarkdown},
		{in: "MD", want: FormatMarkdown},
		{in: "docx", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			require.Error(t, err, "input %q", tt.in)
			continue
		}
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}
