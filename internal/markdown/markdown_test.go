package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractLinks(t *testing.T) {
	body := []byte("# Index\n\n- [Belay.Core](./generated/Belay.Core/README.md)\n- [anchor](#belaycoredevice)\n")
	links := ExtractLinks(body)
	require.Len(t, links, 2)
	assert.Equal(t, "./generated/Belay.Core/README.md", links[0].Destination)
	assert.Equal(t, "#belaycoredevice", links[1].Destination)
}

func TestExtractHeadings_ExplicitAnchor(t *testing.T) {
	body := []byte("### Belay.Core.Device {#belaycoredevice}\n")
	headings := ExtractHeadings(body)
	require.Len(t, headings, 1)
	assert.Equal(t, 3, headings[0].Level)
	assert.Equal(t, "Belay.Core.Device", headings[0].Text)
	assert.Equal(t, "belaycoredevice", headings[0].Anchor)
}

func TestExtractHeadings_DerivedAnchor(t *testing.T) {
	body := []byte("## Table of Contents\n")
	headings := ExtractHeadings(body)
	require.Len(t, headings, 1)
	assert.Equal(t, "table-of-contents", headings[0].Anchor)
}

func TestDeriveAnchor(t *testing.T) {
	assert.Equal(t, "quick-reference", DeriveAnchor("Quick Reference"))
	assert.Equal(t, "belaycore", DeriveAnchor("Belay.Core"))
}
