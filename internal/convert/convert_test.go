package convert

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMarkdown(t *testing.T) {
	input := `<html><head><script>var x;</script></head><body>
<h1>Device Class</h1>
<p>Main <strong>device</strong> connection class using <code>raw REPL</code>.</p>
<h2>Methods</h2>
<ul>
<li><a href="connect.html">ConnectAsync</a> opens the connection</li>
<li>StartAsync initializes communication</li>
</ul>
<pre>var d = new Device();
await d.ConnectAsync("COM3");</pre>
</body></html>`

	md, err := ToMarkdown(strings.NewReader(input))
	require.NoError(t, err)

	assert.Contains(t, md, "# Device Class\n")
	assert.Contains(t, md, "Main **device** connection class using `raw REPL`.")
	assert.Contains(t, md, "## Methods\n")
	assert.Contains(t, md, "- [ConnectAsync](connect.html) opens the connection")
	assert.Contains(t, md, "- StartAsync initializes communication")
	assert.Contains(t, md, "```\nvar d = new Device();\nawait d.ConnectAsync(\"COM3\");\n```")
	assert.NotContains(t, md, "var x;", "script content is dropped")
}

func TestToMarkdownOrderedList(t *testing.T) {
	md, err := ToMarkdown(strings.NewReader("<ol><li>first</li><li>second</li></ol>"))
	require.NoError(t, err)
	assert.Contains(t, md, "1. first\n2. second\n")
}

func TestCleanup(t *testing.T) {
	input := "# Title\n\n\n\nSee [Device](device.html) and [Guide](/guide/).\n" +
		"import { x } from 'vue';\n" +
		"export default config\n\n\n\ntail\n"

	out := Cleanup(input)
	assert.NotContains(t, out, ".html")
	assert.NotContains(t, out, "import {")
	assert.NotContains(t, out, "export default")
	// links reduced to their text
	assert.Contains(t, out, "See Device and Guide.")
	assert.NotContains(t, out, "\n\n\n")
}

func TestTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.WriteFile(filepath.Join(src, "Device.html"),
		[]byte(`<h1>Device</h1><p>See <a href="other.html">Other</a>.</p>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "toc.html"),
		[]byte(`<ul><li>nav</li></ul>`), 0o644))

	res, err := Tree(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Found, "toc.html is skipped")
	assert.Equal(t, 1, res.Converted)
	assert.Zero(t, res.Failed)

	md, err := os.ReadFile(filepath.Join(dst, "Device.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "# Device")
	assert.Contains(t, string(md), "See Other.")

	_, err = os.Stat(filepath.Join(dst, "toc.md"))
	assert.True(t, os.IsNotExist(err))
}
