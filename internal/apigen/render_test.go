package apigen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belay-dotnet/docbuild/internal/config"
	"github.com/belay-dotnet/docbuild/internal/xmldoc"
)

func TestMethodDisplayName(t *testing.T) {
	cases := []struct {
		name      string
		qualified string
		want      string
	}{
		{
			name:      "plain method with parameters",
			qualified: "Belay.Core.Device.ConnectAsync(System.String)",
			want:      "ConnectAsync(System.String)",
		},
		{
			name:      "single generic parameter",
			qualified: "Belay.Core.Device.ExecuteAsync``1(System.String)",
			want:      "ExecuteAsync&lt;T&gt;(System.String)",
		},
		{
			name:      "two generic parameters",
			qualified: "Belay.Core.Util.Convert``2(``0)",
			want:      "Convert&lt;T1,T2&gt;(``0)",
		},
		{
			name:      "explicit interface implementation",
			qualified: "Belay.Core.Device.System#IDisposable#Dispose",
			want:      "Dispose",
		},
		{
			name:      "no parameter list",
			qualified: "Belay.Core.Device.StartAsync",
			want:      "StartAsync",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MethodDisplayName(tc.qualified))
		})
	}
}

func TestShortDisplayName(t *testing.T) {
	assert.Equal(t, "IsConnected", ShortDisplayName("Belay.Core.Device.IsConnected"))
	assert.Equal(t, "Item", ShortDisplayName("Belay.Core.Registry.Item"))
}

func TestExpandGenericMarker(t *testing.T) {
	assert.Equal(t, "Run<T>", expandGenericMarker("Run``1"))
	assert.Equal(t, "Run<T1,T2,T3>", expandGenericMarker("Run``3"))
	assert.Equal(t, "Run", expandGenericMarker("Run"))
	// malformed arity stays untouched
	assert.Equal(t, "Run``x", expandGenericMarker("Run``x"))
}

func TestAnchorID(t *testing.T) {
	assert.Equal(t, "belaycoredevice", AnchorID("Belay.Core.Device"))
	assert.Equal(t, "belaycorelist1", AnchorID("Belay.Core.List`1"))
	assert.Equal(t, "resultt", AnchorID("Result<T>"))
}

func TestCapExamples(t *testing.T) {
	example := "Intro\n```csharp\nvar d = new Device();\n```\nmore\n```csharp\nawait d.StartAsync();\n```\ntail"

	capped := capExamples(example, 1)
	assert.Equal(t, 1, strings.Count(capped, "var d"))
	assert.NotContains(t, capped, "StartAsync")
	// fences stay balanced
	assert.Equal(t, 0, strings.Count(capped, "```")%2)

	assert.Equal(t, example, capExamples(example, 2))
	assert.Equal(t, example, capExamples(example, 0))
}

func testAssemblyDoc() *xmldoc.AssemblyDoc {
	return xmldoc.Aggregate(&xmldoc.Assembly{
		Name: "Belay.Core",
		Members: []xmldoc.Member{
			{Kind: xmldoc.KindType, Name: "Belay.Core.Device",
				Summary: "Main device connection and communication entry point.",
				Remarks: "Instances are not safe for concurrent use.",
				Example: "```csharp\nvar d = new Device();\n```"},
			{Kind: xmldoc.KindType, Name: "Belay.Core.Sessions.SessionManager",
				Summary: "Tracks execution sessions per device."},
			{Kind: xmldoc.KindMethod, Name: "Belay.Core.Device.ConnectAsync(System.String)",
				Summary: "Opens a connection on the given port.",
				Params:  []xmldoc.Param{{Name: "port", Description: "Serial port identifier."}},
				Returns: "A task that completes once connected."},
			{Kind: xmldoc.KindMethod, Name: "Belay.Core.Device.StartAsync",
				Summary: "Initializes device communication."},
			{Kind: xmldoc.KindProperty, Name: "Belay.Core.Device.IsConnected",
				Summary: "Whether the connection is currently open."},
			{Kind: xmldoc.KindField, Name: "Belay.Core.Device.DefaultTimeout",
				Summary: "Default command timeout in milliseconds."},
		},
	})
}

func TestRenderAssembly(t *testing.T) {
	doc := testAssemblyDoc()
	limits := config.Default().Limits
	page := renderAssembly(doc, limits)

	assert.Contains(t, page, "# Belay.Core API Reference")
	assert.Contains(t, page, "2 types documented")
	assert.Contains(t, page, "## Belay.Core.Device")
	assert.Contains(t, page, "#### ConnectAsync(System.String)")
	assert.Contains(t, page, "- `port`: Serial port identifier.")
	assert.Contains(t, page, "**Returns:** A task that completes once connected.")
	assert.Contains(t, page, "#### IsConnected")
	assert.Contains(t, page, "#### DefaultTimeout")
	assert.Contains(t, page, "### Remarks")
	assert.Contains(t, page, "### Examples")
}

func TestRenderAssemblyHonorsLimits(t *testing.T) {
	doc := testAssemblyDoc()
	page := renderAssembly(doc, config.LimitsConfig{MaxTypes: 1, MaxMembers: 1, MaxExamples: 1})

	assert.Contains(t, page, "## Belay.Core.Device")
	assert.NotContains(t, page, "SessionManager")
	// one method kept out of two, sorted by short name
	assert.Contains(t, page, "#### ConnectAsync(System.String)")
	assert.NotContains(t, page, "StartAsync")
}

func TestRenderIndex(t *testing.T) {
	page := RenderIndex([]string{"Belay.Sync", "Belay.Core"})
	require.Contains(t, page, "# API Reference")
	assert.Contains(t, page, "[Belay.Core](./generated/Belay.Core/README.md)")
	assert.Contains(t, page, "[Belay.Sync](./generated/Belay.Sync/README.md)")
	assert.Less(t, strings.Index(page, "Belay.Core"), strings.Index(page, "Belay.Sync"))
	assert.Contains(t, page, "## Quick Reference")

	empty := RenderIndex(nil)
	assert.Contains(t, empty, "API documentation will be available")
}

func TestRenderVersionedIndex(t *testing.T) {
	page := RenderVersionedIndex([]string{"Belay.Core"}, "v0.3.0", 3)
	assert.Contains(t, page, "::: tip Current Version")
	assert.Contains(t, page, "**v0.3.0**")
	assert.Contains(t, page, "[View other versions →](/api/versions)")

	single := RenderVersionedIndex([]string{"Belay.Core"}, "main", 1)
	assert.NotContains(t, single, "View other versions")
}
