package apigen

import (
	"fmt"
	"strings"

	"github.com/belay-dotnet/docbuild/internal/markdown"
	"github.com/belay-dotnet/docbuild/internal/xmldoc"
)

// RenderVersionedAssembly produces the multi-version reference page for one
// assembly: a version-info callout, a namespace table of contents with slug
// anchors, then full per-type documentation organized by namespace. Unlike
// the single-version page it has no type or member caps.
func RenderVersionedAssembly(doc *xmldoc.AssemblyDoc, version string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s API Reference (%s)\n\n", doc.Name, version)
	b.WriteString("Comprehensive API documentation generated from XML documentation comments.\n\n")
	b.WriteString("::: info Version Information\n")
	fmt.Fprintf(&b, "This documentation is for **%s %s**.\n", doc.Name, version)
	b.WriteString("For the latest version, see the [current API documentation](/api/).\n")
	b.WriteString(":::\n\n")

	b.WriteString("## Table of Contents\n\n")
	for _, ns := range doc.SortedNamespaces() {
		fmt.Fprintf(&b, "### %s\n\n", ns)
		for _, typeName := range doc.SortedTypes(ns) {
			fmt.Fprintf(&b, "- [%s](#%s)\n", xmldoc.ShortTypeName(typeName), AnchorID(typeName))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n---\n\n")

	for _, ns := range doc.SortedNamespaces() {
		fmt.Fprintf(&b, "## %s\n\n", ns)
		for _, typeName := range doc.SortedTypes(ns) {
			renderVersionedType(&b, doc.Types[typeName])
		}
	}

	return b.String()
}

func renderVersionedType(b *strings.Builder, td *xmldoc.TypeDoc) {
	fmt.Fprintf(b, "### %s {#%s}\n\n", td.Name, AnchorID(td.Name))
	if td.Summary != "" {
		fmt.Fprintf(b, "%s\n\n", td.Summary)
	}
	if td.Remarks != "" {
		fmt.Fprintf(b, "**Remarks**: %s\n\n", td.Remarks)
	}
	if td.Example != "" {
		fmt.Fprintf(b, "**Example**:\n%s\n\n", td.Example)
	}

	if len(td.Properties) > 0 {
		b.WriteString("#### Properties\n\n")
		for _, p := range xmldoc.SortedByShortName(td.Properties) {
			fmt.Fprintf(b, "**%s**\n\n", ShortDisplayName(p.Name))
			if p.Summary != "" {
				fmt.Fprintf(b, "%s\n\n", p.Summary)
			}
			if p.Remarks != "" {
				fmt.Fprintf(b, "*Remarks*: %s\n\n", p.Remarks)
			}
		}
	}

	if len(td.Methods) > 0 {
		b.WriteString("#### Methods\n\n")
		for _, m := range xmldoc.SortedByShortName(td.Methods) {
			fmt.Fprintf(b, "**%s**\n\n", MethodDisplayName(m.Name))
			if m.Summary != "" {
				fmt.Fprintf(b, "%s\n\n", m.Summary)
			}
			if len(m.Params) > 0 {
				b.WriteString("*Parameters*:\n")
				for _, p := range m.Params {
					fmt.Fprintf(b, "- `%s`: %s\n", p.Name, p.Description)
				}
				b.WriteString("\n")
			}
			if m.Returns != "" {
				fmt.Fprintf(b, "*Returns*: %s\n\n", m.Returns)
			}
			if len(m.Exceptions) > 0 {
				b.WriteString("*Exceptions*:\n")
				for _, e := range m.Exceptions {
					fmt.Fprintf(b, "- `%s`: %s\n", e.Type, e.Description)
				}
				b.WriteString("\n")
			}
			if m.Remarks != "" {
				fmt.Fprintf(b, "*Remarks*: %s\n\n", m.Remarks)
			}
			if m.Example != "" {
				fmt.Fprintf(b, "*Example*:\n%s\n\n", m.Example)
			}
		}
	}

	if len(td.Fields) > 0 {
		b.WriteString("#### Fields\n\n")
		for _, f := range xmldoc.SortedByShortName(td.Fields) {
			fmt.Fprintf(b, "**%s**\n\n", ShortDisplayName(f.Name))
			if f.Summary != "" {
				fmt.Fprintf(b, "%s\n\n", f.Summary)
			}
		}
	}

	b.WriteString("---\n\n")
}

// DanglingAnchors checks a rendered page's local links against its heading
// anchors and returns the targets that resolve to nothing. TOC entries and
// heading slugs are generated by different code paths; this catches drift.
func DanglingAnchors(page string) []string {
	body := []byte(page)
	anchors := make(map[string]struct{})
	for _, h := range markdown.ExtractHeadings(body) {
		anchors[h.Anchor] = struct{}{}
	}

	var dangling []string
	for _, l := range markdown.ExtractLinks(body) {
		target, ok := strings.CutPrefix(l.Destination, "#")
		if !ok {
			continue
		}
		if _, found := anchors[target]; !found {
			dangling = append(dangling, target)
		}
	}
	return dangling
}

// RenderVersionsIndex produces the version selector page listing every known
// version with the current one linked to the default path.
func RenderVersionsIndex(versions []string, currentVersion string) string {
	var b strings.Builder
	b.WriteString("# API Documentation Versions\n\n")
	b.WriteString("Browse API documentation for different versions of Belay.NET.\n\n")
	b.WriteString("## Available Versions\n\n")

	for _, v := range versions {
		if v == currentVersion {
			fmt.Fprintf(&b, "- **[%s](/api/)** - Current version\n", v)
		} else {
			fmt.Fprintf(&b, "- [%s](/api/versions/%s/) - Released version\n", v, v)
		}
	}

	b.WriteString("\nFor release notes and changelog, see the [GitHub releases page](https://github.com/belay-dotnet/Belay.NET/releases).\n")
	return b.String()
}
