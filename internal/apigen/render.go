package apigen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/belay-dotnet/docbuild/internal/config"
	"github.com/belay-dotnet/docbuild/internal/xmldoc"
)

// displayEscaper escapes characters the site generator would otherwise take
// for templating or markup syntax inside member display names.
var displayEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	"{", "&#123;",
	"}", "&#125;",
)

// MethodDisplayName renders a qualified method name for headings: owning-type
// prefix and interface qualification stripped, the arity-encoded generic
// marker substituted with a readable parameter list, the literal parameter
// suffix kept, and markup-sensitive characters escaped.
func MethodDisplayName(qualified string) string {
	n := xmldoc.SplitMemberName(qualified)
	return displayEscaper.Replace(expandGenericMarker(n.Short) + n.Params)
}

// ShortDisplayName renders a property or field heading from its qualified name.
func ShortDisplayName(qualified string) string {
	return displayEscaper.Replace(xmldoc.SplitMemberName(qualified).Short)
}

// expandGenericMarker rewrites the ``N arity suffix: one generic parameter
// renders as <T>, higher arities as <T1,..,TN>.
func expandGenericMarker(short string) string {
	i := strings.Index(short, "``")
	if i < 0 {
		return short
	}
	arity, err := strconv.Atoi(short[i+2:])
	if err != nil || arity < 1 {
		return short
	}
	if arity == 1 {
		return short[:i] + "<T>"
	}
	params := make([]string, arity)
	for k := range params {
		params[k] = fmt.Sprintf("T%d", k+1)
	}
	return short[:i] + "<" + strings.Join(params, ",") + ">"
}

// renderAssembly produces the single-version Markdown reference page for one
// assembly, bounded by the configured limits.
func renderAssembly(doc *xmldoc.AssemblyDoc, limits config.LimitsConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s API Reference\n\n", doc.Name)
	b.WriteString("Comprehensive API documentation generated from XML comments.\n\n")
	fmt.Fprintf(&b, "## Overview\n\n%d types documented in this assembly.\n\n", len(doc.Types))

	typeNames := doc.TypeOrder
	if limits.MaxTypes > 0 && len(typeNames) > limits.MaxTypes {
		typeNames = typeNames[:limits.MaxTypes]
	}

	for _, name := range typeNames {
		td := doc.Types[name]
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", name, td.Summary)
		if td.Remarks != "" {
			fmt.Fprintf(&b, "### Remarks\n\n%s\n\n", td.Remarks)
		}

		if methods := capMembers(xmldoc.SortedByShortName(td.Methods), limits.MaxMembers); len(methods) > 0 {
			b.WriteString("### Methods\n\n")
			for _, m := range methods {
				fmt.Fprintf(&b, "#### %s\n\n%s\n\n", MethodDisplayName(m.Name), m.Summary)
				if len(m.Params) > 0 {
					b.WriteString("**Parameters:**\n\n")
					for _, p := range m.Params {
						fmt.Fprintf(&b, "- `%s`: %s\n", p.Name, p.Description)
					}
					b.WriteString("\n")
				}
				if m.Returns != "" {
					fmt.Fprintf(&b, "**Returns:** %s\n\n", m.Returns)
				}
			}
		}

		if props := capMembers(xmldoc.SortedByShortName(td.Properties), limits.MaxMembers); len(props) > 0 {
			b.WriteString("### Properties\n\n")
			for _, p := range props {
				fmt.Fprintf(&b, "#### %s\n\n%s\n\n", ShortDisplayName(p.Name), p.Summary)
			}
		}

		if fields := capMembers(xmldoc.SortedByShortName(td.Fields), limits.MaxMembers); len(fields) > 0 {
			b.WriteString("### Fields\n\n")
			for _, f := range fields {
				fmt.Fprintf(&b, "#### %s\n\n%s\n\n", ShortDisplayName(f.Name), f.Summary)
			}
		}

		if td.Example != "" {
			fmt.Fprintf(&b, "### Examples\n\n%s\n\n", capExamples(td.Example, limits.MaxExamples))
		}

		b.WriteString("---\n\n")
	}

	return b.String()
}

func capMembers(members []xmldoc.Member, max int) []xmldoc.Member {
	if max > 0 && len(members) > max {
		return members[:max]
	}
	return members
}

// capExamples keeps the prose of an example but at most max fenced code
// blocks, bounding the page size of heavily-illustrated types.
func capExamples(example string, max int) string {
	if max <= 0 {
		return example
	}
	parts := strings.Split(example, "```")
	// parts alternate prose / fence body; fence i occupies parts[2i+1].
	fences := (len(parts) - 1) / 2
	if fences <= max {
		return example
	}
	return strings.TrimRight(strings.Join(parts[:2*max+1], "```"), " \n")
}
