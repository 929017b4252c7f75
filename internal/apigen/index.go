package apigen

import (
	"fmt"
	"sort"
	"strings"
)

// quickReference is the static block appended to every index page. Content is
// identical regardless of parse results.
const quickReference = `
## Quick Reference

### Core Classes
- **Device** - Main device connection and communication
- **TaskExecutor** - Handles [Task] attribute methods
- **EnhancedExecutor** - Advanced method interception framework
- **DeviceProxy** - Dynamic proxy for transparent method routing

### Attributes
- **TaskAttribute** - Execute methods as tasks with caching and timeout
- **ThreadAttribute** - Background thread execution
- **SetupAttribute** - Device initialization methods
- **TeardownAttribute** - Device cleanup methods

## Usage Examples

For practical examples, see the [Examples](/examples/) section.
`

// RenderIndex produces the global API index listing every generated assembly.
func RenderIndex(assemblies []string) string {
	var b strings.Builder
	b.WriteString("# API Reference\n\n")
	b.WriteString("Comprehensive API documentation automatically generated from XML comments.\n\n")

	if len(assemblies) > 0 {
		b.WriteString("## Generated Documentation\n\n")
		sorted := make([]string, len(assemblies))
		copy(sorted, assemblies)
		sort.Strings(sorted)
		for _, asm := range sorted {
			fmt.Fprintf(&b, "- **[%s](./generated/%s/README.md)** - %s API documentation\n", asm, asm, asm)
		}
	} else {
		b.WriteString("## API Documentation\n\nAPI documentation will be available when XML files are processed.\n")
	}

	b.WriteString(quickReference)
	return b.String()
}

// RenderVersionedIndex produces the global API index with a version selector.
func RenderVersionedIndex(assemblies []string, currentVersion string, versionCount int) string {
	var b strings.Builder
	b.WriteString("# API Reference\n\n")
	b.WriteString("Comprehensive API documentation automatically generated from XML comments in the source code.\n\n")

	b.WriteString("## Version Selector\n\n")
	b.WriteString("::: tip Current Version\n")
	fmt.Fprintf(&b, "You are viewing documentation for **%s**.\n", currentVersion)
	if versionCount > 1 {
		b.WriteString("[View other versions →](/api/versions)\n")
	}
	b.WriteString(":::\n\n")

	b.WriteString("## Generated Documentation\n\n")
	sorted := make([]string, len(assemblies))
	copy(sorted, assemblies)
	sort.Strings(sorted)
	for _, asm := range sorted {
		fmt.Fprintf(&b, "- **[%s](./generated/%s/README.md)** - %s namespace documentation\n", asm, asm, asm)
	}

	b.WriteString(quickReference)
	return b.String()
}
