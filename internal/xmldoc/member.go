// Package xmldoc parses .NET documentation-comment XML exports into a model
// suitable for Markdown rendering.
package xmldoc

import "strings"

// Kind classifies a documentation member.
type Kind int

const (
	KindType Kind = iota
	KindMethod
	KindProperty
	KindField
)

// String returns the human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindMethod:
		return "method"
	case KindProperty:
		return "property"
	case KindField:
		return "field"
	default:
		return "unknown"
	}
}

// Param is one documented method parameter.
type Param struct {
	Name        string
	Description string
}

// Exception is one documented thrown exception.
type Exception struct {
	Type        string
	Description string
}

// Member is one documentation entry. Constructed once per XML member element
// and never mutated afterwards.
type Member struct {
	Kind       Kind
	Name       string // qualified name with the two-character ref prefix stripped
	Summary    string
	Remarks    string
	Example    string
	Params     []Param
	Returns    string
	Exceptions []Exception

	// rawSummaryLen is the trimmed length of the summary as found in the XML,
	// before cleaning and before the missing-summary placeholder is applied.
	// The quality check must not count the placeholder as documentation.
	rawSummaryLen int
}

// SubstantiallyDocumented reports whether the member carries a summary longer
// than minLen characters.
func (m *Member) SubstantiallyDocumented(minLen int) bool {
	return m.rawSummaryLen > minLen
}

// ParseRef parses a member name attribute of the form "<K>:<QualifiedName>".
// Unrecognized prefixes (events, namespaces, error entries) return ok=false;
// they are a known input-quality issue, not a parse failure.
func ParseRef(ref string) (kind Kind, qualified string, ok bool) {
	if len(ref) < 3 || ref[1] != ':' {
		return 0, "", false
	}
	switch ref[0] {
	case 'T':
		kind = KindType
	case 'M':
		kind = KindMethod
	case 'P':
		kind = KindProperty
	case 'F':
		kind = KindField
	default:
		return 0, "", false
	}
	return kind, ref[2:], true
}

// MemberName is a qualified member name split into its structural parts.
type MemberName struct {
	Owner  string // fully-qualified owning type ("" when the name has no owner)
	Short  string // unqualified member name, interface qualification stripped
	Params string // literal parameter-list suffix including parens, or ""
}

// SplitMemberName splits a qualified method/property/field name.
//
// The owning type is everything before the last dot that precedes the opening
// parenthesis: a rightmost-dot split over the whole string misattributes
// methods whose parameter lists contain dotted type names. Explicit interface
// implementations carry a '#' separator; the owner is everything before it.
func SplitMemberName(qualified string) MemberName {
	base := qualified
	params := ""
	if i := strings.IndexByte(qualified, '('); i >= 0 {
		base = qualified[:i]
		params = qualified[i:]
	}

	if i := strings.IndexByte(base, '#'); i >= 0 {
		short := base
		if j := strings.LastIndexByte(base, '#'); j >= 0 {
			short = base[j+1:]
		}
		return MemberName{Owner: base[:i], Short: short, Params: params}
	}

	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return MemberName{Short: base, Params: params}
	}
	return MemberName{Owner: base[:i], Short: base[i+1:], Params: params}
}

// Namespace derives the namespace of a fully-qualified type name. Type names
// without a dot fall back to the assembly name.
func Namespace(typeName, assemblyName string) string {
	i := strings.LastIndexByte(typeName, '.')
	if i < 0 {
		return assemblyName
	}
	return typeName[:i]
}

// ShortTypeName returns the last dot-separated segment of a type name.
func ShortTypeName(typeName string) string {
	i := strings.LastIndexByte(typeName, '.')
	if i < 0 {
		return typeName
	}
	return typeName[i+1:]
}
