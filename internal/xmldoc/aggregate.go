package xmldoc

import "sort"

// TypeDoc is one documented type plus the members attributed to it.
type TypeDoc struct {
	Member
	Methods    []Member
	Properties []Member
	Fields     []Member
}

// AssemblyDoc is the aggregated, render-ready view of one assembly.
type AssemblyDoc struct {
	Name       string
	Types      map[string]*TypeDoc
	TypeOrder  []string            // fully-qualified names in source order
	Namespaces map[string][]string // namespace -> fully-qualified type names
}

// Aggregate groups an assembly's members by declaring type and namespace.
//
// Two passes: the first collects every type and buckets it into its derived
// namespace; the second attaches methods, properties and fields to the type
// whose fully-qualified name matches their owner prefix. Members whose prefix
// matches no known type are dropped silently; each member attaches to at most
// one type.
func Aggregate(a *Assembly) *AssemblyDoc {
	doc := &AssemblyDoc{
		Name:       a.Name,
		Types:      make(map[string]*TypeDoc),
		Namespaces: make(map[string][]string),
	}

	for i := range a.Members {
		m := &a.Members[i]
		if m.Kind != KindType {
			continue
		}
		if _, exists := doc.Types[m.Name]; exists {
			continue
		}
		doc.Types[m.Name] = &TypeDoc{Member: *m}
		doc.TypeOrder = append(doc.TypeOrder, m.Name)
		ns := Namespace(m.Name, a.Name)
		doc.Namespaces[ns] = append(doc.Namespaces[ns], m.Name)
	}

	for i := range a.Members {
		m := &a.Members[i]
		if m.Kind == KindType {
			continue
		}
		owner := SplitMemberName(m.Name).Owner
		td, ok := doc.Types[owner]
		if !ok {
			continue
		}
		switch m.Kind {
		case KindMethod:
			td.Methods = append(td.Methods, *m)
		case KindProperty:
			td.Properties = append(td.Properties, *m)
		case KindField:
			td.Fields = append(td.Fields, *m)
		}
	}

	return doc
}

// SortedByShortName returns the members ordered lexically by their short,
// unqualified name. Collection order is the XML document order; rendering
// always re-sorts so output is stable across compiler reorderings.
func SortedByShortName(members []Member) []Member {
	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return SplitMemberName(sorted[i].Name).Short < SplitMemberName(sorted[j].Name).Short
	})
	return sorted
}

// SortedNamespaces returns the namespace names in lexical order.
func (d *AssemblyDoc) SortedNamespaces() []string {
	names := make([]string, 0, len(d.Namespaces))
	for ns := range d.Namespaces {
		names = append(names, ns)
	}
	sort.Strings(names)
	return names
}

// SortedTypes returns the fully-qualified type names of a namespace in
// lexical order of their short names.
func (d *AssemblyDoc) SortedTypes(namespace string) []string {
	types := make([]string, len(d.Namespaces[namespace]))
	copy(types, d.Namespaces[namespace])
	sort.Slice(types, func(i, j int) bool {
		si, sj := ShortTypeName(types[i]), ShortTypeName(types[j])
		if si != sj {
			return si < sj
		}
		return types[i] < types[j]
	})
	return types
}
