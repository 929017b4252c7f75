package xmldoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAssembly() *Assembly {
	return &Assembly{
		Name: "Belay.Core",
		Members: []Member{
			{Kind: KindType, Name: "Belay.Core.Device", Summary: "Device."},
			{Kind: KindType, Name: "Belay.Core.Sessions.SessionManager", Summary: "Sessions."},
			{Kind: KindType, Name: "Standalone", Summary: "No namespace."},
			{Kind: KindMethod, Name: "Belay.Core.Device.ConnectAsync(System.String)", Summary: "Connect."},
			{Kind: KindMethod, Name: "Belay.Core.Device.ExecuteAsync``1(System.String)", Summary: "Execute."},
			{Kind: KindProperty, Name: "Belay.Core.Device.IsConnected", Summary: "Connected."},
			{Kind: KindField, Name: "Belay.Core.Device.DefaultTimeout", Summary: "Timeout."},
			// Owner prefix matches no known type: dropped from rendering.
			{Kind: KindMethod, Name: "Belay.Core.Unknown.Run", Summary: "Orphan."},
		},
	}
}

func TestAggregate_GroupsMembersByType(t *testing.T) {
	doc := Aggregate(sampleAssembly())

	// Every T: member yields exactly one TypeRecord.
	require.Len(t, doc.Types, 3)
	assert.Equal(t, []string{"Belay.Core.Device", "Belay.Core.Sessions.SessionManager", "Standalone"}, doc.TypeOrder)

	device := doc.Types["Belay.Core.Device"]
	require.NotNil(t, device)
	assert.Len(t, device.Methods, 2)
	assert.Len(t, device.Properties, 1)
	assert.Len(t, device.Fields, 1)
}

func TestAggregate_DropsUnmatchedMembers(t *testing.T) {
	doc := Aggregate(sampleAssembly())
	for _, td := range doc.Types {
		for _, m := range td.Methods {
			assert.NotEqual(t, "Belay.Core.Unknown.Run", m.Name)
		}
	}
}

func TestAggregate_ParenAwareOwnerAttribution(t *testing.T) {
	asm := &Assembly{
		Name: "Ns",
		Members: []Member{
			{Kind: KindType, Name: "Ns.Type"},
			{Kind: KindMethod, Name: "Ns.Type.Method(Ns.Other,System.Int32)"},
		},
	}
	doc := Aggregate(asm)
	require.NotNil(t, doc.Types["Ns.Type"])
	require.Len(t, doc.Types["Ns.Type"].Methods, 1)
}

func TestAggregate_NamespaceBuckets(t *testing.T) {
	doc := Aggregate(sampleAssembly())

	assert.ElementsMatch(t, []string{"Belay.Core.Sessions.SessionManager"}, doc.Namespaces["Belay.Core.Sessions"])
	// Dotless type names bucket under the assembly name.
	assert.ElementsMatch(t, []string{"Belay.Core.Device", "Standalone"}, doc.Namespaces["Belay.Core"])
}

func TestSortedByShortName(t *testing.T) {
	members := []Member{
		{Kind: KindMethod, Name: "Ns.T.Zeta()"},
		{Kind: KindMethod, Name: "Ns.T.Alpha(System.Int32)"},
		{Kind: KindMethod, Name: "Ns.T.Mid"},
	}
	sorted := SortedByShortName(members)
	assert.Equal(t, "Ns.T.Alpha(System.Int32)", sorted[0].Name)
	assert.Equal(t, "Ns.T.Mid", sorted[1].Name)
	assert.Equal(t, "Ns.T.Zeta()", sorted[2].Name)
	// Input order is untouched.
	assert.Equal(t, "Ns.T.Zeta()", members[0].Name)
}

func TestSortedNamespacesAndTypes(t *testing.T) {
	doc := Aggregate(sampleAssembly())
	namespaces := doc.SortedNamespaces()
	assert.Equal(t, []string{"Belay.Core", "Belay.Core.Sessions"}, namespaces)

	types := doc.SortedTypes("Belay.Core")
	assert.Equal(t, []string{"Belay.Core.Device", "Standalone"}, types)
}
