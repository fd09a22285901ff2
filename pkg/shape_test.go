package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveScalars(t *testing.T) {
	r := NewResolver(testShapes())

	cases := []struct {
		name string
		kind ShapeKind
	}{
		{"BucketName", KindString},
		{"MaxKeys", KindInt},
		{"ContentSize", KindInt},
		{"CreatedAt", KindTimestamp},
		{"Payload", KindBlob},
		{"DryRun", KindBool},
	}
	for _, tc := range cases {
		got := r.Resolve(tc.name)
		assert.Equal(t, tc.kind, got.Kind, "Resolve(%s)", tc.name)
		assert.False(t, got.SelfRef)
	}
}

func TestResolveEnum(t *testing.T) {
	r := NewResolver(testShapes())

	got := r.Resolve("StorageClass")
	require.Equal(t, KindEnum, got.Kind)
	assert.Equal(t, []string{"STANDARD", "GLACIER", "DEEP_ARCHIVE"}, got.EnumValues)
}

func TestResolveStructureMemberOrder(t *testing.T) {
	r := NewResolver(testShapes())

	got := r.Resolve("CreateBucketRequest")
	require.Equal(t, KindStructure, got.Kind)
	require.Len(t, got.Members, 4)

	names := make([]string, 0, len(got.Members))
	for _, m := range got.Members {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Bucket", "StorageClass", "DryRun", "GrantRead"}, names)

	assert.True(t, got.Members[0].Required)
	assert.False(t, got.Members[1].Required)
	assert.Equal(t, "The name of the bucket to create.", got.Members[0].Documentation)
	assert.True(t, got.Members[3].Deprecated)
}

func TestResolveListAndMap(t *testing.T) {
	r := NewResolver(testShapes())

	list := r.Resolve("BucketList")
	require.Equal(t, KindList, list.Kind)
	require.NotNil(t, list.Member)
	assert.Equal(t, KindStructure, list.Member.Kind)

	m := r.Resolve("Metadata")
	require.Equal(t, KindMap, m.Kind)
	require.NotNil(t, m.Key)
	require.NotNil(t, m.Value)
	assert.Equal(t, KindString, m.Key.Kind)
	assert.Equal(t, KindString, m.Value.Kind)
}

func TestResolveDirectSelfReference(t *testing.T) {
	r := NewResolver(testShapes())

	got := r.Resolve("TreeNode")
	require.Equal(t, KindStructure, got.Kind)
	require.Len(t, got.Members, 2)

	parent := got.Members[1].Shape
	require.NotNil(t, parent)
	assert.Equal(t, KindAny, parent.Kind)
	assert.True(t, parent.SelfRef)
}

func TestResolveMutualCycle(t *testing.T) {
	shapes := map[string]*RawShape{
		"A": {Type: "structure", Members: MemberList{{Name: "B", Ref: ShapeRef{Shape: "B"}}}},
		"B": {Type: "structure", Members: MemberList{{Name: "C", Ref: ShapeRef{Shape: "C"}}}},
		"C": {Type: "structure", Members: MemberList{{Name: "A", Ref: ShapeRef{Shape: "A"}}}},
	}
	r := NewResolver(shapes)

	got := r.Resolve("A")
	require.Equal(t, KindStructure, got.Kind)

	b := got.Members[0].Shape
	require.Equal(t, KindStructure, b.Kind)
	c := b.Members[0].Shape
	require.Equal(t, KindStructure, c.Kind)

	back := c.Members[0].Shape
	assert.Equal(t, KindAny, back.Kind)
	assert.True(t, back.SelfRef)
}

func TestResolveSiblingsAreNotCycles(t *testing.T) {
	// the same shape referenced twice at the same level is not a cycle
	shapes := map[string]*RawShape{
		"Leaf": {Type: "string"},
		"Pair": {Type: "structure", Members: MemberList{
			{Name: "Left", Ref: ShapeRef{Shape: "Leaf"}},
			{Name: "Right", Ref: ShapeRef{Shape: "Leaf"}},
		}},
	}
	r := NewResolver(shapes)

	got := r.Resolve("Pair")
	require.Len(t, got.Members, 2)
	assert.Equal(t, KindString, got.Members[0].Shape.Kind)
	assert.Equal(t, KindString, got.Members[1].Shape.Kind)
}

func TestResolveMissingAndMalformed(t *testing.T) {
	r := NewResolver(map[string]*RawShape{
		"Untyped": {},
		"Weird":   {Type: "fancy"},
	})

	missing := r.Resolve("DoesNotExist")
	assert.Equal(t, KindAny, missing.Kind)
	assert.NotEmpty(t, missing.Note)

	untyped := r.Resolve("Untyped")
	assert.Equal(t, KindAny, untyped.Kind)

	weird := r.Resolve("Weird")
	assert.Equal(t, KindAny, weird.Kind)

	empty := r.Resolve("")
	assert.Equal(t, KindAny, empty.Kind)
}

func TestResolveUnion(t *testing.T) {
	r := NewResolver(testShapes())

	got := r.Resolve("EventSelector")
	assert.Equal(t, KindAny, got.Kind)
	assert.True(t, got.Union)
	assert.Empty(t, got.Members)
}

func TestResolveTerminatesOnEveryShape(t *testing.T) {
	shapes := testShapes()
	r := NewResolver(shapes)

	for name := range shapes {
		got := r.Resolve(name)
		require.NotNil(t, got, "Resolve(%s)", name)
	}
}

func TestIsEmptyStructure(t *testing.T) {
	r := NewResolver(map[string]*RawShape{"Empty": {Type: "structure"}})

	assert.True(t, r.Resolve("Empty").IsEmptyStructure())
	assert.False(t, NewResolver(testShapes()).Resolve("Bucket").IsEmptyStructure())

	var nilShape *ResolvedShape
	assert.False(t, nilShape.IsEmptyStructure())
}
