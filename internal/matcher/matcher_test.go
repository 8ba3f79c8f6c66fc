package matcher

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seitarof/gen-wrapper/internal/harness"
	"github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/pkg/container"
	"github.com/seitarof/gen-wrapper/pkg/protocol"
	"github.com/seitarof/gen-wrapper/pkg/protocol/catalog"
	"github.com/seitarof/gen-wrapper/pkg/structure"
)

type fakePacket struct {
	count int32
	label string
	ready bool
}

type fakeContainer struct {
	v reflect.Value
}

func newFakeContainer() *fakeContainer {
	return &fakeContainer{v: reflect.New(reflect.TypeFor[fakePacket]()).Elem()}
}

func (f *fakeContainer) All() *structure.Modifier[any] {
	return structure.WithType[any](f.v, reflect.TypeFor[any](), nil)
}

func (f *fakeContainer) Ints() *structure.Modifier[int32] {
	return structure.WithType[int32](f.v, reflect.TypeFor[int32](), nil)
}

func (f *fakeContainer) Labels() *structure.Modifier[string] {
	return structure.WithType[string](f.v, reflect.TypeFor[string](), nil)
}

func (f *fakeContainer) Strings() *structure.Modifier[string] {
	return structure.WithType[string](f.v, reflect.TypeFor[string](), nil)
}

func (f *fakeContainer) Loose() *structure.Modifier[any] {
	return structure.WithMatcher[any](f.v, func(reflect.Type) bool { return true }, nil)
}

func (f *fakeContainer) Broken() *structure.Modifier[bool] {
	panic("broken accessor")
}

func (f *fakeContainer) Lookup(index int) *structure.Modifier[bool] { return nil }

func (f *fakeContainer) Name() string { return "fake" }

func parseFake(t *testing.T) *parser.StructInfo {
	t.Helper()
	info, err := parser.New().Parse(reflect.TypeFor[fakePacket]())
	require.NoError(t, err)
	return info
}

func realContainer(t *testing.T, name string, regs container.Registries) (*parser.StructInfo, *container.PacketContainer) {
	t.Helper()
	pt, ok := catalog.Default().Lookup(name)
	require.True(t, ok, name)
	c, err := container.New(pt, regs)
	require.NoError(t, err)
	info, err := parser.New().Parse(pt.Class)
	require.NoError(t, err)
	return info, c
}

func byField(results []Result) map[string]Result {
	out := make(map[string]Result, len(results))
	for _, r := range results {
		out[r.Field.Name] = r
	}
	return out
}

func TestAccessors_ShapeAndDenylist(t *testing.T) {
	got := Accessors(newFakeContainer(), toSet([]string{"All"}))
	assert.Equal(t, []string{"Broken", "Ints", "Labels", "Loose", "Strings"}, got)
	assert.Nil(t, Accessors(nil, nil))
}

func TestFieldMatcher_Match_ClassifiesFields(t *testing.T) {
	results := NewFieldMatcher(WithDenylist("All")).Match(parseFake(t), newFakeContainer())
	require.Len(t, results, 3)

	count := results[0]
	require.Equal(t, KindUnique, count.Kind)
	c, ok := count.Unique()
	require.True(t, ok)
	assert.Equal(t, "Ints", c.Method)
	assert.Equal(t, 0, c.Index)
	assert.Equal(t, reflect.TypeFor[int32](), c.Type)
	assert.False(t, c.Converted)

	label := results[1]
	assert.Equal(t, KindAmbiguous, label.Kind)
	assert.Equal(t, []string{"Labels", "Strings"}, methods(label.Candidates))
	_, ok = label.Unique()
	assert.False(t, ok)

	assert.Equal(t, KindUnmatched, results[2].Kind)
	assert.Empty(t, results[2].Candidates)
}

func TestFieldMatcher_Match_DefaultDenylistKeepsCatchAll(t *testing.T) {
	results := NewFieldMatcher().Match(parseFake(t), newFakeContainer())

	assert.Equal(t, KindAmbiguous, results[0].Kind)
	assert.Equal(t, []string{"All", "Ints"}, methods(results[0].Candidates))
	assert.Equal(t, KindUnique, results[2].Kind)
	assert.Equal(t, "All", results[2].Candidates[0].Method)
	assert.Equal(t, 2, results[2].Candidates[0].Index)
}

func TestFieldMatcher_Match_IndexFollowsConfirmedFields(t *testing.T) {
	info, c := realContainer(t, "ClientboundSetHealthPacket", nil)
	results := NewFieldMatcher().Match(info, c)

	want := []struct {
		method string
		index  int
	}{
		{"Floats", 0},
		{"Integers", 0},
		{"Floats", 1},
	}
	require.Len(t, results, len(want))
	for i, w := range want {
		cand, ok := results[i].Unique()
		require.True(t, ok, results[i].Field.Name)
		assert.Equal(t, w.method, cand.Method, results[i].Field.Name)
		assert.Equal(t, w.index, cand.Index, results[i].Field.Name)
	}
}

func TestFieldMatcher_Match_LoginPacket(t *testing.T) {
	info, c := realContainer(t, "ClientboundLoginPacket", nil)
	got := byField(NewFieldMatcher().Match(info, c))

	gameType := got["gameType"]
	require.Equal(t, KindAmbiguous, gameType.Kind)
	assert.Equal(t, []string{"Enums", "GameModes"}, methods(gameType.Candidates))

	difficulty, ok := got["difficulty"].Unique()
	require.True(t, ok)
	assert.Equal(t, "Enums", difficulty.Method)
	assert.Equal(t, 2, difficulty.Index)
	assert.Equal(t, reflect.TypeFor[protocol.Enum](), difficulty.Type)

	dimension, ok := got["dimension"].Unique()
	require.True(t, ok)
	assert.Equal(t, "MinecraftKeys", dimension.Method)
	assert.True(t, dimension.Converted)
	assert.Equal(t, reflect.TypeFor[container.MinecraftKey](), dimension.Type)

	assert.Equal(t, KindUnmatched, got["levels"].Kind)

	seed, ok := got["seed"].Unique()
	require.True(t, ok)
	assert.Equal(t, "Longs", seed.Method)
}

func TestFieldMatcher_Match_ItemsNeedEnvironment(t *testing.T) {
	info, bare := realContainer(t, "ClientboundContainerSetSlotPacket", nil)
	assert.Equal(t, KindUnmatched, byField(NewFieldMatcher().Match(info, bare))["itemStack"].Kind)

	env, err := harness.New().Ensure()
	require.NoError(t, err)
	info, c := realContainer(t, "ClientboundContainerSetSlotPacket", env.Registries)
	item, ok := byField(NewFieldMatcher().Match(info, c))["itemStack"].Unique()
	require.True(t, ok)
	assert.Equal(t, "Items", item.Method)
	assert.Equal(t, reflect.TypeFor[container.Material](), item.Type)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unique", KindUnique.String())
	assert.Equal(t, "ambiguous", KindAmbiguous.String())
	assert.Equal(t, "unmatched", KindUnmatched.String())
}
