package generator

import (
	"bytes"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/seitarof/gen-wrapper/internal/matcher"
	rawparser "github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/internal/resolver"
	"github.com/seitarof/gen-wrapper/pkg/container"
	"github.com/seitarof/gen-wrapper/pkg/protocol"
	"github.com/seitarof/gen-wrapper/pkg/protocol/catalog"
)

const protocolPrefix = "github.com/seitarof/gen-wrapper/pkg/protocol"

func testLayout(dir string) resolver.Layout {
	return resolver.Layout{
		OutDir:         dir,
		WrapperRoot:    wrappersPath,
		ProtocolPrefix: protocolPrefix,
	}
}

func pipelinePlan(tb testing.TB, layout resolver.Layout, name string) *resolver.WrapperPlan {
	tb.Helper()
	pt, ok := catalog.Default().Lookup(name)
	if !ok {
		tb.Fatalf("packet %s missing from catalog", name)
	}
	c, err := container.New(pt, nil)
	if err != nil {
		tb.Fatalf("container.New() error = %v", err)
	}
	info, err := rawparser.New().Parse(pt.Class)
	if err != nil {
		tb.Fatalf("Parse() error = %v", err)
	}
	accessors, err := resolver.New(resolver.DefaultRules()...).Resolve(matcher.NewFieldMatcher().Match(info, c))
	if err != nil {
		tb.Fatalf("Resolve() error = %v", err)
	}
	plan, err := layout.Plan(pt, info, accessors)
	if err != nil {
		tb.Fatalf("Plan() error = %v", err)
	}
	return plan
}

func assertParses(t *testing.T, src []byte) {
	t.Helper()
	if _, err := parser.ParseFile(token.NewFileSet(), "wrapper.go", src, parser.AllErrors); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
}

func TestGenerate_WritesFile(t *testing.T) {
	dir := t.TempDir()
	plan := pipelinePlan(t, testLayout(dir), "ClientboundSetHealthPacket")

	g := New(NewGoimportsFormatter(), NewFileWriter())
	filename, err := g.Generate(plan)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if filename != plan.Destination.Path() {
		t.Fatalf("unexpected filename: %s", filename)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	assertParses(t, b)
	got := string(b)

	for _, want := range []string{
		"// Code generated by gen-wrapper. DO NOT EDIT.",
		"package clientbound",
		`game "github.com/seitarof/gen-wrapper/pkg/protocol/game"`,
		`wrappers "github.com/seitarof/gen-wrapper/pkg/wrappers"`,
		"\twrappers.Base\n",
		"p *game.ClientboundSetHealthPacket",
		"func NewClientboundSetHealthWrapper(c *container.PacketContainer) *ClientboundSetHealthWrapper",
		"func (w *ClientboundSetHealthWrapper) GetHealth() (float32, error)",
		"return w.Container().Floats().Read(0)",
		"func (w *ClientboundSetHealthWrapper) SetFood(value int32) error",
		"return w.Container().Integers().Write(0, value)",
		"return w.Container().Floats().Read(1)",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("generated code missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "TODO") {
		t.Fatalf("fully matched packet should have no markers:\n%s", got)
	}
}

func TestRender_MarkersReplaceAccessors(t *testing.T) {
	plan := pipelinePlan(t, testLayout(t.TempDir()), "ClientboundLoginPacket")

	src, err := New(NewGoimportsFormatter(), NewFileWriter()).Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	assertParses(t, src)
	got := string(src)

	if !strings.Contains(got, "// TODO -- multiple modifiers for gameType") {
		t.Fatalf("ambiguous marker not found:\n%s", got)
	}
	if !strings.Contains(got, "// TODO -- no modifiers for levels") {
		t.Fatalf("unmatched marker not found:\n%s", got)
	}
	if strings.Contains(got, "GetGameType") || strings.Contains(got, "GetLevels") {
		t.Fatalf("marker fields must not get accessors:\n%s", got)
	}
	if !strings.Contains(got, "func (w *ClientboundLoginWrapper) IsHardcore() (bool, error)") {
		t.Fatalf("bool getter not found:\n%s", got)
	}
	if !strings.Contains(got, "GetDifficulty() (protocol.Enum, error)") {
		t.Fatalf("interface bucket getter not found:\n%s", got)
	}
	if !strings.Contains(got, "GetDimension() (container.MinecraftKey, error)") {
		t.Fatalf("converted getter not found:\n%s", got)
	}
}

func TestRender_ClashMarker(t *testing.T) {
	plan := pipelinePlan(t, testLayout(t.TempDir()), "ClientboundSetHealthPacket")
	plan.Accessors = append(plan.Accessors, resolver.AccessorPlan{
		Field:       rawparser.FieldInfo{Name: "health2"},
		Strategy:    resolver.StrategyClash,
		ClashesWith: "health",
	})

	src, err := New(NewGoimportsFormatter(), NewFileWriter()).Render(plan)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	assertParses(t, src)
	got := string(src)
	if !strings.Contains(got, "// TODO -- method names for health2 already used by health") {
		t.Fatalf("clash marker not found:\n%s", got)
	}
	if !strings.Contains(got, "GetSaturation() (float32, error)") {
		t.Fatalf("other accessors must survive a clash:\n%s", got)
	}
}

func TestRender_Idempotent(t *testing.T) {
	layout := testLayout(t.TempDir())
	g := New(NewGoimportsFormatter(), NewFileWriter())

	first, err := g.Render(pipelinePlan(t, layout, "ClientboundAddEntityPacket"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := g.Render(pipelinePlan(t, layout, "ClientboundAddEntityPacket"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("output differs between runs:\n%s\n---\n%s", first, second)
	}
}

type failingWriter struct{}

func (failingWriter) Write(string, []byte) error { return errors.New("disk full") }

func TestGenerate_WriteFailure(t *testing.T) {
	plan := pipelinePlan(t, testLayout(t.TempDir()), "ServerboundHelloPacket")

	_, err := New(NewGoimportsFormatter(), failingWriter{}).Generate(plan)
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRender_RejectsEmptyPlan(t *testing.T) {
	if _, err := New(NewGoimportsFormatter(), NewFileWriter()).Render(&resolver.WrapperPlan{}); err == nil {
		t.Fatal("expected error for empty plan")
	}
}

func TestImportSet_TypeString(t *testing.T) {
	set := newImportSet("example.com/self")
	cases := []struct {
		typ  reflect.Type
		want string
	}{
		{reflect.TypeFor[int32](), "int32"},
		{reflect.TypeFor[[]byte](), "[]byte"},
		{reflect.TypeFor[[]protocol.ResourceLocation](), "[]protocol.ResourceLocation"},
		{reflect.TypeFor[map[protocol.EquipmentSlot]protocol.ItemID](), "map[protocol.EquipmentSlot]protocol.ItemID"},
		{reflect.TypeFor[*container.Vector](), "*container.Vector"},
		{reflect.TypeFor[any](), "any"},
		{reflect.TypeFor[[2]int64](), "[2]int64"},
	}
	for _, tt := range cases {
		if got := set.typeString(tt.typ); got != tt.want {
			t.Fatalf("typeString(%v) = %q, want %q", tt.typ, got, tt.want)
		}
	}

	imports := set.list()
	if len(imports) != 2 || imports[0].Alias != "container" || imports[1].Alias != "protocol" {
		t.Fatalf("unexpected imports: %#v", imports)
	}
}

func TestImportSet_AliasCollision(t *testing.T) {
	set := newImportSet("example.com/self")
	a := set.add("example.com/a/login", "login")
	b := set.add("example.com/b/login", "login")
	if a != "login" || b != "login2" {
		t.Fatalf("unexpected aliases: %s, %s", a, b)
	}
	if set.add("example.com/self", "self") != "" {
		t.Fatal("own package must not be imported")
	}
	if got := sanitizeIdent("yaml.v3"); got != "yaml_v3" {
		t.Fatalf("sanitizeIdent = %s", got)
	}
}
