package cli

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seitarof/gen-wrapper/internal/generator"
	"github.com/seitarof/gen-wrapper/internal/harness"
	"github.com/seitarof/gen-wrapper/internal/matcher"
	rawparser "github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/internal/report"
	"github.com/seitarof/gen-wrapper/internal/resolver"
	"github.com/seitarof/gen-wrapper/pkg/protocol"
	"github.com/seitarof/gen-wrapper/pkg/protocol/catalog"
)

func newRealRunner(cat Catalog) Runner {
	return NewRunner(
		harness.New(),
		cat,
		rawparser.New(),
		matcher.NewFieldMatcher(),
		resolver.New(resolver.DefaultRules()...),
		generator.New(generator.NewGoimportsFormatter(), generator.NewFileWriter()),
		WithVersion("test"),
	)
}

func TestRunner_Run_GeneratesCatalogDespiteFaultyEntry(t *testing.T) {
	dir := t.TempDir()
	values := catalog.Default().Values()
	faulty := protocol.PacketType{
		Name:      "ClientboundBrokenPacket",
		Class:     reflect.TypeFor[string](),
		Supported: true,
	}
	values = append(values[:5:5], append([]protocol.PacketType{faulty}, values[5:]...)...)

	cfg := testConfig(filepath.Join(dir, "wrappers"))
	cfg.Manifest = filepath.Join(dir, "manifest.yaml")
	cfg.MetricsFile = filepath.Join(dir, "gen_wrapper.prom")

	summary, err := newRealRunner(sliceCatalog(values)).Run(cfg)
	require.NoError(t, err)

	require.Error(t, summary.Err())
	require.Len(t, summary.Failures.Errors, 1)
	assert.Contains(t, summary.Err().Error(), "ClientboundBrokenPacket")
	assert.Equal(t, eligible(values)-1, summary.Generated)

	for _, file := range summary.Files {
		src, err := os.ReadFile(file)
		require.NoError(t, err, file)
		_, err = parser.ParseFile(token.NewFileSet(), file, src, parser.AllErrors)
		require.NoError(t, err, file)
	}

	health, err := os.ReadFile(filepath.Join(cfg.OutDir, "game", "clientbound", "clientbound_set_health_wrapper.go"))
	require.NoError(t, err)
	assert.Contains(t, string(health), "func (w *ClientboundSetHealthWrapper) GetSaturation() (float32, error)")

	slot, err := os.ReadFile(filepath.Join(cfg.OutDir, "game", "clientbound", "clientbound_container_set_slot_wrapper.go"))
	require.NoError(t, err)
	assert.Contains(t, string(slot), "GetItemStack() (container.Material, error)")

	move, err := os.ReadFile(filepath.Join(cfg.OutDir, "game", "serverbound", "serverbound_move_player_wrapper.go"))
	require.NoError(t, err)
	assert.Contains(t, string(move), "IsOnGround() (bool, error)")
	assert.NotContains(t, string(move), "HasPos")

	m, err := report.Load(cfg.Manifest)
	require.NoError(t, err)
	assert.Equal(t, "test", m.Version)
	assert.Len(t, m.Wrappers, summary.Generated)
	assert.Len(t, m.Skipped, 2)

	metrics, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), "gen_wrapper_generation_failures_total 1")
	assert.Contains(t, string(metrics), `gen_wrapper_fields_total{result="ambiguous"}`)
}

func TestRunner_Run_IsIdempotent(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Only = []string{"ClientboundLoginPacket"}
	r := newRealRunner(catalog.Default())

	first, err := r.Run(cfg)
	require.NoError(t, err)
	require.Len(t, first.Files, 1)
	before, err := os.ReadFile(first.Files[0])
	require.NoError(t, err)

	second, err := r.Run(cfg)
	require.NoError(t, err)
	after, err := os.ReadFile(second.Files[0])
	require.NoError(t, err)
	assert.True(t, bytes.Equal(before, after))
}

func TestRunner_Run_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(filepath.Join(dir, "wrappers"))
	cfg.DryRun = true

	summary, err := newRealRunner(catalog.Default()).Run(cfg)
	require.NoError(t, err)
	assert.NoError(t, summary.Err())
	assert.Positive(t, summary.Generated)

	_, err = os.Stat(cfg.OutDir)
	assert.True(t, os.IsNotExist(err))
}

func TestRunner_ListAccessors(t *testing.T) {
	cfg := testConfig(t.TempDir())
	cfg.Only = []string{"ClientboundSetHealthPacket"}

	var out strings.Builder
	require.NoError(t, newRealRunner(catalog.Default()).ListAccessors(cfg, &out))

	got := out.String()
	assert.Contains(t, got, "ClientboundSetHealthPacket")
	assert.Contains(t, got, "Floats")
	assert.Contains(t, got, "Integers")
	assert.NotContains(t, got, "ClientboundLoginPacket")
}
