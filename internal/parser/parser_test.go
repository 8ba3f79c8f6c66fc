package parser

import (
	"reflect"
	"testing"

	"github.com/seitarof/gen-wrapper/pkg/protocol/game"
	"github.com/seitarof/gen-wrapper/pkg/protocol/status"
)

type embedded struct {
	inner int32
}

type mixed struct {
	embedded
	Public  string
	private int32
	_       int32
	flag    bool
	scratch []byte `wrap:"-"`
}

func TestParse_EligibleFieldsOnly(t *testing.T) {
	info, err := New().Parse(reflect.TypeFor[mixed]())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(info.Fields) != 2 {
		t.Fatalf("expected 2 fields, got %d: %#v", len(info.Fields), info.Fields)
	}
	if info.Fields[0].Name != "private" || info.Fields[1].Name != "flag" {
		t.Fatalf("unexpected fields: %s, %s", info.Fields[0].Name, info.Fields[1].Name)
	}
	if info.Fields[0].Index != 2 {
		t.Fatalf("private index = %d, want 2", info.Fields[0].Index)
	}
	if !info.Fields[1].IsBool() || info.Fields[0].IsBool() {
		t.Fatal("IsBool mismatch")
	}
	if info.Fields[0].Owner != reflect.TypeFor[mixed]() {
		t.Fatalf("unexpected owner %s", info.Fields[0].Owner)
	}
}

func TestParse_PacketStruct(t *testing.T) {
	info, err := New().Parse(reflect.TypeFor[*game.ServerboundMovePlayerPacket]())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if info.Name != "ServerboundMovePlayerPacket" {
		t.Fatalf("Name = %s", info.Name)
	}
	if info.PkgName != "game" {
		t.Fatalf("PkgName = %s, want game", info.PkgName)
	}
	if info.PkgPath != "github.com/seitarof/gen-wrapper/pkg/protocol/game" {
		t.Fatalf("PkgPath = %s", info.PkgPath)
	}
	for _, f := range info.Fields {
		if f.Name == "hasPos" {
			t.Fatal("tagged field should be excluded")
		}
	}
	if len(info.Fields) != 7 {
		t.Fatalf("expected 7 fields, got %d", len(info.Fields))
	}
}

func TestParse_RejectsNonStruct(t *testing.T) {
	if _, err := New().Parse(reflect.TypeFor[int]()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if _, err := New().Parse(nil); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestPackageName(t *testing.T) {
	if got := PackageName(reflect.TypeFor[status.ServerStatus]()); got != "status" {
		t.Fatalf("PackageName = %q, want status", got)
	}
	if got := PackageName(reflect.TypeFor[int32]()); got != "" {
		t.Fatalf("PackageName(int32) = %q, want empty", got)
	}
	if got := PackageName(reflect.TypeFor[[]status.ServerStatus]()); got != "" {
		t.Fatalf("PackageName(slice) = %q, want empty", got)
	}
}
