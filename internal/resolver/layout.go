package resolver

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/pkg/protocol"
)

// Layout maps packet types to wrapper packages and files.
type Layout struct {
	// OutDir is the directory that corresponds to WrapperRoot.
	OutDir string
	// WrapperRoot is the import path generated packages live under.
	WrapperRoot string
	// ProtocolPrefix is trimmed from packet package paths.
	ProtocolPrefix string
}

// Destination locates one generated wrapper.
type Destination struct {
	ImportPath string
	Package    string
	Dir        string
	File       string
}

// Path returns the output file path.
func (d Destination) Path() string {
	return filepath.Join(d.Dir, d.File)
}

// Destination derives where the wrapper for pt is written. File names follow
// the class, not the catalog label.
func (l Layout) Destination(pt protocol.PacketType) (Destination, error) {
	if pt.Class == nil {
		return Destination{}, fmt.Errorf("packet %s has no class", pt.Name)
	}
	rel, err := l.relativePackage(pt.Class.PkgPath())
	if err != nil {
		return Destination{}, fmt.Errorf("packet %s: %w", pt.Name, err)
	}
	sender := strings.ToLower(pt.Sender.MojangName())
	rel = path.Join(rel, sender)

	return Destination{
		ImportPath: path.Join(l.WrapperRoot, rel),
		Package:    sender,
		Dir:        filepath.Join(l.OutDir, filepath.FromSlash(rel)),
		File:       SnakeCase(WrapperName(pt.Class.Name())) + ".go",
	}, nil
}

func (l Layout) relativePackage(pkgPath string) (string, error) {
	if pkgPath == "" {
		return "", errors.New("class has no package path")
	}
	prefix := strings.TrimSuffix(l.ProtocolPrefix, "/")
	if prefix == "" {
		return pkgPath, nil
	}
	if pkgPath == prefix {
		return ".", nil
	}
	rel, ok := strings.CutPrefix(pkgPath, prefix+"/")
	if !ok {
		return "", fmt.Errorf("package %s is outside %s", pkgPath, prefix)
	}
	return rel, nil
}

// Plan assembles the wrapper plan for one packet.
func (l Layout) Plan(pt protocol.PacketType, info *parser.StructInfo, accessors []AccessorPlan) (*WrapperPlan, error) {
	dest, err := l.Destination(pt)
	if err != nil {
		return nil, err
	}
	return &WrapperPlan{
		Packet:      pt,
		Destination: dest,
		Name:        WrapperName(pt.Class.Name()),
		RawType:     info.Type,
		Accessors:   accessors,
	}, nil
}
