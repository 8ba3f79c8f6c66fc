package generator

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/seitarof/gen-wrapper/internal/resolver"
)

//go:embed templates/*.go.tmpl
var templateFS embed.FS

const (
	containerPath = "github.com/seitarof/gen-wrapper/pkg/container"
	wrappersPath  = "github.com/seitarof/gen-wrapper/pkg/wrappers"
)

// Generator emits wrapper source from wrapper plans.
type Generator interface {
	// Render returns the formatted source without writing it.
	Render(plan *resolver.WrapperPlan) ([]byte, error)
	// Generate renders the plan and writes it to its destination, returning the path.
	Generate(plan *resolver.WrapperPlan) (string, error)
}

// Formatter formats generated Go code and organizes imports.
type Formatter interface {
	Format(filename string, src []byte) ([]byte, error)
}

// FileWriter writes generated code to disk.
type FileWriter interface {
	Write(filename string, data []byte) error
}

type generatorImpl struct {
	formatter Formatter
	writer    FileWriter
	tmpl      *template.Template
}

type goimportsFormatter struct{}

type fileWriter struct{}

type templateData struct {
	Package   string
	Imports   []importSpec
	Name      string
	Packet    string
	RawType   string
	Base      string
	NewBase   string
	Container string
	Fields    []fieldData
}

type fieldData struct {
	Kind   string
	Field  string
	Getter string
	Setter string
	Method string
	Index  int
	Type   string
	// ClashesWith is set for clash markers.
	ClashesWith string
}

// New creates a code generator.
func New(f Formatter, w FileWriter) Generator {
	tmpl := template.Must(template.New("").ParseFS(templateFS, "templates/*.go.tmpl"))
	return &generatorImpl{formatter: f, writer: w, tmpl: tmpl}
}

// NewGoimportsFormatter creates a formatter backed by goimports. Imports are
// already explicit, so it only formats.
func NewGoimportsFormatter() Formatter {
	return &goimportsFormatter{}
}

// NewFileWriter creates a file writer that creates missing directories.
func NewFileWriter() FileWriter {
	return &fileWriter{}
}

func (g *generatorImpl) Render(plan *resolver.WrapperPlan) ([]byte, error) {
	if plan == nil || plan.RawType == nil {
		return nil, fmt.Errorf("empty wrapper plan")
	}

	data := buildTemplateData(plan)
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, "wrapper.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	formatted, err := g.formatter.Format(plan.Destination.File, buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", plan.Name, err)
	}
	return formatted, nil
}

func (g *generatorImpl) Generate(plan *resolver.WrapperPlan) (string, error) {
	src, err := g.Render(plan)
	if err != nil {
		return "", err
	}
	filename := plan.Destination.Path()
	if err := g.writer.Write(filename, src); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return filename, nil
}

func (f *goimportsFormatter) Format(filename string, src []byte) ([]byte, error) {
	return imports.Process(filename, src, &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
}

func (w *fileWriter) Write(filename string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

func buildTemplateData(plan *resolver.WrapperPlan) templateData {
	set := newImportSet(plan.Destination.ImportPath)
	data := templateData{
		Package:   plan.Destination.Package,
		Name:      plan.Name,
		Packet:    plan.RawType.Name(),
		RawType:   set.typeString(plan.RawType),
		Base:      set.qualify(wrappersPath, "wrappers", "Base"),
		NewBase:   set.qualify(wrappersPath, "wrappers", "NewBase"),
		Container: set.qualify(containerPath, "container", "PacketContainer"),
		Fields:    make([]fieldData, 0, len(plan.Accessors)),
	}

	for _, a := range plan.Accessors {
		fd := fieldData{Kind: a.Strategy.String(), Field: a.Field.Name, ClashesWith: a.ClashesWith}
		if a.Strategy == resolver.StrategyAccessor {
			fd.Getter = resolver.Export(a.Getter)
			fd.Setter = resolver.Export(a.Setter)
			fd.Method = a.Method
			fd.Index = a.Index
			fd.Type = set.typeString(a.Type)
		}
		data.Fields = append(data.Fields, fd)
	}

	data.Imports = set.list()
	return data
}
