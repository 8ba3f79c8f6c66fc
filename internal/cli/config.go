package cli

import (
	"github.com/seitarof/gen-wrapper/internal/resolver"
)

const (
	defaultOutDir         = "pkg/wrappers"
	defaultWrapperRoot    = "github.com/seitarof/gen-wrapper/pkg/wrappers"
	defaultProtocolPrefix = "github.com/seitarof/gen-wrapper/pkg/protocol"
)

// Config stores CLI options for a single generation run.
type Config struct {
	ConfigFile     string
	OutDir         string
	WrapperRoot    string
	ProtocolPrefix string
	Deny           []string
	Only           []string
	Manifest       string
	MetricsFile    string
	LogLevel       string
	DryRun         bool
	Strict         bool
	ListAccessors  bool
	ShowVersion    bool
}

// Layout returns the output layout for the generator layer.
func (c *Config) Layout() resolver.Layout {
	return resolver.Layout{
		OutDir:         c.OutDir,
		WrapperRoot:    c.WrapperRoot,
		ProtocolPrefix: c.ProtocolPrefix,
	}
}
