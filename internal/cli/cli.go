package cli

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/seitarof/gen-wrapper/internal/matcher"
)

// EnvPrefix prefixes environment overrides: GEN_WRAPPER_OUT, GEN_WRAPPER_LOG_LEVEL, ...
const EnvPrefix = "GEN_WRAPPER"

// ParseArgs parses command line arguments into Config. Values come from, in
// order of precedence: flags, GEN_WRAPPER_* environment variables, the
// --config file, flag defaults.
func ParseArgs(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("gen-wrapper", pflag.ContinueOnError)
	fs.StringP("config", "c", "", "YAML config file")
	fs.StringP("out", "o", defaultOutDir, "directory that holds the wrapper root package")
	fs.String("wrapper-root", defaultWrapperRoot, "import path of the wrapper root package")
	fs.String("protocol-prefix", defaultProtocolPrefix, "import path prefix trimmed from packet packages")
	fs.StringSlice("deny", matcher.DefaultDenylist, "container accessors excluded from matching")
	fs.StringSlice("only", nil, "generate only these packets")
	fs.String("manifest", "", "write a YAML manifest of the run to this file")
	fs.String("metrics-file", "", "write Prometheus textfile metrics to this file")
	fs.String("log-level", "info", "trace, debug, info, warn or error")
	fs.Bool("dry-run", false, "render wrappers without writing them")
	fs.Bool("strict", false, "exit non-zero when any wrapper fails")
	fs.Bool("list-accessors", false, "list the accessor chosen for each field type and exit")
	fs.BoolP("version", "v", false, "show version")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{ShowVersion: v.GetBool("version")}
	if cfg.ShowVersion {
		return cfg, nil
	}

	cfg.ConfigFile = strings.TrimSpace(v.GetString("config"))
	if cfg.ConfigFile != "" {
		v.SetConfigFile(cfg.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	cfg.OutDir = strings.TrimSpace(v.GetString("out"))
	cfg.WrapperRoot = strings.TrimSpace(v.GetString("wrapper-root"))
	cfg.ProtocolPrefix = strings.TrimSpace(v.GetString("protocol-prefix"))
	cfg.Deny = splitCommaList(v.GetStringSlice("deny")...)
	cfg.Only = splitCommaList(v.GetStringSlice("only")...)
	cfg.Manifest = strings.TrimSpace(v.GetString("manifest"))
	cfg.MetricsFile = strings.TrimSpace(v.GetString("metrics-file"))
	cfg.LogLevel = strings.TrimSpace(v.GetString("log-level"))
	cfg.DryRun = v.GetBool("dry-run")
	cfg.Strict = v.GetBool("strict")
	cfg.ListAccessors = v.GetBool("list-accessors")

	if cfg.OutDir == "" {
		return nil, fmt.Errorf("--out is required")
	}
	if cfg.WrapperRoot == "" {
		return nil, fmt.Errorf("--wrapper-root is required")
	}
	if hclog.LevelFromString(cfg.LogLevel) == hclog.NoLevel {
		return nil, fmt.Errorf("invalid --log-level %q", cfg.LogLevel)
	}
	return cfg, nil
}

// splitCommaList flattens comma-separated entries, dropping blanks.
func splitCommaList(raw ...string) []string {
	var out []string
	for _, entry := range raw {
		for _, p := range strings.Split(entry, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			out = append(out, p)
		}
	}
	return out
}
