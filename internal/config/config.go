package config

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/crucible/internal/ctxlog"
	"github.com/katalvlaran/crucible/movement"
)

var (
	// ErrDuplicateMode indicates two mode blocks with the same label.
	ErrDuplicateMode = errors.New("config: duplicate mode")
	// ErrBadLogSetting indicates an unsupported log_level or log_format.
	ErrBadLogSetting = errors.New("config: unsupported log setting")
)

// Config is the decoded configuration file. Nil pointer fields were not set.
type Config struct {
	LogLevel      *string
	LogFormat     *string
	TerminalGuard *bool
	Select        []string
	Modes         map[string]movement.Policy
}

// hclFile is the top-level structure of a config file for decoding.
type hclFile struct {
	LogLevel      *string    `hcl:"log_level,optional"`
	LogFormat     *string    `hcl:"log_format,optional"`
	TerminalGuard *bool      `hcl:"terminal_guard,optional"`
	Select        []string   `hcl:"select,optional"`
	Modes         []*hclMode `hcl:"mode,block"`
}

type hclMode struct {
	Name   string `hcl:"name,label"`
	RunMin int    `hcl:"run_min"`
	RunMax int    `hcl:"run_max"`
}

// Load parses and decodes the config file at path.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading config file", "path", path)

	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}
	cfg, err := decode(f.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	logger.Debug("Config file loaded", "path", path, "modes", len(cfg.Modes), "select", cfg.Select)
	return cfg, nil
}

// Parse decodes config source held in memory; filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(f.Body)
}

func decode(body hcl.Body) (*Config, error) {
	var raw hclFile
	if diags := gohcl.DecodeBody(body, evalContext(), &raw); diags.HasErrors() {
		return nil, diags
	}

	cfg := &Config{
		LogLevel:      raw.LogLevel,
		LogFormat:     raw.LogFormat,
		TerminalGuard: raw.TerminalGuard,
		Select:        raw.Select,
		Modes:         make(map[string]movement.Policy, len(raw.Modes)),
	}
	if cfg.LogLevel != nil {
		if err := ValidateLogLevel(*cfg.LogLevel); err != nil {
			return nil, err
		}
	}
	if cfg.LogFormat != nil {
		if err := ValidateLogFormat(*cfg.LogFormat); err != nil {
			return nil, err
		}
	}
	for _, m := range raw.Modes {
		if _, dup := cfg.Modes[m.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateMode, m.Name)
		}
		p, err := movement.New(m.Name, m.RunMin, m.RunMax)
		if err != nil {
			return nil, fmt.Errorf("mode %q: %w", m.Name, err)
		}
		cfg.Modes[m.Name] = p
	}
	return cfg, nil
}

// evalContext exposes the predefined policies to config expressions.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, 2)
	for _, p := range []movement.Policy{movement.ShortRun, movement.LongRun} {
		vars[p.Name] = cty.ObjectVal(map[string]cty.Value{
			"run_min": cty.NumberIntVal(int64(p.RunMin)),
			"run_max": cty.NumberIntVal(int64(p.RunMax)),
		})
	}
	return &hcl.EvalContext{Variables: vars}
}

// Policy resolves name against the file's modes, then the predefined ones.
// A nil Config resolves predefined names only.
func (c *Config) Policy(name string) (movement.Policy, error) {
	if c != nil {
		if p, ok := c.Modes[name]; ok {
			return p, nil
		}
	}
	return movement.Lookup(name)
}

// ModeNames lists the file's mode labels in sorted order.
// A nil Config has none.
func (c *Config) ModeNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Modes))
	for n := range c.Modes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ValidateLogLevel accepts debug, info, warn and error.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("%w: log level %q (want debug, info, warn or error)", ErrBadLogSetting, level)
}

// ValidateLogFormat accepts text and json.
func ValidateLogFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("%w: log format %q (want text or json)", ErrBadLogSetting, format)
}
