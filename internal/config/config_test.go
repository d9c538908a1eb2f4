package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/internal/config"
	"github.com/katalvlaran/crucible/movement"
)

func TestParse_Full(t *testing.T) {
	src := `
log_level      = "debug"
log_format     = "json"
terminal_guard = false
select         = ["short", "wide"]

mode "wide" {
  run_min = short.run_max
  run_max = long.run_max * 2
}

mode "exact" {
  run_min = 2
  run_max = 2
}
`
	cfg, err := config.Parse([]byte(src), "crucible.hcl")
	require.NoError(t, err)

	require.NotNil(t, cfg.LogLevel)
	assert.Equal(t, "debug", *cfg.LogLevel)
	require.NotNil(t, cfg.LogFormat)
	assert.Equal(t, "json", *cfg.LogFormat)
	require.NotNil(t, cfg.TerminalGuard)
	assert.False(t, *cfg.TerminalGuard)
	assert.Equal(t, []string{"short", "wide"}, cfg.Select)
	assert.Equal(t, []string{"exact", "wide"}, cfg.ModeNames())
	assert.Empty(t, (*config.Config)(nil).ModeNames())

	wide, err := cfg.Policy("wide")
	require.NoError(t, err)
	assert.Equal(t, movement.Policy{Name: "wide", RunMin: 3, RunMax: 20}, wide)

	long, err := cfg.Policy("long")
	require.NoError(t, err)
	assert.Equal(t, movement.LongRun, long)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	assert.Nil(t, cfg.LogLevel)
	assert.Nil(t, cfg.LogFormat)
	assert.Nil(t, cfg.TerminalGuard)
	assert.Empty(t, cfg.Select)
	assert.Empty(t, cfg.Modes)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		is   error
	}{
		{"BadBounds", "mode \"x\" {\n  run_min = 5\n  run_max = 2\n}\n", movement.ErrBadRunBounds},
		{"Duplicate", "mode \"x\" {\n  run_min = 1\n  run_max = 2\n}\nmode \"x\" {\n  run_min = 1\n  run_max = 3\n}\n", config.ErrDuplicateMode},
		{"BadLevel", `log_level = "loud"`, config.ErrBadLogSetting},
		{"BadFormat", `log_format = "xml"`, config.ErrBadLogSetting},
		{"Syntax", `mode "x" {`, nil},
		{"UnknownAttr", `colour = "red"`, nil},
		{"MissingRunMax", `mode "x" { run_min = 1 }`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.src), "bad.hcl")
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crucible.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`select = ["long"]`), 0o600))

	cfg, err := config.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, []string{"long"}, cfg.Select)

	_, err = config.Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestPolicy_NilConfig(t *testing.T) {
	var cfg *config.Config
	p, err := cfg.Policy("short")
	require.NoError(t, err)
	assert.Equal(t, movement.ShortRun, p)

	_, err = cfg.Policy("wide")
	assert.ErrorIs(t, err, movement.ErrUnknownMode)
}
