package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edgebubble/internal/config"
)

func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name     string
		setupDir func(t *testing.T, dir string)
		args     []string
		wantErr  bool
		wantFile string
	}{
		{
			name:     "init empty directory",
			args:     []string{"init"},
			wantFile: config.DefaultFileName,
		},
		{
			name: "init existing config without force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte("existing"), 0600))
			},
			args:    []string{"init"},
			wantErr: true,
		},
		{
			name: "init existing config with force",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultFileName), []byte("existing"), 0600))
			},
			args:     []string{"init", "--force"},
			wantFile: config.DefaultFileName,
		},
		{
			name:     "init explicit file",
			args:     []string{"init", "conf/bubble.toml"},
			wantFile: "conf/bubble.toml",
		},
		{
			name: "init into directory",
			setupDir: func(t *testing.T, dir string) {
				require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0750))
			},
			args:     []string{"init", "sub"},
			wantFile: filepath.Join("sub", config.DefaultFileName),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Chdir(dir)
			if tt.setupDir != nil {
				tt.setupDir(t, dir)
			}

			out, err := execute(t, NewRootCmd(), tt.args...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantFile)

			cfg, err := config.Load(tt.wantFile, nil)
			require.NoError(t, err)
			assert.Equal(t, config.DefaultConfig(), cfg)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, NewRootCmd(), "version")
	require.NoError(t, err)
	assert.Equal(t, "edgebubble "+Version+"\n", out)
}

func TestPersistentPreRunLoadsConfigAndLogger(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(config.DefaultFileName, []byte("indicator_size = 2\n\n[bubble]\nlabel = \"file\"\n"), 0600))

	var (
		gotCfg    *config.Config
		gotLogger *slog.Logger
	)
	root := NewRootCmd()
	root.AddCommand(&cobra.Command{
		Use: "probe",
		RunE: func(cmd *cobra.Command, _ []string) error {
			gotCfg = GetConfig(cmd.Context())
			gotLogger = GetLogger(cmd.Context())
			gotLogger.Info("probe ran")
			return nil
		},
	})

	logPath := filepath.Join(dir, "probe.log")
	_, err := execute(t, root, "--label", "flag", "--log-file", logPath, "probe")
	require.NoError(t, err)

	require.NotNil(t, gotCfg)
	assert.Equal(t, 2.0, gotCfg.IndicatorSize, "file value")
	assert.Equal(t, "flag", gotCfg.Bubble.Label, "flag beats file")
	assert.Equal(t, logPath, gotCfg.Log.File)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "probe ran")
}

func TestPersistentPreRunRejectsInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	root.AddCommand(&cobra.Command{Use: "probe", RunE: func(*cobra.Command, []string) error { return nil }})

	_, err := execute(t, root, "--log-level", "loud", "probe")
	assert.Error(t, err)
}

func TestNewLoggerWithoutFileDiscards(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = ""

	logger, closer, err := newLogger(cfg)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NoError(t, closer())
}

func TestNewLoggerBadPath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.File = filepath.Join(t.TempDir(), "missing", "dir", "x.log")

	_, _, err := newLogger(cfg)
	assert.Error(t, err)
}

func TestContextFallbacks(t *testing.T) {
	ctx := t.Context()
	assert.Equal(t, config.DefaultConfig(), GetConfig(ctx))
	assert.NotNil(t, GetLogger(ctx))
}

func TestProgramOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Len(t, programOptions(t.Context(), cfg), 3)

	cfg.UI.MouseAllMotion = false
	assert.Len(t, programOptions(t.Context(), cfg), 3)
}
