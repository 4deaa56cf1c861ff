package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	configRoot, err := os.UserConfigDir()
	require.NoError(t, err)
	return &Config{
		Rime: RimeConfig{
			ConfigRoot:     configRoot,
			Directory:      "Rime",
			DictionaryFile: "flypy_user.txt",
			BackupSuffix:   ".back",
		},
		Merge: MergeConfig{
			SectionLabel: "用户自定义词库",
		},
		Extract: ExtractConfig{
			Strategy: "regex",
		},
		Fetch: FetchConfig{
			UserAgent: "flypysync",
		},
		OpenFolder: true,
	}
}

// isolate keeps the developer's own config and environment out of a test.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("FLYPYSYNC_CONFIG_ROOT", "")
	t.Setenv("FLYPYSYNC_USER_AGENT", "")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return tempDir
}

func TestConfigLoader_Load(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		useExplicitPath   bool
		modify            func(cfg *Config)
		wantErr           bool
		wantErrorContains []string
	}{
		{
			name:   "no config file uses defaults",
			modify: func(cfg *Config) {},
		},
		{
			name: "config file in working directory",
			configContent: `rime:
  config_root: /custom/root
merge:
  section_label: imported
extract:
  strategy: html
fetch:
  timeout: 30s
open_folder: false
`,
			modify: func(cfg *Config) {
				cfg.Rime.ConfigRoot = "/custom/root"
				cfg.Merge.SectionLabel = "imported"
				cfg.Extract.Strategy = "html"
				cfg.Fetch.Timeout = 30 * time.Second
				cfg.OpenFolder = false
			},
		},
		{
			name: "explicit config file path",
			configContent: `rime:
  directory: rime-config
  dictionary_file: custom.txt
  backup_suffix: .orig
`,
			useExplicitPath: true,
			modify: func(cfg *Config) {
				cfg.Rime.Directory = "rime-config"
				cfg.Rime.DictionaryFile = "custom.txt"
				cfg.Rime.BackupSuffix = ".orig"
			},
		},
		{
			name: "unknown keys are ignored",
			configContent: `wrong_key:
  some_value: test
`,
			modify: func(cfg *Config) {},
		},
		{
			name: "invalid YAML format",
			configContent: `rime:
  config_root: /custom/root
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "unknown strategy",
			configContent: `extract:
  strategy: xpath
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"extract.strategy must be one of [regex html]",
			},
		},
		{
			name: "empty dictionary file",
			configContent: `rime:
  dictionary_file: ""
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"dictionary_file",
			},
		},
		{
			name: "negative timeout",
			configContent: `fetch:
  timeout: -1s
`,
			wantErr: true,
			wantErrorContains: []string{
				"invalid configuration",
				"timeout",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := isolate(t)

			var configPath string
			if tt.configContent != "" {
				name := "config.yml"
				if tt.useExplicitPath {
					name = "flypysync.yml"
				}
				path := filepath.Join(tempDir, name)
				require.NoError(t, os.WriteFile(path, []byte(tt.configContent), 0644))
				if tt.useExplicitPath {
					configPath = path
				}
			}

			loader, err := NewConfigLoader(configPath)
			require.NoError(t, err)
			got, err := loader.Load()

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			want := defaultConfig(t)
			tt.modify(want)
			assert.Equal(t, want, got)
		})
	}
}

func TestConfigLoader_Load_Environment(t *testing.T) {
	isolate(t)
	t.Setenv("FLYPYSYNC_CONFIG_ROOT", "/from/env")
	t.Setenv("FLYPYSYNC_USER_AGENT", "custom-agent")

	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	got, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "/from/env", got.Rime.ConfigRoot)
	assert.Equal(t, "custom-agent", got.Fetch.UserAgent)
}

func TestConfigLoader_BindFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  string
		want string
	}{
		{
			name: "flag overrides environment",
			args: []string{"--config-dir", "/from/flag"},
			env:  "/from/env",
			want: "/from/flag",
		},
		{
			name: "unset flag falls back to environment",
			args: []string{},
			env:  "/from/env",
			want: "/from/env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv("FLYPYSYNC_CONFIG_ROOT", tt.env)

			flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
			flags.String("config-dir", "", "config root")
			require.NoError(t, flags.Parse(tt.args))

			loader, err := NewConfigLoader("")
			require.NoError(t, err)
			require.NoError(t, loader.BindFlag("rime.config_root", flags.Lookup("config-dir")))

			got, err := loader.Load()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Rime.ConfigRoot)
		})
	}
}

func TestConfigLoader_BindFlag_Missing(t *testing.T) {
	loader, err := NewConfigLoader("")
	require.NoError(t, err)
	assert.Error(t, loader.BindFlag("rime.config_root", nil))
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{
		Rime: RimeConfig{
			ConfigRoot:     filepath.Join("home", "user", ".config"),
			Directory:      "Rime",
			DictionaryFile: "flypy_user.txt",
			BackupSuffix:   ".back",
		},
	}

	got := cfg.Paths()
	assert.Equal(t, Paths{
		Directory:      filepath.Join("home", "user", ".config", "Rime"),
		DictionaryPath: filepath.Join("home", "user", ".config", "Rime", "flypy_user.txt"),
		BackupPath:     filepath.Join("home", "user", ".config", "Rime", "flypy_user.txt.back"),
	}, got)
}
