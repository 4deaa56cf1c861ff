package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Rime       RimeConfig    `mapstructure:"rime"`
	Merge      MergeConfig   `mapstructure:"merge"`
	Extract    ExtractConfig `mapstructure:"extract"`
	Fetch      FetchConfig   `mapstructure:"fetch"`
	OpenFolder bool          `mapstructure:"open_folder"`
}

type RimeConfig struct {
	ConfigRoot     string `mapstructure:"config_root" validate:"required"`
	Directory      string `mapstructure:"directory" validate:"required"`
	DictionaryFile string `mapstructure:"dictionary_file" validate:"required"`
	BackupSuffix   string `mapstructure:"backup_suffix" validate:"required"`
}

type MergeConfig struct {
	SectionLabel string `mapstructure:"section_label" validate:"required"`
}

type ExtractConfig struct {
	Strategy string `mapstructure:"strategy" validate:"strategy"`
}

type FetchConfig struct {
	Timeout   time.Duration `mapstructure:"timeout" validate:"gte=0"`
	UserAgent string        `mapstructure:"user_agent"`
}

// Paths are the files an import reads and writes, derived from RimeConfig.
type Paths struct {
	Directory      string
	DictionaryPath string
	BackupPath     string
}

func (cfg *Config) Paths() Paths {
	dir := filepath.Join(cfg.Rime.ConfigRoot, cfg.Rime.Directory)
	dictionaryPath := filepath.Join(dir, cfg.Rime.DictionaryFile)
	return Paths{
		Directory:      dir,
		DictionaryPath: dictionaryPath,
		BackupPath:     dictionaryPath + cfg.Rime.BackupSuffix,
	}
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/flypysync")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// BindFlag lets a command-line flag override key when the flag is set.
func (loader *ConfigLoader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return fmt.Errorf("no flag to bind for %s", key)
	}
	if err := loader.viper.BindPFlag(key, flag); err != nil {
		return fmt.Errorf("failed to bind flag %s: %w", flag.Name, err)
	}
	return nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	// The user config directory is resolved once here and only passed on through Config.
	if configRoot, err := os.UserConfigDir(); err == nil {
		v.SetDefault("rime.config_root", configRoot)
	}
	v.SetDefault("rime.directory", "Rime")
	v.SetDefault("rime.dictionary_file", "flypy_user.txt")
	v.SetDefault("rime.backup_suffix", ".back")
	v.SetDefault("merge.section_label", "用户自定义词库")
	v.SetDefault("extract.strategy", "regex")
	v.SetDefault("fetch.timeout", "0s")
	v.SetDefault("fetch.user_agent", "flypysync")
	v.SetDefault("open_folder", true)

	if err := v.BindEnv("rime.config_root", "FLYPYSYNC_CONFIG_ROOT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLYPYSYNC_CONFIG_ROOT environment variable: %w", err)
	}
	if err := v.BindEnv("fetch.user_agent", "FLYPYSYNC_USER_AGENT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLYPYSYNC_USER_AGENT environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
