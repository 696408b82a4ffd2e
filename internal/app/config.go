package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ansel1/merry"
	"github.com/pelletier/go-toml"
	"github.com/poise/poisepms/internal/data"
	"github.com/powerman/structlog"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Database data.Config   `yaml:"database" toml:"database"`
	Console  ConsoleConfig `yaml:"console" toml:"console"`
	LogLevel string        `yaml:"log_level" toml:"log_level" comment:"dbg | inf | wrn | err"`
}

type ConsoleConfig struct {
	DividerWidth   int `yaml:"divider_width" toml:"divider_width"`
	ColumnMaxWidth int `yaml:"column_max_width" toml:"column_max_width" comment:"0 fits every column to its content"`
}

func DefaultConfig() Config {
	return Config{
		Database: data.DefaultConfig(),
		Console: ConsoleConfig{
			DividerWidth:   100,
			ColumnMaxWidth: 40,
		},
		LogLevel: structlog.INF.String(),
	}
}

// DefaultConfigFileName is config.yaml next to the executable.
func DefaultConfigFileName() string {
	return filepath.Join(filepath.Dir(os.Args[0]), "config.yaml")
}

func isToml(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".toml")
}

func SaveConfig(filename string, c Config) error {
	var (
		b   []byte
		err error
	)
	if isToml(filename) {
		b, err = toml.Marshal(c)
	} else {
		b, err = yaml.Marshal(c)
	}
	if err != nil {
		return merry.Wrap(err)
	}
	if err := os.WriteFile(filename, b, 0666); err != nil {
		return merry.Append(err, "save config")
	}
	return nil
}

// LoadConfig reads the yaml or toml file, by extension, over the defaults.
// A missing file is created with the defaults.
func LoadConfig(filename string) (Config, error) {
	c := DefaultConfig()
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		log.Info("config not found, saving defaults", "file", filename)
		return c, SaveConfig(filename, c)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return c, merry.Append(err, "read config")
	}
	if isToml(filename) {
		err = toml.Unmarshal(b, &c)
	} else {
		err = yaml.Unmarshal(b, &c)
	}
	if err != nil {
		return c, merry.Appendf(err, "parse config %s", filename)
	}
	return c, nil
}
