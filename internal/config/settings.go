package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment overrides, e.g. NIBBLE_STYLE_BORDER
const EnvPrefix = "NIBBLE"

// Settings holds user defaults. Command-line flags always win over these.
type Settings struct {
	Style    StyleSettings
	UI       UISettings
	Log      LogSettings
	Keybinds KeybindsSettings
}

// StyleSettings are defaults for the shared style flags
type StyleSettings struct {
	Border      string
	BorderColor string `mapstructure:"border_color"`
	Fg          string
	Bg          string
	Modifiers   []string
}

// UISettings are defaults for the root flags
type UISettings struct {
	Fullscreen bool
	NoColor    bool `mapstructure:"no_color"`
}

// LogSettings configure the application log
type LogSettings struct {
	Level string
	File  string
}

// KeybindsSettings locate the key binding overrides
type KeybindsSettings struct {
	File string
}

// Load reads settings from path (or ConfigFile when empty) and the
// environment. Only the default ConfigFile may be missing.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("style.border", "rounded")
	v.SetDefault("style.border_color", "")
	v.SetDefault("style.fg", "")
	v.SetDefault("style.bg", "")
	v.SetDefault("style.modifiers", []string{})
	v.SetDefault("ui.fullscreen", false)
	v.SetDefault("ui.no_color", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("keybinds.file", KeybindsFile)

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		path = ConfigFile
	}
	if path != "" {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.As(err, &notFound) || isNotExist(err)
		if explicit || !missing {
			return Settings{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if s.Log.File == "" && LogDir != "" {
		s.Log.File = LogFile()
	}
	return s, nil
}

// isNotExist reports a missing config file. viper only returns
// ConfigFileNotFoundError when searching paths, not for SetConfigFile.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
