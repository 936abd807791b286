package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/pders01/veni/internal/validation"
)

const AppName = "veni"

type Config struct {
	Navigation NavigationConfig `mapstructure:"navigation" toml:"navigation"`
	UI         UIConfig         `mapstructure:"ui" toml:"ui"`
	Keys       KeyConfig        `mapstructure:"keys" toml:"keys"`
	Log        LogConfig        `mapstructure:"log" toml:"log"`
}

type NavigationConfig struct {
	Screens       []string `mapstructure:"screens" toml:"screens"`
	DefaultScreen string   `mapstructure:"default_screen" toml:"default_screen"`
}

type UIConfig struct {
	AnimationFrames int           `mapstructure:"animation_frames" toml:"animation_frames"`
	FrameInterval   time.Duration `mapstructure:"frame_interval" toml:"frame_interval"`
	Colors          UIColors      `mapstructure:"colors" toml:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary" toml:"primary"`
	Secondary string `mapstructure:"secondary" toml:"secondary"`
	Accent    string `mapstructure:"accent" toml:"accent"`
	Surface   string `mapstructure:"surface" toml:"surface"`
	Text      string `mapstructure:"text" toml:"text"`
	Muted     string `mapstructure:"muted" toml:"muted"`
	Error     string `mapstructure:"error" toml:"error"`
	Success   string `mapstructure:"success" toml:"success"`
}

type KeyConfig struct {
	Modifier string      `mapstructure:"modifier" toml:"modifier"`
	Bindings KeyBindings `mapstructure:"bindings" toml:"bindings"`
}

// KeyBindings are combined with the modifier, except Back and Quit.
type KeyBindings struct {
	Quit   string `mapstructure:"quit" toml:"quit"`
	Prev   string `mapstructure:"prev" toml:"prev"`
	Next   string `mapstructure:"next" toml:"next"`
	Menu   string `mapstructure:"menu" toml:"menu"`
	Submit string `mapstructure:"submit" toml:"submit"`
	Back   string `mapstructure:"back" toml:"back"`
	Help   string `mapstructure:"help" toml:"help"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	File  string `mapstructure:"file" toml:"file"`
}

var (
	ErrNoScreens        = errors.New("navigation.screens is empty")
	ErrDuplicateScreen  = errors.New("navigation.screens contains a duplicate")
	ErrBadDefaultScreen = errors.New("navigation.default_screen is not in navigation.screens")
)

func defaultConfig() *Config {
	return &Config{
		Navigation: NavigationConfig{
			Screens:       []string{"Register", "Welcome", "Login"},
			DefaultScreen: "Welcome",
		},
		UI: UIConfig{
			AnimationFrames: 6,
			FrameInterval:   16 * time.Millisecond,
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Surface:   "#16213E",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#EF4444",
				Success:   "#10B981",
			},
		},
		Keys: KeyConfig{
			Modifier: "ctrl",
			Bindings: KeyBindings{
				Quit:   "q",
				Prev:   "p",
				Next:   "n",
				Menu:   "g",
				Submit: "s",
				Back:   "esc",
				Help:   "?",
			},
		},
		Log: LogConfig{
			Level: "off",
		},
	}
}

// DefaultPath is where GenerateDefaultConfig writes and Load looks first.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", AppName, "config.toml")
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	setDefaults(v, cfg)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.AddConfigPath(".")
	}

	// VENI_LOG_LEVEL overrides log.level.
	v.SetEnvPrefix("VENI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	// Partial tables keep the defaults they omit. Slices decode
	// element-wise over existing ones, so the screen list starts empty.
	config := *cfg
	config.Navigation.Screens = nil
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if config.Log.File != "" {
		path, err := validation.NewPathValidator().ValidateFile(config.Log.File)
		if err != nil {
			return nil, fmt.Errorf("log.file: %w", err)
		}
		config.Log.File = path
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults registers every leaf key. AutomaticEnv only consults keys
// viper already knows about, and a file can then override one key alone.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("navigation.screens", cfg.Navigation.Screens)
	v.SetDefault("navigation.default_screen", cfg.Navigation.DefaultScreen)

	v.SetDefault("ui.animation_frames", cfg.UI.AnimationFrames)
	v.SetDefault("ui.frame_interval", cfg.UI.FrameInterval)
	v.SetDefault("ui.colors.primary", cfg.UI.Colors.Primary)
	v.SetDefault("ui.colors.secondary", cfg.UI.Colors.Secondary)
	v.SetDefault("ui.colors.accent", cfg.UI.Colors.Accent)
	v.SetDefault("ui.colors.surface", cfg.UI.Colors.Surface)
	v.SetDefault("ui.colors.text", cfg.UI.Colors.Text)
	v.SetDefault("ui.colors.muted", cfg.UI.Colors.Muted)
	v.SetDefault("ui.colors.error", cfg.UI.Colors.Error)
	v.SetDefault("ui.colors.success", cfg.UI.Colors.Success)

	v.SetDefault("keys.modifier", cfg.Keys.Modifier)
	v.SetDefault("keys.bindings.quit", cfg.Keys.Bindings.Quit)
	v.SetDefault("keys.bindings.prev", cfg.Keys.Bindings.Prev)
	v.SetDefault("keys.bindings.next", cfg.Keys.Bindings.Next)
	v.SetDefault("keys.bindings.menu", cfg.Keys.Bindings.Menu)
	v.SetDefault("keys.bindings.submit", cfg.Keys.Bindings.Submit)
	v.SetDefault("keys.bindings.back", cfg.Keys.Bindings.Back)
	v.SetDefault("keys.bindings.help", cfg.Keys.Bindings.Help)

	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.file", cfg.Log.File)
}

// Validate checks the screen order the navigator will be built from.
func (c *Config) Validate() error {
	if len(c.Navigation.Screens) == 0 {
		return ErrNoScreens
	}
	seen := make(map[string]bool, len(c.Navigation.Screens))
	for _, s := range c.Navigation.Screens {
		if seen[s] {
			return fmt.Errorf("%w: %q", ErrDuplicateScreen, s)
		}
		seen[s] = true
	}
	if !seen[c.Navigation.DefaultScreen] {
		return fmt.Errorf("%w: %q", ErrBadDefaultScreen, c.Navigation.DefaultScreen)
	}
	return nil
}

func Save(config *Config, path string) error {
	v := viper.New()

	// Durations are written as strings for TOML readability
	uiCfg := map[string]interface{}{
		"animation_frames": config.UI.AnimationFrames,
		"frame_interval":   config.UI.FrameInterval.String(),
		"colors":           config.UI.Colors,
	}

	v.Set("navigation", config.Navigation)
	v.Set("ui", uiCfg)
	v.Set("keys", config.Keys)
	v.Set("log", config.Log)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return v.WriteConfigAs(path)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}

// Marshal renders the config as TOML, the same shape Load reads.
func Marshal(config *Config) ([]byte, error) {
	out := struct {
		Navigation NavigationConfig `toml:"navigation"`
		UI         struct {
			AnimationFrames int      `toml:"animation_frames"`
			FrameInterval   string   `toml:"frame_interval"`
			Colors          UIColors `toml:"colors"`
		} `toml:"ui"`
		Keys KeyConfig `toml:"keys"`
		Log  LogConfig `toml:"log"`
	}{
		Navigation: config.Navigation,
		Keys:       config.Keys,
		Log:        config.Log,
	}
	out.UI.AnimationFrames = config.UI.AnimationFrames
	out.UI.FrameInterval = config.UI.FrameInterval.String()
	out.UI.Colors = config.UI.Colors

	data, err := toml.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return data, nil
}
