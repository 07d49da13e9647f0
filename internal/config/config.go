package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/viper"
)

// DefaultTargetURL is the page the shell exists to display. Release builds
// may override it via -ldflags on main.targetURL.
const DefaultTargetURL = "https://mindvora.netlify.app/"

// Defaults for the launch configuration
const (
	DefaultWindowWidth     = 420
	DefaultWindowHeight    = 860
	DefaultPollInterval    = 5 * time.Second
	DefaultUserAgentTag    = "MindVoraApp/1.0"
	DefaultBackgroundColor = "#0d1117"
	DefaultOrientation     = "portrait"
)

// Config is the explicit launch configuration passed into the controller and
// adapter constructors. Nothing reads it ambiently.
type Config struct {
	Target       TargetConfig       `mapstructure:"target"`
	Window       WindowConfig       `mapstructure:"window"`
	Connectivity ConnectivityConfig `mapstructure:"connectivity"`
	Chrome       ChromeConfig       `mapstructure:"chrome"`
}

// TargetConfig describes the single page the shell displays
type TargetConfig struct {
	URL             string `mapstructure:"url"`
	UserAgentTag    string `mapstructure:"user_agent_tag"`
	BackgroundColor string `mapstructure:"background_color"`
}

// WindowConfig holds the shell window geometry
type WindowConfig struct {
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
	Fixed  bool `mapstructure:"fixed"`
	Debug  bool `mapstructure:"debug"` // renderer developer tools
}

// ConnectivityConfig tunes the reachability monitor
type ConnectivityConfig struct {
	PollIntervalSec int  `mapstructure:"poll_interval_sec"`
	DialProbe       bool `mapstructure:"dial_probe"` // confirm with a TCP dial to the target host
}

// ChromeConfig holds host-environment boot flags the core never reads
type ChromeConfig struct {
	Immersive   bool   `mapstructure:"immersive"`
	Orientation string `mapstructure:"orientation"`
}

// DefaultConfig returns the configuration of a stock build
func DefaultConfig() *Config {
	return &Config{
		Target: TargetConfig{
			URL:             DefaultTargetURL,
			UserAgentTag:    DefaultUserAgentTag,
			BackgroundColor: DefaultBackgroundColor,
		},
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Fixed:  true,
		},
		Connectivity: ConnectivityConfig{
			PollIntervalSec: int(DefaultPollInterval / time.Second),
			DialProbe:       true,
		},
		Chrome: ChromeConfig{
			Immersive:   true,
			Orientation: DefaultOrientation,
		},
	}
}

// PollInterval returns the monitor interval as a duration
func (c *Config) PollInterval() time.Duration {
	if c.Connectivity.PollIntervalSec <= 0 {
		return DefaultPollInterval
	}
	return time.Duration(c.Connectivity.PollIntervalSec) * time.Second
}

// TargetHost returns the host portion of the target URL, or "" if the URL
// does not parse
func (c *Config) TargetHost() string {
	parsed, err := url.Parse(c.Target.URL)
	if err != nil {
		return ""
	}
	return parsed.Host
}

// Validate rejects configurations the shell cannot run with
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.Target.URL)
	if err != nil {
		return fmt.Errorf("invalid target url: %w", err)
	}
	if parsed.Scheme != "https" && parsed.Scheme != "http" {
		return fmt.Errorf("target url must be http(s), got %q", c.Target.URL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("target url has no host: %q", c.Target.URL)
	}
	return nil
}

// defaultConfigPath returns the config directory for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "mindvora")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "mindvora")
	}
}

// LoadConfig loads configuration from file and environment. A missing config
// file is not an error; defaults apply.
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(defaultConfigPath())
	v.AddConfigPath(".")

	// Environment variable overrides (MINDVORA_TARGET_URL etc.)
	v.SetEnvPrefix("MINDVORA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
