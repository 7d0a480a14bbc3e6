package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SERVARR_TUI_RADARR_API_TOKEN.
const EnvPrefix = "SERVARR_TUI"

const (
	appDir   = "servarr-tui"
	fileName = "config.yml"
	redacted = "<redacted>"
)

var (
	ErrMissingToken = errors.New("radarr.api_token is required")
	ErrExists       = errors.New("config file already exists")
)

// Config captures runtime configuration for the application.
type Config struct {
	Radarr  Radarr  `mapstructure:"radarr"`
	UI      UI      `mapstructure:"ui"`
	Logging Logging `mapstructure:"logging"`

	// File is the config file that was read; empty when none was found.
	File string `mapstructure:"-"`
}

type Radarr struct {
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	URI      string        `mapstructure:"uri"`
	APIToken string        `mapstructure:"api_token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type UI struct {
	TickRate     time.Duration `mapstructure:"tick_rate"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	Width        int           `mapstructure:"width"`
	Height       int           `mapstructure:"height"`
}

type Logging struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
	Trace bool   `mapstructure:"trace"`
}

var defaults = map[string]interface{}{
	"radarr.host":      "localhost",
	"radarr.port":      7878,
	"radarr.uri":       "",
	"radarr.api_token": "",
	"radarr.timeout":   "15s",
	"ui.tick_rate":     "250ms",
	"ui.poll_interval": "20s",
	"ui.width":         0,
	"ui.height":        0,
	"logging.file":     "",
	"logging.level":    "",
	"logging.trace":    false,
}

// New returns a viper instance carrying the defaults and environment
// overrides. Callers may bind flags to it before Load.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultPath returns $XDG_CONFIG_HOME/servarr-tui/config.yml, falling back
// to ~/.config.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDir, fileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appDir, fileName)
	}
	return filepath.Join(home, ".config", appDir, fileName)
}

// Load reads path into v and decodes the result. An empty path selects
// DefaultPath, which may be absent; an explicit path must exist.
func Load(v *viper.Viper, path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	file := path
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		missing := errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound)
		if explicit || !missing {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		file = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = file
	return cfg, nil
}

// Validate reports every problem with cfg.
func Validate(cfg Config) error {
	var errs []error
	if strings.TrimSpace(cfg.Radarr.APIToken) == "" {
		errs = append(errs, ErrMissingToken)
	}
	if cfg.Radarr.URI != "" {
		u, err := url.Parse(cfg.Radarr.URI)
		if err != nil {
			errs = append(errs, fmt.Errorf("radarr.uri: %w", err))
		} else if u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("radarr.uri must be an absolute URL (got %q)", cfg.Radarr.URI))
		}
	} else if cfg.Radarr.Port <= 0 || cfg.Radarr.Port > 65535 {
		errs = append(errs, fmt.Errorf("radarr.port out of range (got %d)", cfg.Radarr.Port))
	}
	if cfg.Radarr.Timeout < 0 {
		errs = append(errs, fmt.Errorf("radarr.timeout must be >= 0 (got %s)", cfg.Radarr.Timeout))
	}
	if cfg.UI.Width < 0 {
		errs = append(errs, fmt.Errorf("ui.width must be >= 0 (got %d)", cfg.UI.Width))
	}
	if cfg.UI.Height < 0 {
		errs = append(errs, fmt.Errorf("ui.height must be >= 0 (got %d)", cfg.UI.Height))
	}
	if cfg.UI.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("ui.tick_rate must be > 0 (got %s)", cfg.UI.TickRate))
	} else if cfg.UI.PollInterval < cfg.UI.TickRate {
		errs = append(errs, fmt.Errorf("ui.poll_interval %s is shorter than ui.tick_rate %s", cfg.UI.PollInterval, cfg.UI.TickRate))
	}
	return errors.Join(errs...)
}

// BaseURL is the server root: uri when set, otherwise http://host:port.
func (r Radarr) BaseURL() string {
	if r.URI != "" {
		return strings.TrimRight(r.URI, "/")
	}
	host := r.Host
	if host == "" {
		host = "localhost"
	}
	return "http://" + host + ":" + strconv.Itoa(r.Port)
}

// TickUntilPoll converts the poll interval into UI ticks.
func (u UI) TickUntilPoll() int {
	if u.TickRate <= 0 {
		return 0
	}
	n := int(u.PollInterval / u.TickRate)
	if n < 1 {
		n = 1
	}
	return n
}

// Redacted returns a copy safe to log.
func (c Config) Redacted() Config {
	if c.Radarr.APIToken != "" {
		c.Radarr.APIToken = redacted
	}
	return c
}

type defaultFile struct {
	Radarr struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		URI      string `yaml:"uri"`
		APIToken string `yaml:"api_token"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"radarr"`
	UI struct {
		TickRate     string `yaml:"tick_rate"`
		PollInterval string `yaml:"poll_interval"`
		Width        int    `yaml:"width"`
		Height       int    `yaml:"height"`
	} `yaml:"ui"`
	Logging struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
		Trace bool   `yaml:"trace"`
	} `yaml:"logging"`
}

// WriteDefault writes the default configuration to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s: %w (use --force to overwrite)", path, ErrExists)
	}

	var f defaultFile
	f.Radarr.Host = defaults["radarr.host"].(string)
	f.Radarr.Port = defaults["radarr.port"].(int)
	f.Radarr.Timeout = defaults["radarr.timeout"].(string)
	f.UI.TickRate = defaults["ui.tick_rate"].(string)
	f.UI.PollInterval = defaults["ui.poll_interval"].(string)

	out, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("encode default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
