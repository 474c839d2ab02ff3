package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const DefaultConfigFileName = "config.json"

// DefaultAPIHost is where the backend listens when run locally.
const DefaultAPIHost = "http://127.0.0.1:5000"

// APIHostEnv overrides the configured host.
const APIHostEnv = "ASKPDF_API_HOST"

var (
	DefaultConfigDir      = os.ExpandEnv("$HOME/.config/askpdf")
	DefaultConfigFilePath = filepath.Join(DefaultConfigDir, DefaultConfigFileName)
)

var ErrInvalidHost = errors.New("invalid api host")

// version is set via ldflags at build time
var version string

func Version() string {
	if version == "" {
		return "dev"
	}
	return version
}

type Config struct {
	APIHost string `json:"api_host,omitempty"`
}

func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigFilePath)
}

func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(c); err != nil {
		return err
	}
	return nil
}

func LoadFromFile() (*Config, error) {
	return Load(DefaultConfigFilePath)
}

func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var c Config
	if err := json.NewDecoder(f).Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// ResolveAPIHost picks the api host in order of precedence:
// the flag value, the environment, the config file and finally DefaultAPIHost.
// A missing config file is not an error.
func ResolveAPIHost(flagValue, configPath string) (string, error) {
	if flagValue != "" {
		return NormalizeHost(flagValue)
	}
	if env := os.Getenv(APIHostEnv); env != "" {
		return NormalizeHost(env)
	}

	cfg, err := Load(configPath)
	switch {
	case err == nil && cfg.APIHost != "":
		return NormalizeHost(cfg.APIHost)
	case err != nil && !errors.Is(err, os.ErrNotExist):
		return "", fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	return DefaultAPIHost, nil
}

// NormalizeHost validates an http(s) base url and strips any trailing slash.
func NormalizeHost(host string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(host))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidHost, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("%w: %q must use http or https", ErrInvalidHost, host)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidHost, host)
	}
	return strings.TrimRight(u.String(), "/"), nil
}
