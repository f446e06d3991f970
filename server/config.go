package server

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// AppConfig defines application configuration loaded from files and environment.
type AppConfig struct {
	Env    string       `koanf:"env"`
	Listen string       `koanf:"listen"`
	Valkey ValkeyConfig `koanf:"valkey"`
	Issuer IssuerConfig `koanf:"issuer"`
}

type ValkeyConfig struct {
	Addr   string `koanf:"addr"`
	Prefix string `koanf:"prefix"`
}

type IssuerConfig struct {
	// Lifetime in seconds reported as expires_in on issued responses.
	ExpiresIn int64 `koanf:"expires_in"`
}

var (
	cfgOnce sync.Once
	cfgInst *AppConfig
)

// GetConfig loads and returns the singleton AppConfig. Loading order:
// 1) config/config.yaml (optional)
// 2) config/config.<APP_ENV>.yaml (optional), APP_ENV defaults to "local"
// 3) Environment variables with prefix ICID_ mapped using __ as nested separator, e.g. ICID_VALKEY__ADDR
func GetConfig() *AppConfig {
	cfgOnce.Do(func() {
		k := koanf.New(".")
		// Config directory (CONFIG_DIR) default ./config
		configDir := os.Getenv("CONFIG_DIR")
		if configDir == "" {
			configDir = "config"
		}
		// Whether to load files (default: disabled to keep tests isolated)
		loadFiles := strings.EqualFold(os.Getenv("APP_CONFIG_FILES"), "1") || strings.EqualFold(os.Getenv("APP_CONFIG_FILES"), "true")
		// 1) base file
		if loadFiles {
			base := filepath.Join(configDir, "config.yaml")
			if _, err := os.Stat(base); err == nil {
				if err := k.Load(file.Provider(base), yaml.Parser()); err != nil {
					log.Printf("config: failed loading base: %v", err)
				}
			}
		}
		// 2) env-specific file
		envName := os.Getenv("APP_ENV")
		if envName == "" {
			envName = "local"
		}
		if loadFiles {
			envFile := filepath.Join(configDir, "config."+envName+".yaml")
			if _, err := os.Stat(envFile); err == nil {
				if err := k.Load(file.Provider(envFile), yaml.Parser()); err != nil {
					log.Printf("config: failed loading env file: %v", err)
				}
			}
		}
		// 3) env vars: ICID_ prefix, __ delim for nesting
		_ = k.Load(env.Provider("ICID_", "__", func(s string) string {
			// ICID_VALKEY__ADDR -> valkey.addr
			return s
		}), nil)

		var c AppConfig
		if err := k.Unmarshal("", &c); err != nil {
			log.Printf("config: unmarshal error: %v", err)
		}
		if c.Env == "" {
			c.Env = envName
		}
		if c.Listen == "" {
			c.Listen = ":9096"
		}
		if c.Issuer.ExpiresIn <= 0 {
			c.Issuer.ExpiresIn = 3600
		}
		cfgInst = &c
	})
	return cfgInst
}

// ValkeyAddr returns the effective Valkey address (config first, then env).
func (c *AppConfig) ValkeyAddr() string {
	if c != nil && c.Valkey.Addr != "" {
		return strings.TrimSpace(c.Valkey.Addr)
	}
	return strings.TrimSpace(os.Getenv("VALKEY_ADDR"))
}
