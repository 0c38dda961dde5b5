package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "Asia/Karachi"
	configPathEnv   = "NEWSPULSE_CONFIG"
	baseURLEnv      = "NEWSPULSE_BASE_URL"
	logLevelEnv     = "NEWSPULSE_LOG_LEVEL"
	playerEnv       = "NEWSPULSE_PLAYER"
	digestCronEnv   = "NEWSPULSE_DIGEST_CRON"
)

// Config holds high-level settings required across the application.
type Config struct {
	Service  ServiceConfig  `yaml:"service"`
	Logging  LoggingConfig  `yaml:"logging"`
	Playback PlaybackConfig `yaml:"playback"`
	Digest   DigestConfig   `yaml:"digest"`
	Sources  []string       `yaml:"sources"`
}

// ServiceConfig describes the remote news service endpoint.
type ServiceConfig struct {
	BaseURL        string        `yaml:"baseUrl"`
	RequestTimeout time.Duration `yaml:"requestTimeout"`
}

// LoggingConfig selects console log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// PlaybackConfig selects and parameterizes the narration playback backend.
type PlaybackConfig struct {
	Backend string   `yaml:"backend"`
	Command []string `yaml:"command"`
}

// DigestConfig defines when the digest auto-refresh runs.
type DigestConfig struct {
	CronExpression string         `yaml:"cronExpression"`
	Timezone       string         `yaml:"timezone"`
	location       *time.Location `yaml:"-"`
}

// Location resolves the digest timezone string to a time.Location.
func (d DigestConfig) Location() *time.Location {
	if d.location != nil {
		return d.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	cfg := defaultConfig()

	if path := os.Getenv(configPathEnv); path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Sources) == 0 {
		cfg.Sources = defaultConfig().Sources
	}

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(baseURLEnv); v != "" {
		c.Service.BaseURL = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(playerEnv); v != "" {
		c.Playback.Backend = v
	}

	if v := os.Getenv(digestCronEnv); v != "" {
		c.Digest.CronExpression = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Digest.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Digest.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Service.BaseURL != "" {
		base.Service.BaseURL = override.Service.BaseURL
	}
	if override.Service.RequestTimeout > 0 {
		base.Service.RequestTimeout = override.Service.RequestTimeout
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Playback.Backend != "" {
		base.Playback.Backend = override.Playback.Backend
	}
	if len(override.Playback.Command) > 0 {
		base.Playback.Command = override.Playback.Command
	}

	if override.Digest.CronExpression != "" {
		base.Digest.CronExpression = override.Digest.CronExpression
	}
	if override.Digest.Timezone != "" {
		base.Digest.Timezone = override.Digest.Timezone
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Service: ServiceConfig{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 20 * time.Second,
		},
		Logging: LoggingConfig{Level: "info"},
		Playback: PlaybackConfig{
			Backend: "noop",
			Command: []string{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
		},
		Digest: DigestConfig{
			CronExpression: "0 7 * * *",
			Timezone:       defaultTimezone,
			location:       tz,
		},
		Sources: []string{
			"https://www.dawn.com/feed",
			"https://tribune.com.pk/feed/home",
			"https://arynews.tv/feed",
		},
	}
}
