package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	defaultSamplerHost        = "103.212.120.18"
	defaultSamplerPort        = 80
	defaultSamplerTimeout     = 60 * time.Second
	defaultSamplerRepetitions = 1000
	defaultSamplerTopK        = 20

	defaultServerPort         = "8080"
	defaultServerReadTimeout  = 15 * time.Second
	defaultServerWriteTimeout = 90 * time.Second
	defaultServerIdleTimeout  = 60 * time.Second
)

type Config struct {
	Sampler *SamplerConfig `yaml:"sampler"`
	Server  *ServerConfig  `yaml:"server"`
	Logger  *LogConfig     `yaml:"logger"`
}

// SamplerConfig points at the remote Komenco sampler
type SamplerConfig struct {
	Host    string        `yaml:"host"`
	Port    int           `yaml:"port"`
	BaseURL string        `yaml:"baseURL"`
	Timeout time.Duration `yaml:"timeout"`
	// Applied to run requests that leave them unset
	Repetitions int `yaml:"repetitions"`
	TopK        int `yaml:"topK"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`
}

// WithDefaults returns a copy of the SamplerConfig with any missing fields set
// to their default values.
func (c SamplerConfig) WithDefaults() SamplerConfig {
	cpy := c
	if cpy.Host == "" && cpy.BaseURL == "" {
		cpy.Host = defaultSamplerHost
	}
	if cpy.Port == 0 {
		cpy.Port = defaultSamplerPort
	}
	if cpy.Timeout == 0 {
		cpy.Timeout = defaultSamplerTimeout
	}
	if cpy.Repetitions == 0 {
		cpy.Repetitions = defaultSamplerRepetitions
	}
	if cpy.TopK == 0 {
		cpy.TopK = defaultSamplerTopK
	}
	return cpy
}

// WithDefaults returns a copy of the ServerConfig with any missing fields set
// to their default values. The write timeout covers a full sampler round trip.
func (c ServerConfig) WithDefaults() ServerConfig {
	cpy := c
	if cpy.Port == "" {
		cpy.Port = defaultServerPort
	}
	if cpy.ReadTimeout == 0 {
		cpy.ReadTimeout = defaultServerReadTimeout
	}
	if cpy.WriteTimeout == 0 {
		cpy.WriteTimeout = defaultServerWriteTimeout
	}
	if cpy.IdleTimeout == 0 {
		cpy.IdleTimeout = defaultServerIdleTimeout
	}
	return cpy
}

// Load reads a YAML config file. An empty path yields the defaults. Env
// overrides (PORT, KOMENCO_HOST, KOMENCO_PORT) win over the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, errors.Wrap(err, "parse config")
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}

	config.fill()
	return config, nil
}

func (c *Config) fill() {
	sampler := SamplerConfig{}
	if c.Sampler != nil {
		sampler = *c.Sampler
	}
	sampler = sampler.WithDefaults()
	c.Sampler = &sampler

	server := ServerConfig{}
	if c.Server != nil {
		server = *c.Server
	}
	server = server.WithDefaults()
	c.Server = &server
}

func (c *Config) applyEnv() error {
	if port := os.Getenv("PORT"); port != "" {
		if c.Server == nil {
			c.Server = &ServerConfig{}
		}
		c.Server.Port = port
	}

	if host := os.Getenv("KOMENCO_HOST"); host != "" {
		if c.Sampler == nil {
			c.Sampler = &SamplerConfig{}
		}
		c.Sampler.Host = host
		c.Sampler.BaseURL = ""
	}

	if raw := os.Getenv("KOMENCO_PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return errors.Errorf("invalid KOMENCO_PORT %q", raw)
		}
		if c.Sampler == nil {
			c.Sampler = &SamplerConfig{}
		}
		c.Sampler.Port = port
	}

	return nil
}
